package quantity

import "github.com/openjax/measure"

// Distance is a length, such as 5 km.
type Distance struct{ measure.Scalar }

// NewDistance returns value expressed in unit.
func NewDistance(value float64, unit *measure.Unit) (Distance, error) {
	s, err := measure.NewScalar(value, unit)
	if err != nil {
		return Distance{}, err
	}
	return Distance{s}, nil
}

// Replicate returns a Distance in the same unit holding value.
func (d Distance) Replicate(value float64) Distance {
	return Distance{d.Scalar.Replicate(value)}
}

// Time is a duration, such as 3 hr.
type Time struct{ measure.Scalar }

// NewTime returns value expressed in unit.
func NewTime(value float64, unit *measure.Unit) (Time, error) {
	s, err := measure.NewScalar(value, unit)
	if err != nil {
		return Time{}, err
	}
	return Time{s}, nil
}

// Replicate returns a Time in the same unit holding value.
func (t Time) Replicate(value float64) Time {
	return Time{t.Scalar.Replicate(value)}
}

// Mass is a mass, such as 2 kg.
type Mass struct{ measure.Scalar }

// NewMass returns value expressed in unit.
func NewMass(value float64, unit *measure.Unit) (Mass, error) {
	s, err := measure.NewScalar(value, unit)
	if err != nil {
		return Mass{}, err
	}
	return Mass{s}, nil
}

// Replicate returns a Mass in the same unit holding value.
func (m Mass) Replicate(value float64) Mass {
	return Mass{m.Scalar.Replicate(value)}
}

// Volume is a volume, such as 1.5 l.
type Volume struct{ measure.Scalar }

// NewVolume returns value expressed in unit.
func NewVolume(value float64, unit *measure.Unit) (Volume, error) {
	s, err := measure.NewScalar(value, unit)
	if err != nil {
		return Volume{}, err
	}
	return Volume{s}, nil
}

// Replicate returns a Volume in the same unit holding value.
func (v Volume) Replicate(value float64) Volume {
	return Volume{v.Scalar.Replicate(value)}
}

// Speed is a distance per time, such as 100 km/hr. Its unit is a
// distance/time ratio.
type Speed struct{ measure.Scalar }

// NewSpeed returns value expressed in unit.
func NewSpeed(value float64, unit *measure.Unit) (Speed, error) {
	s, err := measure.NewScalar(value, unit)
	if err != nil {
		return Speed{}, err
	}
	return Speed{s}, nil
}

// Replicate returns a Speed in the same unit holding value.
func (s Speed) Replicate(value float64) Speed {
	return Speed{s.Scalar.Replicate(value)}
}

// Density is a mass per volume, such as 1 g/ml. Its unit is a mass/volume
// ratio.
type Density struct{ measure.Scalar }

// NewDensity returns value expressed in unit.
func NewDensity(value float64, unit *measure.Unit) (Density, error) {
	s, err := measure.NewScalar(value, unit)
	if err != nil {
		return Density{}, err
	}
	return Density{s}, nil
}

// Replicate returns a Density in the same unit holding value.
func (d Density) Replicate(value float64) Density {
	return Density{d.Scalar.Replicate(value)}
}
