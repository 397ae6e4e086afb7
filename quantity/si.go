package quantity

import (
	"math"

	"github.com/ctessum/unit"
	"github.com/openjax/measure"
)

// SI returns the distance in meters as a dimensioned value.
func (d Distance) SI() *unit.Unit {
	return unit.New(inDefault(d.Scalar, FamilyDistance), unit.Meter)
}

// SI returns the time in seconds as a dimensioned value.
func (t Time) SI() *unit.Unit {
	return unit.New(inDefault(t.Scalar, FamilyTime), unit.Second)
}

// SI returns the mass in kilograms as a dimensioned value.
func (m Mass) SI() *unit.Unit {
	return unit.New(inDefault(m.Scalar, FamilyMass)/1000, unit.Kilogram)
}

// SI returns the angle in radians as a dimensionless value.
func (a Angle) SI() *unit.Unit {
	return unit.New(a.Radians(), unit.Dimless)
}

// SI returns the volume in cubic meters as a dimensioned value.
func (v Volume) SI() *unit.Unit {
	return unit.New(inDefault(v.Scalar, FamilyVolume)/1000, unit.Meter3)
}

// SI returns the speed in meters per second as a dimensioned value.
func (s Speed) SI() *unit.Unit {
	return unit.New(ratioInDefaults(s.Scalar), unit.MeterPerSecond)
}

// SI returns the density in kilograms per cubic meter as a dimensioned
// value.
func (d Density) SI() *unit.Unit {
	// g/l and kg/m³ are the same quantity
	return unit.New(ratioInDefaults(d.Scalar), unit.KilogramPerMeter3)
}

// ratioInDefaults returns a ratio scalar expressed in the default units of
// its numerator and denominator families, or NaN if s is not a ratio.
func ratioInDefaults(s measure.Scalar) float64 {
	if s.IsZero() || s.Unit().Kind() != measure.KindRatio {
		return math.NaN()
	}
	num, den := s.Unit().Operands()
	return s.Raw() * toDefault(num) / toDefault(den)
}

// toDefault returns the factor converting u into its family default.
func toDefault(u *measure.Unit) float64 {
	def, err := u.Registry().DefaultUnit(u.Family())
	if err != nil {
		return math.NaN()
	}
	f, err := u.Registry().Factor(u, def)
	if err != nil {
		return math.NaN()
	}
	return f
}
