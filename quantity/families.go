package quantity

import (
	"fmt"
	"math"

	"github.com/openjax/measure"
)

// Family names.
const (
	FamilyDistance = "distance"
	FamilyTime     = "time"
	FamilyMass     = "mass"
	FamilyAngle    = "angle"
	FamilyVolume   = "volume"
)

// Families holds the units of every quantity family installed in one
// registry.
type Families struct {
	Meter, Foot, Mile, Kilometer, NauticalMile, Yard, Inch *measure.Unit
	Second, Minute, Hour, Day, Week                        *measure.Unit
	Gram, Kilogram, Carat, Pound                           *measure.Unit
	Radian, Degree                                         *measure.Unit
	Liter, Milliliter, Gallon                              *measure.Unit

	KilometersPerHour, MetersPerSecond, MilesPerHour, Knots *measure.Unit
	GramsPerMilliliter, KilogramsPerLiter                   *measure.Unit
}

// familyBuilder registers units until the first failure, after which every
// call is a no-op.
type familyBuilder struct {
	r   *measure.Registry
	err error
}

func (b *familyBuilder) def(family, name string) *measure.Unit {
	if b.err != nil {
		return nil
	}
	u, err := b.r.RegisterDefault(family, name)
	if err != nil {
		b.err = fmt.Errorf("register %s default %s: %w", family, name, err)
	}
	return u
}

func (b *familyBuilder) unit(name string, factor float64, basis *measure.Unit) *measure.Unit {
	if b.err != nil {
		return nil
	}
	u, err := b.r.Register(name, factor, basis)
	if err != nil {
		b.err = fmt.Errorf("register %s: %w", name, err)
	}
	return u
}

func (b *familyBuilder) ratio(num, den *measure.Unit) *measure.Unit {
	if b.err != nil {
		return nil
	}
	u, err := b.r.Ratio(num, den)
	if err != nil {
		b.err = fmt.Errorf("register ratio %s/%s: %w", num, den, err)
	}
	return u
}

// Register installs the distance, time, mass, angle and volume families and
// the speed and density ratios into r. It fails with a
// measure.KindConfiguration error if r already has one of the families.
func Register(r *measure.Registry) (*Families, error) {
	b := &familyBuilder{r: r}
	f := &Families{}

	f.Meter = b.def(FamilyDistance, "m")
	f.Foot = b.unit("ft", 0.3048, f.Meter)
	f.Mile = b.unit("mi", 5280, f.Foot)
	f.Kilometer = b.unit("km", 1000, f.Meter)
	f.NauticalMile = b.unit("nm", 1852, f.Meter)
	f.Yard = b.unit("yd", 3, f.Foot)
	f.Inch = b.unit("in", 1.0/12, f.Foot)

	f.Second = b.def(FamilyTime, "sec")
	f.Minute = b.unit("min", 60, f.Second)
	f.Hour = b.unit("hr", 60, f.Minute)
	f.Day = b.unit("day", 24, f.Hour)
	f.Week = b.unit("wk", 7, f.Day)

	f.Gram = b.def(FamilyMass, "g")
	f.Kilogram = b.unit("kg", 1000, f.Gram)
	f.Carat = b.unit("ct", 0.2, f.Gram)
	f.Pound = b.unit("lb", 453.59237, f.Gram)

	f.Radian = b.def(FamilyAngle, "rad")
	f.Degree = b.unit("deg", math.Pi/180, f.Radian)

	f.Liter = b.def(FamilyVolume, "l")
	f.Milliliter = b.unit("ml", 0.001, f.Liter)
	f.Gallon = b.unit("gal", 3.785411784, f.Liter)

	f.KilometersPerHour = b.ratio(f.Kilometer, f.Hour)
	f.MetersPerSecond = b.ratio(f.Meter, f.Second)
	f.MilesPerHour = b.ratio(f.Mile, f.Hour)
	f.Knots = b.ratio(f.NauticalMile, f.Hour)

	f.GramsPerMilliliter = b.ratio(f.Gram, f.Milliliter)
	f.KilogramsPerLiter = b.ratio(f.Kilogram, f.Liter)

	if b.err != nil {
		return nil, b.err
	}
	return f, nil
}

func mustScalar(value float64, unit *measure.Unit) measure.Scalar {
	s, err := measure.NewScalar(value, unit)
	if err != nil {
		panic(err)
	}
	return s
}

func mustRegister(r *measure.Registry) *Families {
	f, err := Register(r)
	if err != nil {
		panic(err)
	}
	return f
}

// Standard holds the units installed in measure.Default().
var Standard = mustRegister(measure.Default())

// Units of measure.Default().
var (
	Meter        = Standard.Meter
	Foot         = Standard.Foot
	Mile         = Standard.Mile
	Kilometer    = Standard.Kilometer
	NauticalMile = Standard.NauticalMile
	Yard         = Standard.Yard
	Inch         = Standard.Inch

	Second = Standard.Second
	Minute = Standard.Minute
	Hour   = Standard.Hour
	Day    = Standard.Day
	Week   = Standard.Week

	Gram     = Standard.Gram
	Kilogram = Standard.Kilogram
	Carat    = Standard.Carat
	Pound    = Standard.Pound

	Radian = Standard.Radian
	Degree = Standard.Degree

	Liter      = Standard.Liter
	Milliliter = Standard.Milliliter
	Gallon     = Standard.Gallon

	KilometersPerHour = Standard.KilometersPerHour
	MetersPerSecond   = Standard.MetersPerSecond
	MilesPerHour      = Standard.MilesPerHour
	Knots             = Standard.Knots

	GramsPerMilliliter = Standard.GramsPerMilliliter
	KilogramsPerLiter  = Standard.KilogramsPerLiter
)

// inDefault returns s expressed in the default unit of family in s's own
// registry, or NaN if s is absent or the registry lacks the family.
func inDefault(s measure.Scalar, family string) float64 {
	if s.IsZero() {
		return math.NaN()
	}
	u, err := s.Unit().Registry().DefaultUnit(family)
	if err != nil {
		return math.NaN()
	}
	return s.Value(u)
}

// fromDefault returns like's unit holding v, where v is expressed in the
// default unit of family.
func fromDefault(like measure.Scalar, family string, v float64) measure.Scalar {
	if like.IsZero() {
		return like
	}
	u, err := like.Unit().Registry().DefaultUnit(family)
	if err != nil {
		return like.Replicate(math.NaN())
	}
	f, err := measure.Factor(u, like.Unit())
	if err != nil {
		return like.Replicate(math.NaN())
	}
	return like.Replicate(v * f)
}

// defaultScalar returns v in the default unit of family of the registry
// that owns like.
func defaultScalar(like measure.Scalar, family string, v float64) measure.Scalar {
	if like.IsZero() {
		return measure.Scalar{}
	}
	u, err := like.Unit().Registry().DefaultUnit(family)
	if err != nil {
		return measure.Scalar{}
	}
	s, err := measure.NewScalar(v, u)
	if err != nil {
		return measure.Scalar{}
	}
	return s
}
