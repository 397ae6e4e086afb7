package measure

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats/scalar"
)

// Quantity is implemented by Scalar and by every type that embeds one.
type Quantity interface {
	AsScalar() Scalar
}

// Scalar is a value expressed in a unit.
//
// The zero Scalar has no unit and stands for an absent quantity; it can
// only be produced as a zero value, never by NewScalar.
type Scalar struct {
	value float64
	unit  *Unit
}

// NewScalar returns value expressed in unit. A nil unit is a
// KindInvalidArgument error wrapping ErrNilUnit.
func NewScalar(value float64, unit *Unit) (Scalar, error) {
	if unit == nil {
		return Scalar{}, NewInvalidArgumentError("NewScalar", ErrNilUnit)
	}
	return Scalar{value: value, unit: unit}, nil
}

// AsScalar returns s.
func (s Scalar) AsScalar() Scalar {
	return s
}

// Raw returns the value in the scalar's own unit.
func (s Scalar) Raw() float64 {
	return s.value
}

// Unit returns the scalar's unit.
func (s Scalar) Unit() *Unit {
	return s.unit
}

// IsZero reports whether s is the zero (absent) Scalar.
func (s Scalar) IsZero() bool {
	return s.unit == nil
}

// Value returns the scalar expressed in target. It is NaN when the
// conversion fails, which only happens for nil or foreign units or under
// UnrelatedError.
func (s Scalar) Value(target *Unit) float64 {
	v, _ := s.Convert(target)
	return v
}

// Convert returns the scalar expressed in target, reporting why a
// conversion could not be made.
func (s Scalar) Convert(target *Unit) (float64, error) {
	if s.unit == nil {
		return math.NaN(), NewInvalidArgumentError("Scalar.Convert", ErrNilUnit)
	}
	f, err := s.unit.registry.Factor(s.unit, target)
	if err != nil {
		return math.NaN(), err
	}
	return s.value * f, nil
}

// Convert returns value, expressed in from, expressed in to.
func Convert(value float64, from, to *Unit) (float64, error) {
	f, err := Factor(from, to)
	if err != nil {
		return math.NaN(), err
	}
	return value * f, nil
}

// Replicate returns a scalar in the same unit holding value.
func (s Scalar) Replicate(value float64) Scalar {
	return Scalar{value: value, unit: s.unit}
}

// Equal reports whether s and o hold the same value in the same unit.
// Equality does not convert: 1000 g is not equal to 1 kg.
func (s Scalar) Equal(o Scalar) bool {
	return s.value == o.value && s.unit == o.unit
}

// ApproxEqual reports whether o, converted to s's unit, is within tol of s
// either absolutely or relatively.
func (s Scalar) ApproxEqual(o Scalar, tol float64) bool {
	if s.unit == nil || o.unit == nil {
		return s.unit == o.unit
	}
	v, err := o.Convert(s.unit)
	if err != nil {
		return false
	}
	return scalar.EqualWithinAbsOrRel(s.value, v, tol, tol)
}

// Hash returns a hash of the value and the unit identity, consistent with
// Equal.
func (s Scalar) Hash() uint64 {
	v := s.value
	if v == 0 {
		// fold -0 into +0; they compare equal
		v = 0
	}

	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], math.Float64bits(v))
	if s.unit != nil {
		binary.LittleEndian.PutUint64(buf[8:], s.unit.seq)
	}

	h := fnv.New64a()
	_, _ = h.Write(buf[:])
	return h.Sum64()
}

// String returns the value followed by the unit name, e.g. "1.5 km".
func (s Scalar) String() string {
	if s.unit == nil {
		return "<nil>"
	}
	return strconv.FormatFloat(s.value, 'g', -1, 64) + " " + s.unit.name
}
