package measure

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScalar(t *testing.T) {
	r := newTestRegistry(t)
	f := newFixture(t, r)

	s, err := NewScalar(1.5, f.km)
	require.NoError(t, err)
	assert.Equal(t, 1.5, s.Raw())
	assert.Same(t, f.km, s.Unit())
	assert.False(t, s.IsZero())
	assert.Equal(t, s, s.AsScalar())

	_, err = NewScalar(1, nil)
	assert.True(t, IsInvalidArgument(err))
	assert.ErrorIs(t, err, ErrNilUnit)
}

func TestScalarValue(t *testing.T) {
	r := newTestRegistry(t)
	f := newFixture(t, r)

	s, err := NewScalar(1.5, f.km)
	require.NoError(t, err)

	assert.InEpsilon(t, 1500.0, s.Value(f.m), 1e-12)
	assert.Equal(t, 1.5, s.Value(f.km))

	v, err := s.Convert(f.m)
	require.NoError(t, err)
	assert.InEpsilon(t, 1500.0, v, 1e-12)

	// the default policy lets unrelated units through unchanged
	assert.Equal(t, 1.5, s.Value(f.kg))
}

func TestConvert(t *testing.T) {
	r := newTestRegistry(t)
	f := newFixture(t, r)

	v, err := Convert(90, f.km, f.m)
	require.NoError(t, err)
	assert.InEpsilon(t, 90000.0, v, 1e-12)

	v, err = Convert(1, nil, f.m)
	assert.True(t, math.IsNaN(v))
	assert.ErrorIs(t, err, ErrNilUnit)
}

func TestScalarValueUnresolvable(t *testing.T) {
	r := newTestRegistry(t, WithUnrelatedPolicy(UnrelatedError))
	f := newFixture(t, r)

	s, err := NewScalar(2, f.kg)
	require.NoError(t, err)

	assert.True(t, math.IsNaN(s.Value(f.m)))

	_, err = s.Convert(f.m)
	assert.ErrorIs(t, err, ErrUnrelatedUnits)

	var zero Scalar
	v, err := zero.Convert(f.m)
	assert.True(t, math.IsNaN(v))
	assert.ErrorIs(t, err, ErrNilUnit)
}

func TestScalarReplicate(t *testing.T) {
	r := newTestRegistry(t)
	f := newFixture(t, r)

	s, err := NewScalar(1.5, f.km)
	require.NoError(t, err)

	c := s.Replicate(42)
	assert.Equal(t, 42.0, c.Raw())
	assert.Same(t, f.km, c.Unit())
	assert.Equal(t, 1.5, s.Raw())
}

func TestScalarEqual(t *testing.T) {
	r := newTestRegistry(t)
	f := newFixture(t, r)

	g1000, err := NewScalar(1000, f.g)
	require.NoError(t, err)
	kg1, err := NewScalar(1, f.kg)
	require.NoError(t, err)
	kg1b, err := NewScalar(1, f.kg)
	require.NoError(t, err)

	tests := []struct {
		name string
		a, b Scalar
		want bool
	}{
		{name: "same value and unit", a: kg1, b: kg1b, want: true},
		{name: "equivalent in other unit", a: g1000, b: kg1, want: false},
		{name: "different value", a: kg1, b: kg1.Replicate(2), want: false},
		{name: "zero and zero", a: Scalar{}, b: Scalar{}, want: true},
		{name: "zero and present", a: Scalar{}, b: kg1.Replicate(0), want: false},
		{name: "negative zero", a: kg1.Replicate(0), b: kg1.Replicate(math.Copysign(0, -1)), want: true},
		{name: "NaN", a: kg1.Replicate(math.NaN()), b: kg1.Replicate(math.NaN()), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
			assert.Equal(t, tt.want, tt.b.Equal(tt.a))
			if tt.want {
				assert.Equal(t, tt.a.Hash(), tt.b.Hash())
			}
		})
	}
}

func TestScalarHash(t *testing.T) {
	r := newTestRegistry(t)
	f := newFixture(t, r)

	a, err := NewScalar(1, f.g)
	require.NoError(t, err)
	b, err := NewScalar(1, f.kg)
	require.NoError(t, err)

	assert.Equal(t, a.Hash(), a.Hash())
	assert.NotEqual(t, a.Hash(), b.Hash())
	assert.NotEqual(t, a.Hash(), a.Replicate(2).Hash())
}

func TestScalarApproxEqual(t *testing.T) {
	r := newTestRegistry(t)
	f := newFixture(t, r)

	g1000, err := NewScalar(1000, f.g)
	require.NoError(t, err)
	kg1, err := NewScalar(1, f.kg)
	require.NoError(t, err)

	assert.True(t, g1000.ApproxEqual(kg1, 1e-9))
	assert.True(t, kg1.ApproxEqual(g1000, 1e-9))
	assert.False(t, kg1.ApproxEqual(g1000.Replicate(1100), 1e-9))
	assert.False(t, kg1.ApproxEqual(Scalar{}, 1e-9))
	assert.True(t, Scalar{}.ApproxEqual(Scalar{}, 1e-9))
}

func TestScalarString(t *testing.T) {
	r := newTestRegistry(t)
	f := newFixture(t, r)

	s, err := NewScalar(1.5, f.km)
	require.NoError(t, err)
	assert.Equal(t, "1.5 km", s.String())

	kmh, err := r.Ratio(f.km, f.hr)
	require.NoError(t, err)
	speed, err := NewScalar(100, kmh)
	require.NoError(t, err)
	assert.Equal(t, "100 km/hr", speed.String())

	assert.Equal(t, "<nil>", Scalar{}.String())
	assert.True(t, Scalar{}.IsZero())
}
