package quantity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAngle(t *testing.T) {
	a, err := NewAngle(180, Degree)
	require.NoError(t, err)
	assert.InEpsilon(t, math.Pi, a.Value(Radian), 1e-12)
	assert.InEpsilon(t, math.Pi, a.Radians(), 1e-12)
	assert.Equal(t, 180.0, a.Degrees())

	r, err := NewAngle(math.Pi/2, Radian)
	require.NoError(t, err)
	assert.InEpsilon(t, 90.0, r.Degrees(), 1e-12)
	assert.IsType(t, Angle{}, r.Replicate(1))

	assert.True(t, math.IsNaN(Angle{}.Radians()))
	assert.True(t, math.IsNaN(Angle{}.Degrees()))
}

func TestAngleDegreesWithoutDegreeUnit(t *testing.T) {
	r := newRegistry(t)
	rad, err := r.RegisterDefault(FamilyAngle, "rad")
	require.NoError(t, err)

	a, err := NewAngle(math.Pi, rad)
	require.NoError(t, err)
	assert.InEpsilon(t, 180.0, a.Degrees(), 1e-12)
}

func TestAngleDMS(t *testing.T) {
	tests := []struct {
		name    string
		degrees float64
		want    string
	}{
		{name: "fractional", degrees: 3.58324, want: `3˚34'59.664"`},
		{name: "rounded seconds", degrees: 4.59202, want: `4˚35'31.272"`},
		{name: "whole degrees", degrees: 45, want: `45˚0'0.0"`},
		{name: "negative", degrees: -3.58324, want: `-3˚34'59.664"`},
		{name: "zero", degrees: 0, want: `0˚0'0.0"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewAngle(tt.degrees, Degree)
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.DMS())
		})
	}
}

func TestAngleDMSUndefined(t *testing.T) {
	var absent Angle
	assert.Equal(t, "", absent.DMS())

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		a, err := NewAngle(v, Degree)
		require.NoError(t, err)
		assert.Equal(t, "", a.DMS(), "%v", v)
	}
}

func TestParseDMS(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{input: `3˚34'59.664"`, want: 3.58324},
		{input: `4˚35'31.272"`, want: 4.59202},
		{input: `-3˚34'59.664"`, want: -3.58324},
		{input: `38 53 54.8 N`, want: 38.89855555555556},
		{input: `77 2 16.27 W`, want: -77.03785277777778},
		{input: `33 52 S`, want: -33.86666666666667},
		{input: `151.2 E`, want: 151.2},
		{input: `12`, want: 12},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			a, err := ParseDMS(tt.input)
			require.NoError(t, err)
			assert.Same(t, Degree, a.Unit())
			assert.InDelta(t, tt.want, a.Raw(), 1e-9)
		})
	}
}

func TestParseDMSRoundTrip(t *testing.T) {
	for _, deg := range []float64{3.58324, 4.59202, 77.037852, -12.5} {
		a, err := NewAngle(deg, Degree)
		require.NoError(t, err)

		parsed, err := ParseDMS(a.DMS())
		require.NoError(t, err)
		assert.InDelta(t, deg, parsed.Raw(), 1e-6, a.DMS())
	}
}

func TestParseDMSInvalid(t *testing.T) {
	tests := []string{
		"",
		"north",
		`˚'"`,
		"1.2.3",
		"1 2 3 4",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := ParseDMS(input)
			assert.ErrorIs(t, err, ErrInvalidDMS)
		})
	}
}
