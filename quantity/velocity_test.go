package quantity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVelocityValue(t *testing.T) {
	speed, err := NewSpeed(100, KilometersPerHour)
	require.NoError(t, err)
	v := NewVelocity(degrees(t, 45), speed)

	tests := []struct {
		name    string
		heading float64
		want    float64
	}{
		{name: "perpendicular", heading: -45, want: 0},
		{name: "aligned", heading: 45, want: 100},
		{name: "opposite", heading: 225, want: -100},
		{name: "north", heading: 0, want: 70.71067811865476},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.Value(degrees(t, tt.heading))
			assert.Same(t, KilometersPerHour, got.Unit())
			assert.InDelta(t, tt.want, got.Raw(), 1e-9)
		})
	}
}

func TestVelocity(t *testing.T) {
	speed, err := NewSpeed(10, Knots)
	require.NoError(t, err)
	heading := degrees(t, 90)

	v := NewVelocity(heading, speed)
	assert.Equal(t, heading, v.Heading())
	assert.Equal(t, speed, v.Speed())
	assert.Equal(t, "(90 deg, 10 nm/hr)", v.String())

	same := NewVelocity(degrees(t, 90), speed.Replicate(10))
	assert.True(t, v.Equal(same.Vector))
	assert.Equal(t, v.Hash(), same.Hash())
}
