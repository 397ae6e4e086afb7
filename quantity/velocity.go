package quantity

import (
	"math"

	"github.com/openjax/measure"
)

// Velocity is a speed along a heading.
type Velocity struct {
	measure.Vector[Angle, Speed]
}

// NewVelocity returns the velocity of speed along heading.
func NewVelocity(heading Angle, speed Speed) Velocity {
	return Velocity{measure.NewVector(heading, speed)}
}

// Heading returns the direction of travel.
func (v Velocity) Heading() Angle {
	return v.I
}

// Speed returns the magnitude of the velocity.
func (v Velocity) Speed() Speed {
	return v.J
}

// Value returns the component of the velocity along heading, in the unit
// of the velocity's speed.
func (v Velocity) Value(heading Angle) Speed {
	return v.J.Replicate(v.J.Raw() * math.Cos(v.I.Radians()-heading.Radians()))
}
