// Package physics implements the deterministic disk simulation kernel:
// entities, force accumulation, integration, boundary handling, and
// their composition into a single Step.
package physics

import (
	"github.com/determinisk/kernel/scalar"
	"github.com/determinisk/kernel/vec2"
)

// Circle is a rigid disk body. Velocity is implicit: it is never stored,
// only derived from Position and OldPosition.
type Circle struct {
	Position    vec2.Vec2
	OldPosition vec2.Vec2
	Radius      scalar.Scalar
	Mass        scalar.Scalar
	Restitution scalar.Scalar
	Friction    scalar.Scalar

	// Tags are opaque, preserved verbatim, never interpreted by the
	// kernel, and never part of the canonical encoding (spec §6, §4.10).
	Tags []string
}

// Velocity returns the implicit velocity (Position-OldPosition)/dt.
func (c Circle) Velocity(dt scalar.Scalar) vec2.Vec2 {
	return c.Position.Sub(c.OldPosition).Div(dt)
}

// InvMass returns 1/Mass. Mass > 0 is a construction-time invariant
// (spec §3), so this never divides by zero in a valid world.
func (c Circle) InvMass() scalar.Scalar {
	return scalar.One.Div(c.Mass)
}
