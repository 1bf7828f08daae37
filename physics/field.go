package physics

import (
	"github.com/determinisk/kernel/scalar"
	"github.com/determinisk/kernel/vec2"
)

// FieldKind is a closed sum of the force field variants named in spec
// §3/§4.3.
type FieldKind int

const (
	FieldGravity FieldKind = iota
	FieldPointAttractor
	FieldPointRepulsor
	FieldVortex
	FieldDamping
)

// Field is a force field contributing to the per-body force
// accumulation in declared order (spec §4.3).
type Field struct {
	Kind     FieldKind
	Strength scalar.Scalar

	// Position is meaningful for PointAttractor, PointRepulsor, Vortex,
	// and optionally for Gravity (a spatially-bounded uniform field).
	Position    vec2.Vec2
	HasPosition bool

	// Range is the optional cutoff; zero means "no cutoff".
	Range scalar.Scalar
}

// epsilon guards the 1/d² term in the attractor/repulsor force from
// dividing by a literal zero distance.
var epsilon = scalar.FromBits(1)
