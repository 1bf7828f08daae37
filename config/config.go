// Package config defines the declarative construction input of spec
// §6 and its one-shot, collect-all validation of spec §7. It has no
// file or environment coupling: scenario loading (reading a TOML/YAML
// file, parsing CLI flags) is an external collaborator's job, out of
// scope per spec §1. This package only turns an in-memory description
// into a validated *physics.World, or a structured list of defects.
package config

import (
	"github.com/determinisk/kernel/scalar"
	"github.com/determinisk/kernel/vec2"
)

// BoundaryKind mirrors physics.BoundaryKind without importing it by
// name in user-facing config, so config stays a plain description.
type BoundaryKind int

const (
	Solid BoundaryKind = iota
	Periodic
	Open
)

// World is the top-level world configuration of spec §6.
type World struct {
	Width, Height float32
	Gravity       [2]float32
	Damping       float32
	Timestep      float32
	Boundary      BoundaryKind
	Restitution   float32 // meaningful only when Boundary == Solid
}

// Body is one circle's construction input. OldPosition is derived, not
// supplied: position - velocity*dt (spec §6).
type Body struct {
	ID          string
	Position    [2]float32
	Velocity    [2]float32
	Radius      float32
	Mass        float32
	Restitution float32
	Friction    float32
	Tags        []string
}

// Spring is one spring's construction input, referencing bodies by id.
type Spring struct {
	ID          string
	CircleA     string
	CircleB     string
	RestLength  float32
	Stiffness   float32
	Damping     float32
}

// Zone is one proximity zone's construction input.
type Zone struct {
	ID       string
	CircleID string
	Radius   float32
	Stay     bool
}

// FieldType enumerates the field variants of spec §3/§4.3.
type FieldType int

const (
	GravityField FieldType = iota
	PointAttractor
	PointRepulsor
	Vortex
	DampingField
)

// Field is one force field's construction input.
type Field struct {
	Type        FieldType
	Strength    float32
	Position    *[2]float32
	Range       float32
}

// Scenario bundles every recognized construction option of spec §6.
type Scenario struct {
	World   World
	Bodies  []Body
	Springs []Spring
	Zones   []Zone
	Fields  []Field
}

func vecOf(p [2]float32) vec2.Vec2 {
	return vec2.New(scalar.FromFloat32(p[0]), scalar.FromFloat32(p[1]))
}
