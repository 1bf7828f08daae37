package config

import (
	"github.com/determinisk/kernel/physics"
	"github.com/determinisk/kernel/scalar"
	"github.com/determinisk/kernel/vec2"
)

// Build validates the Scenario and, if it is well-formed, converts it
// into a ready-to-step *physics.World. old_position is derived from
// position and velocity as position - velocity*dt (spec §6), so the
// first implicit-velocity read after construction reproduces the
// declared initial velocity up to Q16.16 rounding of velocity*dt.
func (s *Scenario) Build() (*physics.World, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	dt := scalar.FromFloat32(s.World.Timestep)
	ids := make([]string, len(s.Bodies))
	idIndex := make(map[string]int, len(s.Bodies))
	circles := make([]physics.Circle, len(s.Bodies))
	for i, b := range s.Bodies {
		pos := vecOf(b.Position)
		vel := vecOf(b.Velocity)
		circles[i] = physics.Circle{
			Position:    pos,
			OldPosition: pos.Sub(vel.Scale(dt)),
			Radius:      scalar.FromFloat32(b.Radius),
			Mass:        scalar.FromFloat32(b.Mass),
			Restitution: scalar.FromFloat32(b.Restitution),
			Friction:    scalar.FromFloat32(b.Friction),
			Tags:        append([]string(nil), b.Tags...),
		}
		ids[i] = b.ID
		idIndex[b.ID] = i
	}

	springs := make([]physics.Spring, len(s.Springs))
	for i, sp := range s.Springs {
		springs[i] = physics.Spring{
			ID:          sp.ID,
			A:           idIndex[sp.CircleA],
			B:           idIndex[sp.CircleB],
			RestLength:  scalar.FromFloat32(sp.RestLength),
			Stiffness:   scalar.FromFloat32(sp.Stiffness),
			DampingCoef: scalar.FromFloat32(sp.Damping),
		}
	}

	zones := make([]physics.ProximityZone, len(s.Zones))
	for i, z := range s.Zones {
		zones[i] = physics.ProximityZone{
			ID:     z.ID,
			Owner:  idIndex[z.CircleID],
			Radius: scalar.FromFloat32(z.Radius),
			Stay:   z.Stay,
		}
	}

	fields := make([]physics.Field, len(s.Fields))
	for i, f := range s.Fields {
		pf := physics.Field{
			Kind:     physics.FieldKind(f.Type),
			Strength: scalar.FromFloat32(f.Strength),
			Range:    scalar.FromFloat32(f.Range),
		}
		if f.Position != nil {
			pf.Position = vecOf(*f.Position)
			pf.HasPosition = true
		}
		fields[i] = pf
	}

	boundary := physics.Boundary{
		Kind:        physics.BoundaryKind(s.World.Boundary),
		Restitution: scalar.FromFloat32(s.World.Restitution),
	}
	bounds := vec2.New(scalar.FromFloat32(s.World.Width), scalar.FromFloat32(s.World.Height))
	gravity := vecOf(s.World.Gravity)
	damping := scalar.FromFloat32(s.World.Damping)

	return physics.NewWorld(bounds, gravity, damping, dt, boundary, circles, ids, springs, fields, zones), nil
}
