package config

import (
	"fmt"
	"strings"

	"github.com/determinisk/kernel/logger"
)

// DefectKind enumerates the named construction-defect categories.
type DefectKind int

const (
	DefectInvalidRadius DefectKind = iota
	DefectInvalidMass
	DefectOutOfBounds
	DefectDuplicateID
	DefectInvalidTimestep
	DefectInvalidWorldSize
	DefectDanglingReference
	DefectOutOfRange
)

func (k DefectKind) String() string {
	switch k {
	case DefectInvalidRadius:
		return "InvalidRadius"
	case DefectInvalidMass:
		return "InvalidMass"
	case DefectOutOfBounds:
		return "OutOfBounds"
	case DefectDuplicateID:
		return "DuplicateID"
	case DefectInvalidTimestep:
		return "InvalidTimestep"
	case DefectInvalidWorldSize:
		return "InvalidWorldSize"
	case DefectDanglingReference:
		return "DanglingReference"
	case DefectOutOfRange:
		return "OutOfRange"
	default:
		return "Unknown"
	}
}

// Defect is one construction-time violation, naming its kind, the
// offending path (e.g. "body[2]"), and a human-readable message.
type Defect struct {
	Kind    DefectKind
	Path    string
	Message string
}

// ValidationErrors aggregates every defect found in a Scenario. Per
// spec §7, validation always collects all defects in one pass; it
// never stops at the first one.
type ValidationErrors struct {
	Defects []Defect
}

func (e *ValidationErrors) add(kind DefectKind, path, format string, args ...any) {
	e.Defects = append(e.Defects, Defect{Kind: kind, Path: path, Message: fmt.Sprintf(format, args...)})
}

func (e *ValidationErrors) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d construction defect(s):\n", len(e.Defects))
	for _, d := range e.Defects {
		fmt.Fprintf(&sb, "%s (%s): %s\n", d.Path, d.Kind, d.Message)
	}
	return sb.String()
}

// Validate checks every invariant of spec §3/§7 and returns a non-nil
// *ValidationErrors listing all of them, or nil if the Scenario is fit
// to build. Checking continues past the first defect so a caller sees
// the complete picture in one round trip.
func (s *Scenario) Validate() *ValidationErrors {
	errs := &ValidationErrors{}

	if s.World.Width <= 0 || s.World.Height <= 0 {
		errs.add(DefectInvalidWorldSize, "world", "bounds must be positive, got (%g, %g)", s.World.Width, s.World.Height)
	}
	if s.World.Timestep <= 0 || s.World.Timestep > 0.1 {
		errs.add(DefectInvalidTimestep, "world", "timestep must be in (0, 0.1], got %g", s.World.Timestep)
	}
	if s.World.Boundary == Solid && (s.World.Restitution < 0 || s.World.Restitution > 1) {
		errs.add(DefectOutOfRange, "world", "boundary restitution must be in [0, 1], got %g", s.World.Restitution)
	}
	if s.World.Damping < 0 || s.World.Damping >= 1 {
		errs.add(DefectOutOfRange, "world", "damping must be in [0, 1), got %g", s.World.Damping)
	}

	seenIDs := make(map[string]int, len(s.Bodies))
	for i, b := range s.Bodies {
		path := fmt.Sprintf("body[%d]", i)
		if b.ID == "" {
			errs.add(DefectDuplicateID, path, "id must not be empty")
		} else if prev, dup := seenIDs[b.ID]; dup {
			errs.add(DefectDuplicateID, path, "id %q duplicates body[%d]", b.ID, prev)
		} else {
			seenIDs[b.ID] = i
		}
		if b.Radius <= 0 {
			errs.add(DefectInvalidRadius, path, "radius must be positive, got %g", b.Radius)
		}
		if b.Mass <= 0 {
			errs.add(DefectInvalidMass, path, "mass must be positive, got %g", b.Mass)
		}
		if b.Restitution < 0 || b.Restitution > 1 {
			errs.add(DefectOutOfRange, path, "restitution must be in [0, 1], got %g", b.Restitution)
		}
		if b.Friction < 0 || b.Friction > 1 {
			errs.add(DefectOutOfRange, path, "friction must be in [0, 1], got %g", b.Friction)
		}
		if b.Position[0]-b.Radius < 0 || b.Position[0]+b.Radius > s.World.Width ||
			b.Position[1]-b.Radius < 0 || b.Position[1]+b.Radius > s.World.Height {
			errs.add(DefectOutOfBounds, path, "initial position (%g, %g) with radius %g lies outside world bounds", b.Position[0], b.Position[1], b.Radius)
		}
	}

	seenSprings := make(map[string]int, len(s.Springs))
	for i, sp := range s.Springs {
		path := fmt.Sprintf("spring[%d]", i)
		if sp.ID == "" {
			errs.add(DefectDuplicateID, path, "id must not be empty")
		} else if prev, dup := seenSprings[sp.ID]; dup {
			errs.add(DefectDuplicateID, path, "id %q duplicates spring[%d]", sp.ID, prev)
		} else {
			seenSprings[sp.ID] = i
		}
		if _, ok := seenIDs[sp.CircleA]; sp.CircleA != "" && !ok {
			errs.add(DefectDanglingReference, path, "circle_a %q references an unknown body", sp.CircleA)
		}
		if _, ok := seenIDs[sp.CircleB]; sp.CircleB != "" && !ok {
			errs.add(DefectDanglingReference, path, "circle_b %q references an unknown body", sp.CircleB)
		}
		if sp.CircleA == sp.CircleB && sp.CircleA != "" {
			errs.add(DefectDanglingReference, path, "circle_a and circle_b must differ")
		}
		if sp.RestLength < 0 {
			errs.add(DefectOutOfRange, path, "rest_length must be non-negative, got %g", sp.RestLength)
		}
		if sp.Stiffness < 0 {
			errs.add(DefectOutOfRange, path, "stiffness must be non-negative, got %g", sp.Stiffness)
		}
		if sp.Damping < 0 {
			errs.add(DefectOutOfRange, path, "damping must be non-negative, got %g", sp.Damping)
		}
	}

	seenZones := make(map[string]int, len(s.Zones))
	for i, z := range s.Zones {
		path := fmt.Sprintf("zone[%d]", i)
		if z.ID == "" {
			errs.add(DefectDuplicateID, path, "id must not be empty")
		} else if prev, dup := seenZones[z.ID]; dup {
			errs.add(DefectDuplicateID, path, "id %q duplicates zone[%d]", z.ID, prev)
		} else {
			seenZones[z.ID] = i
		}
		if _, ok := seenIDs[z.CircleID]; !ok {
			errs.add(DefectDanglingReference, path, "circle_id %q references an unknown body", z.CircleID)
		}
		if z.Radius < 0 {
			errs.add(DefectInvalidRadius, path, "radius must be non-negative, got %g", z.Radius)
		}
	}

	for i, f := range s.Fields {
		path := fmt.Sprintf("field[%d]", i)
		if f.Strength == 0 {
			l := logger.Logger()
			l.Warn().Str("path", path).Msg("field has zero strength and will have no effect")
		}
		if f.Range < 0 {
			errs.add(DefectOutOfRange, path, "range must be non-negative, got %g", f.Range)
		}
		switch f.Type {
		case PointAttractor, PointRepulsor, Vortex:
			if f.Position == nil {
				errs.add(DefectDanglingReference, path, "type requires a position")
			}
		}
	}

	if len(errs.Defects) == 0 {
		return nil
	}
	return errs
}
