package physics

import (
	"github.com/determinisk/kernel/event"
	"github.com/determinisk/kernel/scalar"
	"github.com/determinisk/kernel/vec2"
)

// BoundaryKind selects one of the three wall-handling modes of spec §3.
type BoundaryKind int

const (
	BoundarySolid BoundaryKind = iota
	BoundaryPeriodic
	BoundaryOpen
)

// Boundary bundles the boundary mode with its mode-specific parameter.
type Boundary struct {
	Kind        BoundaryKind
	Restitution scalar.Scalar // only meaningful for BoundarySolid
}

// ProximityZone is the declared, immutable configuration of one zone
// (spec §3). Its live membership state is tracked separately, in the
// pipeline built on first Step, keyed by body index rather than id
// string (spec §9).
type ProximityZone struct {
	ID     string
	Owner  int
	Radius scalar.Scalar
	Stay   bool
}

// World is the ordered, fixed-capacity collection of bodies and their
// fixed auxiliary structures (springs, fields, zones) that DoStep
// advances one tick at a time. Every scratch buffer used during DoStep
// is allocated once, on the first DoStep (see ensurePipeline), and
// reused for the life of the World. DoStep still allocates while grid
// cell lists grow to their working size, and when Log, which the
// caller clears, outgrows its initial capacity.
type World struct {
	Circles []Circle
	ids     []string
	idIndex map[string]int

	Bounds   vec2.Vec2
	Gravity  vec2.Vec2
	Damping  scalar.Scalar
	Dt       scalar.Scalar
	Boundary Boundary

	Springs []Spring
	Fields  []Field
	Zones   []ProximityZone

	// FrictionEnabled turns on the opt-in tangential-impulse pass
	// described in SPEC_FULL.md's Resolver module. Off by default.
	FrictionEnabled bool

	Step uint64

	Log *event.Log

	// forces is the per-body net-force scratch buffer of spec §4.3,
	// zeroed and refilled at the start of every Step.
	forces []vec2.Vec2

	// cellSize/gridW/gridH are computed once at construction from the
	// maximum body radius and bounds (spec §4.6) and never recomputed.
	cellSize scalar.Scalar
	gridW    int
	gridH    int

	// pairBudget is the fixed upper bound on simultaneous contacts per
	// step, used to size the grid/narrowphase/resolve scratch buffers.
	pairBudget int

	pipe *pipeline
}

// NewWorld constructs a World from its fixed body/spring/field/zone
// lists. Callers are expected to have already validated the inputs
// (package config does this); NewWorld itself only wires indices and
// derives the grid geometry — it performs no validation of its own,
// matching spec §7's "no partial worlds are constructible" contract,
// which is enforced one layer up.
func NewWorld(bounds, gravity vec2.Vec2, damping, dt scalar.Scalar, boundary Boundary,
	circles []Circle, ids []string, springs []Spring, fields []Field, zones []ProximityZone) *World {

	n := len(circles)
	idIndex := make(map[string]int, n)
	for i, id := range ids {
		idIndex[id] = i
	}

	maxRadius := scalar.Zero
	for _, c := range circles {
		if c.Radius.GreaterThan(maxRadius) {
			maxRadius = c.Radius
		}
	}
	if maxRadius == scalar.Zero {
		maxRadius = scalar.One
	}
	cellSize := maxRadius.Mul(scalar.Two)

	gridW := int(bounds.X.Div(cellSize).Int())
	gridH := int(bounds.Y.Div(cellSize).Int())
	if gridW < 1 {
		gridW = 1
	}
	if gridH < 1 {
		gridH = 1
	}

	// The dedup bitset in package grid guarantees every unordered pair is
	// emitted at most once, so n*(n-1)/2 — the count of all unordered
	// pairs over n bodies — is a true upper bound on simultaneous
	// candidate pairs, not just a generous guess. Scratch buffers sized
	// to less than this could grow past capacity inside DoStep in a
	// dense scene, which would allocate and violate the no-allocation
	// requirement on Step.
	pairBudget := n * (n - 1) / 2
	if pairBudget < 8 {
		pairBudget = 8
	}

	return &World{
		Circles:    append([]Circle(nil), circles...),
		ids:        append([]string(nil), ids...),
		idIndex:    idIndex,
		Bounds:     bounds,
		Gravity:    gravity,
		Damping:    damping,
		Dt:         dt,
		Boundary:   boundary,
		Springs:    append([]Spring(nil), springs...),
		Fields:     append([]Field(nil), fields...),
		Zones:      append([]ProximityZone(nil), zones...),
		Log:        event.NewLog(n, len(zones)),
		forces:     make([]vec2.Vec2, n),
		cellSize:   cellSize,
		gridW:      gridW,
		gridH:      gridH,
		pairBudget: pairBudget,
	}
}

// IDs returns the body identifiers in index order.
func (w *World) IDs() []string { return w.ids }

// IndexOf resolves a body id to its index, or -1 if unknown.
func (w *World) IndexOf(id string) int {
	if i, ok := w.idIndex[id]; ok {
		return i
	}
	return -1
}

func (w *World) NumBodies() int { return len(w.Circles) }
