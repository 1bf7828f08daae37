// Package event implements the append-only structured event log of
// spec §3/§5: three step-tagged sequences (collision, boundary,
// proximity), cleared only by the caller, with capacity fixed at
// construction so that appending during Step never allocates.
package event

import (
	"github.com/determinisk/kernel/scalar"
	"github.com/determinisk/kernel/vec2"
)

// Side identifies which wall a boundary event occurred on.
type Side int

const (
	Left Side = iota
	Right
	Top
	Bottom
)

// ProximityKind mirrors proximity.EventKind without importing package
// physics/proximity, keeping this package dependency-free below physics.
type ProximityKind int

const (
	Enter ProximityKind = iota
	Exit
	Stay
)

type CollisionEvent struct {
	Step             uint64
	I, J             int
	Normal           vec2.Vec2
	Penetration      scalar.Scalar
	Contact          vec2.Vec2
	NormalVelocity   scalar.Scalar
	ImpulseMagnitude scalar.Scalar
}

type BoundaryEvent struct {
	Step           uint64
	Body           int
	Side           Side
	ImpactVelocity scalar.Scalar // pre-reflect normal component, spec §4.5/§9
}

type ProximityEvent struct {
	Step      uint64
	ZoneIndex int
	Body      int
	Kind      ProximityKind
}

// Log bundles the three event sequences. Initial capacity is set at
// construction from the body/zone counts the world was built with
// (spec §5), sized to the worst-case event count of a single step for
// each kind (see NewLog). Events accumulate across steps until the
// caller calls Clear; a log that is not cleared between steps grows
// its backing arrays through append once that capacity is used up.
type Log struct {
	Collisions []CollisionEvent
	Boundaries []BoundaryEvent
	Proximity  []ProximityEvent
}

// NewLog preallocates the three sequences to their worst-case sizes for
// one step: collisions are bounded by the number of unordered body pairs
// (the grid's dedup set guarantees no pair is ever emitted twice), a
// body crosses at most one wall per axis per step for boundary events,
// and a zone can emit at most one event per non-owner body.
func NewLog(numBodies, numZones int) *Log {
	collisionBudget := numBodies * (numBodies - 1) / 2
	if collisionBudget < 8 {
		collisionBudget = 8
	}
	return &Log{
		Collisions: make([]CollisionEvent, 0, collisionBudget),
		Boundaries: make([]BoundaryEvent, 0, numBodies*4),
		Proximity:  make([]ProximityEvent, 0, numZones*numBodies+1),
	}
}

func (l *Log) AppendCollision(e CollisionEvent) { l.Collisions = append(l.Collisions, e) }
func (l *Log) AppendBoundary(e BoundaryEvent)   { l.Boundaries = append(l.Boundaries, e) }
func (l *Log) AppendProximity(e ProximityEvent) { l.Proximity = append(l.Proximity, e) }

// Clear empties all three sequences without shrinking their backing
// arrays. The kernel never calls this itself (spec §3: "the log is
// cleared only by the caller").
func (l *Log) Clear() {
	l.Collisions = l.Collisions[:0]
	l.Boundaries = l.Boundaries[:0]
	l.Proximity = l.Proximity[:0]
}
