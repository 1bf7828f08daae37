package physics

import (
	"github.com/determinisk/kernel/event"
	"github.com/determinisk/kernel/physics/grid"
	"github.com/determinisk/kernel/physics/narrowphase"
	"github.com/determinisk/kernel/physics/proximity"
	"github.com/determinisk/kernel/physics/resolve"
	"github.com/determinisk/kernel/scalar"
	"github.com/determinisk/kernel/vec2"
)

// pipeline holds the step-scoped working structures that sit below
// World: the spatial grid, the live proximity-zone state, and the
// scratch slices threaded through grid/narrowphase/resolve/proximity.
// It is built once, on the first call to DoStep, and reused for the life
// of the World — radii never change in-kernel (spec §3 Lifecycle), so
// they are captured here once rather than recomputed every step.
type pipeline struct {
	grid  *grid.Grid
	zones []*proximity.Zone

	positions []vec2.Vec2
	radii     []scalar.Scalar

	pairs       []grid.Pair
	contacts    []narrowphase.Contact
	resolveBody []resolve.Body
	results     []resolve.Result
	proxEvents  []proximity.Event
}

func (w *World) ensurePipeline() {
	if w.pipe != nil {
		return
	}
	n := len(w.Circles)
	radii := make([]scalar.Scalar, n)
	for i, c := range w.Circles {
		radii[i] = c.Radius
	}

	zones := make([]*proximity.Zone, len(w.Zones))
	for i, z := range w.Zones {
		zones[i] = proximity.NewZone(z.Owner, z.Radius, z.Stay, n)
	}

	w.pipe = &pipeline{
		grid:        grid.New(w.gridW, w.gridH, w.cellSize, n),
		zones:       zones,
		positions:   make([]vec2.Vec2, n),
		radii:       radii,
		pairs:       make([]grid.Pair, 0, w.pairBudget),
		contacts:    make([]narrowphase.Contact, 0, w.pairBudget),
		resolveBody: make([]resolve.Body, n),
		results:     make([]resolve.Result, 0, w.pairBudget),
		proxEvents:  make([]proximity.Event, 0, len(w.Zones)*n+1),
	}
}

// DoStep advances the world by one tick, following the totally ordered
// control flow normative in spec §2:
//  1. accumulate forces
//  2. integrate positions
//  3. boundary correction + events
//  4. rebuild spatial grid
//  5. narrow phase over the sorted candidate list
//  6. resolve collisions + events
//  7. update proximity zones + events
//  8. advance the step counter
//
// DoStep is the atomic unit of progress described in spec §5: under
// valid input it cannot partially apply, performs no I/O, and has no
// suspension points. Once ensurePipeline has run, it allocates only
// while grid cell lists grow to their working size and when w.Log,
// which only the caller clears, outgrows its initial capacity.
func (w *World) DoStep() {
	w.ensurePipeline()
	p := w.pipe

	w.accumulateForces()
	w.integrate()
	w.applyBoundary()

	for i, c := range w.Circles {
		p.positions[i] = c.Position
	}

	pairs := p.grid.Build(p.positions, p.radii, p.pairs)
	p.pairs = pairs
	contacts := narrowphase.Detect(p.positions, p.radii, pairs, p.contacts)
	p.contacts = contacts

	for i, c := range w.Circles {
		p.resolveBody[i] = resolve.Body{
			Position:    c.Position,
			OldPosition: c.OldPosition,
			Mass:        c.Mass,
			Restitution: c.Restitution,
		}
	}
	results := resolve.Resolve(p.resolveBody, w.Dt, contacts, p.results)
	p.results = results

	if w.FrictionEnabled {
		for idx := range results {
			i, j := results[idx].Contact.I, results[idx].Contact.J
			resolve.TangentialDrag(p.resolveBody, w.Dt, w.Circles[i].Friction, w.Circles[j].Friction, results[idx:idx+1])
		}
	}

	for i, b := range p.resolveBody {
		w.Circles[i].Position = b.Position
		w.Circles[i].OldPosition = b.OldPosition
	}

	for _, res := range results {
		w.Log.AppendCollision(event.CollisionEvent{
			Step:             w.Step,
			I:                res.Contact.I,
			J:                res.Contact.J,
			Normal:           res.Contact.Normal,
			Penetration:      res.Contact.Penetration,
			Contact:          res.Contact.Contact,
			NormalVelocity:   res.NormalVelocity,
			ImpulseMagnitude: res.ImpulseMagnitude,
		})
	}

	for i := range w.Circles {
		p.positions[i] = w.Circles[i].Position
	}
	for zi, z := range p.zones {
		proxEvents := proximity.Update(zi, z, p.positions, p.radii, p.proxEvents[:0])
		p.proxEvents = proxEvents
		for _, pe := range proxEvents {
			w.Log.AppendProximity(event.ProximityEvent{
				Step:      w.Step,
				ZoneIndex: pe.ZoneIndex,
				Body:      pe.Body,
				Kind:      event.ProximityKind(pe.Kind),
			})
		}
	}

	w.Step++
}
