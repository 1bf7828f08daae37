// Package proximity implements zone enter/exit/stay tracking. It is
// deliberately decoupled from package physics: zone state is keyed by
// body index via a bitset-backed membership set, not by id string,
// since hash-based membership sets would make iteration order
// nondeterministic.
package proximity

import (
	"github.com/determinisk/kernel/internal/algoutils"
	"github.com/determinisk/kernel/scalar"
	"github.com/determinisk/kernel/vec2"
)

// EventKind distinguishes the three event flavours a zone can emit.
type EventKind int

const (
	Enter EventKind = iota
	Exit
	Stay
)

// Event is one zone transition for one body.
type Event struct {
	ZoneIndex int
	Body      int
	Kind      EventKind
}

// Zone carries the declared radius/owner plus its own membership
// bitset, allocated once per zone at construction and reused every
// step.
type Zone struct {
	Owner      int
	Radius     scalar.Scalar
	StayEvents bool
	membership *algoutils.MembershipSet
}

// NewZone allocates a Zone able to track membership over numBodies.
func NewZone(owner int, radius scalar.Scalar, stayEvents bool, numBodies int) *Zone {
	return &Zone{Owner: owner, Radius: radius, StayEvents: stayEvents, membership: algoutils.NewMembershipSet(numBodies)}
}

// Update recomputes one zone's membership against the current body
// positions/radii and appends Enter/Exit/Stay events to out, in the
// order mandated by spec §4.9: all Enters in body-index order, then all
// Exits in the previous set's (ascending) body-index order.
func Update(zoneIdx int, zone *Zone, positions []vec2.Vec2, radii []scalar.Scalar, out []Event) []Event {
	owner := zone.Owner
	prev := zone.membership.Clone()
	zone.membership.Clear()

	for i := range positions {
		if i == owner {
			continue
		}
		d := positions[i].Sub(positions[owner]).Magnitude()
		threshold := zone.Radius.Add(radii[i])
		inside := d.Cmp(threshold) < 0
		if inside {
			zone.membership.Add(i)
		}
	}

	for i := range positions {
		if i == owner {
			continue
		}
		if zone.membership.Has(i) && !prev.Has(i) {
			out = append(out, Event{ZoneIndex: zoneIdx, Body: i, Kind: Enter})
		}
	}
	prev.Each(func(i int) {
		if !zone.membership.Has(i) {
			out = append(out, Event{ZoneIndex: zoneIdx, Body: i, Kind: Exit})
		} else if zone.StayEvents {
			out = append(out, Event{ZoneIndex: zoneIdx, Body: i, Kind: Stay})
		}
	})

	return out
}
