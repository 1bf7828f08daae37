// Package resolve implements the single-pass sequential-impulse solver
// of spec §4.8: a normal impulse (expressed as a movement of each
// body's old position, preserving the Verlet invariant) plus a
// Baumgarte positional correction, processed in pair-sorted order.
package resolve

import (
	"github.com/determinisk/kernel/physics/narrowphase"
	"github.com/determinisk/kernel/scalar"
	"github.com/determinisk/kernel/vec2"
)

// baumgarte is the fixed positional-correction slack factor. Spec §4.8
// fixes this at 0.8, not the reference prototype's configurable 0.4.
var baumgarte = scalar.FromFloat32(0.8)

// Body is the minimal per-body state the resolver needs: positions
// (mutated in place), mass and restitution. It is intentionally
// decoupled from physics.Circle so this package has no dependency on
// package physics.
type Body struct {
	Position    vec2.Vec2
	OldPosition vec2.Vec2
	Mass        scalar.Scalar
	Restitution scalar.Scalar
}

// Result records what happened for one contact, for event emission.
type Result struct {
	Contact          narrowphase.Contact
	NormalVelocity   scalar.Scalar
	ImpulseMagnitude scalar.Scalar
	Separating       bool
}

// Resolve processes contacts in the order given (pair-sorted, per spec
// §4.8) and mutates bodies in place. It returns one Result per contact,
// in the same order, for the caller to turn into collision events.
func Resolve(bodies []Body, dt scalar.Scalar, contacts []narrowphase.Contact, out []Result) []Result {
	out = out[:0]
	for _, c := range contacts {
		a, b := &bodies[c.I], &bodies[c.J]

		vi := a.Position.Sub(a.OldPosition).Div(dt)
		vj := b.Position.Sub(b.OldPosition).Div(dt)
		vRel := vj.Sub(vi)
		vn := vRel.Dot(c.Normal)

		res := Result{Contact: c, NormalVelocity: vn}

		if vn.Cmp(scalar.Zero) < 0 {
			e := a.Restitution.Add(b.Restitution).Div(scalar.Two)
			invMassA := scalar.One.Div(a.Mass)
			invMassB := scalar.One.Div(b.Mass)
			impulse := scalar.Zero.Sub(scalar.One.Add(e).Mul(vn)).Div(invMassA.Add(invMassB))

			a.OldPosition = a.OldPosition.Add(c.Normal.Scale(impulse.Mul(invMassA)).Scale(dt))
			b.OldPosition = b.OldPosition.Sub(c.Normal.Scale(impulse.Mul(invMassB)).Scale(dt))

			res.ImpulseMagnitude = impulse
		} else {
			res.Separating = true
		}

		massSum := a.Mass.Add(b.Mass)
		corr := c.Normal.Scale(baumgarte.Mul(c.Penetration))
		a.Position = a.Position.Sub(corr.Scale(b.Mass.Div(massSum)))
		b.Position = b.Position.Add(corr.Scale(a.Mass.Div(massSum)))

		out = append(out, res)
	}
	return out
}
