package resolve

import (
	"github.com/determinisk/kernel/scalar"
)

// TangentialDrag applies an opt-in Coulomb-capped tangential impulse
// after the normal-impulse pass, in the same pair order. It is never
// called unless a World explicitly enables friction (SPEC_FULL.md,
// Resolver module); every concrete scenario in spec.md §8 leaves it
// off, and the normal-impulse result above is unaffected by its
// presence or absence.
func TangentialDrag(bodies []Body, dt scalar.Scalar, frictionA, frictionB scalar.Scalar, results []Result) {
	for _, res := range results {
		if res.Separating {
			continue
		}
		c := res.Contact
		a, b := &bodies[c.I], &bodies[c.J]

		tangent := c.Normal.Perp()
		vi := a.Position.Sub(a.OldPosition).Div(dt)
		vj := b.Position.Sub(b.OldPosition).Div(dt)
		vRel := vj.Sub(vi)
		vt := vRel.Dot(tangent)

		mu := frictionA.Add(frictionB).Div(scalar.Two)
		invMassA := scalar.One.Div(a.Mass)
		invMassB := scalar.One.Div(b.Mass)

		jt := scalar.Zero.Sub(vt).Div(invMassA.Add(invMassB))
		maxJt := mu.Mul(res.ImpulseMagnitude.Abs())
		if jt.Abs().Cmp(maxJt) > 0 {
			if jt.Cmp(scalar.Zero) < 0 {
				jt = maxJt.Neg()
			} else {
				jt = maxJt
			}
		}

		a.OldPosition = a.OldPosition.Add(tangent.Scale(jt.Mul(invMassA)).Scale(dt))
		b.OldPosition = b.OldPosition.Sub(tangent.Scale(jt.Mul(invMassB)).Scale(dt))
	}
}
