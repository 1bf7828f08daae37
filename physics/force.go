package physics

import (
	"github.com/determinisk/kernel/scalar"
	"github.com/determinisk/kernel/vec2"
)

// accumulateForces fills w.forces following the normative order of
// spec §4.3: gravity first in index order, then springs in declared
// order (Newton's third law), then fields in declared order × body
// index order. Fixed-point addition is not associative under wrapping,
// so this order is load-bearing for determinism.
func (w *World) accumulateForces() {
	for i := range w.forces {
		w.forces[i] = w.Gravity.Scale(w.Circles[i].Mass)
	}

	for _, s := range w.Springs {
		ci, cj := w.Circles[s.A], w.Circles[s.B]
		delta := cj.Position.Sub(ci.Position)
		dist := delta.Magnitude()
		if dist == scalar.Zero {
			continue // degenerate spring contributes zero, spec §4.3
		}
		dir := delta.Div(dist)
		vi := ci.Velocity(w.Dt)
		vj := cj.Velocity(w.Dt)
		vRel := vj.Sub(vi)

		stretch := dist.Sub(s.RestLength)
		dampingTerm := s.DampingCoef.Mul(vRel.Dot(delta)).Div(dist)
		magnitude := s.Stiffness.Mul(stretch).Add(dampingTerm)
		f := dir.Scale(magnitude)

		w.forces[s.B] = w.forces[s.B].Add(f)
		w.forces[s.A] = w.forces[s.A].Sub(f)
	}

	for _, fd := range w.Fields {
		w.applyField(fd)
	}
}

func (w *World) applyField(f Field) {
	for i := range w.Circles {
		c := &w.Circles[i]
		switch f.Kind {
		case FieldGravity:
			if f.HasPosition && f.Range != scalar.Zero && !withinRange(c.Position, f.Position, f.Range) {
				continue
			}
			w.forces[i] = w.forces[i].Add(vec2.Vec2{Y: f.Strength}.Scale(c.Mass))

		case FieldPointAttractor, FieldPointRepulsor:
			if !f.HasPosition {
				continue
			}
			delta := c.Position.Sub(f.Position)
			dSq := delta.MagnitudeSquared()
			if f.Range != scalar.Zero && !withinRange(c.Position, f.Position, f.Range) {
				continue
			}
			denom := dSq
			if denom.LessThan(epsilon) {
				denom = epsilon
			}
			d := dSq.Sqrt()
			var dir vec2.Vec2
			if d == scalar.Zero {
				continue
			}
			dir = delta.Div(d)
			if f.Kind == FieldPointAttractor {
				dir = dir.Neg()
			}
			magnitude := f.Strength.Mul(c.Mass).Div(denom)
			w.forces[i] = w.forces[i].Add(dir.Scale(magnitude))

		case FieldVortex:
			if !f.HasPosition {
				continue
			}
			delta := c.Position.Sub(f.Position)
			if f.Range != scalar.Zero && !withinRange(c.Position, f.Position, f.Range) {
				continue
			}
			d := delta.Magnitude()
			if d == scalar.Zero {
				continue
			}
			dir := delta.Div(d).Perp()
			w.forces[i] = w.forces[i].Add(dir.Scale(f.Strength.Mul(c.Mass)))

		case FieldDamping:
			v := c.Velocity(w.Dt)
			w.forces[i] = w.forces[i].Sub(v.Scale(f.Strength.Mul(c.Mass)))
		}
	}
}

func withinRange(pos, center vec2.Vec2, r scalar.Scalar) bool {
	d := pos.Sub(center).Magnitude()
	return d.Cmp(r) <= 0
}
