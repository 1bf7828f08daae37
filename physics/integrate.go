package physics

import "github.com/determinisk/kernel/scalar"

// integrate advances every body by one step of position-Verlet
// integration (spec §4.4). The "2*" factor is applied as a Scalar
// multiplication by scalar.Two, never a left shift, to preserve
// wrapping semantics consistently with every other multiplication.
func (w *World) integrate() {
	dtSq := w.Dt.Mul(w.Dt)
	for i := range w.Circles {
		c := &w.Circles[i]
		accel := w.forces[i].Div(c.Mass)
		next := c.Position.Scale(scalar.Two).Sub(c.OldPosition).Add(accel.Scale(dtSq))

		if w.Damping.Cmp(scalar.Zero) > 0 {
			vImplicit := next.Sub(c.OldPosition)
			next = next.Sub(vImplicit.Scale(w.Damping))
		}

		c.OldPosition = c.Position
		c.Position = next
	}
}
