package physics

import (
	"github.com/determinisk/kernel/event"
	"github.com/determinisk/kernel/scalar"
)

// applyBoundary processes every body in index order, x axis before y,
// per spec §4.5. Solid walls reflect the implicit velocity and emit an
// event tagged with the pre-reflect normal velocity component; Periodic
// wraps both position and old_position by the same delta so implicit
// velocity survives the wrap; Open does nothing.
func (w *World) applyBoundary() {
	switch w.Boundary.Kind {
	case BoundaryOpen:
		return
	case BoundaryPeriodic:
		for i := range w.Circles {
			w.wrapAxisX(i)
			w.wrapAxisY(i)
		}
	case BoundarySolid:
		for i := range w.Circles {
			w.solidAxisX(i)
			w.solidAxisY(i)
		}
	}
}

func (w *World) solidAxisX(i int) {
	c := &w.Circles[i]
	e := w.Boundary.Restitution
	if c.Position.X.Sub(c.Radius).Cmp(scalar.Zero) < 0 {
		impact := c.Position.X.Sub(c.OldPosition.X).Div(w.Dt)
		c.Position.X = c.Radius
		c.OldPosition.X = c.Position.X.Add(c.Position.X.Sub(c.OldPosition.X).Mul(e))
		w.Log.AppendBoundary(event.BoundaryEvent{Step: w.Step, Body: i, Side: event.Left, ImpactVelocity: impact})
		return
	}
	if c.Position.X.Add(c.Radius).Cmp(w.Bounds.X) > 0 {
		impact := c.Position.X.Sub(c.OldPosition.X).Div(w.Dt)
		c.Position.X = w.Bounds.X.Sub(c.Radius)
		c.OldPosition.X = c.Position.X.Add(c.Position.X.Sub(c.OldPosition.X).Mul(e))
		w.Log.AppendBoundary(event.BoundaryEvent{Step: w.Step, Body: i, Side: event.Right, ImpactVelocity: impact})
	}
}

func (w *World) solidAxisY(i int) {
	c := &w.Circles[i]
	e := w.Boundary.Restitution
	if c.Position.Y.Sub(c.Radius).Cmp(scalar.Zero) < 0 {
		impact := c.Position.Y.Sub(c.OldPosition.Y).Div(w.Dt)
		c.Position.Y = c.Radius
		c.OldPosition.Y = c.Position.Y.Add(c.Position.Y.Sub(c.OldPosition.Y).Mul(e))
		w.Log.AppendBoundary(event.BoundaryEvent{Step: w.Step, Body: i, Side: event.Bottom, ImpactVelocity: impact})
		return
	}
	if c.Position.Y.Add(c.Radius).Cmp(w.Bounds.Y) > 0 {
		impact := c.Position.Y.Sub(c.OldPosition.Y).Div(w.Dt)
		c.Position.Y = w.Bounds.Y.Sub(c.Radius)
		c.OldPosition.Y = c.Position.Y.Add(c.Position.Y.Sub(c.OldPosition.Y).Mul(e))
		w.Log.AppendBoundary(event.BoundaryEvent{Step: w.Step, Body: i, Side: event.Top, ImpactVelocity: impact})
	}
}

func (w *World) wrapAxisX(i int) {
	c := &w.Circles[i]
	wrapped := euclideanMod(c.Position.X, w.Bounds.X)
	delta := wrapped.Sub(c.Position.X)
	c.Position.X = wrapped
	c.OldPosition.X = c.OldPosition.X.Add(delta)
}

func (w *World) wrapAxisY(i int) {
	c := &w.Circles[i]
	wrapped := euclideanMod(c.Position.Y, w.Bounds.Y)
	delta := wrapped.Sub(c.Position.Y)
	c.Position.Y = wrapped
	c.OldPosition.Y = c.OldPosition.Y.Add(delta)
}

// euclideanMod returns a non-negative remainder of a mod m, per spec
// §4.5's "Euclidean remainder".
func euclideanMod(a, m scalar.Scalar) scalar.Scalar {
	r := a.Bits() % m.Bits()
	if r < 0 {
		r += m.Bits()
	}
	return scalar.FromBits(r)
}
