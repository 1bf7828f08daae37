// Package narrowphase implements the exact circle-circle overlap test
// of spec §4.7, run over the pair-sorted candidate list from package
// grid.
package narrowphase

import (
	"github.com/determinisk/kernel/physics/grid"
	"github.com/determinisk/kernel/scalar"
	"github.com/determinisk/kernel/vec2"
)

// Contact is a confirmed circle-circle overlap.
type Contact struct {
	I, J        int
	Normal      vec2.Vec2 // unit vector from I to J
	Penetration scalar.Scalar
	Contact     vec2.Vec2
}

// Detect runs the exact overlap test over pairs, in pair order,
// appending confirmed contacts to out. Degenerate pairs (d² = 0, i.e.
// coincident centres) are skipped rather than treated as overlapping.
func Detect(positions []vec2.Vec2, radii []scalar.Scalar, pairs []grid.Pair, out []Contact) []Contact {
	out = out[:0]
	for _, p := range pairs {
		delta := positions[p.J].Sub(positions[p.I])
		dSq := delta.MagnitudeSquared()
		sum := radii[p.I].Add(radii[p.J])
		sumSq := sum.Mul(sum)

		if dSq.Cmp(sumSq) >= 0 || dSq == scalar.Zero {
			continue
		}

		d := dSq.Sqrt()
		normal := delta.Div(d)
		penetration := sum.Sub(d)
		contact := positions[p.I].Add(normal.Scale(radii[p.I]))

		out = append(out, Contact{
			I:           p.I,
			J:           p.J,
			Normal:      normal,
			Penetration: penetration,
			Contact:     contact,
		})
	}
	return out
}
