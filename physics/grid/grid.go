// Package grid implements the uniform spatial broadphase of spec §4.6:
// a fresh grid is built every step from post-integration positions, and
// candidate pairs are enumerated in a canonical, deterministic order.
package grid

import (
	"sort"

	"github.com/determinisk/kernel/internal/algoutils"
	"github.com/determinisk/kernel/scalar"
	"github.com/determinisk/kernel/vec2"
)

// Pair is an unordered candidate pair of body indices, always emitted
// with I < J.
type Pair struct{ I, J int }

// Grid is a reusable uniform grid. Its cell lists are preallocated and
// reused across Build calls (only their length is reset, never their
// backing array's capacity once warmed up), so that Build performs no
// allocation once steady state is reached — the zkVM guest constraint
// of spec §5.
type Grid struct {
	width, height int
	cellSize      scalar.Scalar
	cells         [][]int32 // indexed row-major: y*width + x
	dedup         *algoutils.PairSet
}

// New allocates a Grid sized for a world with the given bounds, cell
// size and body count. width and height must already be clamped to >=1
// by the caller (spec §4.6: "clamped to >= 1").
func New(width, height int, cellSize scalar.Scalar, numBodies int) *Grid {
	cells := make([][]int32, width*height)
	for i := range cells {
		cells[i] = make([]int32, 0, 4)
	}
	return &Grid{
		width:    width,
		height:   height,
		cellSize: cellSize,
		cells:    cells,
		dedup:    algoutils.NewPairSet(numBodies),
	}
}

func (g *Grid) cellIndex(cx, cy int) int { return cy*g.width + cx }

func (g *Grid) clampCell(c int, max int) int {
	if c < 0 {
		return 0
	}
	if c >= max {
		return max - 1
	}
	return c
}

// Build inserts every body into every cell its bounding box touches,
// and returns the sorted, deduplicated candidate pair list (spec §4.6).
// positions and radii must be parallel slices indexed by body index.
// out is reused as scratch for the returned pair list.
func (g *Grid) Build(positions []vec2.Vec2, radii []scalar.Scalar, out []Pair) []Pair {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
	g.dedup.Reset()

	for i, pos := range positions {
		r := radii[i]
		minX := pos.X.Sub(r).Div(g.cellSize).Int()
		maxX := pos.X.Add(r).Div(g.cellSize).Int()
		minY := pos.Y.Sub(r).Div(g.cellSize).Int()
		maxY := pos.Y.Add(r).Div(g.cellSize).Int()

		minXc := g.clampCell(int(minX), g.width)
		maxXc := g.clampCell(int(maxX), g.width)
		minYc := g.clampCell(int(minY), g.height)
		maxYc := g.clampCell(int(maxY), g.height)

		for cy := minYc; cy <= maxYc; cy++ {
			for cx := minXc; cx <= maxXc; cx++ {
				idx := g.cellIndex(cx, cy)
				g.cells[idx] = append(g.cells[idx], int32(i))
			}
		}
	}

	out = out[:0]
	// Row-major cell iteration; within a cell, every ordered pair with
	// list position of i < list position of j. A pair spanning several
	// shared cells would otherwise be emitted once per shared cell; the
	// dedup bitset collapses that down to exactly one emission per pair,
	// regardless of how many cells the two bodies' bounding boxes share.
	// It is only ever consulted for membership, never iterated, so its
	// internal order cannot influence which pairs are produced.
	for cy := 0; cy < g.height; cy++ {
		for cx := 0; cx < g.width; cx++ {
			list := g.cells[g.cellIndex(cx, cy)]
			for a := 0; a < len(list); a++ {
				for b := a + 1; b < len(list); b++ {
					i, j := list[a], list[b]
					if i > j {
						i, j = j, i
					}
					if g.dedup.TestAndSet(int(i), int(j)) {
						continue
					}
					out = append(out, Pair{I: int(i), J: int(j)})
				}
			}
		}
	}

	sort.Slice(out, func(a, b int) bool {
		if out[a].I != out[b].I {
			return out[a].I < out[b].I
		}
		return out[a].J < out[b].J
	})
	return out
}
