package grid

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/determinisk/kernel/scalar"
	"github.com/determinisk/kernel/vec2"
)

func sc(f float32) scalar.Scalar { return scalar.FromFloat32(f) }

func TestBuildFindsOverlappingPair(t *testing.T) {
	g := New(4, 4, sc(1.0), 2)
	positions := []vec2.Vec2{
		vec2.New(sc(0.5), sc(0.5)),
		vec2.New(sc(0.8), sc(0.5)),
	}
	radii := []scalar.Scalar{sc(0.3), sc(0.3)}

	pairs := g.Build(positions, radii, nil)
	require.Equal(t, []Pair{{I: 0, J: 1}}, pairs)
}

func TestBuildSkipsFarBodies(t *testing.T) {
	g := New(8, 8, sc(1.0), 2)
	positions := []vec2.Vec2{
		vec2.New(sc(0.5), sc(0.5)),
		vec2.New(sc(6.5), sc(6.5)),
	}
	radii := []scalar.Scalar{sc(0.2), sc(0.2)}

	pairs := g.Build(positions, radii, nil)
	require.Empty(t, pairs)
}

func TestBuildOutputIsSortedByIJ(t *testing.T) {
	g := New(2, 2, sc(2.0), 4)
	positions := []vec2.Vec2{
		vec2.New(sc(1.0), sc(1.0)),
		vec2.New(sc(1.1), sc(1.0)),
		vec2.New(sc(1.0), sc(1.1)),
		vec2.New(sc(1.1), sc(1.1)),
	}
	radii := []scalar.Scalar{sc(0.5), sc(0.5), sc(0.5), sc(0.5)}

	pairs := g.Build(positions, radii, nil)
	require.True(t, len(pairs) > 1)
	for k := 1; k < len(pairs); k++ {
		prev, cur := pairs[k-1], pairs[k]
		require.True(t, prev.I < cur.I || (prev.I == cur.I && prev.J < cur.J))
	}
}

func TestBuildNoDuplicatePairs(t *testing.T) {
	g := New(2, 2, sc(2.0), 3)
	positions := []vec2.Vec2{
		vec2.New(sc(1.0), sc(1.0)),
		vec2.New(sc(1.1), sc(1.0)),
		vec2.New(sc(1.0), sc(1.1)),
	}
	radii := []scalar.Scalar{sc(0.5), sc(0.5), sc(0.5)}

	pairs := g.Build(positions, radii, nil)
	seen := map[Pair]bool{}
	for _, p := range pairs {
		require.False(t, seen[p], "duplicate pair %v", p)
		seen[p] = true
	}
}

func TestBuildFindsOverlapSpanningDistinctCentreCells(t *testing.T) {
	// Bodies' centres fall in different cells under cellSize=2 ((5.5,5)
	// is in cell (2,2), (7.0,5) is in cell (3,2)), but their bounding
	// boxes still overlap: distance 1.5 < sum of radii 2.0. No single
	// cell contains both centres, so a dedup rule keyed on the
	// minimum-index body's own centre cell would emit this pair from
	// no cell at all.
	g := New(8, 8, sc(2.0), 2)
	positions := []vec2.Vec2{
		vec2.New(sc(5.5), sc(5)),
		vec2.New(sc(7.0), sc(5)),
	}
	radii := []scalar.Scalar{sc(1.0), sc(1.0)}

	pairs := g.Build(positions, radii, nil)
	require.Equal(t, []Pair{{I: 0, J: 1}}, pairs)
}

func TestBuildIsDeterministicAcrossCalls(t *testing.T) {
	g := New(4, 4, sc(1.0), 3)
	positions := []vec2.Vec2{
		vec2.New(sc(0.5), sc(0.5)),
		vec2.New(sc(0.7), sc(0.5)),
		vec2.New(sc(0.6), sc(0.7)),
	}
	radii := []scalar.Scalar{sc(0.3), sc(0.3), sc(0.3)}

	first := append([]Pair(nil), g.Build(positions, radii, nil)...)
	second := g.Build(positions, radii, nil)
	require.Equal(t, first, second)
}
