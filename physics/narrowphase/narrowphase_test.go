package narrowphase

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/determinisk/kernel/physics/grid"
	"github.com/determinisk/kernel/scalar"
	"github.com/determinisk/kernel/vec2"
)

func sc(f float32) scalar.Scalar { return scalar.FromFloat32(f) }

// requireNear compares two Scalars within a tolerance, accounting for
// Sqrt's Newton-Raphson approximation rather than demanding bit-exact
// equality.
func requireNear(t *testing.T, want, got scalar.Scalar, tolerance float32) {
	t.Helper()
	diff := want.Sub(got).Abs().ToFloat32()
	require.LessOrEqual(t, diff, tolerance, "want %v, got %v", want, got)
}

func TestDetectFindsOverlap(t *testing.T) {
	positions := []vec2.Vec2{
		vec2.New(sc(0), sc(0)),
		vec2.New(sc(1.5), sc(0)),
	}
	radii := []scalar.Scalar{sc(1.0), sc(1.0)}
	pairs := []grid.Pair{{I: 0, J: 1}}

	contacts := Detect(positions, radii, pairs, nil)
	require.Len(t, contacts, 1)
	c := contacts[0]
	require.Equal(t, 0, c.I)
	require.Equal(t, 1, c.J)
	require.True(t, c.Penetration.Cmp(scalar.Zero) > 0)
	requireNear(t, scalar.One, c.Normal.X, 0.01)
	requireNear(t, scalar.Zero, c.Normal.Y, 0.01)
}

func TestDetectSkipsNonOverlapping(t *testing.T) {
	positions := []vec2.Vec2{
		vec2.New(sc(0), sc(0)),
		vec2.New(sc(5), sc(0)),
	}
	radii := []scalar.Scalar{sc(1.0), sc(1.0)}
	pairs := []grid.Pair{{I: 0, J: 1}}

	contacts := Detect(positions, radii, pairs, nil)
	require.Empty(t, contacts)
}

func TestDetectSkipsCoincidentCentres(t *testing.T) {
	positions := []vec2.Vec2{
		vec2.New(sc(2), sc(2)),
		vec2.New(sc(2), sc(2)),
	}
	radii := []scalar.Scalar{sc(1.0), sc(1.0)}
	pairs := []grid.Pair{{I: 0, J: 1}}

	contacts := Detect(positions, radii, pairs, nil)
	require.Empty(t, contacts)
}

func TestDetectExactTangency(t *testing.T) {
	positions := []vec2.Vec2{
		vec2.New(sc(0), sc(0)),
		vec2.New(sc(2), sc(0)),
	}
	radii := []scalar.Scalar{sc(1.0), sc(1.0)}
	pairs := []grid.Pair{{I: 0, J: 1}}

	// d == sum of radii exactly: d^2 >= sum^2, so no contact is reported.
	contacts := Detect(positions, radii, pairs, nil)
	require.Empty(t, contacts)
}

func TestDetectContactPointLiesOnSurfaceOfI(t *testing.T) {
	positions := []vec2.Vec2{
		vec2.New(sc(0), sc(0)),
		vec2.New(sc(1), sc(0)),
	}
	radii := []scalar.Scalar{sc(1.0), sc(1.0)}
	pairs := []grid.Pair{{I: 0, J: 1}}

	contacts := Detect(positions, radii, pairs, nil)
	require.Len(t, contacts, 1)
	requireNear(t, scalar.One, contacts[0].Contact.X, 0.01)
	requireNear(t, scalar.Zero, contacts[0].Contact.Y, 0.01)
}

func TestDetectPreservesPairOrder(t *testing.T) {
	positions := []vec2.Vec2{
		vec2.New(sc(0), sc(0)),
		vec2.New(sc(0.5), sc(0)),
		vec2.New(sc(1.0), sc(0)),
	}
	radii := []scalar.Scalar{sc(1.0), sc(1.0), sc(1.0)}
	pairs := []grid.Pair{{I: 0, J: 1}, {I: 1, J: 2}, {I: 0, J: 2}}

	contacts := Detect(positions, radii, pairs, nil)
	require.Len(t, contacts, 3)
	require.Equal(t, [2]int{0, 1}, [2]int{contacts[0].I, contacts[0].J})
	require.Equal(t, [2]int{1, 2}, [2]int{contacts[1].I, contacts[1].J})
	require.Equal(t, [2]int{0, 2}, [2]int{contacts[2].I, contacts[2].J})
}
