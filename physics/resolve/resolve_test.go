package resolve

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/determinisk/kernel/physics/narrowphase"
	"github.com/determinisk/kernel/scalar"
	"github.com/determinisk/kernel/vec2"
)

func sc(f float32) scalar.Scalar { return scalar.FromFloat32(f) }

// bodyMovingRight builds a Body whose implicit velocity is (vx, 0).
func bodyMovingRight(x, vx, dt float32) Body {
	return Body{
		Position:    vec2.New(sc(x), sc(0)),
		OldPosition: vec2.New(sc(x).Sub(sc(vx).Mul(sc(dt))), sc(0)),
		Mass:        sc(1.0),
		Restitution: sc(1.0),
	}
}

func TestResolveSeparatesApproachingEqualMassBodies(t *testing.T) {
	dt := float32(0.016)
	bodies := []Body{
		bodyMovingRight(0, 1.0, dt),
		bodyMovingRight(1.5, -1.0, dt),
	}
	contact := narrowphase.Contact{
		I: 0, J: 1,
		Normal:      vec2.New(scalar.One, scalar.Zero),
		Penetration: sc(0.5),
		Contact:     vec2.New(sc(0.75), sc(0)),
	}

	results := Resolve(bodies, sc(dt), []narrowphase.Contact{contact}, nil)
	require.Len(t, results, 1)
	require.False(t, results[0].Separating)
	require.True(t, results[0].NormalVelocity.Cmp(scalar.Zero) < 0)
	// Perfectly elastic, equal mass: impulse magnitude should be positive.
	require.True(t, results[0].ImpulseMagnitude.Cmp(scalar.Zero) > 0)
}

func TestResolveSkipsImpulseWhenSeparating(t *testing.T) {
	dt := float32(0.016)
	bodies := []Body{
		bodyMovingRight(0, -1.0, dt), // moving away from the other body
		bodyMovingRight(1.0, 1.0, dt),
	}
	contact := narrowphase.Contact{
		I: 0, J: 1,
		Normal:      vec2.New(scalar.One, scalar.Zero),
		Penetration: sc(0.2),
		Contact:     vec2.New(sc(0.5), sc(0)),
	}

	before := bodies[0].OldPosition
	results := Resolve(bodies, sc(dt), []narrowphase.Contact{contact}, nil)
	require.Len(t, results, 1)
	require.True(t, results[0].Separating)
	require.Equal(t, scalar.Zero, results[0].ImpulseMagnitude)
	// OldPosition is untouched when separating — only position gets
	// the Baumgarte correction.
	require.Equal(t, before, bodies[0].OldPosition)
}

func TestResolveAppliesPositionalCorrectionEvenWhenSeparating(t *testing.T) {
	dt := float32(0.016)
	bodies := []Body{
		bodyMovingRight(0, -1.0, dt),
		bodyMovingRight(1.0, 1.0, dt),
	}
	contact := narrowphase.Contact{
		I: 0, J: 1,
		Normal:      vec2.New(scalar.One, scalar.Zero),
		Penetration: sc(0.2),
		Contact:     vec2.New(sc(0.5), sc(0)),
	}
	beforeA, beforeB := bodies[0].Position, bodies[1].Position

	Resolve(bodies, sc(dt), []narrowphase.Contact{contact}, nil)
	require.NotEqual(t, beforeA, bodies[0].Position)
	require.NotEqual(t, beforeB, bodies[1].Position)
}

func TestResolvePreservesMomentumDirectionForEqualMass(t *testing.T) {
	dt := float32(0.016)
	bodies := []Body{
		bodyMovingRight(0, 2.0, dt),
		bodyMovingRight(1.0, 0.0, dt),
	}
	contact := narrowphase.Contact{
		I: 0, J: 1,
		Normal:      vec2.New(scalar.One, scalar.Zero),
		Penetration: sc(0.1),
		Contact:     vec2.New(sc(0.5), sc(0)),
	}

	Resolve(bodies, sc(dt), []narrowphase.Contact{contact}, nil)
	// B was stationary and gets pushed along +X; A recoils along -X.
	vA := bodies[0].Position.Sub(bodies[0].OldPosition)
	vB := bodies[1].Position.Sub(bodies[1].OldPosition)
	require.True(t, vB.X.Cmp(scalar.Zero) > 0)
	require.True(t, vA.X.Cmp(vB.X) < 0)
}
