package codec

import (
	"crypto/sha256"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/determinisk/kernel/physics"
	"github.com/determinisk/kernel/scalar"
	"github.com/determinisk/kernel/vec2"
)

func sc(f float32) scalar.Scalar { return scalar.FromFloat32(f) }

func buildWorld(ids []string, positions []vec2.Vec2) *physics.World {
	circles := make([]physics.Circle, len(ids))
	for i, pos := range positions {
		circles[i] = physics.Circle{
			Position:    pos,
			OldPosition: pos,
			Radius:      sc(0.5),
			Mass:        sc(1.0),
			Restitution: sc(0.5),
			Friction:    sc(0.1),
		}
	}
	bounds := vec2.New(sc(20), sc(20))
	return physics.NewWorld(bounds, vec2.Zero, scalar.Zero, sc(0.016),
		physics.Boundary{Kind: physics.BoundarySolid, Restitution: sc(0.5)},
		circles, ids, nil, nil, nil)
}

func TestEncodeDecodeRoundTripCore(t *testing.T) {
	w := buildWorld([]string{"a", "b"}, []vec2.Vec2{
		vec2.New(sc(1), sc(2)),
		vec2.New(sc(3), sc(4)),
	})

	encoded := Encode(w, ScopeCore)
	decoded, err := Decode(encoded, ScopeCore, w.Bounds, w.Gravity, w.Damping, w.Dt, w.Boundary, nil, nil, nil)
	require.NoError(t, err)

	require.Equal(t, Encode(decoded, ScopeCore), encoded)
}

func TestEncodeDecodeRoundTripWithRestitutionFriction(t *testing.T) {
	w := buildWorld([]string{"a"}, []vec2.Vec2{vec2.New(sc(5), sc(5))})

	encoded := Encode(w, ScopeRestitutionFriction)
	decoded, err := Decode(encoded, ScopeRestitutionFriction, w.Bounds, w.Gravity, w.Damping, w.Dt, w.Boundary, nil, nil, nil)
	require.NoError(t, err)
	require.True(t, cmp.Equal(decoded.Circles[0].Restitution, w.Circles[0].Restitution))
	require.True(t, cmp.Equal(decoded.Circles[0].Friction, w.Circles[0].Friction))
}

func TestHashIsDeterministic(t *testing.T) {
	w1 := buildWorld([]string{"a", "b"}, []vec2.Vec2{vec2.New(sc(1), sc(1)), vec2.New(sc(2), sc(2))})
	w2 := buildWorld([]string{"a", "b"}, []vec2.Vec2{vec2.New(sc(1), sc(1)), vec2.New(sc(2), sc(2))})

	require.Equal(t, Hash(w1, ScopeCore), Hash(w2, ScopeCore))
}

func TestHashChangesWithPosition(t *testing.T) {
	w1 := buildWorld([]string{"a"}, []vec2.Vec2{vec2.New(sc(1), sc(1))})
	w2 := buildWorld([]string{"a"}, []vec2.Vec2{vec2.New(sc(1.1), sc(1))})

	require.NotEqual(t, Hash(w1, ScopeCore), Hash(w2, ScopeCore))
}

func TestHashIsOverEncodeNotOverPersistedForm(t *testing.T) {
	w := buildWorld([]string{"a"}, []vec2.Vec2{vec2.New(sc(1), sc(1))})
	w.Step = 7

	require.Equal(t, sha256.Sum256(Encode(w, ScopeCore)), Hash(w, ScopeCore))
	require.NotEqual(t, sha256.Sum256(Persist(w, ScopeCore)), Hash(w, ScopeCore))
}

func TestDecodeTruncatedDataErrors(t *testing.T) {
	_, err := Decode([]byte{0, 0}, ScopeCore, vec2.Zero, vec2.Zero, scalar.Zero, scalar.One, physics.Boundary{}, nil, nil, nil)
	require.ErrorIs(t, err, ErrTruncated)
}

func TestPersistAppendsStepCounter(t *testing.T) {
	w := buildWorld([]string{"a"}, []vec2.Vec2{vec2.New(sc(1), sc(1))})
	w.Step = 42

	persisted := Persist(w, ScopeCore)
	core := Encode(w, ScopeCore)
	require.Equal(t, core, persisted[:len(core)])
	require.Len(t, persisted, len(core)+8)
}

func TestEncodeBodyCountProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30

	properties := gopter.NewProperties(parameters)
	properties.Property("Encode's leading 4 bytes equal the body count", prop.ForAll(
		func(n int) bool {
			ids := make([]string, n)
			positions := make([]vec2.Vec2, n)
			for i := 0; i < n; i++ {
				ids[i] = string(rune('a' + i))
				positions[i] = vec2.New(sc(float32(i)), sc(float32(i)))
			}
			w := buildWorld(ids, positions)
			encoded := Encode(w, ScopeCore)
			count := uint32(encoded[0])<<24 | uint32(encoded[1])<<16 | uint32(encoded[2])<<8 | uint32(encoded[3])
			return int(count) == n
		},
		gen.IntRange(0, 10),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestDebugSnapshotRoundTrip(t *testing.T) {
	w := buildWorld([]string{"a", "b"}, []vec2.Vec2{vec2.New(sc(1), sc(2)), vec2.New(sc(3), sc(4))})
	w.Circles[0].Tags = []string{"player"}

	snap := ToDebugSnapshot(w)
	data, err := EncodeDebugSnapshot(snap)
	require.NoError(t, err)

	decoded, err := DecodeDebugSnapshot(data)
	require.NoError(t, err)
	require.Equal(t, snap, decoded)
}

func TestCheckFormatVersionAcceptsCurrent(t *testing.T) {
	require.NoError(t, CheckFormatVersion(formatVersionTag))
}

func TestCheckFormatVersionRejectsMismatch(t *testing.T) {
	require.ErrorIs(t, CheckFormatVersion(0), ErrFormatVersionMismatch)
}
