// Package codec implements the canonical, fixed-layout encoding of a
// world and the SHA-256 determinism fingerprint derived from it (spec
// §4.10), plus a persistence envelope and a non-canonical debug
// snapshot format. Every function here is pure and allocation-shaped
// around its input size — none of it is reachable from physics.World's
// Step, matching spec §5's "no I/O inside step" boundary.
package codec

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/determinisk/kernel/physics"
	"github.com/determinisk/kernel/scalar"
	"github.com/determinisk/kernel/vec2"
)

// EncodeScope is a bitmask selecting which optional trailing fields
// the canonical encoding carries, per spec §4.10's "(if included in
// the scope being encoded)".
type EncodeScope uint8

const (
	ScopeCore EncodeScope = 0
	// ScopeRestitutionFriction adds the 4-byte restitution and 4-byte
	// friction fields after mass, for every body.
	ScopeRestitutionFriction EncodeScope = 1 << 0
)

func (s EncodeScope) hasRestitutionFriction() bool {
	return s&ScopeRestitutionFriction != 0
}

// Encode produces the canonical big-endian, fixed-layout byte
// representation of spec §4.10: a 4-byte body count followed by, for
// each body in index order, its id length + id bytes, position,
// old_position, radius, mass, and — only when scope requests it —
// restitution and friction. Tags are deliberately absent: spec §4.10
// makes no mention of them.
func Encode(w *physics.World, scope EncodeScope) []byte {
	ids := w.IDs()
	circles := w.Circles

	size := 4
	for i, c := range circles {
		size += 4 + len(ids[i]) + 4*6
		if scope.hasRestitutionFriction() {
			size += 8
		}
		_ = c
	}

	buf := make([]byte, size)
	off := 0
	binary.BigEndian.PutUint32(buf[off:], uint32(len(circles)))
	off += 4

	for i, c := range circles {
		id := ids[i]
		binary.BigEndian.PutUint32(buf[off:], uint32(len(id)))
		off += 4
		off += copy(buf[off:], id)

		off = putScalar(buf, off, c.Position.X)
		off = putScalar(buf, off, c.Position.Y)
		off = putScalar(buf, off, c.OldPosition.X)
		off = putScalar(buf, off, c.OldPosition.Y)
		off = putScalar(buf, off, c.Radius)
		off = putScalar(buf, off, c.Mass)

		if scope.hasRestitutionFriction() {
			off = putScalar(buf, off, c.Restitution)
			off = putScalar(buf, off, c.Friction)
		}
	}

	return buf
}

func putScalar(buf []byte, off int, s scalar.Scalar) int {
	binary.BigEndian.PutUint32(buf[off:], uint32(s.Bits()))
	return off + 4
}

func getScalar(buf []byte, off int) (scalar.Scalar, int) {
	v := int32(binary.BigEndian.Uint32(buf[off:]))
	return scalar.FromBits(v), off + 4
}

var (
	ErrTruncated = errors.New("codec: truncated canonical encoding")
)

// Decode reconstructs the bodies encoded by Encode into a new,
// freshly constructed *physics.World sized identically to the
// original (same bounds/gravity/damping/dt/boundary must be supplied
// by the caller, since §4.10's encoding carries bodies only). Decode
// is construction-shaped: it never mutates an existing World.
func Decode(data []byte, scope EncodeScope,
	bounds, gravity vec2.Vec2, damping, dt scalar.Scalar, boundary physics.Boundary,
	springs []physics.Spring, fields []physics.Field, zones []physics.ProximityZone) (*physics.World, error) {

	if len(data) < 4 {
		return nil, ErrTruncated
	}
	off := 0
	n := int(binary.BigEndian.Uint32(data[off:]))
	off += 4

	ids := make([]string, n)
	circles := make([]physics.Circle, n)

	for i := 0; i < n; i++ {
		if off+4 > len(data) {
			return nil, ErrTruncated
		}
		idLen := int(binary.BigEndian.Uint32(data[off:]))
		off += 4
		if off+idLen > len(data) {
			return nil, ErrTruncated
		}
		ids[i] = string(data[off : off+idLen])
		off += idLen

		fieldsNeeded := 6
		if scope.hasRestitutionFriction() {
			fieldsNeeded += 2
		}
		if off+4*fieldsNeeded > len(data) {
			return nil, ErrTruncated
		}

		var c physics.Circle
		c.Position.X, off = getScalar(data, off)
		c.Position.Y, off = getScalar(data, off)
		c.OldPosition.X, off = getScalar(data, off)
		c.OldPosition.Y, off = getScalar(data, off)
		c.Radius, off = getScalar(data, off)
		c.Mass, off = getScalar(data, off)
		if scope.hasRestitutionFriction() {
			c.Restitution, off = getScalar(data, off)
			c.Friction, off = getScalar(data, off)
		}
		circles[i] = c
	}

	return physics.NewWorld(bounds, gravity, damping, dt, boundary, circles, ids, springs, fields, zones), nil
}

// Hash returns the SHA-256 determinism fingerprint of spec §8 Law 1:
// the digest of the un-versioned canonical encoding, exactly as
// Encode produces it. The format-version tag applied by Persist never
// enters this preimage.
func Hash(w *physics.World, scope EncodeScope) [32]byte {
	return sha256.Sum256(Encode(w, scope))
}

// Persist appends the canonical encoding's body with the 8-byte
// big-endian step counter, per spec §6's "Persisted state".
func Persist(w *physics.World, scope EncodeScope) []byte {
	body := Encode(w, scope)
	out := make([]byte, len(body)+8)
	copy(out, body)
	binary.BigEndian.PutUint64(out[len(body):], w.Step)
	return out
}

// PersistWithVersion prepends the 4-byte FormatVersion tag ahead of
// the persisted body, for encodings that must cross a process
// boundary. It is never used to compute Hash.
func PersistWithVersion(w *physics.World, scope EncodeScope) []byte {
	body := Persist(w, scope)
	out := make([]byte, 4+len(body))
	binary.BigEndian.PutUint32(out, formatVersionTag)
	copy(out[4:], body)
	return out
}

// ErrFormatVersionMismatch is returned by CheckFormatVersion when a
// persisted encoding's version tag does not match FormatVersion.
var ErrFormatVersionMismatch = fmt.Errorf("codec: persisted format version does not match %s", FormatVersion)
