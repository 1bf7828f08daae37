package codec

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/determinisk/kernel/physics"
)

// DebugSnapshot is a human/tool-friendly, non-canonical view of a
// World, aimed at an observer hook (a UI, a test harness dumping
// intermediate state) rather than at the hash preimage of §4.10. Field
// values are Q16.16 raw bits, not floats, so the snapshot stays exact;
// converting to a display float is the caller's job.
type DebugSnapshot struct {
	Step    uint64          `cbor:"step"`
	Bodies  []DebugBody     `cbor:"bodies"`
}

// DebugBody mirrors physics.Circle, plus its id and its tags (which
// the canonical encoding omits, but which are useful for a debug
// dump).
type DebugBody struct {
	ID          string   `cbor:"id"`
	PositionX   int32    `cbor:"x"`
	PositionY   int32    `cbor:"y"`
	OldX        int32    `cbor:"old_x"`
	OldY        int32    `cbor:"old_y"`
	Radius      int32    `cbor:"radius"`
	Mass        int32    `cbor:"mass"`
	Restitution int32    `cbor:"restitution"`
	Friction    int32    `cbor:"friction"`
	Tags        []string `cbor:"tags,omitempty"`
}

// ToDebugSnapshot builds a DebugSnapshot from the live World state.
func ToDebugSnapshot(w *physics.World) DebugSnapshot {
	ids := w.IDs()
	bodies := make([]DebugBody, len(w.Circles))
	for i, c := range w.Circles {
		bodies[i] = DebugBody{
			ID:          ids[i],
			PositionX:   c.Position.X.Bits(),
			PositionY:   c.Position.Y.Bits(),
			OldX:        c.OldPosition.X.Bits(),
			OldY:        c.OldPosition.Y.Bits(),
			Radius:      c.Radius.Bits(),
			Mass:        c.Mass.Bits(),
			Restitution: c.Restitution.Bits(),
			Friction:    c.Friction.Bits(),
			Tags:        c.Tags,
		}
	}
	return DebugSnapshot{Step: w.Step, Bodies: bodies}
}

// EncodeDebugSnapshot serializes a DebugSnapshot with cbor's canonical
// encoding options — canonical in the CBOR-deterministic-map-ordering
// sense, not in the §4.10 hash-preimage sense; this output never feeds
// Hash.
func EncodeDebugSnapshot(snap DebugSnapshot) ([]byte, error) {
	opts := cbor.CanonicalEncOptions()
	mode, err := opts.EncMode()
	if err != nil {
		return nil, err
	}
	return mode.Marshal(snap)
}

// DecodeDebugSnapshot parses bytes produced by EncodeDebugSnapshot.
func DecodeDebugSnapshot(data []byte) (DebugSnapshot, error) {
	var snap DebugSnapshot
	err := cbor.Unmarshal(data, &snap)
	return snap, err
}
