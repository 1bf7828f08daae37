package event

import (
	"bytes"
	"io"

	"github.com/icza/bitio"
	"github.com/ronanh/intcomp"
)

// CompactExport writes a secondary, non-normative binary export of the
// three logs for offline analysis — step indices are delta/varint
// compressed with intcomp, and per-event tag bits (side, proximity
// kind) are bit-packed with bitio. This export is never read back by
// the kernel and never participates in the canonical hash of package
// codec.
func (l *Log) CompactExport(w io.Writer) error {
	collisionSteps := make([]uint32, len(l.Collisions))
	for i, e := range l.Collisions {
		collisionSteps[i] = uint32(e.Step)
	}
	boundarySteps := make([]uint32, len(l.Boundaries))
	for i, e := range l.Boundaries {
		boundarySteps[i] = uint32(e.Step)
	}
	proximitySteps := make([]uint32, len(l.Proximity))
	for i, e := range l.Proximity {
		proximitySteps[i] = uint32(e.Step)
	}

	var buf bytes.Buffer
	bw := bitio.NewWriter(&buf)

	if err := writeCompressed(bw, collisionSteps); err != nil {
		return err
	}
	if err := writeCompressed(bw, boundarySteps); err != nil {
		return err
	}
	if err := writeCompressed(bw, proximitySteps); err != nil {
		return err
	}

	for _, e := range l.Boundaries {
		if err := bw.WriteBits(uint64(e.Side), 2); err != nil {
			return err
		}
	}
	for _, e := range l.Proximity {
		if err := bw.WriteBits(uint64(e.Kind), 2); err != nil {
			return err
		}
	}

	if err := bw.Close(); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func writeCompressed(bw *bitio.Writer, vals []uint32) error {
	compressed := intcomp.CompressUint32(vals, nil)
	if err := bw.WriteBits(uint64(len(vals)), 32); err != nil {
		return err
	}
	if err := bw.WriteBits(uint64(len(compressed)), 32); err != nil {
		return err
	}
	for _, v := range compressed {
		if err := bw.WriteBits(uint64(v), 32); err != nil {
			return err
		}
	}
	return nil
}
