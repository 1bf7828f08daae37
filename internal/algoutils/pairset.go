// Package algoutils provides deterministic ordered-set helpers used in
// place of the hash-based sets the reference implementation relies on
// for pair and membership deduplication (spec §9: hash-map iteration
// order is nondeterministic, so dedup must use a sorted vector or a
// bit-set indexed by integer index instead).
package algoutils

import "github.com/bits-and-blooms/bitset"

// PairSet is a fixed-capacity deduplication set over unordered index
// pairs (i, j) with i < j, backed by a bitset. It is consulted only for
// membership — callers must never iterate it to decide output order,
// since bitset iteration order carries no semantic meaning here; it is
// only ever used to decide "have we already emitted this one."
type PairSet struct {
	n    int
	bits *bitset.BitSet
}

// NewPairSet allocates a PairSet capable of holding every unordered pair
// over the half-open range [0, n).
func NewPairSet(n int) *PairSet {
	cap := 0
	if n > 1 {
		cap = n * (n - 1) / 2
	}
	return &PairSet{n: n, bits: bitset.New(uint(cap))}
}

func (p *PairSet) index(i, j int) uint {
	if i > j {
		i, j = j, i
	}
	// triangular index for the pair (i, j), i < j, over n elements.
	return uint(i*p.n - i*(i+1)/2 + (j - i - 1))
}

// TestAndSet reports whether (i, j) was already present, and marks it
// present regardless.
func (p *PairSet) TestAndSet(i, j int) bool {
	idx := p.index(i, j)
	if p.bits.Test(idx) {
		return true
	}
	p.bits.Set(idx)
	return false
}

// Reset clears every bit so the set can be reused for the next step
// without reallocating.
func (p *PairSet) Reset() {
	p.bits.ClearAll()
}
