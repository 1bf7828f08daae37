package algoutils

import "github.com/bits-and-blooms/bitset"

// MembershipSet tracks which of N body indices currently belong to a
// set (e.g. "inside this proximity zone"), keyed by index rather than
// by id string, per spec §9.
type MembershipSet struct {
	bits *bitset.BitSet
}

func NewMembershipSet(n int) *MembershipSet {
	return &MembershipSet{bits: bitset.New(uint(n))}
}

func (m *MembershipSet) Has(i int) bool { return m.bits.Test(uint(i)) }
func (m *MembershipSet) Add(i int)      { m.bits.Set(uint(i)) }
func (m *MembershipSet) Remove(i int)   { m.bits.Clear(uint(i)) }
func (m *MembershipSet) Clear()         { m.bits.ClearAll() }

// Clone returns an independent copy of the current membership, used to
// snapshot "the previous step's set" before it is overwritten.
func (m *MembershipSet) Clone() *MembershipSet {
	return &MembershipSet{bits: m.bits.Clone()}
}

// Each calls f for every set index in ascending order.
func (m *MembershipSet) Each(f func(i int)) {
	for i, e := m.bits.NextSet(0); e; i, e = m.bits.NextSet(i + 1) {
		f(int(i))
	}
}
