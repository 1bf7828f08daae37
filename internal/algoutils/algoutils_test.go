package algoutils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPairSetTestAndSet(t *testing.T) {
	p := NewPairSet(5)
	require.False(t, p.TestAndSet(1, 3))
	require.True(t, p.TestAndSet(1, 3))
	require.True(t, p.TestAndSet(3, 1)) // order-independent
	require.False(t, p.TestAndSet(0, 4))
}

func TestPairSetReset(t *testing.T) {
	p := NewPairSet(4)
	p.TestAndSet(0, 1)
	p.Reset()
	require.False(t, p.TestAndSet(0, 1))
}

func TestPairSetAllPairsDistinct(t *testing.T) {
	n := 6
	p := NewPairSet(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			require.False(t, p.TestAndSet(i, j), "pair (%d,%d) collided", i, j)
		}
	}
}

func TestMembershipSetBasic(t *testing.T) {
	m := NewMembershipSet(8)
	require.False(t, m.Has(3))
	m.Add(3)
	require.True(t, m.Has(3))
	m.Remove(3)
	require.False(t, m.Has(3))
}

func TestMembershipSetCloneIsIndependent(t *testing.T) {
	m := NewMembershipSet(8)
	m.Add(2)
	snap := m.Clone()
	m.Add(5)
	require.True(t, snap.Has(2))
	require.False(t, snap.Has(5))
	require.True(t, m.Has(5))
}

func TestMembershipSetEachAscending(t *testing.T) {
	m := NewMembershipSet(10)
	for _, i := range []int{7, 1, 4} {
		m.Add(i)
	}
	var got []int
	m.Each(func(i int) { got = append(got, i) })
	require.Equal(t, []int{1, 4, 7}, got)
}

func TestMembershipSetClear(t *testing.T) {
	m := NewMembershipSet(4)
	m.Add(0)
	m.Add(1)
	m.Clear()
	require.False(t, m.Has(0))
	require.False(t, m.Has(1))
}
