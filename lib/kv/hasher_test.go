package kv

import (
	"math"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

type userID int64

type label string

func TestHasher_Stable(t *testing.T) {
	ih := NewHasher[int]()
	seen := make(map[uint64]int, 1024)
	for i := 0; i < 1024; i++ {
		require.Equal(t, ih.Hash(i), ih.Hash(i))
		seen[ih.Hash(i)] = i
	}
	require.Len(t, seen, 1024)

	sh := NewHasher[string]()
	require.Equal(t, xxhash.Sum64String("abc"), sh.Hash("abc"))
	require.NotEqual(t, sh.Hash("abc"), sh.Hash("abd"))
}

func TestHasher_NamedTypes(t *testing.T) {
	require.Equal(t, NewHasher[int64]().Hash(42), NewHasher[userID]().Hash(userID(42)))
	require.Equal(t, NewHasher[string]().Hash("xds"), NewHasher[label]().Hash(label("xds")))
	require.Equal(t, NewHasher[uint64]().Hash(7), NewHasher[uint16]().Hash(7))
}

func TestHasher_FloatEquivalence(t *testing.T) {
	fh := NewHasher[float64]()
	require.Equal(t, fh.Hash(0), fh.Hash(math.Copysign(0, -1)))
	nan1 := math.NaN()
	nan2 := math.Float64frombits(math.Float64bits(nan1) | 1)
	require.True(t, math.IsNaN(nan2))
	require.Equal(t, fh.Hash(nan1), fh.Hash(nan2))
	require.NotEqual(t, fh.Hash(1.5), fh.Hash(2.5))

	f32 := NewHasher[float32]()
	require.Equal(t, f32.Hash(0), f32.Hash(float32(math.Copysign(0, -1))))
}

func TestSlotting_NextCapIdx(t *testing.T) {
	s := newSlotting[int](NewHasher[int]().Hash, defaultUpperTolerance, defaultLowerTolerance)
	require.Equal(t, uint64(53), s.m)

	s.count = 529
	_, ok := s.nextCapIdx(resizeGrow)
	require.False(t, ok)
	s.count = 530
	idx, ok := s.nextCapIdx(resizeGrow)
	require.True(t, ok)
	require.Equal(t, 1, idx)

	// The smallest capacity never shrinks.
	s.count = 0
	_, ok = s.nextCapIdx(resizeShrink)
	require.False(t, ok)

	s.capIdx, s.m = len(capacities)-1, capacities[len(capacities)-1]
	s.count = math.MaxInt64
	_, ok = s.nextCapIdx(resizeGrow)
	require.False(t, ok)

	for i := 0; i < 1024; i++ {
		require.Less(t, s.slotOf(i, 53), uint64(53))
	}
}
