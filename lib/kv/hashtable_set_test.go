package kv

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/benz9527/xds/lib/tree"
)

func TestSetHashtable_Idempotent(t *testing.T) {
	ht, err := NewSetHashtable[string]()
	require.NoError(t, err)
	added, err := ht.Add("x")
	require.NoError(t, err)
	require.True(t, added)
	added, err = ht.Add("x")
	require.NoError(t, err)
	require.False(t, added)
	require.Equal(t, int64(1), ht.Len())

	removed, err := ht.Remove("y")
	require.NoError(t, err)
	require.False(t, removed)
	removed, err = ht.Remove("x")
	require.NoError(t, err)
	require.True(t, removed)
	require.True(t, ht.IsEmpty())
}

func TestSetHashtable_GrowAndShrink(t *testing.T) {
	ht, err := NewSetHashtable[int]()
	require.NoError(t, err)
	for i := 0; i < 1500; i++ {
		_, err = ht.Add(i)
		require.NoError(t, err)
		requireOccupancy(t, &ht.slotting)
	}
	require.Equal(t, uint64(193), ht.Slots())
	for i := 0; i < 1500; i++ {
		ok, err := ht.Contains(i)
		require.NoError(t, err)
		require.True(t, ok)
	}
	for i := 0; i < 1400; i++ {
		_, err = ht.Remove(i)
		require.NoError(t, err)
		requireOccupancy(t, &ht.slotting)
	}
	require.Equal(t, uint64(53), ht.Slots())
	require.Len(t, ht.Keys(), 100)
	for i := 1400; i < 1500; i++ {
		ok, err := ht.Contains(i)
		require.NoError(t, err)
		require.True(t, ok)
	}
}

func TestSetHashtable_CaseInsensitive(t *testing.T) {
	ht, err := NewSetHashtableFunc[string](
		func(s string) uint64 { return NewHasher[string]().Hash(strings.ToLower(s)) },
		func(i, j string) int64 { return int64(strings.Compare(strings.ToLower(i), strings.ToLower(j))) },
	)
	require.NoError(t, err)
	_, err = ht.Add("Hello")
	require.NoError(t, err)
	added, err := ht.Add("HELLO")
	require.NoError(t, err)
	require.False(t, added)
	ok, err := ht.Contains("hello")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestSetHashtable_NilKey(t *testing.T) {
	ht, err := NewSetHashtableFunc[*user](
		func(u *user) uint64 { return NewHasher[string]().Hash(u.name) },
		func(i, j *user) int64 { return int64(strings.Compare(i.name, j.name)) },
	)
	require.NoError(t, err)
	_, err = ht.Add(nil)
	require.True(t, errors.Is(err, tree.ErrNilKey))
	_, err = ht.Remove(nil)
	require.True(t, errors.Is(err, ErrNilKey))
	_, err = ht.Contains(nil)
	require.True(t, errors.Is(err, ErrNilKey))
}

func TestSetHashtable_RandomRoundTrip(t *testing.T) {
	ht, err := NewSetHashtable[uint32]()
	require.NoError(t, err)
	oracle := make(map[uint32]struct{}, 8192)
	for i := 0; i < 30000; i++ {
		e := rand.Uint32N(8192)
		if rand.IntN(4) == 0 {
			removed, err := ht.Remove(e)
			require.NoError(t, err)
			_, ok := oracle[e]
			require.Equal(t, ok, removed)
			delete(oracle, e)
		} else {
			added, err := ht.Add(e)
			require.NoError(t, err)
			_, ok := oracle[e]
			require.Equal(t, !ok, added)
			oracle[e] = struct{}{}
		}
		require.Equal(t, int64(len(oracle)), ht.Len())
	}
	requireOccupancy(t, &ht.slotting)
	for e := range oracle {
		ok, err := ht.Contains(e)
		require.NoError(t, err)
		require.True(t, ok)
	}

	ht.Release()
	require.True(t, ht.IsEmpty())
	require.Equal(t, uint64(53), ht.Slots())
}
