package kv

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/benz9527/xds/lib/infra"
)

func TestDictionary(t *testing.T) {
	var m Map[string, int]
	d, err := NewDictionary[string, int]()
	require.NoError(t, err)
	m = d

	for i, k := range []string{"b", "a", "c"} {
		inserted, err := m.Add(k, i)
		require.NoError(t, err)
		require.True(t, inserted)
	}
	require.Equal(t, int64(3), m.Len())
	require.False(t, m.IsEmpty())

	v, removed, err := m.Remove("a")
	require.NoError(t, err)
	require.True(t, removed)
	require.Equal(t, 1, v)

	require.True(t, errors.Is(m.Set("a", 9), ErrKeyNotExists))
	require.NoError(t, m.Set("b", 9))
	v, err = m.Get("b")
	require.NoError(t, err)
	require.Equal(t, 9, v)

	keys := m.Keys()
	slices.Sort(keys)
	require.Equal(t, []string{"b", "c"}, keys)

	sum := 0
	m.Foreach(func(_ string, val int) bool {
		sum += val
		return true
	})
	require.Equal(t, 9+2, sum)

	m.Release()
	require.True(t, m.IsEmpty())
}

func TestDictionaryFunc(t *testing.T) {
	d, err := NewDictionaryFunc[int, string](
		NewHasher[int]().Hash,
		infra.ReverseComparator(infra.NaturalComparator[int]()),
	)
	require.NoError(t, err)
	for i := 0; i < 1000; i++ {
		_, err = d.Add(i, "v")
		require.NoError(t, err)
	}
	ok, err := d.Contains(999)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(1000), d.Len())

	_, err = NewDictionary[int, string](WithHashtableUpperTolerance[int](-1))
	require.Error(t, err)
}

func TestHashSet(t *testing.T) {
	var s Set[int]
	hs, err := NewHashSet[int]()
	require.NoError(t, err)
	s = hs

	for _, e := range []int{3, 1, 2, 3} {
		_, err = s.Add(e)
		require.NoError(t, err)
	}
	require.Equal(t, int64(3), s.Len())
	ok, err := s.Contains(2)
	require.NoError(t, err)
	require.True(t, ok)

	removed, err := s.Remove(2)
	require.NoError(t, err)
	require.True(t, removed)

	elements := make([]int, 0, 2)
	s.Foreach(func(e int) bool {
		elements = append(elements, e)
		return true
	})
	slices.Sort(elements)
	require.Equal(t, []int{1, 3}, elements)
	require.ElementsMatch(t, elements, s.Keys())

	s.Release()
	require.True(t, s.IsEmpty())

	_, err = NewHashSetFunc[int](nil, infra.NaturalComparator[int]())
	require.Error(t, err)
}
