package sorted

import (
	randv2 "math/rand/v2"
	"testing"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benz9527/xds/lib/tree"
)

func TestSetKeysAreOrdered(t *testing.T) {
	s := NewSet[int]()
	require.True(t, s.IsEmpty())
	require.Empty(t, s.Keys())

	for _, e := range []int{9, 2, 7, 2, 5, 9, 1} {
		_, err := s.Add(e)
		require.NoError(t, err)
	}
	assert.Equal(t, int64(5), s.Len())
	assert.Equal(t, []int{1, 2, 5, 7, 9}, s.Keys())

	keys := s.Keys()
	keys[0] = 100
	assert.Equal(t, []int{1, 2, 5, 7, 9}, s.Keys())

	removed, err := s.Remove(5)
	require.NoError(t, err)
	require.True(t, removed)
	ok, err := s.Contains(5)
	require.NoError(t, err)
	require.False(t, ok)

	minE, err := s.Min()
	require.NoError(t, err)
	require.Equal(t, 1, minE)
	maxE, err := s.Max()
	require.NoError(t, err)
	require.Equal(t, 9, maxE)

	s.Release()
	require.True(t, s.IsEmpty())
}

func TestSetFuncDescending(t *testing.T) {
	s := NewSetFunc[string](func(i, j string) int64 {
		switch {
		case i > j:
			return -1
		case i < j:
			return 1
		}
		return 0
	})
	for _, e := range []string{"b", "c", "a"} {
		_, _ = s.Add(e)
	}
	require.Equal(t, []string{"c", "b", "a"}, s.Keys())
}

func TestMapAddGetSet(t *testing.T) {
	m := NewMap[string, int]()
	inserted, err := m.Add("two", 2)
	require.NoError(t, err)
	require.True(t, inserted)
	_, _ = m.Add("one", 1)
	_, _ = m.Add("three", 3)

	inserted, err = m.Add("two", 22)
	require.NoError(t, err)
	require.False(t, inserted)
	require.Equal(t, int64(3), m.Len())

	val, err := m.Get("two")
	require.NoError(t, err)
	require.Equal(t, 22, val)

	require.NoError(t, m.Set("one", 11))
	require.ErrorIs(t, m.Set("four", 4), tree.ErrKeyNotExists)
	_, err = m.Get("four")
	require.ErrorIs(t, err, tree.ErrKeyNotExists)
	require.Equal(t, int64(3), m.Len())

	require.Equal(t, []string{"one", "three", "two"}, m.Keys())
	require.Equal(t, []Entry[string, int]{
		{Key: "one", Val: 11},
		{Key: "three", Val: 3},
		{Key: "two", Val: 22},
	}, m.Entries())

	k, v, err := m.Min()
	require.NoError(t, err)
	require.Equal(t, "one", k)
	require.Equal(t, 11, v)
	k, _, err = m.Max()
	require.NoError(t, err)
	require.Equal(t, "two", k)

	val, removed, err := m.Remove("three")
	require.NoError(t, err)
	require.True(t, removed)
	require.Equal(t, 3, val)
	_, removed, err = m.Remove("three")
	require.NoError(t, err)
	require.False(t, removed)

	ok, err := m.Contains("three")
	require.NoError(t, err)
	require.False(t, ok)
}

type version struct {
	major, minor int
}

func TestMapFuncNilKey(t *testing.T) {
	m := NewMapFunc[*version, string](func(i, j *version) int64 {
		if i.major != j.major {
			return int64(i.major - j.major)
		}
		return int64(i.minor - j.minor)
	})
	_, err := m.Add(nil, "none")
	require.ErrorIs(t, err, tree.ErrNilKey)

	_, _ = m.Add(&version{1, 22}, "go1.22")
	_, _ = m.Add(&version{1, 9}, "go1.9")
	_, _ = m.Add(&version{1, 23}, "go1.23")
	keys := m.Keys()
	require.Len(t, keys, 3)
	require.Equal(t, 9, keys[0].minor)
	require.Equal(t, 23, keys[2].minor)

	m.Release()
	require.True(t, m.IsEmpty())
}

func TestMapRandomAgainstTreeMap(t *testing.T) {
	m := NewMap[int, int]()
	oracle := treemap.NewWithIntComparator()
	for i := 0; i < 4096; i++ {
		key := randv2.IntN(512)
		switch randv2.IntN(4) {
		case 0:
			val, removed, err := m.Remove(key)
			require.NoError(t, err)
			expected, found := oracle.Get(key)
			require.Equal(t, found, removed)
			if found {
				require.Equal(t, expected, val)
			}
			oracle.Remove(key)
		case 1:
			err := m.Set(key, i)
			if _, found := oracle.Get(key); found {
				require.NoError(t, err)
				oracle.Put(key, i)
			} else {
				require.ErrorIs(t, err, tree.ErrKeyNotExists)
			}
		default:
			inserted, err := m.Add(key, i)
			require.NoError(t, err)
			_, found := oracle.Get(key)
			require.Equal(t, !found, inserted)
			oracle.Put(key, i)
		}
		require.Equal(t, int64(oracle.Size()), m.Len())
	}

	expected := make([]Entry[int, int], 0, oracle.Size())
	it := oracle.Iterator()
	for it.Next() {
		expected = append(expected, Entry[int, int]{Key: it.Key().(int), Val: it.Value().(int)})
	}
	require.Equal(t, expected, m.Entries())
}
