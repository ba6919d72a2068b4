package sorted

import (
	"iter"

	"github.com/benz9527/xds/lib/infra"
	"github.com/benz9527/xds/lib/tree"
)

// Map is an ordered map backed by an LLRB tree.
type Map[K, V any] struct {
	tree tree.LLRBTree[K, V]
}

// Entry is a key/value pair harvested from a Map.
type Entry[K, V any] struct {
	Key K
	Val V
}

func (m *Map[K, V]) Len() int64 {
	return m.tree.Len()
}

func (m *Map[K, V]) IsEmpty() bool {
	return m.tree.IsEmpty()
}

// Add inserts the pair, or overwrites the value of an existing key.
func (m *Map[K, V]) Add(key K, val V) (bool, error) {
	return m.tree.Insert(key, val)
}

func (m *Map[K, V]) Remove(key K) (V, bool, error) {
	return m.tree.Remove(key)
}

func (m *Map[K, V]) Contains(key K) (bool, error) {
	return m.tree.Contains(key)
}

func (m *Map[K, V]) Get(key K) (V, error) {
	return m.tree.Get(key)
}

// Set never inserts, an absent key is reported by tree.ErrKeyNotExists.
func (m *Map[K, V]) Set(key K, val V) error {
	return m.tree.Set(key, val)
}

func (m *Map[K, V]) Min() (K, V, error) {
	return m.tree.Min()
}

func (m *Map[K, V]) Max() (K, V, error) {
	return m.tree.Max()
}

func (m *Map[K, V]) InOrder() iter.Seq2[K, V] {
	return m.tree.InOrder()
}

func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.tree.Len())
	for k := range m.tree.InOrder() {
		keys = append(keys, k)
	}
	return keys
}

func (m *Map[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, m.tree.Len())
	for k, v := range m.tree.InOrder() {
		entries = append(entries, Entry[K, V]{Key: k, Val: v})
	}
	return entries
}

func (m *Map[K, V]) Release() {
	m.tree.Release()
}

func NewMap[K infra.OrderedKey, V any]() *Map[K, V] {
	return &Map[K, V]{
		tree: tree.NewLLRBTree[K, V](),
	}
}

func NewMapFunc[K, V any](cmp infra.Comparator[K]) *Map[K, V] {
	return &Map[K, V]{
		tree: tree.NewLLRBTreeFunc[K, V](cmp),
	}
}
