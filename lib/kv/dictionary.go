package kv

import (
	"github.com/benz9527/xds/lib/infra"
)

var _ Map[string, int] = (*Dictionary[string, int])(nil)

// Dictionary is a hashed map over a Hashtable.
type Dictionary[K, V any] struct {
	table *Hashtable[K, V]
}

func (d *Dictionary[K, V]) Len() int64 { return d.table.Len() }
func (d *Dictionary[K, V]) IsEmpty() bool { return d.table.IsEmpty() }
func (d *Dictionary[K, V]) Add(key K, val V) (bool, error) { return d.table.Add(key, val) }
func (d *Dictionary[K, V]) Remove(key K) (V, bool, error) { return d.table.Remove(key) }
func (d *Dictionary[K, V]) Contains(key K) (bool, error) { return d.table.Contains(key) }
func (d *Dictionary[K, V]) Get(key K) (V, error) { return d.table.Get(key) }
func (d *Dictionary[K, V]) Set(key K, val V) error { return d.table.Set(key, val) }
func (d *Dictionary[K, V]) Keys() []K { return d.table.Keys() }
func (d *Dictionary[K, V]) Release() { d.table.Release() }
func (d *Dictionary[K, V]) Foreach(action func(key K, val V) bool) { d.table.Foreach(action) }

func NewDictionary[K infra.OrderedKey, V any](opts ...HashtableOption[K]) (*Dictionary[K, V], error) {
	table, err := NewHashtable[K, V](opts...)
	if err != nil {
		return nil, err
	}
	return &Dictionary[K, V]{table: table}, nil
}

func NewDictionaryFunc[K, V any](
	hash HashFunc[K],
	cmp infra.Comparator[K],
	opts ...HashtableOption[K],
) (*Dictionary[K, V], error) {
	table, err := NewHashtableFunc[K, V](hash, cmp, opts...)
	if err != nil {
		return nil, err
	}
	return &Dictionary[K, V]{table: table}, nil
}
