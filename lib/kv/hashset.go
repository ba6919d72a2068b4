package kv

import (
	"github.com/benz9527/xds/lib/infra"
)

var _ Set[string] = (*HashSet[string])(nil)

// HashSet is a hashed set over a SetHashtable.
type HashSet[E any] struct {
	table *SetHashtable[E]
}

func (s *HashSet[E]) Len() int64 { return s.table.Len() }
func (s *HashSet[E]) IsEmpty() bool { return s.table.IsEmpty() }
func (s *HashSet[E]) Add(e E) (bool, error) { return s.table.Add(e) }
func (s *HashSet[E]) Remove(e E) (bool, error) { return s.table.Remove(e) }
func (s *HashSet[E]) Contains(e E) (bool, error) { return s.table.Contains(e) }
func (s *HashSet[E]) Foreach(action func(e E) bool) { s.table.Foreach(action) }
func (s *HashSet[E]) Keys() []E { return s.table.Keys() }
func (s *HashSet[E]) Release() { s.table.Release() }

func NewHashSet[E infra.OrderedKey](opts ...HashtableOption[E]) (*HashSet[E], error) {
	table, err := NewSetHashtable[E](opts...)
	if err != nil {
		return nil, err
	}
	return &HashSet[E]{table: table}, nil
}

func NewHashSetFunc[E any](
	hash HashFunc[E],
	cmp infra.Comparator[E],
	opts ...HashtableOption[E],
) (*HashSet[E], error) {
	table, err := NewSetHashtableFunc[E](hash, cmp, opts...)
	if err != nil {
		return nil, err
	}
	return &HashSet[E]{table: table}, nil
}
