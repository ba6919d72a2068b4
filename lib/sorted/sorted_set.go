package sorted

import (
	"iter"

	"github.com/benz9527/xds/lib/infra"
	"github.com/benz9527/xds/lib/tree"
)

// Set is an ordered set backed by an LLRB tree.
type Set[E any] struct {
	tree tree.LLRBSet[E]
}

func (s *Set[E]) Len() int64 {
	return s.tree.Len()
}

func (s *Set[E]) IsEmpty() bool {
	return s.tree.IsEmpty()
}

func (s *Set[E]) Add(e E) (bool, error) {
	return s.tree.Add(e)
}

func (s *Set[E]) Remove(e E) (bool, error) {
	return s.tree.Remove(e)
}

func (s *Set[E]) Contains(e E) (bool, error) {
	return s.tree.Contains(e)
}

func (s *Set[E]) Min() (E, error) {
	return s.tree.Min()
}

func (s *Set[E]) Max() (E, error) {
	return s.tree.Max()
}

func (s *Set[E]) InOrder() iter.Seq[E] {
	return s.tree.InOrder()
}

// Keys drains an inorder traversal into a new slice.
func (s *Set[E]) Keys() []E {
	keys := make([]E, 0, s.tree.Len())
	for e := range s.tree.InOrder() {
		keys = append(keys, e)
	}
	return keys
}

func (s *Set[E]) Release() {
	s.tree.Release()
}

func NewSet[E infra.OrderedKey]() *Set[E] {
	return &Set[E]{
		tree: tree.NewLLRBSet[E](),
	}
}

func NewSetFunc[E any](cmp infra.Comparator[E]) *Set[E] {
	return &Set[E]{
		tree: tree.NewLLRBSetFunc[E](cmp),
	}
}
