package tree

import (
	"iter"

	"github.com/benz9527/xds/lib/infra"
)

type llrbSet[E any] struct {
	tree *llrbTree[E, struct{}]
}

func (set *llrbSet[E]) Len() int64 {
	return set.tree.Len()
}

func (set *llrbSet[E]) IsEmpty() bool {
	return set.tree.IsEmpty()
}

func (set *llrbSet[E]) Root() LLRBNode[E, struct{}] {
	return set.tree.Root()
}

func (set *llrbSet[E]) Contains(e E) (bool, error) {
	return set.tree.Contains(e)
}

// Re-adding an element is a no-op.
func (set *llrbSet[E]) Add(e E) (bool, error) {
	return set.tree.Insert(e, struct{}{})
}

func (set *llrbSet[E]) Remove(e E) (bool, error) {
	_, removed, err := set.tree.Remove(e)
	return removed, err
}

func (set *llrbSet[E]) RemoveMin() (E, error) {
	e, _, err := set.tree.RemoveMin()
	return e, err
}

func (set *llrbSet[E]) RemoveMax() (E, error) {
	e, _, err := set.tree.RemoveMax()
	return e, err
}

func (set *llrbSet[E]) Min() (E, error) {
	e, _, err := set.tree.Min()
	return e, err
}

func (set *llrbSet[E]) Max() (E, error) {
	e, _, err := set.tree.Max()
	return e, err
}

func (set *llrbSet[E]) InOrder() iter.Seq[E] {
	return func(yield func(E) bool) {
		for e := range set.tree.InOrder() {
			if !yield(e) {
				return
			}
		}
	}
}

func (set *llrbSet[E]) Foreach(action func(idx int64, color RBColor, e E) bool) {
	set.tree.Foreach(func(idx int64, color RBColor, key E, _ struct{}) bool {
		return action(idx, color, key)
	})
}

func (set *llrbSet[E]) Release() {
	set.tree.Release()
}

func NewLLRBSet[E infra.OrderedKey](opts ...LLRBTreeOpt[E, struct{}]) LLRBSet[E] {
	return &llrbSet[E]{
		tree: newLLRBTree[E, struct{}](infra.NaturalComparator[E](), opts...),
	}
}

// NewLLRBSetFunc orders elements by cmp. It panics if cmp is nil.
func NewLLRBSetFunc[E any](cmp infra.Comparator[E], opts ...LLRBTreeOpt[E, struct{}]) LLRBSet[E] {
	return &llrbSet[E]{
		tree: newLLRBTree[E, struct{}](cmp, opts...),
	}
}
