package tree

import (
	"iter"

	"github.com/benz9527/xds/lib/infra"
)

// References:
// https://sedgewick.io/wp-content/themes/sedgewick/papers/2008LLRB.pdf
// https://algs4.cs.princeton.edu/33balanced/RedBlackBST.java
// LLRB properties, on top of the classic rbtree ones:
// p1. A red link always leans left, no node has a red right child.
// p2. No node has two red links in a row on its left spine.
// p3. Every path from the root to a nil link passes through the
//   same number of black links (black height balance).
// p4. The root is black once a public mutation returns.
// Every recursive step returns the (possibly rotated) subtree root and
// the caller reassigns it to its own child slot, so a node is only ever
// referenced by its parent. There are no parent pointers.

type llrbTree[K, V any] struct {
	root  *llrbNode[K, V]
	count int64
	cmp   infra.Comparator[K]
}

func (tree *llrbTree[K, V]) Len() int64 {
	return tree.count
}

func (tree *llrbTree[K, V]) IsEmpty() bool {
	return tree.count == 0
}

func (tree *llrbTree[K, V]) Root() LLRBNode[K, V] {
	if tree.root == nil {
		return nil
	}
	return tree.root
}

func (tree *llrbTree[K, V]) search(key K) *llrbNode[K, V] {
	for aux := tree.root; aux != nil; {
		res := tree.cmp(key, aux.key)
		if /* equal */ res == 0 {
			return aux
		} else /* less */ if res < 0 {
			aux = aux.left
		} else /* greater */ {
			aux = aux.right
		}
	}
	return nil
}

func (tree *llrbTree[K, V]) Contains(key K) (bool, error) {
	if infra.IsNilKey(key) {
		return false, ErrNilKey
	}
	return tree.search(key) != nil, nil
}

func (tree *llrbTree[K, V]) Get(key K) (val V, err error) {
	if infra.IsNilKey(key) {
		return val, ErrNilKey
	}
	node := tree.search(key)
	if node == nil {
		return val, ErrKeyNotExists
	}
	return node.val, nil
}

func (tree *llrbTree[K, V]) Set(key K, val V) error {
	if infra.IsNilKey(key) {
		return ErrNilKey
	}
	node := tree.search(key)
	if node == nil {
		return ErrKeyNotExists
	}
	node.val = val
	return nil
}

func (tree *llrbTree[K, V]) Insert(key K, val V) (inserted bool, err error) {
	if infra.IsNilKey(key) {
		return false, ErrNilKey
	}
	tree.root, inserted = tree.insert(tree.root, key, val)
	tree.root.color = Black
	if inserted {
		tree.count++
	}
	return inserted, nil
}

// An equal key keeps the tree shape and only overwrites the value.
func (tree *llrbTree[K, V]) insert(node *llrbNode[K, V], key K, val V) (*llrbNode[K, V], bool) {
	if node == nil {
		return newLLRBNode[K, V](key, val), true
	}

	inserted := false
	res := tree.cmp(key, node.key)
	if res < 0 {
		node.left, inserted = tree.insert(node.left, key, val)
	} else if res > 0 {
		node.right, inserted = tree.insert(node.right, key, val)
	} else {
		node.val = val
	}
	return node.balance(), inserted
}

func (tree *llrbTree[K, V]) Remove(key K) (val V, removed bool, err error) {
	if infra.IsNilKey(key) {
		return val, false, ErrNilKey
	}
	// The descent below assumes the key is present. Without this check
	// the left borrow would dereference a nil left link.
	target := tree.search(key)
	if target == nil {
		return val, false, nil
	}
	val = target.val

	if !tree.root.left.isRed() && !tree.root.right.isRed() {
		tree.root.color = Red
	}
	tree.root = tree.remove(tree.root, key)
	tree.count--
	if tree.root != nil {
		tree.root.color = Black
	}
	return val, true, nil
}

func (tree *llrbTree[K, V]) remove(node *llrbNode[K, V], key K) *llrbNode[K, V] {
	if tree.cmp(key, node.key) < 0 {
		if node.left == nil {
			// impossible run to here
			panic( /* debug assertion */ "[llrb] remove descends into a nil left link")
		}
		if !node.left.isRed() && !node.left.left.isRed() {
			node = node.moveRedLeft()
		}
		node.left = tree.remove(node.left, key)
		return node.balance()
	}

	if node.left.isRed() {
		node = node.rightRotate()
	}
	if tree.cmp(key, node.key) == 0 && node.right == nil {
		return nil
	}
	if !node.right.isRed() && !node.right.left.isRed() {
		node = node.moveRedRight()
	}
	if tree.cmp(key, node.key) == 0 {
		// Borrow the successor payload, then remove the successor instead.
		succ := node.right.minimum()
		node.key, node.val = succ.key, succ.val
		node.right = removeMin(node.right)
	} else {
		node.right = tree.remove(node.right, key)
	}
	return node.balance()
}

func removeMin[K, V any](node *llrbNode[K, V]) *llrbNode[K, V] {
	if node.left == nil {
		return nil
	}
	if !node.left.isRed() && !node.left.left.isRed() {
		node = node.moveRedLeft()
	}
	node.left = removeMin(node.left)
	return node.balance()
}

func removeMax[K, V any](node *llrbNode[K, V]) *llrbNode[K, V] {
	if node.left.isRed() {
		node = node.rightRotate()
	}
	if node.right == nil {
		return nil
	}
	if !node.right.isRed() && !node.right.left.isRed() {
		node = node.moveRedRight()
	}
	node.right = removeMax(node.right)
	return node.balance()
}

func (tree *llrbTree[K, V]) RemoveMin() (key K, val V, err error) {
	if tree.IsEmpty() {
		return key, val, ErrEmptyTree
	}
	x := tree.root.minimum()
	key, val = x.key, x.val

	if !tree.root.left.isRed() && !tree.root.right.isRed() {
		tree.root.color = Red
	}
	tree.root = removeMin(tree.root)
	tree.count--
	if tree.root != nil {
		tree.root.color = Black
	}
	return key, val, nil
}

func (tree *llrbTree[K, V]) RemoveMax() (key K, val V, err error) {
	if tree.IsEmpty() {
		return key, val, ErrEmptyTree
	}
	x := tree.root.maximum()
	key, val = x.key, x.val

	if !tree.root.left.isRed() && !tree.root.right.isRed() {
		tree.root.color = Red
	}
	tree.root = removeMax(tree.root)
	tree.count--
	if tree.root != nil {
		tree.root.color = Black
	}
	return key, val, nil
}

func (tree *llrbTree[K, V]) Min() (key K, val V, err error) {
	if tree.IsEmpty() {
		return key, val, ErrEmptyTree
	}
	x := tree.root.minimum()
	return x.key, x.val, nil
}

func (tree *llrbTree[K, V]) Max() (key K, val V, err error) {
	if tree.IsEmpty() {
		return key, val, ErrEmptyTree
	}
	x := tree.root.maximum()
	return x.key, x.val, nil
}

func (tree *llrbTree[K, V]) InOrder() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		var walk func(node *llrbNode[K, V]) bool
		walk = func(node *llrbNode[K, V]) bool {
			if node == nil {
				return true
			}
			return walk(node.left) && yield(node.key, node.val) && walk(node.right)
		}
		walk(tree.root)
	}
}

// Inorder traversal to implement the DFS.
func (tree *llrbTree[K, V]) Foreach(action func(idx int64, color RBColor, key K, val V) bool) {
	size := tree.count
	aux := tree.root
	if size <= 0 || aux == nil {
		return
	}

	stack := make([]*llrbNode[K, V], 0, size>>1+1)
	defer func() {
		clear(stack)
	}()

	for ; aux != nil; aux = aux.left {
		stack = append(stack, aux)
	}

	idx := int64(0)
	for size = int64(len(stack)); size > 0; size = int64(len(stack)) {
		if aux = stack[size-1]; !action(idx, aux.color, aux.key, aux.val) {
			return
		}
		idx++
		stack = stack[:size-1]
		for aux = aux.right; aux != nil; aux = aux.left {
			stack = append(stack, aux)
		}
	}
}

// Release unlinks every node so nothing stays reachable from
// a stale reference to one of them.
func (tree *llrbTree[K, V]) Release() {
	aux := tree.root
	tree.root = nil
	if aux == nil {
		tree.count = 0
		return
	}

	stack := make([]*llrbNode[K, V], 0, tree.count>>1+1)
	defer func() {
		clear(stack)
	}()
	for ; aux != nil; aux = aux.left {
		stack = append(stack, aux)
	}

	for size := len(stack); size > 0; size = len(stack) {
		aux = stack[size-1]
		stack = stack[:size-1]
		r := aux.right
		aux.left, aux.right = nil, nil
		tree.count--
		for aux = r; aux != nil; aux = aux.left {
			stack = append(stack, aux)
		}
	}
}

type LLRBTreeOpt[K, V any] func(*llrbTree[K, V])

// WithLLRBComparator replaces the ordering of the tree.
func WithLLRBComparator[K, V any](cmp infra.Comparator[K]) LLRBTreeOpt[K, V] {
	return func(tree *llrbTree[K, V]) {
		if cmp != nil {
			tree.cmp = cmp
		}
	}
}

// WithLLRBDesc reverses the natural ordering of the keys.
func WithLLRBDesc[K infra.OrderedKey, V any]() LLRBTreeOpt[K, V] {
	return func(tree *llrbTree[K, V]) {
		tree.cmp = infra.ReverseComparator[K](infra.NaturalComparator[K]())
	}
}

func newLLRBTree[K, V any](cmp infra.Comparator[K], opts ...LLRBTreeOpt[K, V]) *llrbTree[K, V] {
	tree := &llrbTree[K, V]{
		cmp: cmp,
	}
	for _, o := range opts {
		o(tree)
	}
	if tree.cmp == nil {
		panic( /* debug assertion */ "[llrb] nil comparator")
	}
	return tree
}

// NewLLRBTree orders keys by their natural ordering unless an option says otherwise.
func NewLLRBTree[K infra.OrderedKey, V any](opts ...LLRBTreeOpt[K, V]) LLRBTree[K, V] {
	return newLLRBTree[K, V](infra.NaturalComparator[K](), opts...)
}

// NewLLRBTreeFunc orders keys by cmp. It panics if cmp is nil.
func NewLLRBTreeFunc[K, V any](cmp infra.Comparator[K], opts ...LLRBTreeOpt[K, V]) LLRBTree[K, V] {
	return newLLRBTree[K, V](cmp, opts...)
}
