package tree

import (
	"errors"
	"fmt"

	"github.com/xlab/treeprint"
	"go.uber.org/multierr"

	"github.com/benz9527/xds/lib/infra"
)

// llrb rule validation utilities.

var (
	ErrRedViolation         = errors.New("[llrb] red violation")
	ErrLeftLeaningViolation = errors.New("[llrb] left leaning violation")
	ErrBlackViolation       = errors.New("[llrb] black violation")
	ErrOrderViolation       = errors.New("[llrb] order violation")
)

func isRedNode[K, V any](node LLRBNode[K, V]) bool {
	return node != nil && node.Color() == Red
}

// RedViolationValidate checks that no red node has a red left child.
// A red right child is reported by LeftLeaningViolationValidate.
func RedViolationValidate[K, V any](tree Rooted[K, V]) error {
	var walk func(node LLRBNode[K, V]) bool
	walk = func(node LLRBNode[K, V]) bool {
		if node == nil {
			return true
		}
		if isRedNode[K, V](node) && isRedNode[K, V](node.Left()) {
			return false
		}
		return walk(node.Left()) && walk(node.Right())
	}
	if !walk(tree.Root()) {
		return ErrRedViolation
	}
	return nil
}

func LeftLeaningViolationValidate[K, V any](tree Rooted[K, V]) error {
	var walk func(node LLRBNode[K, V]) bool
	walk = func(node LLRBNode[K, V]) bool {
		if node == nil {
			return true
		}
		if isRedNode[K, V](node.Right()) {
			return false
		}
		return walk(node.Left()) && walk(node.Right())
	}
	if !walk(tree.Root()) {
		return ErrLeftLeaningViolation
	}
	return nil
}

/*
<X> is a RED node.
[X] is a BLACK node (or NIL).

	        [50]
	        /  \
	     <30>   [70]
	     /  \    /
	  [20] [40] <60>

2-3 tree like:

	      <30>-[50]
	     /    |    \
	  [20]  [40]  <60>-[70]

Every nil link sits at the same black depth, and the root is black.
*/
func BlackViolationValidate[K, V any](tree Rooted[K, V]) error {
	root := tree.Root()
	if root == nil {
		return nil
	}
	if isRedNode[K, V](root) {
		return ErrBlackViolation
	}

	var blackHeight func(node LLRBNode[K, V]) (int, bool)
	blackHeight = func(node LLRBNode[K, V]) (int, bool) {
		if node == nil {
			return 0, true
		}
		l, ok := blackHeight(node.Left())
		if !ok {
			return 0, false
		}
		r, ok := blackHeight(node.Right())
		if !ok || l != r {
			return 0, false
		}
		if !isRedNode[K, V](node) {
			l++
		}
		return l, true
	}
	if _, ok := blackHeight(root); !ok {
		return ErrBlackViolation
	}
	return nil
}

// OrderViolationValidate checks that the inorder keys are strictly ascending under cmp.
func OrderViolationValidate[K, V any](tree Rooted[K, V], cmp infra.Comparator[K]) error {
	var (
		prev    K
		hasPrev bool
		walk    func(node LLRBNode[K, V]) bool
	)
	walk = func(node LLRBNode[K, V]) bool {
		if node == nil {
			return true
		}
		if !walk(node.Left()) {
			return false
		}
		if hasPrev && cmp(prev, node.Key()) >= 0 {
			return false
		}
		prev, hasPrev = node.Key(), true
		return walk(node.Right())
	}
	if !walk(tree.Root()) {
		return ErrOrderViolation
	}
	return nil
}

// Validate runs every llrb rule check and combines the violations.
func Validate[K, V any](tree Rooted[K, V], cmp infra.Comparator[K]) error {
	return multierr.Combine(
		RedViolationValidate[K, V](tree),
		LeftLeaningViolationValidate[K, V](tree),
		BlackViolationValidate[K, V](tree),
		OrderViolationValidate[K, V](tree, cmp),
	)
}

// Print renders the tree shape for debugging, one node per line as
// "<side> <key> <color>".
func Print[K, V any](tree Rooted[K, V]) string {
	root := tree.Root()
	if root == nil {
		return "<nil>\n"
	}
	printer := treeprint.NewWithRoot(fmt.Sprintf("%v %s", root.Key(), root.Color()))
	printNode[K, V](printer, root)
	return printer.String()
}

func printNode[K, V any](branch treeprint.Tree, node LLRBNode[K, V]) {
	children := [2]LLRBNode[K, V]{node.Left(), node.Right()}
	for i, child := range children {
		if child == nil {
			continue
		}
		side := "L"
		if i == 1 {
			side = "R"
		}
		label := fmt.Sprintf("%s %v %s", side, child.Key(), child.Color())
		if child.Left() == nil && child.Right() == nil {
			branch.AddNode(label)
			continue
		}
		printNode[K, V](branch.AddBranch(label), child)
	}
}
