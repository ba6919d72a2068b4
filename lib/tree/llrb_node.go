package tree

type llrbNode[K, V any] struct {
	left  *llrbNode[K, V]
	right *llrbNode[K, V]
	key   K
	val   V
	color RBColor
}

// New nodes are always red.
func newLLRBNode[K, V any](key K, val V) *llrbNode[K, V] {
	return &llrbNode[K, V]{
		key:   key,
		val:   val,
		color: Red,
	}
}

func (node *llrbNode[K, V]) Key() K {
	return node.key
}

func (node *llrbNode[K, V]) Val() V {
	return node.val
}

func (node *llrbNode[K, V]) Color() RBColor {
	return node.color
}

func (node *llrbNode[K, V]) Left() LLRBNode[K, V] {
	if node == nil || node.left == nil {
		return nil
	}
	return node.left
}

func (node *llrbNode[K, V]) Right() LLRBNode[K, V] {
	if node == nil || node.right == nil {
		return nil
	}
	return node.right
}

// Nil links are black.
func (node *llrbNode[K, V]) isRed() bool {
	return node != nil && node.color == Red
}

func (node *llrbNode[K, V]) minimum() *llrbNode[K, V] {
	aux := node
	for ; aux != nil && aux.left != nil; aux = aux.left {
	}
	return aux
}

func (node *llrbNode[K, V]) maximum() *llrbNode[K, V] {
	aux := node
	for ; aux != nil && aux.right != nil; aux = aux.right {
	}
	return aux
}

/*
		 |                         |
		 X                         S
		/ \     leftRotate(X)     / \
	   L   S    ============>    X   Sd
		  / \                   / \
		Sc   Sd                L   Sc

S takes the color of X and X turns red.
*/
func (node *llrbNode[K, V]) leftRotate() *llrbNode[K, V] {
	if node == nil || node.right == nil {
		// impossible run to here
		panic( /* debug assertion */ "[llrb] left rotate node is nil or its right is nil")
	}
	x := node.right
	node.right = x.left
	x.left = node
	x.color = node.color
	node.color = Red
	return x
}

/*
		   |                       |
		   X                       L
		  / \   rightRotate(X)    / \
		 L   R  ============>   Ll   X
		/ \                         / \
	  Ll   Lr                      Lr  R
*/
func (node *llrbNode[K, V]) rightRotate() *llrbNode[K, V] {
	if node == nil || node.left == nil {
		// impossible run to here
		panic( /* debug assertion */ "[llrb] right rotate node is nil or its left is nil")
	}
	x := node.left
	node.left = x.right
	x.right = node
	x.color = node.color
	node.color = Red
	return x
}

// Splits a temporary 4-node on insertion, or merges
// a 3-node back into a 4-node on removal.
func (node *llrbNode[K, V]) flipColors() {
	node.color = node.color.flip()
	node.left.color = node.left.color.flip()
	node.right.color = node.right.color.flip()
}

// Assuming node is red and both node.left and node.left.left
// are black, make node.left or one of its children red.
func (node *llrbNode[K, V]) moveRedLeft() *llrbNode[K, V] {
	node.flipColors()
	if node.right.left.isRed() {
		node.right = node.right.rightRotate()
		node = node.leftRotate()
		node.flipColors()
	}
	return node
}

// Assuming node is red and both node.right and node.right.left
// are black, make node.right or one of its children red.
func (node *llrbNode[K, V]) moveRedRight() *llrbNode[K, V] {
	node.flipColors()
	if node.left.left.isRed() {
		node = node.rightRotate()
		node.flipColors()
	}
	return node
}

// The corrective steps run in this fixed order at every
// ancestor on the way back up, for both insertion and removal.
func (node *llrbNode[K, V]) balance() *llrbNode[K, V] {
	if node.right.isRed() && !node.left.isRed() {
		node = node.leftRotate()
	}
	if node.left.isRed() && node.left.left.isRed() {
		node = node.rightRotate()
	}
	if node.left.isRed() && node.right.isRed() {
		node.flipColors()
	}
	return node
}
