package tree

import (
	"errors"
	"iter"
)

type RBColor uint8

const (
	Black RBColor = iota
	Red
)

func (c RBColor) String() string {
	switch c {
	case Black:
		return "Black"
	case Red:
		return "Red"
	default:
	}
	return "RBColor(unknown)"
}

func (c RBColor) flip() RBColor {
	if c == Red {
		return Black
	}
	return Red
}

var (
	ErrNilKey       = errors.New("[llrb] nil key")
	ErrEmptyTree    = errors.New("[llrb] tree is empty")
	ErrKeyNotExists = errors.New("[llrb] key doesn't exist")
)

type LLRBNode[K, V any] interface {
	Key() K
	Val() V
	Color() RBColor
	Left() LLRBNode[K, V]
	Right() LLRBNode[K, V]
}

// Rooted is anything exposing an LLRB root, used by the validators.
type Rooted[K, V any] interface {
	Root() LLRBNode[K, V]
}

// LLRBTree is the key/value (map) variant of the left-leaning red-black tree.
// Every method taking a key rejects the nil key with ErrNilKey.
type LLRBTree[K, V any] interface {
	Rooted[K, V]
	Len() int64
	IsEmpty() bool
	Contains(key K) (bool, error)
	// Get returns ErrKeyNotExists if the key is absent.
	Get(key K) (V, error)
	// Set updates the value of an existing key only. It never inserts.
	Set(key K, val V) error
	// Insert adds a new pair or overwrites the value of an existing key.
	// It reports whether a new node was created.
	Insert(key K, val V) (bool, error)
	// Remove returns the removed value and whether the key was present.
	Remove(key K) (V, bool, error)
	RemoveMin() (K, V, error)
	RemoveMax() (K, V, error)
	Min() (K, V, error)
	Max() (K, V, error)
	// InOrder is lazy and can be ranged over again after it is exhausted.
	// The tree must not be mutated while ranging.
	InOrder() iter.Seq2[K, V]
	Foreach(action func(idx int64, color RBColor, key K, val V) bool)
	Release()
}

// LLRBSet is the single element (set) variant.
type LLRBSet[E any] interface {
	Rooted[E, struct{}]
	Len() int64
	IsEmpty() bool
	Contains(e E) (bool, error)
	// Add reports whether e was absent before.
	Add(e E) (bool, error)
	// Remove reports whether e was present.
	Remove(e E) (bool, error)
	RemoveMin() (E, error)
	RemoveMax() (E, error)
	Min() (E, error)
	Max() (E, error)
	InOrder() iter.Seq[E]
	Foreach(action func(idx int64, color RBColor, e E) bool)
	Release()
}
