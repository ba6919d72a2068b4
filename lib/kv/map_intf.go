package kv

import (
	"fmt"

	"github.com/benz9527/xds/lib/tree"
)

var (
	ErrNilKey       = fmt.Errorf("[hashtable] %w", tree.ErrNilKey)
	ErrKeyNotExists = fmt.Errorf("[hashtable] %w", tree.ErrKeyNotExists)
)

// Map is a hashed key/value container. Not thread safe.
type Map[K, V any] interface {
	Len() int64
	IsEmpty() bool
	// Add overwrites the value of an existing key and reports
	// whether a new key was inserted.
	Add(key K, val V) (bool, error)
	// Remove reports the removed value, or false if the key is absent.
	Remove(key K) (V, bool, error)
	Contains(key K) (bool, error)
	Get(key K) (V, error)
	// Set only updates existing keys.
	Set(key K, val V) error
	Foreach(action func(key K, val V) bool)
	Keys() []K
	Release()
}

// Set is a hashed collection of distinct elements. Not thread safe.
type Set[E any] interface {
	Len() int64
	IsEmpty() bool
	Add(e E) (bool, error)
	Remove(e E) (bool, error)
	Contains(e E) (bool, error)
	Foreach(action func(e E) bool)
	Keys() []E
	Release()
}
