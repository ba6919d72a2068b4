package infra

import "github.com/samber/lo"

// IsNilKey reports whether key is the absent sentinel. Nil interfaces
// and typed nil pointers, maps, slices, funcs and chans are all absent.
func IsNilKey[K any](key K) bool {
	return lo.IsNil(key)
}
