package kv

import (
	"encoding/binary"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"

	"github.com/benz9527/xds/lib/infra"
)

// HashFunc maps a key to a 64-bit hash. Keys that compare equal
// must hash equal.
type HashFunc[K any] func(key K) uint64

type Hasher[K infra.OrderedKey] struct{}

func NewHasher[K infra.OrderedKey]() Hasher[K] {
	return Hasher[K]{}
}

func (h Hasher[K]) Hash(key K) uint64 {
	switch k := any(key).(type) {
	case string:
		return xxhash.Sum64String(k)
	case int:
		return hashUint64(uint64(k))
	case int64:
		return hashUint64(uint64(k))
	case int32:
		return hashUint64(uint64(k))
	case uint64:
		return hashUint64(k)
	case uint:
		return hashUint64(uint64(k))
	case float64:
		return hashFloat64(k)
	}
	// Named types over the ordered kinds.
	v := reflect.ValueOf(key)
	switch v.Kind() {
	case reflect.String:
		return xxhash.Sum64String(v.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return hashUint64(uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return hashUint64(v.Uint())
	case reflect.Float32, reflect.Float64:
		return hashFloat64(v.Float())
	default:
	}
	panic( /* debug assertion */ "[hashtable] unsupported ordered key kind " + v.Kind().String())
}

func hashUint64(k uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], k)
	return xxhash.Sum64(buf[:])
}

// hashFloat64 folds -0 into +0 and every NaN into one payload, the
// natural comparator treats them as equal.
func hashFloat64(f float64) uint64 {
	if f == 0 {
		f = 0
	} else if math.IsNaN(f) {
		f = math.NaN()
	}
	return hashUint64(math.Float64bits(f))
}
