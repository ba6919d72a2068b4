package infra

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is a constraint that permits any unsigned integer type.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type Integer interface {
	Signed | Unsigned
}

type Float interface {
	~float32 | ~float64
}

// OrderedKey
// byte => ~uint8
type OrderedKey interface {
	Integer | Float | ~string
}

// Comparator is a total ordering over K.
// Assume i is the new key.
//  1. i == j, return 0.
//  2. i > j, return positive, turn to right part.
//  3. i < j, return negative, turn to left part.
type Comparator[K any] func(i, j K) int64

// NaturalComparator orders keys by the language's built-in operators.
// NaN is treated as equal to NaN and less than every other float.
func NaturalComparator[K OrderedKey]() Comparator[K] {
	return func(i, j K) int64 {
		if /* NaN */ i != i {
			if j != j {
				return 0
			}
			return -1
		} else if j != j {
			return 1
		}

		if i == j {
			return 0
		} else if i < j {
			return -1
		}
		return 1
	}
}

// ReverseComparator flips the ordering of cmp.
func ReverseComparator[K any](cmp Comparator[K]) Comparator[K] {
	return func(i, j K) int64 {
		return cmp(j, i)
	}
}
