package kv

import (
	"math"
)

// Slot counts. Each step roughly doubles and stays prime.
var capacities = [...]uint64{
	53, 97, 193, 389, 769, 1543, 3079, 6151, 12289, 24593, 49157, 98317, 196613,
	393241, 786433, 1572869, 3145739, 6291469, 12582917, 25165843, 50331653, 100663319, 201326611,
	402653189, 805306457, 1610612741,
}

const (
	defaultUpperTolerance int64 = 10
	defaultLowerTolerance int64 = 2
	// Keeps upperTol*m within int64 at the largest capacity.
	maxUpperTolerance int64 = math.MaxInt64 / 1610612741
)

// tolerancesFit reports whether a grow from any capacity lands at or
// above the lower bound of the next one. Otherwise the table would
// rebuild back and forth between two neighbouring primes.
func tolerancesFit(upperTol, lowerTol int64) bool {
	if upperTol <= 0 || lowerTol <= 0 || upperTol > maxUpperTolerance || lowerTol >= upperTol {
		return false
	}
	for i := 0; i+1 < len(capacities); i++ {
		if upperTol*int64(capacities[i]) < lowerTol*int64(capacities[i+1]) {
			return false
		}
	}
	return true
}

type resizeDirection uint8

const (
	resizeGrow resizeDirection = iota
	resizeShrink
)

func (d resizeDirection) String() string {
	if d == resizeShrink {
		return "shrink"
	}
	return "grow"
}

// slotting tracks the load of a chained hash table. The average chain
// length count/m is kept within [lowerTol, upperTol) except at either
// end of the capacity schedule.
type slotting[K any] struct {
	hash     HashFunc[K]
	capIdx   int
	m        uint64
	count    int64
	upperTol int64
	lowerTol int64
}

func newSlotting[K any](hash HashFunc[K], upperTol, lowerTol int64) slotting[K] {
	return slotting[K]{
		hash:     hash,
		capIdx:   0,
		m:        capacities[0],
		upperTol: upperTol,
		lowerTol: lowerTol,
	}
}

func (s *slotting[K]) slotOf(key K, m uint64) uint64 {
	return (s.hash(key) & math.MaxInt64) % m
}

// nextCapIdx returns the schedule index the table should move to after
// the count changed, or false if it stays put.
func (s *slotting[K]) nextCapIdx(dir resizeDirection) (int, bool) {
	switch dir {
	case resizeGrow:
		if s.count >= s.upperTol*int64(s.m) && s.capIdx+1 < len(capacities) {
			return s.capIdx + 1, true
		}
	case resizeShrink:
		if s.count < s.lowerTol*int64(s.m) && s.capIdx > 0 {
			return s.capIdx - 1, true
		}
	}
	return s.capIdx, false
}

func (s *slotting[K]) reset() {
	s.capIdx = 0
	s.m = capacities[0]
	s.count = 0
}
