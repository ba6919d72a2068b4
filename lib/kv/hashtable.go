package kv

import (
	"time"

	"go.uber.org/zap"

	"github.com/benz9527/xds/lib/infra"
	"github.com/benz9527/xds/lib/sorted"
	"github.com/benz9527/xds/xlog"
)

var _ Map[int, struct{}] = (*Hashtable[int, struct{}])(nil)

// Hashtable is a separate chaining hash table whose buckets are
// ordered maps, so a degenerate hasher costs O(log n) per operation
// instead of O(n).
// Not thread safe.
type Hashtable[K, V any] struct {
	slotting[K]
	cmp     infra.Comparator[K]
	buckets []*sorted.Map[K, V]
	logger  xlog.XLogger
	stats   *hashtableStats
}

func (ht *Hashtable[K, V]) Len() int64 {
	return ht.count
}

func (ht *Hashtable[K, V]) IsEmpty() bool {
	return ht.count == 0
}

// Slots returns the current number of buckets.
func (ht *Hashtable[K, V]) Slots() uint64 {
	return ht.m
}

func (ht *Hashtable[K, V]) bucketOf(key K) *sorted.Map[K, V] {
	return ht.buckets[ht.slotOf(key, ht.m)]
}

// Add inserts the pair, growing the bucket array once the average
// chain length reaches the upper tolerance. A duplicate key only has
// its value replaced.
func (ht *Hashtable[K, V]) Add(key K, val V) (bool, error) {
	if infra.IsNilKey(key) {
		return false, infra.WrapErrorStack(ErrNilKey)
	}
	b := ht.bucketOf(key)
	inserted, err := b.Add(key, val)
	if err != nil {
		return false, infra.WrapErrorStackWithMessage(err, "[hashtable] add")
	}
	if !inserted {
		return false, nil
	}
	ht.count++
	if idx, ok := ht.nextCapIdx(resizeGrow); ok {
		// Only a comparator or hasher breaking its contract fails here.
		if err = ht.resize(idx, resizeGrow); err != nil {
			_, _, _ = b.Remove(key)
			ht.count--
			return false, err
		}
	}
	ht.stats.RecordElements(1)
	return true, nil
}

// Remove deletes the key and returns its value, shrinking the bucket
// array once the average chain length drops below the lower tolerance.
func (ht *Hashtable[K, V]) Remove(key K) (V, bool, error) {
	var zero V
	if infra.IsNilKey(key) {
		return zero, false, infra.WrapErrorStack(ErrNilKey)
	}
	b := ht.bucketOf(key)
	val, removed, err := b.Remove(key)
	if err != nil {
		return zero, false, infra.WrapErrorStackWithMessage(err, "[hashtable] remove")
	}
	if !removed {
		return zero, false, nil
	}
	ht.count--
	if idx, ok := ht.nextCapIdx(resizeShrink); ok {
		// Only a comparator or hasher breaking its contract fails here.
		if err = ht.resize(idx, resizeShrink); err != nil {
			_, _ = b.Add(key, val)
			ht.count++
			return zero, false, err
		}
	}
	ht.stats.RecordElements(-1)
	return val, true, nil
}

func (ht *Hashtable[K, V]) Contains(key K) (bool, error) {
	if infra.IsNilKey(key) {
		return false, infra.WrapErrorStack(ErrNilKey)
	}
	return ht.bucketOf(key).Contains(key)
}

func (ht *Hashtable[K, V]) Get(key K) (V, error) {
	var zero V
	if infra.IsNilKey(key) {
		return zero, infra.WrapErrorStack(ErrNilKey)
	}
	b := ht.bucketOf(key)
	if ok, _ := b.Contains(key); !ok {
		return zero, infra.WrapErrorStack(ErrKeyNotExists)
	}
	return b.Get(key)
}

// Set updates the value of an existing key. It never inserts.
func (ht *Hashtable[K, V]) Set(key K, val V) error {
	if infra.IsNilKey(key) {
		return infra.WrapErrorStack(ErrNilKey)
	}
	b := ht.bucketOf(key)
	if ok, _ := b.Contains(key); !ok {
		return infra.WrapErrorStack(ErrKeyNotExists)
	}
	return b.Set(key, val)
}

// Foreach visits buckets by slot index and each bucket in key order.
// Returning false from action stops the walk.
func (ht *Hashtable[K, V]) Foreach(action func(key K, val V) bool) {
	for _, b := range ht.buckets {
		for k, v := range b.InOrder() {
			if !action(k, v) {
				return
			}
		}
	}
}

func (ht *Hashtable[K, V]) Keys() []K {
	keys := make([]K, 0, ht.count)
	ht.Foreach(func(key K, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Release drops every element and returns to the smallest capacity.
func (ht *Hashtable[K, V]) Release() {
	for _, b := range ht.buckets {
		b.Release()
	}
	ht.stats.RecordElements(-ht.count)
	ht.reset()
	ht.buckets = newMapBuckets[K, V](ht.m, ht.cmp)
}

// resize rehashes every entry into a fresh bucket array of
// capacities[capIdx]. The live array is swapped only after all entries
// landed, a failure leaves the table as it was.
func (ht *Hashtable[K, V]) resize(capIdx int, dir resizeDirection) error {
	startedAt := time.Now()
	newM := capacities[capIdx]
	buckets := newMapBuckets[K, V](newM, ht.cmp)
	for _, b := range ht.buckets {
		for k, v := range b.InOrder() {
			if _, err := buckets[ht.slotOf(k, newM)].Add(k, v); err != nil {
				return infra.WrapErrorStackWithMessage(err, "[hashtable] resize")
			}
		}
	}
	oldM, oldBuckets := ht.m, ht.buckets
	ht.buckets, ht.m, ht.capIdx = buckets, newM, capIdx
	for _, b := range oldBuckets {
		b.Release()
	}
	ht.logger.Debug("[hashtable] resized",
		zap.String("direction", dir.String()),
		zap.Uint64("from", oldM),
		zap.Uint64("to", newM),
		zap.Int64("count", ht.count),
	)
	ht.stats.RecordResize(dir, time.Since(startedAt))
	return nil
}

func newMapBuckets[K, V any](m uint64, cmp infra.Comparator[K]) []*sorted.Map[K, V] {
	buckets := make([]*sorted.Map[K, V], m)
	for i := range buckets {
		buckets[i] = sorted.NewMapFunc[K, V](cmp)
	}
	return buckets
}

func newHashtable[K, V any](cfg *hashtableCfg[K]) *Hashtable[K, V] {
	ht := &Hashtable[K, V]{
		slotting: newSlotting[K](cfg.hash, cfg.upperTol, cfg.lowerTol),
		cmp:      cfg.cmp,
		logger:   cfg.logger,
	}
	ht.buckets = newMapBuckets[K, V](ht.m, ht.cmp)
	if cfg.isStatsEnabled {
		ht.stats = newHashtableStats(cfg.statsName, ht.Slots)
	}
	return ht
}

// NewHashtable hashes ordered keys with xxhash and orders each bucket
// by the natural comparator.
func NewHashtable[K infra.OrderedKey, V any](opts ...HashtableOption[K]) (*Hashtable[K, V], error) {
	cfg, err := newHashtableCfg[K](NewHasher[K]().Hash, infra.NaturalComparator[K](), opts...)
	if err != nil {
		return nil, err
	}
	return newHashtable[K, V](cfg), nil
}

func NewHashtableFunc[K, V any](
	hash HashFunc[K],
	cmp infra.Comparator[K],
	opts ...HashtableOption[K],
) (*Hashtable[K, V], error) {
	cfg, err := newHashtableCfg[K](hash, cmp, opts...)
	if err != nil {
		return nil, err
	}
	return newHashtable[K, V](cfg), nil
}
