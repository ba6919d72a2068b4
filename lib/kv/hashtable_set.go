package kv

import (
	"time"

	"go.uber.org/zap"

	"github.com/benz9527/xds/lib/infra"
	"github.com/benz9527/xds/lib/sorted"
	"github.com/benz9527/xds/xlog"
)

var _ Set[int] = (*SetHashtable[int])(nil)

// SetHashtable is the element-only twin of Hashtable, its buckets are
// ordered sets.
type SetHashtable[E any] struct {
	slotting[E]
	cmp     infra.Comparator[E]
	buckets []*sorted.Set[E]
	logger  xlog.XLogger
	stats   *hashtableStats
}

func (ht *SetHashtable[E]) Len() int64 {
	return ht.count
}

func (ht *SetHashtable[E]) IsEmpty() bool {
	return ht.count == 0
}

func (ht *SetHashtable[E]) Slots() uint64 {
	return ht.m
}

func (ht *SetHashtable[E]) bucketOf(e E) *sorted.Set[E] {
	return ht.buckets[ht.slotOf(e, ht.m)]
}

func (ht *SetHashtable[E]) Add(e E) (bool, error) {
	if infra.IsNilKey(e) {
		return false, infra.WrapErrorStack(ErrNilKey)
	}
	b := ht.bucketOf(e)
	added, err := b.Add(e)
	if err != nil {
		return false, infra.WrapErrorStackWithMessage(err, "[hashtable] add")
	}
	if !added {
		return false, nil
	}
	ht.count++
	if idx, ok := ht.nextCapIdx(resizeGrow); ok {
		// Only a comparator or hasher breaking its contract fails here.
		if err = ht.resize(idx, resizeGrow); err != nil {
			_, _ = b.Remove(e)
			ht.count--
			return false, err
		}
	}
	ht.stats.RecordElements(1)
	return true, nil
}

func (ht *SetHashtable[E]) Remove(e E) (bool, error) {
	if infra.IsNilKey(e) {
		return false, infra.WrapErrorStack(ErrNilKey)
	}
	b := ht.bucketOf(e)
	removed, err := b.Remove(e)
	if err != nil {
		return false, infra.WrapErrorStackWithMessage(err, "[hashtable] remove")
	}
	if !removed {
		return false, nil
	}
	ht.count--
	if idx, ok := ht.nextCapIdx(resizeShrink); ok {
		// Only a comparator or hasher breaking its contract fails here.
		if err = ht.resize(idx, resizeShrink); err != nil {
			_, _ = b.Add(e)
			ht.count++
			return false, err
		}
	}
	ht.stats.RecordElements(-1)
	return true, nil
}

func (ht *SetHashtable[E]) Contains(e E) (bool, error) {
	if infra.IsNilKey(e) {
		return false, infra.WrapErrorStack(ErrNilKey)
	}
	return ht.bucketOf(e).Contains(e)
}

func (ht *SetHashtable[E]) Foreach(action func(e E) bool) {
	for _, b := range ht.buckets {
		for e := range b.InOrder() {
			if !action(e) {
				return
			}
		}
	}
}

func (ht *SetHashtable[E]) Keys() []E {
	keys := make([]E, 0, ht.count)
	ht.Foreach(func(e E) bool {
		keys = append(keys, e)
		return true
	})
	return keys
}

func (ht *SetHashtable[E]) Release() {
	for _, b := range ht.buckets {
		b.Release()
	}
	ht.stats.RecordElements(-ht.count)
	ht.reset()
	ht.buckets = newSetBuckets[E](ht.m, ht.cmp)
}

func (ht *SetHashtable[E]) resize(capIdx int, dir resizeDirection) error {
	startedAt := time.Now()
	newM := capacities[capIdx]
	buckets := newSetBuckets[E](newM, ht.cmp)
	for _, b := range ht.buckets {
		for e := range b.InOrder() {
			if _, err := buckets[ht.slotOf(e, newM)].Add(e); err != nil {
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

func newSetBuckets[E any](m uint64, cmp infra.Comparator[E]) []*sorted.Set[E] {
	buckets := make([]*sorted.Set[E], m)
	for i := range buckets {
		buckets[i] = sorted.NewSetFunc[E](cmp)
	}
	return buckets
}

func newSetHashtable[E any](cfg *hashtableCfg[E]) *SetHashtable[E] {
	ht := &SetHashtable[E]{
		slotting: newSlotting[E](cfg.hash, cfg.upperTol, cfg.lowerTol),
		cmp:      cfg.cmp,
		logger:   cfg.logger,
	}
	ht.buckets = newSetBuckets[E](ht.m, ht.cmp)
	if cfg.isStatsEnabled {
		ht.stats = newHashtableStats(cfg.statsName, ht.Slots)
	}
	return ht
}

func NewSetHashtable[E infra.OrderedKey](opts ...HashtableOption[E]) (*SetHashtable[E], error) {
	cfg, err := newHashtableCfg[E](NewHasher[E]().Hash, infra.NaturalComparator[E](), opts...)
	if err != nil {
		return nil, err
	}
	return newSetHashtable[E](cfg), nil
}

func NewSetHashtableFunc[E any](
	hash HashFunc[E],
	cmp infra.Comparator[E],
	opts ...HashtableOption[E],
) (*SetHashtable[E], error) {
	cfg, err := newHashtableCfg[E](hash, cmp, opts...)
	if err != nil {
		return nil, err
	}
	return newSetHashtable[E](cfg), nil
}
