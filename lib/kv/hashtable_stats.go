package kv

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	HashtableStatsName = "xds/hashtable"
)

type hashtableStats struct {
	elements        metric.Int64UpDownCounter
	resizeCount     metric.Int64Counter
	resizeDurations metric.Int64Histogram
	slots           metric.Int64ObservableGauge
}

func (stats *hashtableStats) RecordElements(delta int64) {
	if stats == nil {
		return
	}
	stats.elements.Add(context.Background(), delta)
}

func (stats *hashtableStats) RecordResize(dir resizeDirection, elapsed time.Duration) {
	if stats == nil {
		return
	}
	as := attribute.NewSet(
		attribute.String("direction", dir.String()),
	)
	stats.resizeCount.Add(context.Background(), 1, metric.WithAttributeSet(as))
	stats.resizeDurations.Record(context.Background(), elapsed.Microseconds(), metric.WithAttributeSet(as))
}

func newHashtableStats(name string, slots func() uint64) *hashtableStats {
	meterName := fmt.Sprintf("%s/%s", HashtableStatsName, name)
	meter := otel.Meter(meterName)
	stats := &hashtableStats{
		elements: lo.Must[metric.Int64UpDownCounter](meter.
			Int64UpDownCounter(
				"xds.hashtable.elements",
				metric.WithDescription("The number of elements in the hash table."),
			),
		),
		resizeCount: lo.Must[metric.Int64Counter](meter.
			Int64Counter(
				"xds.hashtable.resize.count",
				metric.WithDescription("The number of bucket array rebuilds."),
			),
		),
		resizeDurations: lo.Must[metric.Int64Histogram](meter.
			Int64Histogram(
				"xds.hashtable.resize.duration",
				metric.WithDescription("The duration of a bucket array rebuild. In microseconds."),
				metric.WithUnit("us"),
			),
		),
	}
	stats.slots = lo.Must[metric.Int64ObservableGauge](meter.
		Int64ObservableGauge(
			"xds.hashtable.slots",
			metric.WithDescription("The current number of buckets."),
			metric.WithInt64Callback(func(ctx context.Context, ob metric.Int64Observer) error {
				ob.Observe(int64(slots()))
				return nil
			}),
		),
	)
	return stats
}
