package observability

import (
	"context"
	"runtime"
	"strings"
	"sync"

	"github.com/samber/lo"
	otelruntime "go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const (
	AppStatsName = "xds/app"
)

var (
	once sync.Once
)

type appStats struct {
	ctx              context.Context
	shutdownCallback ShutdownFunc
	goroutines       metric.Int64ObservableUpDownCounter
	processes        metric.Int64ObservableUpDownCounter
}

func (stats *appStats) waitForShutdown() {
	if stats == nil || stats.shutdownCallback == nil {
		return
	}
	go func() {
		<-stats.ctx.Done()
		_ = stats.shutdownCallback(context.Background())
	}()
}

func appStatsMeterName(name string) string {
	builder := &strings.Builder{}
	builder.WriteString(AppStatsName)
	builder.WriteString("/")
	if len(strings.TrimSpace(name)) > 0 {
		builder.WriteString(name)
	} else {
		builder.WriteString("default")
	}
	return builder.String()
}

// InitAppStats registers the process level instruments and the otel
// runtime collectors against the global meter provider. Only the first
// call takes effect. The shutdown callback, if any, runs once ctx is done.
func InitAppStats(ctx context.Context, name string, shutdown ShutdownFunc) {
	once.Do(func() {
		meter := otel.Meter(
			appStatsMeterName(name),
			metric.WithInstrumentationVersion(otelruntime.Version()),
		)
		stats := &appStats{
			ctx:              ctx,
			shutdownCallback: shutdown,
			goroutines: lo.Must[metric.Int64ObservableUpDownCounter](meter.
				Int64ObservableUpDownCounter(
					"app.core.goroutines",
					metric.WithDescription(`The application goroutines' info.`),
					metric.WithInt64Callback(func(ctx context.Context, ob metric.Int64Observer) error {
						ob.Observe(int64(runtime.NumGoroutine()))
						return nil
					}),
				),
			),
			processes: lo.Must[metric.Int64ObservableUpDownCounter](meter.
				Int64ObservableUpDownCounter(
					"app.core.processes",
					metric.WithDescription(`The application processes' info.`),
					metric.WithInt64Callback(func(ctx context.Context, ob metric.Int64Observer) error {
						ob.Observe(int64(runtime.GOMAXPROCS(0)))
						return nil
					}),
				),
			),
		}
		_ = otelruntime.Start()
		stats.waitForShutdown()
	})
}
