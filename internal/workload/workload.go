// Package workload drives the monitor and cache with synthetic lookups so the
// report has something to show.
package workload

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/jt828/perfmon/pkg/cache"
	"github.com/jt828/perfmon/pkg/observability"
	"github.com/jt828/perfmon/pkg/perf"
)

var DefaultKeys = []string{"users", "orders", "inventory", "pricing", "settings"}

// NewLoader returns a cache loader that takes latency plus up to jitter.
func NewLoader(latency, jitter time.Duration) cache.Loader {
	return func(ctx context.Context, key string) (any, error) {
		d := latency
		if jitter > 0 {
			d += rand.N(jitter)
		}

		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-t.C:
			return fmt.Sprintf("value:%s", key), nil
		}
	}
}

type Workload struct {
	monitor perf.Monitor
	cache   cache.Cache
	log     observability.Logger
	keys    []string
}

func New(monitor perf.Monitor, c cache.Cache, log observability.Logger, keys ...string) *Workload {
	if len(keys) == 0 {
		keys = DefaultKeys
	}
	return &Workload{monitor: monitor, cache: c, log: log, keys: keys}
}

// RunOnce looks up every key once, measuring each lookup and the whole batch.
// Lookup failures are logged and do not stop the batch.
func (w *Workload) RunOnce(ctx context.Context) error {
	w.monitor.Mark("batch")
	defer w.monitor.Measure("batch", "workload.batch")

	for _, key := range w.keys {
		if err := ctx.Err(); err != nil {
			return err
		}

		name := "lookup:" + key
		w.monitor.Mark(name)
		_, err := w.cache.Get(ctx, key)
		w.monitor.Measure(name, "cache.get")
		if err != nil {
			w.log.Warn("lookup failed", observability.String("key", key), observability.Err(err))
		}
	}
	return nil
}

// Run calls RunOnce every interval and onReport every reportInterval until ctx
// is done.
func (w *Workload) Run(ctx context.Context, interval, reportInterval time.Duration, onReport func()) error {
	work := time.NewTicker(interval)
	defer work.Stop()
	report := time.NewTicker(reportInterval)
	defer report.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-work.C:
			if err := w.RunOnce(ctx); err != nil && ctx.Err() == nil {
				return err
			}
		case <-report.C:
			onReport()
		}
	}
}
