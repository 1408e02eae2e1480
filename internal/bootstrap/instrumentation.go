package bootstrap

import (
	"errors"
	"time"

	"github.com/jt828/perfmon/internal/config"
	"github.com/jt828/perfmon/pkg/cache"
	cacheImpl "github.com/jt828/perfmon/pkg/cache/implementation"
	"github.com/jt828/perfmon/pkg/circuitbreaker"
	cbImpl "github.com/jt828/perfmon/pkg/circuitbreaker/implementation"
	"github.com/jt828/perfmon/pkg/observability"
	"github.com/jt828/perfmon/pkg/perf"
	perfImpl "github.com/jt828/perfmon/pkg/perf/implementation"
	"github.com/jt828/perfmon/pkg/retry"
	retryImpl "github.com/jt828/perfmon/pkg/retry/implementation"
	"github.com/jt828/perfmon/pkg/severity"
	severityImpl "github.com/jt828/perfmon/pkg/severity/implementation"
	"go.uber.org/zap"
)

type Instrumentation struct {
	Gate    severity.Gate
	Monitor perf.Monitor
	Cache   cache.Cache

	console *zap.Logger
}

func (i *Instrumentation) Close() error {
	// stdout/stderr sync errors are not actionable
	_ = i.console.Sync()
	return nil
}

func InitializeGate(cfg config.Config) (severity.Gate, *zap.Logger, error) {
	l, err := severityImpl.NewConsoleLogger(cfg.Development)
	if err != nil {
		return nil, nil, err
	}
	return severityImpl.NewGate(cfg.Severity(), severityImpl.NewZapConsole(l)), l, nil
}

func InitializeCache(cfg config.Config, load cache.Loader) (cache.Cache, error) {
	cb := cbImpl.NewCircuitBreaker(circuitbreaker.Settings{
		Name:                   "cache-loader",
		MaxConsecutiveFailures: 5,
		OpenTimeout:            10 * time.Second,
	})

	r := retryImpl.NewRetry(
		retry.WithMaxRetries(2),
		retry.WithInterval(20*time.Millisecond),
		retry.WithRetryable(func(err error) bool {
			return !errors.Is(err, circuitbreaker.ErrOpen)
		}),
	)

	return cacheImpl.NewCache(cache.Config{Capacity: cfg.CacheSize, TTL: cfg.CacheTTL}, load, cb, r)
}

// InitializeInstrumentation wires the gate, the cache collaborator and the
// monitor. Extra opts are applied last and may override the defaults.
func InitializeInstrumentation(
	cfg config.Config,
	obs observability.Observability,
	load cache.Loader,
	opts ...perf.Option,
) (*Instrumentation, error) {
	gate, console, err := InitializeGate(cfg)
	if err != nil {
		return nil, err
	}

	c, err := InitializeCache(cfg, load)
	if err != nil {
		return nil, err
	}

	ids, err := InitializeSnowflake()
	if err != nil {
		return nil, err
	}

	base := []perf.Option{
		perf.WithCacheStats(perf.CacheStatsFunc(func() any { return c.Stats() })),
		perf.WithMeter(obs.Meter()),
		perf.WithIDGenerator(ids),
	}
	monitor := perfImpl.NewMonitor(cfg.Enabled, gate, append(base, opts...)...)

	obs.Logger().Info("instrumentation initialized",
		observability.String("level", gate.Level().String()),
		observability.Any("enabled", cfg.Enabled),
	)

	return &Instrumentation{Gate: gate, Monitor: monitor, Cache: c, console: console}, nil
}
