package perf

import (
	"github.com/jonboulle/clockwork"
	"github.com/jt828/perfmon/pkg/observability"
	"github.com/jt828/perfmon/pkg/snowflake"
)

type Config struct {
	Clock      clockwork.Clock
	CacheStats CacheStatsProvider
	Meter      observability.Meter
	IDs        snowflake.Snowflake
}

type Option func(*Config)

func WithClock(c clockwork.Clock) Option {
	return func(cfg *Config) {
		cfg.Clock = c
	}
}

func WithCacheStats(p CacheStatsProvider) Option {
	return func(cfg *Config) {
		cfg.CacheStats = p
	}
}

// WithMeter exports measures as metrics. Metric names are fixed, so a meter
// can back only one Monitor.
func WithMeter(m observability.Meter) Option {
	return func(cfg *Config) {
		cfg.Meter = m
	}
}

func WithIDGenerator(ids snowflake.Snowflake) Option {
	return func(cfg *Config) {
		cfg.IDs = ids
	}
}

func ApplyOptions(opts ...Option) *Config {
	c := &Config{Clock: clockwork.NewRealClock()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
