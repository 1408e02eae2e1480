package retry

import (
	"context"
	"time"
)

type Retry interface {
	Execute(ctx context.Context, fn func() error) error
}

type Config struct {
	RetryableFn func(err error) bool
	Interval    time.Duration
	MaxRetries  uint64
}

type Option func(*Config)

func WithRetryable(fn func(err error) bool) Option {
	return func(c *Config) {
		c.RetryableFn = fn
	}
}

func WithInterval(d time.Duration) Option {
	return func(c *Config) {
		c.Interval = d
	}
}

func WithMaxRetries(n uint64) Option {
	return func(c *Config) {
		c.MaxRetries = n
	}
}

// ApplyOptions starts from 3 retries at a 50ms base interval.
func ApplyOptions(opts ...Option) *Config {
	c := &Config{
		Interval:   50 * time.Millisecond,
		MaxRetries: 3,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
