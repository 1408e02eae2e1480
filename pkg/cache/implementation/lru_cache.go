package implementation

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/jt828/perfmon/pkg/cache"
	"github.com/jt828/perfmon/pkg/circuitbreaker"
	"github.com/jt828/perfmon/pkg/retry"
	"github.com/shopspring/decimal"
)

const (
	defaultCapacity = 256
	defaultTTL      = 5 * time.Minute
)

type lruCache struct {
	store    *expirable.LRU[string, any]
	capacity int
	load     cache.Loader
	cb       circuitbreaker.CircuitBreaker
	retry    retry.Retry

	hits         atomic.Uint64
	misses       atomic.Uint64
	loads        atomic.Uint64
	loadFailures atomic.Uint64
}

// NewCache returns a read-through cache. Loads run inside cb, and cb inside r.
func NewCache(
	cfg cache.Config,
	load cache.Loader,
	cb circuitbreaker.CircuitBreaker,
	r retry.Retry,
) (cache.Cache, error) {
	if load == nil {
		return nil, cache.ErrLoaderMissing
	}

	capacity := cfg.Capacity
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &lruCache{
		store:    expirable.NewLRU[string, any](capacity, nil, ttl),
		capacity: capacity,
		load:     load,
		cb:       cb,
		retry:    r,
	}, nil
}

func (c *lruCache) Get(ctx context.Context, key string) (any, error) {
	if v, ok := c.store.Get(key); ok {
		c.hits.Add(1)
		return v, nil
	}
	c.misses.Add(1)

	var value any
	err := c.retry.Execute(ctx, func() error {
		v, err := c.cb.Execute(func() (any, error) {
			c.loads.Add(1)
			return c.load(ctx, key)
		})
		if err != nil {
			return err
		}
		value = v
		return nil
	})
	if err != nil {
		c.loadFailures.Add(1)
		return nil, fmt.Errorf("cache: load %q: %w", key, err)
	}

	c.store.Add(key, value)
	return value, nil
}

func (c *lruCache) Invalidate(key string) {
	c.store.Remove(key)
}

func (c *lruCache) Stats() cache.Stats {
	hits := c.hits.Load()
	misses := c.misses.Load()

	hitRate := "n/a"
	if total := hits + misses; total > 0 {
		hitRate = decimal.NewFromInt(int64(hits)).
			Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(int64(total))).
			StringFixed(1) + "%"
	}

	return cache.Stats{
		Entries:      c.store.Len(),
		Capacity:     c.capacity,
		Hits:         hits,
		Misses:       misses,
		Loads:        c.loads.Load(),
		LoadFailures: c.loadFailures.Load(),
		HitRate:      hitRate,
		Breaker:      c.cb.State().String(),
	}
}
