package cache

import (
	"context"
	"errors"
	"time"
)

var ErrLoaderMissing = errors.New("cache: loader is required")

type Loader func(ctx context.Context, key string) (any, error)

type Cache interface {
	// Get returns the cached value for key, loading it on a miss.
	Get(ctx context.Context, key string) (any, error)
	Invalidate(key string)
	Stats() Stats
}

type Config struct {
	Capacity int
	TTL      time.Duration
}

type Stats struct {
	Entries      int    `json:"entries" yaml:"entries"`
	Capacity     int    `json:"capacity" yaml:"capacity"`
	Hits         uint64 `json:"hits" yaml:"hits"`
	Misses       uint64 `json:"misses" yaml:"misses"`
	Loads        uint64 `json:"loads" yaml:"loads"`
	LoadFailures uint64 `json:"load_failures" yaml:"load_failures"`
	HitRate      string `json:"hit_rate" yaml:"hit_rate"`
	Breaker      string `json:"breaker" yaml:"breaker"`
}
