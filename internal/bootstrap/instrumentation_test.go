package bootstrap_test

import (
	"context"
	"testing"
	"time"

	"github.com/jt828/perfmon/internal/bootstrap"
	"github.com/jt828/perfmon/internal/config"
	"github.com/jt828/perfmon/pkg/cache"
	obsImpl "github.com/jt828/perfmon/pkg/observability/implementation"
	"github.com/jt828/perfmon/pkg/severity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeInstrumentation(t *testing.T) {
	obs, err := obsImpl.NewObservability(obsImpl.Config{})
	require.NoError(t, err)

	cfg := config.Config{Enabled: true, LogLevel: "error", CacheSize: 8, CacheTTL: time.Minute}
	load := func(ctx context.Context, key string) (any, error) { return key, nil }

	inst, err := bootstrap.InitializeInstrumentation(cfg, obs, load)
	require.NoError(t, err)
	defer inst.Close()

	assert.Equal(t, severity.Error, inst.Gate.Level())
	assert.True(t, inst.Monitor.Enabled())

	inst.Monitor.Mark("lookup")
	_, err = inst.Cache.Get(context.Background(), "k")
	require.NoError(t, err)
	_, ok := inst.Monitor.Measure("lookup", "cache.get")
	require.True(t, ok)

	report := inst.Monitor.Report()
	require.NotNil(t, report)
	stats, ok := report.Cache.(cache.Stats)
	require.True(t, ok)
	assert.Equal(t, uint64(1), stats.Misses)
	assert.Equal(t, 8, stats.Capacity)
	require.Len(t, report.RecentMeasures, 1)
	assert.NotZero(t, report.RecentMeasures[0].ID)

	assert.NotNil(t, obsImpl.PromRegistry(obs.Meter()))
}

func TestInitializeInstrumentation_Disabled(t *testing.T) {
	obs, err := obsImpl.NewObservability(obsImpl.Config{})
	require.NoError(t, err)

	inst, err := bootstrap.InitializeInstrumentation(config.Config{}, obs, func(ctx context.Context, key string) (any, error) {
		return nil, nil
	})
	require.NoError(t, err)
	defer inst.Close()

	assert.False(t, inst.Monitor.Enabled())
	assert.Nil(t, inst.Monitor.Report())
	assert.Equal(t, severity.Warn, inst.Gate.Level())
}
