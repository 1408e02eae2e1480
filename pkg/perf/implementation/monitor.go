package implementation

import (
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/jt828/perfmon/pkg/perf"
	"github.com/jt828/perfmon/pkg/severity"
	"github.com/jt828/perfmon/pkg/snowflake"
)

type monitor struct {
	mu      sync.Mutex
	enabled bool
	open    map[string]time.Time
	history []perf.CompletedMeasure

	gate       severity.Gate
	clock      clockwork.Clock
	cacheStats perf.CacheStatsProvider
	ids        snowflake.Snowflake
	metrics    *monitorMetrics
}

func NewMonitor(enabled bool, gate severity.Gate, opts ...perf.Option) perf.Monitor {
	cfg := perf.ApplyOptions(opts...)

	m := &monitor{
		enabled:    enabled,
		open:       make(map[string]time.Time),
		history:    make([]perf.CompletedMeasure, 0, perf.HistoryCapacity+1),
		gate:       gate,
		clock:      cfg.Clock,
		cacheStats: cfg.CacheStats,
		ids:        cfg.IDs,
	}
	if cfg.Meter != nil {
		m.metrics = newMonitorMetrics(cfg.Meter)
	}
	return m
}

func (m *monitor) Mark(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.enabled {
		return
	}
	m.open[name] = m.clock.Now()
}

func (m *monitor) Measure(name, label string) (time.Duration, bool) {
	m.mu.Lock()
	if !m.enabled {
		m.mu.Unlock()
		return 0, false
	}

	start, ok := m.open[name]
	if !ok {
		m.mu.Unlock()
		return 0, false
	}
	delete(m.open, name)

	now := m.clock.Now()
	duration := max(now.Sub(start), 0)
	if label == "" {
		label = name
	}

	record := perf.CompletedMeasure{Label: label, Duration: duration, CompletedAt: now}
	if m.ids != nil {
		record.ID = m.ids.Generate()
	}

	m.history = append(m.history, record)
	if over := len(m.history) - perf.HistoryCapacity; over > 0 {
		n := copy(m.history, m.history[over:])
		m.history = m.history[:n]
	}
	retained := len(m.history)
	m.mu.Unlock()

	slow := duration > perf.SlowThreshold
	switch {
	case slow:
		m.gate.Warn(fmt.Sprintf("slow operation: %s took %s", label, perf.FormatMillis(duration)))
	case duration > perf.NoticeThreshold:
		m.gate.Log(fmt.Sprintf("operation %s took %s", label, perf.FormatMillis(duration)))
	}

	if m.metrics != nil {
		m.metrics.record(label, duration, slow, retained)
	}

	return duration, true
}

func (m *monitor) Time(name, label string, fn func()) (time.Duration, bool) {
	m.Mark(name)
	fn()
	return m.Measure(name, label)
}

func (m *monitor) Discard(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.open, name)
}

func (m *monitor) Report() *perf.Report {
	m.mu.Lock()
	if !m.enabled {
		m.mu.Unlock()
		return nil
	}
	history := make([]perf.CompletedMeasure, len(m.history))
	copy(history, m.history)
	m.mu.Unlock()

	var stats any
	if m.cacheStats != nil {
		stats = m.cacheStats.Stats()
	}

	return &perf.Report{
		Cache:            stats,
		RecentMeasures:   perf.Recent(history),
		AverageDurations: perf.AverageDurations(history),
		TotalMeasures:    len(history),
	}
}

func (m *monitor) LogReport() {
	report := m.Report()
	if report == nil {
		return
	}

	m.gate.Group("Performance Report")
	m.gate.Log(fmt.Sprintf("cache stats: %+v", report.Cache))
	m.gate.Log(fmt.Sprintf("average durations: %v", report.AverageDurations))
	m.gate.Log(fmt.Sprintf("recent measures: %v", report.RecentMeasures))
	m.gate.GroupEnd()
}

func (m *monitor) SetEnabled(enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.enabled = enabled
}

func (m *monitor) Enabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.enabled
}

func (m *monitor) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.history)
}

func (m *monitor) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.open)
}
