// Package perf defines the in-process mark/measure instrumentation API.
//
// A caller marks the start of a named operation and later measures it. Each
// measure is appended to a bounded history from which reports are derived.
// A disabled Monitor ignores every call, so nothing accumulates while it is off.
package perf

import "time"

const (
	HistoryCapacity = 100
	RecentWindow    = 10

	// Measures above SlowThreshold are reported at warn level, those above
	// NoticeThreshold at info level.
	SlowThreshold   = 1000 * time.Millisecond
	NoticeThreshold = 500 * time.Millisecond
)

type Monitor interface {
	// Mark records the start of name. A second Mark with the same name
	// replaces the first.
	Mark(name string)
	// Measure closes the mark for name and records it under label, or under
	// name when label is empty. It returns false when disabled or when no
	// mark is open for name.
	Measure(name, label string) (time.Duration, bool)
	Time(name, label string, fn func()) (time.Duration, bool)
	// Discard drops the open mark for name without recording it. It works
	// while disabled, so callers with one-off names can release their mark.
	Discard(name string)

	// Report returns nil while disabled.
	Report() *Report
	LogReport()

	SetEnabled(enabled bool)
	Enabled() bool

	Len() int
	Pending() int
}

// CacheStatsProvider supplies the cache snapshot embedded in every report.
type CacheStatsProvider interface {
	Stats() any
}

type CacheStatsFunc func() any

func (f CacheStatsFunc) Stats() any { return f() }
