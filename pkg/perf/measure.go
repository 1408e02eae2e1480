package perf

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var nanosPerMilli = decimal.NewFromInt(int64(time.Millisecond))

type CompletedMeasure struct {
	ID          int64
	Label       string
	Duration    time.Duration
	CompletedAt time.Time
}

type measureView struct {
	ID          int64     `json:"id,omitempty" yaml:"id,omitempty"`
	Label       string    `json:"label" yaml:"label"`
	DurationMs  float64   `json:"duration_ms" yaml:"duration_ms"`
	CompletedAt time.Time `json:"completed_at" yaml:"completed_at"`
}

func (m CompletedMeasure) view() measureView {
	ms, _ := Millis(m.Duration).Round(3).Float64()
	return measureView{
		ID:          m.ID,
		Label:       m.Label,
		DurationMs:  ms,
		CompletedAt: m.CompletedAt,
	}
}

func (m CompletedMeasure) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.view())
}

func (m CompletedMeasure) MarshalYAML() (any, error) {
	return m.view(), nil
}

func (m CompletedMeasure) String() string {
	return fmt.Sprintf("%s=%s", m.Label, FormatMillis(m.Duration))
}

// Millis converts d to milliseconds without going through float64.
func Millis(d time.Duration) decimal.Decimal {
	return decimal.NewFromInt(d.Nanoseconds()).Div(nanosPerMilli)
}

// FormatMillis renders d as whole milliseconds, e.g. "200ms".
func FormatMillis(d time.Duration) string {
	return Millis(d).StringFixed(0) + "ms"
}
