package severity_test

import (
	"testing"

	"github.com/jt828/perfmon/pkg/severity"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		want  severity.Level
		known bool
	}{
		{"error", severity.Error, true},
		{"warn", severity.Warn, true},
		{"info", severity.Info, true},
		{"debug", severity.Debug, true},
		{" DEBUG ", severity.Debug, true},
		{"verbose", severity.Warn, false},
		{"", severity.Warn, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := severity.ParseLevel(tt.name)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.known, ok)
		})
	}
}

func TestLevel_Ordering(t *testing.T) {
	assert.Less(t, severity.Error, severity.Warn)
	assert.Less(t, severity.Warn, severity.Info)
	assert.Less(t, severity.Info, severity.Debug)
	assert.Equal(t, "info", severity.Info.String())
	assert.Equal(t, "unknown", severity.Level(42).String())
}

func TestResolveLevel(t *testing.T) {
	tests := []struct {
		name string
		cfg  severity.Config
		want severity.Level
	}{
		{"production default", severity.Config{}, severity.Warn},
		{"development default", severity.Config{Development: true}, severity.Debug},
		{"configured level wins over build mode", severity.Config{Development: true, LogLevel: "error"}, severity.Error},
		{"configured level in production", severity.Config{LogLevel: "info"}, severity.Info},
		{"unrecognised level falls back to warn", severity.Config{Development: true, LogLevel: "loud"}, severity.Warn},
		{"forced debug wins over everything", severity.Config{LogLevel: "error", ForceDebug: true}, severity.Debug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, severity.ResolveLevel(tt.cfg))
		})
	}
}
