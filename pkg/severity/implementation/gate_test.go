package implementation_test

import (
	"testing"

	"github.com/jt828/perfmon/pkg/severity"
	severityImpl "github.com/jt828/perfmon/pkg/severity/implementation"
	"github.com/stretchr/testify/assert"
)

type recordingConsole struct {
	calls []string
	args  [][]any
}

func (c *recordingConsole) record(method string, args []any) {
	c.calls = append(c.calls, method)
	c.args = append(c.args, args)
}

func (c *recordingConsole) Log(args ...any)    { c.record("log", args) }
func (c *recordingConsole) Info(args ...any)   { c.record("info", args) }
func (c *recordingConsole) Warn(args ...any)   { c.record("warn", args) }
func (c *recordingConsole) Error(args ...any)  { c.record("error", args) }
func (c *recordingConsole) Debug(args ...any)  { c.record("debug", args) }
func (c *recordingConsole) Group(title string) { c.record("group", []any{title}) }
func (c *recordingConsole) GroupEnd()          { c.record("groupEnd", nil) }

func emitAll(g severity.Gate) {
	g.Error("e")
	g.Warn("w")
	g.Info("i")
	g.Log("l")
	g.Debug("d")
}

func TestGate_Filtering(t *testing.T) {
	tests := []struct {
		level string
		want  []string
	}{
		{"error", []string{"error"}},
		{"warn", []string{"error", "warn"}},
		{"info", []string{"error", "warn", "info", "log"}},
		{"debug", []string{"error", "warn", "info", "log", "debug"}},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			console := &recordingConsole{}
			g := severityImpl.NewGate(severity.Config{LogLevel: tt.level}, console)

			emitAll(g)

			assert.Equal(t, tt.want, console.calls)
		})
	}
}

func TestGate_SetLevel(t *testing.T) {
	t.Run("debug level forwards debug calls", func(t *testing.T) {
		console := &recordingConsole{}
		g := severityImpl.NewGate(severity.Config{}, console)

		g.Debug("hidden")
		assert.True(t, g.SetLevel("debug"))
		g.Debug("visible", 42)

		assert.Equal(t, []string{"debug"}, console.calls)
		assert.Equal(t, []any{"visible", 42}, console.args[0])
	})

	t.Run("unknown name leaves level unchanged", func(t *testing.T) {
		g := severityImpl.NewGate(severity.Config{LogLevel: "info"}, &recordingConsole{})

		assert.False(t, g.SetLevel("invalid-name"))
		assert.Equal(t, severity.Info, g.Level())
	})

	t.Run("instances are independent", func(t *testing.T) {
		a := severityImpl.NewGate(severity.Config{}, &recordingConsole{})
		b := severityImpl.NewGate(severity.Config{}, &recordingConsole{})

		a.SetLevel("error")

		assert.Equal(t, severity.Error, a.Level())
		assert.Equal(t, severity.Warn, b.Level())
	})
}

func TestGate_Emit(t *testing.T) {
	g := severityImpl.NewGate(severity.Config{LogLevel: "warn"}, &recordingConsole{})
	var got [][]any
	sink := func(args ...any) { got = append(got, args) }

	g.Emit(severity.Error, sink, "a")
	g.Emit(severity.Warn, sink, "b", 1)
	g.Emit(severity.Info, sink, "c")

	assert.Equal(t, [][]any{{"a"}, {"b", 1}}, got)
}

func TestGate_Group(t *testing.T) {
	t.Run("forwarded at info", func(t *testing.T) {
		console := &recordingConsole{}
		g := severityImpl.NewGate(severity.Config{LogLevel: "info"}, console)

		g.Group("title")
		g.GroupEnd()

		assert.Equal(t, []string{"group", "groupEnd"}, console.calls)
		assert.Equal(t, []any{"title"}, console.args[0])
	})

	t.Run("suppressed below info", func(t *testing.T) {
		console := &recordingConsole{}
		g := severityImpl.NewGate(severity.Config{LogLevel: "warn"}, console)

		g.Group("title")
		g.GroupEnd()

		assert.Empty(t, console.calls)
	})
}
