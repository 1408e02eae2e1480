package implementation

import (
	"sync"

	"github.com/jt828/perfmon/pkg/severity"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// zapConsole writes every call through; filtering belongs to the gate, so the
// wrapped logger should be built at debug level.
type zapConsole struct {
	mu     sync.Mutex
	root   *zap.SugaredLogger
	groups []*zap.SugaredLogger
}

// NewConsoleLogger builds a debug-level zap logger suitable for NewZapConsole.
func NewConsoleLogger(development bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.DisableStacktrace = true
	return cfg.Build()
}

func NewZapConsole(l *zap.Logger) severity.Console {
	return &zapConsole{root: l.Sugar()}
}

func (c *zapConsole) current() *zap.SugaredLogger {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n := len(c.groups); n > 0 {
		return c.groups[n-1]
	}
	return c.root
}

func (c *zapConsole) Log(args ...any)   { c.current().Info(args...) }
func (c *zapConsole) Info(args ...any)  { c.current().Info(args...) }
func (c *zapConsole) Warn(args ...any)  { c.current().Warn(args...) }
func (c *zapConsole) Error(args ...any) { c.current().Error(args...) }
func (c *zapConsole) Debug(args ...any) { c.current().Debug(args...) }

func (c *zapConsole) Group(title string) {
	parent := c.current()
	parent.Info(title)

	c.mu.Lock()
	c.groups = append(c.groups, parent.Named(title))
	c.mu.Unlock()
}

func (c *zapConsole) GroupEnd() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n := len(c.groups); n > 0 {
		c.groups = c.groups[:n-1]
	}
}
