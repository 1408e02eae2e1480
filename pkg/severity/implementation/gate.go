package implementation

import (
	"sync/atomic"

	"github.com/jt828/perfmon/pkg/severity"
)

type gate struct {
	level   atomic.Int32
	console severity.Console
}

// NewGate resolves the effective level from cfg once; later changes go
// through SetLevel.
func NewGate(cfg severity.Config, console severity.Console) severity.Gate {
	g := &gate{console: console}
	g.level.Store(int32(severity.ResolveLevel(cfg)))
	return g
}

func (g *gate) Level() severity.Level {
	return severity.Level(g.level.Load())
}

func (g *gate) SetLevel(name string) bool {
	lvl, ok := severity.ParseLevel(name)
	if !ok {
		return false
	}
	g.level.Store(int32(lvl))
	return true
}

func (g *gate) Emit(min severity.Level, sink func(args ...any), args ...any) {
	if g.Level() < min {
		return
	}
	sink(args...)
}

func (g *gate) Log(args ...any)   { g.Emit(severity.Info, g.console.Log, args...) }
func (g *gate) Info(args ...any)  { g.Emit(severity.Info, g.console.Info, args...) }
func (g *gate) Warn(args ...any)  { g.Emit(severity.Warn, g.console.Warn, args...) }
func (g *gate) Error(args ...any) { g.Emit(severity.Error, g.console.Error, args...) }
func (g *gate) Debug(args ...any) { g.Emit(severity.Debug, g.console.Debug, args...) }

// Group and GroupEnd are gated like Log so a report is shown or hidden whole.
func (g *gate) Group(title string) {
	if g.Level() >= severity.Info {
		g.console.Group(title)
	}
}

func (g *gate) GroupEnd() {
	if g.Level() >= severity.Info {
		g.console.GroupEnd()
	}
}
