package implementation

import (
	"github.com/jt828/perfmon/pkg/observability"
	"go.uber.org/zap"
)

type zapLogger struct {
	l *zap.Logger
}

// NewZapLogger builds a production logger, or a development logger with
// debug output and console encoding when development is true.
func NewZapLogger(development bool) (observability.Logger, error) {
	build := zap.NewProduction
	if development {
		build = zap.NewDevelopment
	}
	l, err := build()
	if err != nil {
		return nil, err
	}
	return &zapLogger{l: l}, nil
}

func WrapZap(l *zap.Logger) observability.Logger {
	return &zapLogger{l: l}
}

// ZapLogger returns the zap logger behind log, or nil when log is not zap-backed.
func ZapLogger(log observability.Logger) *zap.Logger {
	if z, ok := log.(*zapLogger); ok {
		return z.l
	}
	return nil
}

func toZap(fields []observability.Field) []zap.Field {
	if len(fields) == 0 {
		return nil
	}

	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		out = append(out, zap.Any(f.Key, f.Value))
	}
	return out
}

func (z *zapLogger) Debug(msg string, fields ...observability.Field) {
	z.l.Debug(msg, toZap(fields)...)
}

func (z *zapLogger) Error(msg string, fields ...observability.Field) {
	z.l.Error(msg, toZap(fields)...)
}

func (z *zapLogger) Fatal(msg string, fields ...observability.Field) {
	z.l.Fatal(msg, toZap(fields)...)
}

func (z *zapLogger) Info(msg string, fields ...observability.Field) {
	z.l.Info(msg, toZap(fields)...)
}

func (z *zapLogger) Warn(msg string, fields ...observability.Field) {
	z.l.Warn(msg, toZap(fields)...)
}

func (z *zapLogger) With(fields ...observability.Field) observability.Logger {
	return &zapLogger{l: z.l.With(toZap(fields)...)}
}

func (z *zapLogger) Sync() error {
	return z.l.Sync()
}
