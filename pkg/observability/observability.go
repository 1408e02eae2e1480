package observability

import (
	"context"
	"net/http"
)

type Observability interface {
	Close(ctx context.Context) error
	Logger() Logger
	Meter() Meter
	Start(ctx context.Context) error
	// Use wraps the metrics endpoint handler; it must be called before Start.
	Use(mw func(http.Handler) http.Handler)
}
