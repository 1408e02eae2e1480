package implementation

import (
	"context"
	"net/http"

	"github.com/jt828/perfmon/pkg/observability"
)

type observabilityImplementation struct {
	log   observability.Logger
	meter observability.Meter

	metricsAddr   string
	metricsServer *http.Server
	middleware    []func(http.Handler) http.Handler
}

func (o *observabilityImplementation) Close(ctx context.Context) error {
	var err error
	if o.metricsServer != nil {
		err = o.metricsServer.Shutdown(ctx)
	}
	if z, ok := o.log.(*zapLogger); ok {
		// stdout/stderr sync errors are not actionable
		_ = z.Sync()
	}
	return err
}

func (o *observabilityImplementation) Logger() observability.Logger { return o.log }
func (o *observabilityImplementation) Meter() observability.Meter   { return o.meter }

func (o *observabilityImplementation) Start(ctx context.Context) error {
	if o.metricsAddr == "" {
		return nil
	}
	if reg := PromRegistry(o.meter); reg != nil {
		o.metricsServer = StartMetricsServer(o.metricsAddr, reg, o.log, o.middleware...)
	}
	return nil
}

func (o *observabilityImplementation) Use(mw func(http.Handler) http.Handler) {
	o.middleware = append(o.middleware, mw)
}
