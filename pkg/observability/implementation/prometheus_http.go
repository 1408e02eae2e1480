package implementation

import (
	"errors"
	"net/http"
	"time"

	"github.com/jt828/perfmon/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewMetricsServer serves reg on /metrics. Middleware is applied in order, the
// first one outermost.
func NewMetricsServer(addr string, reg *prometheus.Registry, middleware ...func(http.Handler) http.Handler) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	var handler http.Handler = mux
	for i := len(middleware) - 1; i >= 0; i-- {
		handler = middleware[i](handler)
	}

	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func StartMetricsServer(
	addr string,
	reg *prometheus.Registry,
	log observability.Logger,
	middleware ...func(http.Handler) http.Handler,
) *http.Server {
	srv := NewMetricsServer(addr, reg, middleware...)

	go func() {
		log.Info("metrics server listening", observability.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server stopped", observability.Err(err))
		}
	}()

	return srv
}
