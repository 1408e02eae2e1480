package implementation

import (
	"github.com/jt828/perfmon/pkg/observability"
)

type Config struct {
	Development bool
	MetricsAddr string
}

func NewObservability(cfg Config) (observability.Observability, error) {
	log, err := NewZapLogger(cfg.Development)
	if err != nil {
		return nil, err
	}

	return &observabilityImplementation{
		log:         log,
		meter:       NewPrometheusMeter(),
		metricsAddr: cfg.MetricsAddr,
	}, nil
}
