package implementation

import (
	"time"

	"github.com/jt828/perfmon/pkg/observability"
)

type monitorMetrics struct {
	duration    observability.Histogram
	slow        observability.Counter
	historySize observability.Gauge
}

func newMonitorMetrics(meter observability.Meter) *monitorMetrics {
	return &monitorMetrics{
		duration: meter.Histogram("perf_measure_duration_seconds", observability.MetricOpt{
			Help:      "Duration of measured operations in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			LabelKeys: []string{"label"},
		}),
		slow: meter.Counter("perf_slow_operations_total", observability.MetricOpt{
			Help:      "Number of measured operations above the slow threshold",
			LabelKeys: []string{"label"},
		}),
		historySize: meter.Gauge("perf_history_size", observability.MetricOpt{
			Help: "Number of completed measures currently retained",
		}),
	}
}

func (mm *monitorMetrics) record(label string, d time.Duration, slow bool, retained int) {
	l := observability.Label{Key: "label", Value: label}

	mm.duration.Observe(d.Seconds(), l)
	if slow {
		mm.slow.Inc(1, l)
	}
	mm.historySize.Set(float64(retained))
}
