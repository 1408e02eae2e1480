package implementation

import (
	"github.com/jt828/perfmon/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
)

type prometheusMeter struct {
	registry *prometheus.Registry
}

func NewPrometheusMeter() observability.Meter {
	return &prometheusMeter{registry: prometheus.NewRegistry()}
}

func (m *prometheusMeter) Registry() *prometheus.Registry {
	return m.registry
}

func PromRegistry(m observability.Meter) *prometheus.Registry {
	if pm, ok := m.(*prometheusMeter); ok {
		return pm.Registry()
	}
	return nil
}

// -------------------- Counter --------------------

type promCounter struct {
	vec *prometheus.CounterVec
}

func (m *prometheusMeter) Counter(name string, opts ...observability.MetricOpt) observability.Counter {
	opt := firstOpt(opts)
	vec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:        name,
		Help:        opt.Help,
		ConstLabels: toPromLabels(opt.ConstLabels),
	}, opt.LabelKeys)

	m.registry.MustRegister(vec)
	return &promCounter{vec: vec}
}

func (c *promCounter) Inc(v float64, labels ...observability.Label) {
	c.vec.With(toPromLabels(labels)).Add(v)
}

// -------------------- Histogram --------------------

type promHistogram struct {
	vec *prometheus.HistogramVec
}

func (m *prometheusMeter) Histogram(name string, opts ...observability.MetricOpt) observability.Histogram {
	opt := firstOpt(opts)
	vec := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:        name,
		Help:        opt.Help,
		Buckets:     opt.Buckets,
		ConstLabels: toPromLabels(opt.ConstLabels),
	}, opt.LabelKeys)

	m.registry.MustRegister(vec)
	return &promHistogram{vec: vec}
}

func (h *promHistogram) Observe(v float64, labels ...observability.Label) {
	h.vec.With(toPromLabels(labels)).Observe(v)
}

// -------------------- Gauge --------------------

type promGauge struct {
	vec *prometheus.GaugeVec
}

func (m *prometheusMeter) Gauge(name string, opts ...observability.MetricOpt) observability.Gauge {
	opt := firstOpt(opts)
	vec := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name:        name,
		Help:        opt.Help,
		ConstLabels: toPromLabels(opt.ConstLabels),
	}, opt.LabelKeys)

	m.registry.MustRegister(vec)
	return &promGauge{vec: vec}
}

func (g *promGauge) Set(v float64, labels ...observability.Label) {
	g.vec.With(toPromLabels(labels)).Set(v)
}

// -------------------- Helpers --------------------

func firstOpt(opts []observability.MetricOpt) observability.MetricOpt {
	if len(opts) == 0 {
		return observability.MetricOpt{}
	}
	return opts[0]
}

func toPromLabels(labels []observability.Label) prometheus.Labels {
	m := make(prometheus.Labels, len(labels))
	for _, l := range labels {
		m[l.Key] = l.Value
	}
	return m
}
