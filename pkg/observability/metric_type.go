package observability

type Label struct {
	Key   string
	Value string
}

// MetricOpt describes a metric at registration time. LabelKeys must list every
// label passed later to Inc, Observe or Set.
type MetricOpt struct {
	Help        string
	Buckets     []float64
	ConstLabels []Label
	LabelKeys   []string
}
