package perf

import "github.com/shopspring/decimal"

type Report struct {
	Cache            any                `json:"cache" yaml:"cache"`
	RecentMeasures   []CompletedMeasure `json:"recent_measures" yaml:"recent_measures"`
	AverageDurations map[string]string  `json:"average_durations" yaml:"average_durations"`
	TotalMeasures    int                `json:"total_measures" yaml:"total_measures"`
}

// Recent returns a copy of the last RecentWindow entries of history in
// chronological order.
func Recent(history []CompletedMeasure) []CompletedMeasure {
	start := max(len(history)-RecentWindow, 0)
	out := make([]CompletedMeasure, len(history)-start)
	copy(out, history[start:])
	return out
}

// AverageDurations averages every entry of history per label. The mean is
// rounded once, to whole milliseconds.
func AverageDurations(history []CompletedMeasure) map[string]string {
	sums := make(map[string]int64)
	counts := make(map[string]int64)
	for _, m := range history {
		sums[m.Label] += m.Duration.Nanoseconds()
		counts[m.Label]++
	}

	out := make(map[string]string, len(sums))
	for label, sum := range sums {
		avg := decimal.NewFromInt(sum).Div(decimal.NewFromInt(counts[label]))
		out[label] = avg.Div(nanosPerMilli).StringFixed(0) + "ms"
	}
	return out
}
