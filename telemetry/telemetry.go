// Package telemetry provides a minimal in-process counter/histogram facade
// for the CLI to report per-run collaborator timings and block-count
// reduction. There is no external metrics backend to validate against here,
// so the value is in a process-local summary, not a wire format.
package telemetry

import (
	"sync"
	"time"
)

// Registry accumulates counters and histograms for a single docstruct run.
type Registry struct {
	mu         sync.Mutex
	counters   map[string]float64
	histograms map[string][]time.Duration
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		counters:   make(map[string]float64),
		histograms: make(map[string][]time.Duration),
	}
}

// Counter increments a named counter by value.
func (r *Registry) Counter(name string, value float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counters[name] += value
}

// Histogram records a single duration sample under name.
func (r *Registry) Histogram(name string, d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.histograms[name] = append(r.histograms[name], d)
}

// CounterValue returns the current value of a counter, 0 if never set.
func (r *Registry) CounterValue(name string) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counters[name]
}

// HistogramSamples returns the recorded durations for name, in record order.
func (r *Registry) HistogramSamples(name string) []time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]time.Duration, len(r.histograms[name]))
	copy(out, r.histograms[name])
	return out
}

// Summary returns the sum of all recorded durations for name, used by the
// CLI's --debug timing report.
func (r *Registry) Summary(name string) time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	var total time.Duration
	for _, d := range r.histograms[name] {
		total += d
	}
	return total
}
