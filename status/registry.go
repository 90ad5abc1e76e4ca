// Package status publishes loop metrics from the loop goroutine to presenters on other goroutines
package status

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// Registry groups typed metric maps
// Producers cache pointers at construction; the hot path writes atomics directly
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns the number of metrics across all maps
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Metric is one formatted reading
type Metric struct {
	Key   string
	Value string
}

// Snapshot formats every metric, sorted by key
// Floats use three decimals
func (r *Registry) Snapshot() []Metric {
	out := make([]Metric, 0, r.TotalCount())

	r.Bools.Range(func(k string, v *atomic.Bool) {
		out = append(out, Metric{Key: k, Value: strconv.FormatBool(v.Load())})
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		out = append(out, Metric{Key: k, Value: strconv.FormatInt(v.Load(), 10)})
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		out = append(out, Metric{Key: k, Value: strconv.FormatFloat(v.Get(), 'f', 3, 64)})
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		out = append(out, Metric{Key: k, Value: v.Load()})
	})

	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
