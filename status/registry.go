package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric keys
const (
	MoleHits    = "mole.hits"
	MoleWhiffs  = "mole.whiffs"
	MoleTicks   = "mole.ticks"
	RoundCount  = "round.count"
	AudioPlayed = "audio.played"
	AudioMuted  = "audio.muted"
)

// Registry is the central metrics facade
// Owners cache pointers at construction; update paths write atomics directly
type Registry struct {
	Bools *MetricMap[atomic.Bool]
	Ints  *MetricMap[atomic.Int64]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools: NewMetricMap[atomic.Bool](),
		Ints:  NewMetricMap[atomic.Int64](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count()
}

// Format renders every metric as "key=value" pairs in key order
func (r *Registry) Format() string {
	var parts []string
	r.Ints.Range(func(k string, v *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", k, v.Load()))
	})
	r.Bools.Range(func(k string, v *atomic.Bool) {
		parts = append(parts, fmt.Sprintf("%s=%t", k, v.Load()))
	})
	return strings.Join(parts, " ")
}
