// Package status keeps run counters fed from the interaction event stream.
package status

import (
	"fmt"
	"sync/atomic"

	"github.com/lixenwraith/village/event"
)

// Registry is the central metrics facade
type Registry struct {
	Bools  *Metrics[atomic.Bool]
	Ints   *Metrics[atomic.Int64]
	Floats *Metrics[Float]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:  newMetrics[atomic.Bool](),
		Ints:   newMetrics[atomic.Int64](),
		Floats: newMetrics[Float](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count()
}

// Observe counts one drained event
// Every event bumps events.<Type>; activations, effects and state entries get their own keys
func (r *Registry) Observe(ev event.GameEvent) {
	r.Ints.Get("events." + ev.Type.String()).Add(1)

	switch p := ev.Payload.(type) {
	case *event.ZoneTransitionPayload:
		r.Ints.Get("state." + p.To).Add(1)
		if p.To == "Activated" {
			r.Bools.Get("activated." + p.ZoneID).Store(true)
		}
	case *event.EffectFiredPayload:
		if p.Kind == event.EffectClip {
			r.Ints.Get("clip." + p.Name).Add(1)
		} else {
			r.Ints.Get("burst." + p.Name).Add(1)
		}
	case *event.MotionStoppedPayload:
		r.Bools.Get("stopped." + p.ZoneID).Store(true)
	}
}

// Lines renders every metric as key=value, grouped by type then key order
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.TotalCount())
	r.Bools.Range(func(k string, v *atomic.Bool) {
		lines = append(lines, fmt.Sprintf("%s=%t", k, v.Load()))
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s=%d", k, v.Load()))
	})
	r.Floats.Range(func(k string, v *Float) {
		lines = append(lines, fmt.Sprintf("%s=%.2f", k, v.Load()))
	})
	return lines
}
