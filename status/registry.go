package status

import "sync/atomic"

// Metric keys shared between producers and the status bar
const (
	Ticks          = "engine.ticks"
	Submissions    = "router.submissions"
	Rejected       = "router.rejected"
	Requests       = "router.requests"
	LastDimensions = "router.last_dims"
	Instances      = "scene.instances"
	Materialized   = "scene.materialized"
	AppState       = "lifecycle.app_state"
	MenuState      = "lifecycle.menu_state"
	Layer          = "camera.layer"
	AudioEnabled   = "audio.enabled"
	Cues           = "audio.cues"
)

// Registry is the central metrics facade
// Components cache pointers at construction; tick code writes the atomics directly
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns the metric count across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Strings.Count()
}
