package router

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/voxel-map/event"
	"github.com/lixenwraith/voxel-map/field"
	"github.com/lixenwraith/voxel-map/grid"
	"github.com/lixenwraith/voxel-map/status"
)

// Router turns field submissions into at most one GenerationRequest per completed input set
// Owned by the tick loop; not safe for concurrent use
type Router struct {
	registry *field.Registry
	builder  grid.Builder
	out      *event.Broadcast[*event.GenerationRequest]
	log      zerolog.Logger

	// Strict escalates registry invariant violations to a panic
	Strict bool
	// OnReject is called for every dropped submission
	OnReject func(sub event.Submission, err error)

	// Dispatch latch: set after a request fires, cleared by any value change or registry rebuild
	latched    bool
	latchEpoch uint64

	statSubmissions *atomic.Int64
	statRejected    *atomic.Int64
	statRequests    *atomic.Int64
	statLastDims    *status.AtomicString
}

// New creates a router publishing to out
func New(registry *field.Registry, builder grid.Builder, out *event.Broadcast[*event.GenerationRequest], statusReg *status.Registry, log zerolog.Logger) *Router {
	return &Router{
		registry:        registry,
		builder:         builder,
		out:             out,
		log:             log.With().Str("component", "router").Logger(),
		statSubmissions: statusReg.Ints.Get(status.Submissions),
		statRejected:    statusReg.Ints.Get(status.Rejected),
		statRequests:    statusReg.Ints.Get(status.Requests),
		statLastDims:    statusReg.Strings.Get(status.LastDimensions),
	}
}

// Handle applies one submission and publishes a GenerationRequest if it completes the input set
// Returns the published request, or nil when nothing fired
// Unknown widgets are reported through the error and leave the registry unchanged
func (r *Router) Handle(sub event.Submission) (*event.GenerationRequest, error) {
	r.statSubmissions.Add(1)

	change, err := r.registry.Update(sub.Widget, sub.Text)
	if err != nil {
		r.reject(sub, err)
		return nil, err
	}

	if r.latched && r.latchEpoch != r.registry.Epoch() {
		r.latched = false
	}
	if change.Changed() {
		r.latched = false
	}

	r.log.Debug().
		Str("widget", sub.Widget.String()).
		Stringer("kind", change.Kind).
		Uint32("value", change.Value).
		Bool("parsed", change.Parsed).
		Msg("field updated")

	if r.latched || !r.registry.AllValid() {
		return nil, nil
	}

	if err := r.registry.Check(); err != nil {
		if r.Strict {
			panic(fmt.Sprintf("field registry invariant: %v", err))
		}
		r.log.Error().Err(err).Msg("registry invariant violated, generation skipped")
		return nil, err
	}

	dims := r.registry.Extract()
	if err := dims.Check(); err != nil {
		r.log.Error().Err(err).Stringer("dims", dims).Msg("generation skipped")
		return nil, err
	}
	req := event.NewGenerationRequest(dims, r.builder.Build(dims))
	r.out.Publish(req)

	r.latched = true
	r.latchEpoch = r.registry.Epoch()
	r.statRequests.Add(1)
	r.statLastDims.Store(dims.String())

	r.log.Info().
		Str("request", req.ID.String()).
		Stringer("dims", dims).
		Int("tiles", req.Magnitude()).
		Msg("generation requested")
	return req, nil
}

// Drain handles every queued submission in FIFO order and returns the number of requests published
func (r *Router) Drain(q *event.Queue[event.Submission]) int {
	fired := 0
	for _, sub := range q.Drain() {
		req, _ := r.Handle(sub)
		if req != nil {
			fired++
		}
	}
	return fired
}

// Latched reports whether a request already fired for the current values
func (r *Router) Latched() bool {
	return r.latched && r.latchEpoch == r.registry.Epoch()
}

func (r *Router) reject(sub event.Submission, err error) {
	r.statRejected.Add(1)
	ev := r.log.Warn()
	if !errors.Is(err, field.ErrUnknownWidget) {
		ev = r.log.Error()
	}
	ev.Err(err).Str("widget", sub.Widget.String()).Msg("submission dropped")
	if r.OnReject != nil {
		r.OnReject(sub, err)
	}
}
