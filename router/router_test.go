package router

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/voxel-map/core"
	"github.com/lixenwraith/voxel-map/event"
	"github.com/lixenwraith/voxel-map/field"
	"github.com/lixenwraith/voxel-map/grid"
	"github.com/lixenwraith/voxel-map/status"
)

var (
	widgetA = core.WidgetID{Index: 1, Gen: 1}
	widgetB = core.WidgetID{Index: 2, Gen: 1}
	widgetC = core.WidgetID{Index: 3, Gen: 1}
)

type fixture struct {
	registry *field.Registry
	out      *event.Broadcast[*event.GenerationRequest]
	status   *status.Registry
	router   *Router
	received []*event.GenerationRequest
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		registry: field.NewRegistry(),
		out:      event.NewBroadcast[*event.GenerationRequest](),
		status:   status.NewRegistry(),
	}
	require.NoError(t, f.registry.Register(widgetA, field.KindWidth))
	require.NoError(t, f.registry.Register(widgetB, field.KindLength))
	require.NoError(t, f.registry.Register(widgetC, field.KindHeight))
	f.out.Subscribe("test", func(r *event.GenerationRequest) { f.received = append(f.received, r) })
	f.router = New(f.registry, grid.Builder{}, f.out, f.status, zerolog.Nop())
	return f
}

func (f *fixture) submit(t *testing.T, id core.WidgetID, text string) *event.GenerationRequest {
	t.Helper()
	req, err := f.router.Handle(event.Submission{Widget: id, Text: text})
	require.NoError(t, err)
	return req
}

// TestReferenceScenario submits A=4, B=3, C=2 and expects exactly one 24-tile request after C
func TestReferenceScenario(t *testing.T) {
	f := newFixture(t)

	require.Nil(t, f.submit(t, widgetA, "4"))
	require.Nil(t, f.submit(t, widgetB, "3"))
	req := f.submit(t, widgetC, "2")
	require.NotNil(t, req)

	require.Equal(t, 1, f.out.Dispatch())
	require.Len(t, f.received, 1)
	require.Same(t, req, f.received[0])

	require.Equal(t, grid.Dimensions{Width: 4, Length: 3, Height: 2}, req.Dimensions)
	require.Equal(t, 24, req.Magnitude())
	require.Equal(t, grid.Tile{X: -2, Y: -2, Z: 0}, req.Tiles[0])
	require.Equal(t, grid.Tile{X: 1, Y: 0, Z: 1}, req.Tiles[23])
	require.Equal(t, int64(1), f.status.Ints.Get(status.Requests).Load())
	require.Equal(t, "4x3x2", f.status.Strings.Get(status.LastDimensions).Load())
}

// TestTwoOfThreeNeverFires verifies partial validity produces no request
func TestTwoOfThreeNeverFires(t *testing.T) {
	f := newFixture(t)
	f.submit(t, widgetA, "4")
	f.submit(t, widgetC, "9")
	require.Zero(t, f.out.Pending())
}

// TestZeroWidthNeverFires submits A=0, B=5, C=5
func TestZeroWidthNeverFires(t *testing.T) {
	f := newFixture(t)
	f.submit(t, widgetA, "0")
	f.submit(t, widgetB, "5")
	f.submit(t, widgetC, "5")
	require.Zero(t, f.out.Pending())
	require.Zero(t, f.status.Ints.Get(status.Requests).Load())
}

// TestNonNumericBlocks verifies garbage text keeps the set invalid
func TestNonNumericBlocks(t *testing.T) {
	f := newFixture(t)
	f.submit(t, widgetA, "4")
	f.submit(t, widgetB, "three")
	f.submit(t, widgetC, "2")
	require.Zero(t, f.out.Pending())

	require.NotNil(t, f.submit(t, widgetB, "3"))
}

// TestResubmitSameValueNoDuplicate verifies the dispatch latch holds for unchanged values
func TestResubmitSameValueNoDuplicate(t *testing.T) {
	f := newFixture(t)
	f.submit(t, widgetA, "4")
	f.submit(t, widgetB, "3")
	require.NotNil(t, f.submit(t, widgetC, "2"))

	require.Nil(t, f.submit(t, widgetA, "4"))
	require.Nil(t, f.submit(t, widgetC, " 2 "))
	require.Equal(t, 1, f.out.Pending())
	require.True(t, f.router.Latched())
}

// TestChangedFieldRefires verifies a value change releases the latch
func TestChangedFieldRefires(t *testing.T) {
	f := newFixture(t)
	f.submit(t, widgetA, "4")
	f.submit(t, widgetB, "3")
	f.submit(t, widgetC, "2")

	req := f.submit(t, widgetA, "5")
	require.NotNil(t, req)
	require.Equal(t, uint32(5), req.Dimensions.Width)
	require.Equal(t, 2, f.out.Pending())

	// Change away and back: both are field changes, the return to 4 fires again
	require.Nil(t, f.submit(t, widgetA, "x"))
	require.NotNil(t, f.submit(t, widgetA, "4"))
	require.Equal(t, 3, f.out.Pending())
}

// TestRegistryRebuildReleasesLatch verifies a cleared and re-registered set can fire again
func TestRegistryRebuildReleasesLatch(t *testing.T) {
	f := newFixture(t)
	f.submit(t, widgetA, "1")
	f.submit(t, widgetB, "1")
	f.submit(t, widgetC, "1")
	require.True(t, f.router.Latched())

	f.registry.Clear()
	require.False(t, f.router.Latched())

	a2 := core.WidgetID{Index: 1, Gen: 2}
	b2 := core.WidgetID{Index: 2, Gen: 2}
	c2 := core.WidgetID{Index: 3, Gen: 2}
	require.NoError(t, f.registry.Register(a2, field.KindWidth))
	require.NoError(t, f.registry.Register(b2, field.KindLength))
	require.NoError(t, f.registry.Register(c2, field.KindHeight))

	f.submit(t, a2, "1")
	f.submit(t, b2, "1")
	require.NotNil(t, f.submit(t, c2, "1"))
	require.Equal(t, 2, f.out.Pending())
}

// TestUnknownWidgetDropped verifies stale handles are reported and change nothing
func TestUnknownWidgetDropped(t *testing.T) {
	f := newFixture(t)
	var rejected []event.Submission
	f.router.OnReject = func(sub event.Submission, err error) {
		require.ErrorIs(t, err, field.ErrUnknownWidget)
		rejected = append(rejected, sub)
	}

	f.submit(t, widgetA, "4")
	stale := event.Submission{Widget: core.WidgetID{Index: 9, Gen: 3}, Text: "7"}
	req, err := f.router.Handle(stale)
	require.Nil(t, req)
	require.True(t, errors.Is(err, field.ErrUnknownWidget))
	require.Equal(t, []event.Submission{stale}, rejected)

	got, _ := f.registry.Get(widgetA)
	require.Equal(t, field.Width(4), got)
	require.Equal(t, int64(1), f.status.Ints.Get(status.Rejected).Load())
	require.Equal(t, int64(2), f.status.Ints.Get(status.Submissions).Load())
}

// TestIncompleteRegistryReported verifies a valid but partial registry never builds
func TestIncompleteRegistryReported(t *testing.T) {
	reg := field.NewRegistry()
	require.NoError(t, reg.Register(widgetA, field.KindWidth))
	out := event.NewBroadcast[*event.GenerationRequest]()
	r := New(reg, grid.Builder{}, out, status.NewRegistry(), zerolog.Nop())

	req, err := r.Handle(event.Submission{Widget: widgetA, Text: "3"})
	require.Nil(t, req)
	require.ErrorIs(t, err, field.ErrIncomplete)
	require.Zero(t, out.Pending())

	r.Strict = true
	require.Panics(t, func() {
		_, _ = r.Handle(event.Submission{Widget: widgetA, Text: "4"})
	})
}

// TestDrainFIFO verifies queued submissions apply in order within one drain
func TestDrainFIFO(t *testing.T) {
	f := newFixture(t)
	q := event.NewQueue[event.Submission](8)
	q.Push(event.Submission{Widget: widgetA, Text: "4"})
	q.Push(event.Submission{Widget: widgetB, Text: "3"})
	q.Push(event.Submission{Widget: widgetC, Text: "2"})
	q.Push(event.Submission{Widget: widgetC, Text: "2"})
	q.Push(event.Submission{Widget: widgetB, Text: "6"})

	require.Equal(t, 2, f.router.Drain(q))
	f.out.Dispatch()
	require.Len(t, f.received, 2)
	require.Equal(t, uint32(3), f.received[0].Dimensions.Length)
	require.Equal(t, uint32(6), f.received[1].Dimensions.Length)
	require.Zero(t, q.Len())
}

// TestCenterExtentBuilder verifies the configured builder shapes the tiles
func TestCenterExtentBuilder(t *testing.T) {
	f := newFixture(t)
	f.router.builder = grid.Builder{Center: grid.CenterExtent}
	f.submit(t, widgetA, "4")
	f.submit(t, widgetB, "2")
	req := f.submit(t, widgetC, "1")
	require.Equal(t, grid.Tile{X: -2, Y: -1, Z: 0}, req.Tiles[0])
}

// TestOverflowingDimensionsSkipped verifies a tile count past 64 bits publishes nothing
func TestOverflowingDimensionsSkipped(t *testing.T) {
	f := newFixture(t)
	f.submit(t, widgetA, "4194304")
	f.submit(t, widgetB, "4194304")

	req, err := f.router.Handle(event.Submission{Widget: widgetC, Text: "4194304"})
	require.ErrorIs(t, err, grid.ErrMagnitudeOverflow)
	require.Nil(t, req)
	require.Zero(t, f.out.Pending())
	require.Zero(t, f.status.Ints.Get(status.Requests).Load())
	require.False(t, f.router.Latched())
	require.Empty(t, f.received)
}
