package event

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/voxel-map/core"
	"github.com/lixenwraith/voxel-map/grid"
)

// TestQueueFIFO verifies drain order matches push order
func TestQueueFIFO(t *testing.T) {
	q := NewQueue[Submission](4)
	for i := uint32(1); i <= 6; i++ {
		q.Push(Submission{Widget: core.WidgetID{Index: i, Gen: 1}})
	}
	require.Equal(t, 6, q.Len())

	got := q.Drain()
	require.Len(t, got, 6)
	for i, s := range got {
		require.Equal(t, uint32(i+1), s.Widget.Index)
	}
	require.Zero(t, q.Len())
	require.Nil(t, q.Drain(), "empty queue drains to nil")
}

// TestQueueDrainIsolation verifies pushes after Drain do not alter the drained batch
func TestQueueDrainIsolation(t *testing.T) {
	q := NewQueue[int](2)
	q.Push(1)
	q.Push(2)
	first := q.Drain()

	q.Push(3)
	require.Equal(t, []int{1, 2}, first)
	require.Equal(t, []int{3}, q.Drain())
}

// TestQueueConcurrentPush verifies no item is lost across producers
func TestQueueConcurrentPush(t *testing.T) {
	q := NewQueue[int](0)
	const producers, perProducer = 8, 500

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(i)
			}
		}()
	}
	wg.Wait()

	require.Len(t, q.Drain(), producers*perProducer)
}

// TestBroadcastEverySubscriber verifies each subscriber observes each item in order
func TestBroadcastEverySubscriber(t *testing.T) {
	b := NewBroadcast[*GenerationRequest]()
	var a, c []*GenerationRequest
	b.Subscribe("a", func(r *GenerationRequest) { a = append(a, r) })
	b.Subscribe("c", func(r *GenerationRequest) { c = append(c, r) })

	r1 := NewGenerationRequest(grid.Dimensions{Width: 1, Length: 1, Height: 1}, grid.Build(1, 1, 1))
	r2 := NewGenerationRequest(grid.Dimensions{Width: 2, Length: 1, Height: 1}, grid.Build(2, 1, 1))
	b.Publish(r1)
	b.Publish(r2)
	require.Equal(t, 2, b.Pending())

	require.Equal(t, 2, b.Dispatch())
	require.Equal(t, []*GenerationRequest{r1, r2}, a)
	require.Equal(t, []*GenerationRequest{r1, r2}, c)
	require.Zero(t, b.Dispatch())
	require.Equal(t, []string{"a", "c"}, b.Subscribers())
}

// TestBroadcastPublishDuringDispatch verifies re-entrant publishes defer to the next dispatch
func TestBroadcastPublishDuringDispatch(t *testing.T) {
	b := NewBroadcast[int]()
	var seen []int
	b.Subscribe("echo", func(n int) {
		seen = append(seen, n)
		if n < 3 {
			b.Publish(n + 1)
		}
	})

	b.Publish(1)
	require.Equal(t, 1, b.Dispatch())
	require.Equal(t, []int{1}, seen)
	require.Equal(t, 1, b.Dispatch())
	require.Equal(t, 1, b.Dispatch())
	require.Equal(t, []int{1, 2, 3}, seen)
	require.Zero(t, b.Dispatch())
}

// TestGenerationRequestIDs verifies each request gets a distinct id
func TestGenerationRequestIDs(t *testing.T) {
	d := grid.Dimensions{Width: 4, Length: 3, Height: 2}
	r1 := NewGenerationRequest(d, grid.Build(4, 3, 2))
	r2 := NewGenerationRequest(d, grid.Build(4, 3, 2))
	require.NotEqual(t, r1.ID, r2.ID)
	require.Equal(t, 24, r1.Magnitude())
}

// TestParseEventType covers prefixed, bare and unknown names
func TestParseEventType(t *testing.T) {
	cases := map[string]EventType{
		"EventStartup":         EventStartup,
		"startpressed":         EventStartPressed,
		"EventMapMaterialized": EventMapMaterialized,
		" Tick ":               EventTick,
	}
	for name, want := range cases {
		got, err := ParseEventType(name)
		require.NoError(t, err, name)
		require.Equal(t, want, got, name)
	}

	_, err := ParseEventType("EventExplode")
	require.Error(t, err)

	for typ := range eventNames {
		round, err := ParseEventType(typ.String())
		require.NoError(t, err)
		require.Equal(t, typ, round)
	}
}
