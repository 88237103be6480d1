package event

// Handler consumes one broadcast item
type Handler[T any] func(item T)

type subscriber[T any] struct {
	name string
	fn   Handler[T]
}

// Broadcast fans published items out to every subscriber
// Items published during a tick are held until Dispatch; each subscriber sees every item in publish order
// Single-threaded: Publish and Dispatch run on the tick loop
type Broadcast[T any] struct {
	subs    []subscriber[T]
	pending []T
	spare   []T
}

// NewBroadcast creates an empty broadcast channel
func NewBroadcast[T any]() *Broadcast[T] {
	return &Broadcast[T]{}
}

// Subscribe registers fn under name; subscribers are invoked in registration order
func (b *Broadcast[T]) Subscribe(name string, fn Handler[T]) {
	b.subs = append(b.subs, subscriber[T]{name: name, fn: fn})
}

// Subscribers returns registered subscriber names in invocation order
func (b *Broadcast[T]) Subscribers() []string {
	names := make([]string, len(b.subs))
	for i, s := range b.subs {
		names[i] = s.name
	}
	return names
}

// Publish queues item for the next Dispatch
func (b *Broadcast[T]) Publish(item T) {
	b.pending = append(b.pending, item)
}

// Pending returns the number of items awaiting Dispatch
func (b *Broadcast[T]) Pending() int {
	return len(b.pending)
}

// Dispatch delivers queued items to every subscriber and returns the item count
// Items published by a subscriber during Dispatch are delivered on the next call
func (b *Broadcast[T]) Dispatch() int {
	if len(b.pending) == 0 {
		return 0
	}

	batch := b.pending
	b.pending = b.spare[:0]

	for _, item := range batch {
		for _, s := range b.subs {
			s.fn(item)
		}
	}

	n := len(batch)
	clear(batch)
	b.spare = batch[:0]
	return n
}
