package event

import "sync"

// Queue is an unbounded MPSC FIFO of T
// Thread-Safety:
//   - Push: mutex, multiple producers OK
//   - Drain: single consumer (tick loop)
//
// Drain swaps the write and read buffers; the returned slice is valid until the next Drain
type Queue[T any] struct {
	mu    sync.Mutex
	write []T
	read  []T
}

// NewQueue creates a queue with room for capacity items before growing
func NewQueue[T any](capacity int) *Queue[T] {
	return &Queue[T]{
		write: make([]T, 0, capacity),
		read:  make([]T, 0, capacity),
	}
}

// Push appends item to the tail
func (q *Queue[T]) Push(item T) {
	q.mu.Lock()
	q.write = append(q.write, item)
	q.mu.Unlock()
}

// Drain returns all pending items in push order and empties the queue
// Returns nil when nothing is pending
func (q *Queue[T]) Drain() []T {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.write) == 0 {
		return nil
	}

	// Zero the previous read buffer so drained values can be collected
	clear(q.read)
	q.read, q.write = q.write, q.read[:0]
	return q.read
}

// Len returns the pending item count
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.write)
}
