package status

import "sync"

// MetricMap hands out one shared cell of type T per key
// Cells are allocated on first request and never removed; components keep the pointer
// and write it without touching the map again
type MetricMap[T any] struct {
	mu    sync.Mutex
	cells map[string]*T
}

// NewMetricMap creates an empty MetricMap
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{cells: make(map[string]*T)}
}

// Get returns the cell for key, allocating it on first use
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.Lock()
	defer m.mu.Unlock()
	cell, ok := m.cells[key]
	if !ok {
		cell = new(T)
		m.cells[key] = cell
	}
	return cell
}

// Count returns the number of allocated cells
func (m *MetricMap[T]) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.cells)
}
