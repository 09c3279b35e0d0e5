package status

import (
	"sort"
	"sync"
)

// MetricMap lazily allocates one metric cell of type T per key
// Cells are stable pointers; callers cache them and write without locking
type MetricMap[T any] struct {
	mu    sync.RWMutex
	cells map[string]*T
}

func newMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{cells: make(map[string]*T)}
}

// Get returns the cell for key, allocating on first use
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.RLock()
	c, ok := m.cells[key]
	m.mu.RUnlock()
	if ok {
		return c
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok = m.cells[key]; ok {
		return c
	}
	c = new(T)
	m.cells[key] = c
	return c
}

// Each visits cells in sorted key order
func (m *MetricMap[T]) Each(fn func(key string, cell *T)) {
	m.mu.RLock()
	keys := make([]string, 0, len(m.cells))
	for k := range m.cells {
		keys = append(keys, k)
	}
	m.mu.RUnlock()
	sort.Strings(keys)

	for _, k := range keys {
		m.mu.RLock()
		c := m.cells[k]
		m.mu.RUnlock()
		fn(k, c)
	}
}

func (m *MetricMap[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.cells)
}
