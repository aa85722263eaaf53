package status

import (
	"maps"
	"math"
	"slices"
	"sync"
	"sync/atomic"
)

// Float is an atomic float64 stored as its bit pattern
// Zero value is ready to use
type Float struct {
	bits atomic.Uint64
}

func (f *Float) Set(val float64) { f.bits.Store(math.Float64bits(val)) }

func (f *Float) Load() float64 { return math.Float64frombits(f.bits.Load()) }

// Metrics is a named set of metrics of one type
// Lookup creates on first use; callers may cache the pointer and skip the lock
type Metrics[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

func newMetrics[T any]() *Metrics[T] {
	return &Metrics[T]{items: make(map[string]*T)}
}

// Get returns the metric for key, creating it if absent
func (m *Metrics[T]) Get(key string) *T {
	m.mu.RLock()
	ptr, ok := m.items[key]
	m.mu.RUnlock()
	if ok {
		return ptr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if ptr, ok := m.items[key]; ok {
		return ptr
	}
	ptr = new(T)
	m.items[key] = ptr
	return ptr
}

// Has reports whether key was ever requested
func (m *Metrics[T]) Has(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.items[key]
	return ok
}

// Range visits metrics in key order
func (m *Metrics[T]) Range(fn func(key string, ptr *T)) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, k := range slices.Sorted(maps.Keys(m.items)) {
		fn(k, m.items[k])
	}
}

// Count returns the number of metrics
func (m *Metrics[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
