// Package frontier provides a visited map with level synchronous queues
// for breadth-first search.
package frontier

// Map records every key seen so far and partitions the not yet expanded
// keys into the current level (source) and the next level (target).
// Map is not safe for concurrent use.
type Map[K comparable, V any] struct {
	m              map[K]struct{}
	source, target []V
}

// New returns a map seeded with the start key and value.
func New[K comparable, V any](startKey K, start V) *Map[K, V] {
	return &Map[K, V]{
		m:      map[K]struct{}{startKey: {}},
		source: []V{start},
	}
}

// StoreTarget marks k as seen and queues v on the next level.
// It returns false if k had already been seen, in which case v is dropped.
func (fm *Map[K, V]) StoreTarget(k K, v V) bool {
	if _, ok := fm.m[k]; ok {
		return false
	}
	fm.m[k] = struct{}{}
	fm.target = append(fm.target, v)
	return true
}

// Source returns the values of the current level in discovery order.
func (fm *Map[K, V]) Source() []V { return fm.source }

// Swap makes the next level the current level.
func (fm *Map[K, V]) Swap() { fm.source, fm.target = fm.target, nil }

// Empty reports whether the current level has no values.
func (fm *Map[K, V]) Empty() bool { return len(fm.source) == 0 }

// Size returns the number of keys seen.
func (fm *Map[K, V]) Size() int { return len(fm.m) }
