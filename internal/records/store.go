// Package records implements a minimal append-only growable sequence used to
// hold the test registry and the console reporter's failed test names.
package records

// Default capacity used by callers that do not have a better estimate.
const DefaultCapacity = 32

// Store is an append-only sequence of values of type T. Elements are stored
// by value: a later PushBack may move the backing array, so callers must
// re-fetch elements by index instead of holding on to their addresses.
//
// Growth doubles the capacity whenever an append would exceed it. Allocation
// failure is the Go runtime's fatal out-of-memory error; Store has no
// recoverable error channel for it.
type Store[T any] struct {
	data  []T
	count int
}

// New returns a store with room for capacity elements.
func New[T any](capacity int) *Store[T] {
	s := &Store[T]{}
	s.Init(capacity)
	return s
}

// Init (re)allocates backing storage for capacity elements and resets the
// count to zero.
func (s *Store[T]) Init(capacity int) {
	if capacity < 0 {
		capacity = 0
	}
	s.data = make([]T, capacity)
	s.count = 0
}

// PushBack copies value into the next free slot.
func (s *Store[T]) PushBack(value T) {
	if s.count >= len(s.data) {
		s.grow()
	}
	s.data[s.count] = value
	s.count++
}

func (s *Store[T]) grow() {
	capacity := 2 * len(s.data)
	if capacity == 0 {
		capacity = 1
	}
	data := make([]T, capacity)
	copy(data, s.data[:s.count])
	s.data = data
}

// At returns a copy of the element at index i. It panics if i is out of
// range, like a slice index would.
func (s *Store[T]) At(i int) T {
	if i < 0 || i >= s.count {
		panic("records: index out of range")
	}
	return s.data[i]
}

// Len returns the number of elements pushed so far.
func (s *Store[T]) Len() int {
	return s.count
}

// Cap returns the number of elements the store can hold before growing.
func (s *Store[T]) Cap() int {
	return len(s.data)
}

// Snapshot returns a copy of the stored elements in insertion order.
func (s *Store[T]) Snapshot() []T {
	out := make([]T, s.count)
	copy(out, s.data[:s.count])
	return out
}

// Destroy releases the backing storage and resets the store to empty. It is
// safe to call on an already destroyed or zero-value store.
func (s *Store[T]) Destroy() {
	if s.data == nil {
		return
	}
	s.data = nil
	s.count = 0
}
