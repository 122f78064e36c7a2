package genvec

import "sync"

// Synced is a [Vec] guarded by a single lock.
//
// All Synced methods are safe for concurrent use by multiple goroutines.
// Lookups share a read lock; inserts and removals hold the write lock for
// the whole free-list update.
type Synced[T any] struct {
	vec Vec[T]
	mu  sync.RWMutex
}

// NewSynced returns an empty Synced store.
func NewSynced[T any]() *Synced[T] {
	return &Synced[T]{}
}

// Insert stores x and returns its handle. See [Vec.Insert].
func (s *Synced[T]) Insert(x T) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.vec.Insert(x)
}

// Get returns the value stored for h. See [Vec.Get].
func (s *Synced[T]) Get(h Handle) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.vec.Get(h)
}

// Contains returns true if h refers to a live value.
func (s *Synced[T]) Contains(h Handle) bool {
	_, ok := s.Get(h)

	return ok
}

// Update calls f with a pointer to the value stored for h while holding
// the write lock.
//
// Returns false without calling f if h is stale. The pointer must not be
// retained after f returns.
func (s *Synced[T]) Update(h Handle, f func(x *T)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.vec.GetPtr(h)
	if p == nil {
		return false
	}
	f(p)

	return true
}

// Remove removes the value stored for h. See [Vec.Remove].
func (s *Synced[T]) Remove(h Handle) {
	s.mu.Lock()
	s.vec.Remove(h)
	s.mu.Unlock()
}

// GetAndRemove removes the value stored for h, returning it if any.
// See [Vec.GetAndRemove].
func (s *Synced[T]) GetAndRemove(h Handle) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.vec.GetAndRemove(h)
}

// Reset removes all values. See [Vec.Reset].
func (s *Synced[T]) Reset() {
	s.mu.Lock()
	s.vec.Reset()
	s.mu.Unlock()
}

// Len returns the number of live values.
func (s *Synced[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.vec.Len()
}

// Cap returns the number of slots allocated so far.
func (s *Synced[T]) Cap() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.vec.Cap()
}

// UpdateStats adds store stats to st. See [Vec.UpdateStats].
func (s *Synced[T]) UpdateStats(st *Stats) {
	s.mu.RLock()
	s.vec.UpdateStats(st)
	s.mu.RUnlock()
}
