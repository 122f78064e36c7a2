// Package model provides a deliberately simple, in-memory state model of
// genvec's publicly observable behavior.
//
// The model is easy to audit: live values sit in a map keyed by handle and
// free slots on an explicit stack, instead of a free list threaded through
// storage. It assigns handles exactly like genvec.Vec so tests can compare
// the two step by step.
package model

import (
	"cmp"
	"maps"
	"slices"

	genvec "github.com/g770728y/generation-indices"
)

// Store models a genvec.Vec.
type Store[T any] struct {
	// Live maps every live handle to its value.
	Live map[genvec.Handle]T

	// Generations holds the current generation of every slot ever allocated.
	Generations []uint32

	// Free is the stack of free slot indices; the last element is reused
	// first.
	Free []uint32
}

// New returns an empty model store.
func New[T any]() *Store[T] {
	return &Store[T]{Live: make(map[genvec.Handle]T)}
}

// Insert stores x and returns the handle genvec.Vec would issue for it.
func (s *Store[T]) Insert(x T) genvec.Handle {
	var h genvec.Handle
	if n := len(s.Free); n > 0 {
		idx := s.Free[n-1]
		s.Free = s.Free[:n-1]
		h = genvec.Handle{Index: idx, Generation: s.Generations[idx]}
	} else {
		h = genvec.Handle{Index: uint32(len(s.Generations))}
		s.Generations = append(s.Generations, 0)
	}
	s.Live[h] = x

	return h
}

// Get returns the value for h if h is live.
func (s *Store[T]) Get(h genvec.Handle) (T, bool) {
	x, ok := s.Live[h]

	return x, ok
}

// Remove removes h if it is live and returns the removed value.
func (s *Store[T]) Remove(h genvec.Handle) (T, bool) {
	x, ok := s.Live[h]
	if !ok {
		return x, false
	}
	delete(s.Live, h)
	s.Generations[h.Index]++
	s.Free = append(s.Free, h.Index)

	return x, true
}

// Reset frees every live slot in ascending index order, the order in which
// genvec.Vec pushes them onto its free list.
func (s *Store[T]) Reset() {
	for _, h := range s.Handles() {
		s.Remove(h)
	}
}

// Len returns the number of live values.
func (s *Store[T]) Len() int {
	return len(s.Live)
}

// Cap returns the number of slots ever allocated.
func (s *Store[T]) Cap() int {
	return len(s.Generations)
}

// Handles returns every live handle sorted by index.
func (s *Store[T]) Handles() []genvec.Handle {
	return slices.SortedFunc(maps.Keys(s.Live), func(a, b genvec.Handle) int {
		return cmp.Compare(a.Index, b.Index)
	})
}
