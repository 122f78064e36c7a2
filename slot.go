package genvec

// slot is one storage position of a Vec.
//
// A slot is either occupied, holding value, or free, holding nextFree: the
// index of the next free slot, or len(slots) at the end of the chain.
type slot[T any] struct {
	value    T
	nextFree uint32

	// generation is bumped on every occupied -> free transition and never
	// on free -> occupied.
	generation uint32
	occupied   bool
}

func (s *slot[T]) live(generation uint32) bool {
	return s.occupied && s.generation == generation
}

// occupy stores v in a free slot and returns the next free index the slot
// was pointing at.
func (s *slot[T]) occupy(v T) uint32 {
	next := s.nextFree
	s.value = v
	s.nextFree = 0
	s.occupied = true

	return next
}

// vacate frees an occupied slot, links it in front of head and returns the
// value it held.
func (s *slot[T]) vacate(head uint32) T {
	var zero T

	v := s.value
	// NOTE: zero the value so the store stops referencing it once freed.
	s.value = zero
	s.nextFree = head
	s.occupied = false
	s.generation++

	return v
}
