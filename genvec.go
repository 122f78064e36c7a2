package genvec

import (
	"fmt"
	"math"
	"sync/atomic"
)

// Handle identifies the value stored by one Insert call.
//
// A Handle is the pair of the slot index it was issued for and the slot
// generation at that time. Handles are comparable and may be used as map
// keys. Obtain them only from [Vec.Insert] or [Synced.Insert].
type Handle struct {
	Index      uint32
	Generation uint32
}

// String returns h in "index@generation" form.
func (h Handle) String() string {
	return fmt.Sprintf("%d@%d", h.Index, h.Generation)
}

// Vec is a generational slot map.
//
// Vec is not safe for concurrent use. Wrap it in a [Synced] when several
// goroutines need to share one store.
//
// The zero Vec is empty and ready to use.
type Vec[T any] struct {
	// stats, see [Vec.UpdateStats]. Kept first for 64-bit atomic alignment.
	insertCalls  uint64
	reuses       uint64
	getCalls     uint64
	misses       uint64
	removeCalls  uint64
	staleRemoves uint64
	resets       uint64

	slots []slot[T]

	// freeHead is the first free slot. freeHead == len(slots) means the
	// free list is empty and the next Insert appends.
	freeHead uint32
	count    int
}

// New returns an empty Vec.
func New[T any]() *Vec[T] {
	return &Vec[T]{}
}

// Insert stores x and returns the handle it can be looked up by.
//
// Slots freed by [Vec.Remove] are reused, most recently freed first,
// before the backing storage grows.
func (v *Vec[T]) Insert(x T) Handle {
	atomic.AddUint64(&v.insertCalls, 1)

	var h Handle
	if uint64(v.freeHead) < uint64(len(v.slots)) {
		idx := v.freeHead
		s := &v.slots[idx]
		if s.occupied {
			panic(fmt.Errorf("genvec: corrupt free list; slot %d at free head is occupied", idx))
		}

		v.freeHead = s.occupy(x)
		h = Handle{Index: idx, Generation: s.generation}
		atomic.AddUint64(&v.reuses, 1)
	} else {
		if uint64(len(v.slots)) >= math.MaxUint32 {
			panic(fmt.Errorf("genvec: cannot allocate more than %d slots", uint32(math.MaxUint32)))
		}

		idx := uint32(len(v.slots))
		v.slots = append(v.slots, slot[T]{value: x, occupied: true})
		v.freeHead = idx + 1
		h = Handle{Index: idx}
	}

	v.count++

	return h
}

// Get returns the value stored for h.
//
// Returns the zero value and false if h was removed, or if its slot has
// been reused since.
//
// Get panics if h.Index was never allocated by this Vec.
func (v *Vec[T]) Get(h Handle) (T, bool) {
	atomic.AddUint64(&v.getCalls, 1)

	s := v.at(h)
	if !s.live(h.Generation) {
		atomic.AddUint64(&v.misses, 1)

		var zero T
		return zero, false
	}

	return s.value, true
}

// GetPtr returns a pointer to the value stored for h, or nil if h is stale.
//
// The pointer may be used to modify the value in place. It is invalidated
// by the next Insert, which may move the backing storage, and by removing h.
func (v *Vec[T]) GetPtr(h Handle) *T {
	atomic.AddUint64(&v.getCalls, 1)

	s := v.at(h)
	if !s.live(h.Generation) {
		atomic.AddUint64(&v.misses, 1)

		return nil
	}

	return &s.value
}

// Contains returns true if h refers to a live value.
func (v *Vec[T]) Contains(h Handle) bool {
	_, ok := v.Get(h)

	return ok
}

// Remove removes the value stored for h.
//
// The slot becomes reusable and h, along with every copy of it, stops
// resolving. Removing a stale handle is a no-op.
func (v *Vec[T]) Remove(h Handle) {
	v.GetAndRemove(h)
}

// GetAndRemove removes the value stored for h, returning it if any.
//
// The loaded result reports whether h was live.
func (v *Vec[T]) GetAndRemove(h Handle) (x T, loaded bool) {
	atomic.AddUint64(&v.removeCalls, 1)

	s := v.at(h)
	// A live slot of another generation belongs to someone else.
	if !s.live(h.Generation) {
		atomic.AddUint64(&v.staleRemoves, 1)

		return x, false
	}

	x = s.vacate(v.freeHead)
	v.freeHead = h.Index
	v.count--

	return x, true
}

// Reset removes all values from v.
//
// Every handle issued so far becomes stale. The backing storage is kept and
// its slots are reused by later inserts.
func (v *Vec[T]) Reset() {
	atomic.AddUint64(&v.resets, 1)

	for i := range v.slots {
		s := &v.slots[i]
		if !s.occupied {
			continue
		}
		s.vacate(v.freeHead)
		v.freeHead = uint32(i)
	}
	v.count = 0
}

// Len returns the number of live values in v.
func (v *Vec[T]) Len() int {
	return v.count
}

// Cap returns the number of slots allocated so far.
//
// Valid handle indices are in [0, Cap()).
func (v *Vec[T]) Cap() int {
	return len(v.slots)
}

func (v *Vec[T]) at(h Handle) *slot[T] {
	if uint64(h.Index) >= uint64(len(v.slots)) {
		panic(fmt.Errorf("genvec: handle %s out of range; %d slots allocated", h, len(v.slots)))
	}

	return &v.slots[h.Index]
}
