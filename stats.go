package genvec

import "sync/atomic"

// Stats represents store stats.
//
// Use [Vec.UpdateStats] for obtaining fresh stats from the store.
type Stats struct {
	// InsertCalls is the number of Insert calls.
	InsertCalls uint64

	// Reuses is the number of inserts served from the free list
	// instead of growing the backing storage.
	Reuses uint64

	// GetCalls is the number of lookups (Get, GetPtr and Contains calls).
	GetCalls uint64

	// Hits is the number of lookups that found a live value.
	Hits uint64

	// Misses is the number of lookups made with a stale handle.
	Misses uint64

	// RemoveCalls is the number of Remove and GetAndRemove calls.
	RemoveCalls uint64

	// StaleRemoves is the number of removals that were no-ops because
	// the handle was already stale.
	StaleRemoves uint64

	// Resets is the number of Reset calls.
	Resets uint64

	// EntriesCount is the current number of live values.
	EntriesCount uint64

	// SlotsCount is the number of slots allocated so far.
	SlotsCount uint64
}

// UpdateStats adds store stats to s.
//
// Call [Stats.Reset] before calling UpdateStats if s is re-used.
func (v *Vec[T]) UpdateStats(s *Stats) {
	// Lookups bump getCalls before misses, so loading misses first keeps
	// getCalls >= misses while Synced readers run.
	misses := atomic.LoadUint64(&v.misses)
	getCalls := atomic.LoadUint64(&v.getCalls)

	s.InsertCalls += atomic.LoadUint64(&v.insertCalls)
	s.Reuses += atomic.LoadUint64(&v.reuses)
	s.GetCalls += getCalls
	s.Hits += getCalls - misses
	s.Misses += misses
	s.RemoveCalls += atomic.LoadUint64(&v.removeCalls)
	s.StaleRemoves += atomic.LoadUint64(&v.staleRemoves)
	s.Resets += atomic.LoadUint64(&v.resets)

	s.EntriesCount = uint64(v.count)
	s.SlotsCount = uint64(len(v.slots))
}

// Reset resets s, so it may be re-used again in [Vec.UpdateStats].
func (s *Stats) Reset() {
	*s = Stats{}
}
