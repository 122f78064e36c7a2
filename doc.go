// Package genvec provides a generic generational slot map.
//
// A [Vec] stores values in a growable slice and hands out a [Handle] for
// each of them. Insert, lookup and removal are O(1). Unlike a plain slice
// index, a handle can be checked: once its value is removed the handle
// stops resolving, even after the slot has been reused for another value.
//
// # Handles
//
// A [Handle] is a slot index plus the generation of that slot at insert
// time. Every slot counts its removals; a handle is live only while its
// slot is occupied and the slot generation still equals the handle's.
// Stale handles are a normal condition: [Vec.Get] reports them with a false
// result and [Vec.Remove] ignores them.
//
// # Free list
//
// Removed slots are chained into a free list that lives inside the slot
// slice itself, so reusing a slot needs no extra allocation. The most
// recently freed slot is reused first. The backing storage never shrinks.
//
// # Panics
//
// Passing a handle whose index was never allocated by the store panics,
// as does finding an occupied slot at the head of the free list. Both are
// programming errors, not conditions callers are expected to handle.
//
// Generations are 32-bit and are not checked for wraparound.
//
// # Thread Safety
//
// [Vec] is meant for a single owner. [Synced] wraps a Vec in a
// [sync.RWMutex] for use by multiple goroutines.
package genvec
