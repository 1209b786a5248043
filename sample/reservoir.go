// Package sample provides uniform reservoir sampling over sequences of
// unknown length.
package sample

import (
	"github.com/hupe1980/recstream/util"
)

// Reservoir maintains a uniformly-random k-subset of the values offered to
// it, in O(k) space (Algorithm R). It is used to pick demo users or items
// from an interaction stream without buffering it.
//
// Not safe for concurrent use.
type Reservoir[T any] struct {
	k     int
	rng   *util.RNG
	items []T
	seen  int
}

// NewReservoir creates a reservoir of capacity k. If rng is nil a
// time-seeded RNG is used; pass a fixed-seed RNG for reproducible picks.
// It panics if k <= 0.
func NewReservoir[T any](k int, rng *util.RNG) *Reservoir[T] {
	if k <= 0 {
		panic("sample: reservoir capacity must be positive")
	}
	if rng == nil {
		rng = util.NewTimeRNG()
	}
	return &Reservoir[T]{
		k:     k,
		rng:   rng,
		items: make([]T, 0, k),
	}
}

// Add offers v to the reservoir.
func (r *Reservoir[T]) Add(v T) {
	r.seen++
	if len(r.items) < r.k {
		r.items = append(r.items, v)
		return
	}
	if j := r.rng.Intn(r.seen); j < r.k {
		r.items[j] = v
	}
}

// Items returns the current sample. The slice is owned by the reservoir;
// it holds min(k, Seen()) values.
func (r *Reservoir[T]) Items() []T {
	return r.items
}

// Seen returns the number of values offered so far.
func (r *Reservoir[T]) Seen() int {
	return r.seen
}
