package diag

import "sync"

// Interner maps string identifiers to dense uint32 values so they can be
// collected into roaring bitmaps. The same Interner must be shared by every
// table that contributes to one coverage comparison, so equal identifiers
// land on equal integers.
//
// Safe for concurrent use; table scans run in parallel.
type Interner struct {
	mu  sync.Mutex
	ids map[string]uint32
}

// NewInterner creates an empty interner.
func NewInterner() *Interner {
	return &Interner{ids: make(map[string]uint32)}
}

// Intern returns the dense value for id, assigning the next free one on
// first sight.
func (in *Interner) Intern(id string) uint32 {
	in.mu.Lock()
	defer in.mu.Unlock()

	v, ok := in.ids[id]
	if !ok {
		v = uint32(len(in.ids))
		in.ids[id] = v
	}
	return v
}

// Len returns the number of distinct identifiers interned so far.
func (in *Interner) Len() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return len(in.ids)
}
