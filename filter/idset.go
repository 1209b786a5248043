package filter

// IDSet is a set of record identifiers.
//
// It is built once by ExtractReviewedIDs and must be treated as frozen
// while a Filter pass is running; nothing in this package mutates a set
// after construction.
type IDSet map[string]struct{}

// NewIDSet creates a set holding the given identifiers.
func NewIDSet(ids ...string) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add inserts id into the set.
func (s IDSet) Add(id string) {
	s[id] = struct{}{}
}

// Contains reports whether id is a member of the set.
func (s IDSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of distinct identifiers in the set.
func (s IDSet) Len() int {
	return len(s)
}
