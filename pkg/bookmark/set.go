package bookmark

import (
	"maps"
	"slices"
)

// Set is a deduplicated collection of bookmarked identifiers.
// It only ever holds non-empty strings.
type Set map[string]struct{}

// NewSet builds a Set from ids, skipping empty strings.
func NewSet(ids ...string) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Has reports whether id is in the set.
func (s Set) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Add inserts id. Empty identifiers are ignored.
// Returns true if the set changed.
func (s Set) Add(id string) bool {
	if id == "" || s.Has(id) {
		return false
	}
	s[id] = struct{}{}
	return true
}

// Remove deletes id. Returns true if the set changed.
func (s Set) Remove(id string) bool {
	if !s.Has(id) {
		return false
	}
	delete(s, id)
	return true
}

// Toggle flips the membership of id and reports whether id is present afterwards.
func (s Set) Toggle(id string) bool {
	if s.Remove(id) {
		return false
	}
	return s.Add(id)
}

// Len returns the number of identifiers.
func (s Set) Len() int {
	return len(s)
}

// IDs returns the identifiers in ascending order.
// The result is never nil.
func (s Set) IDs() []string {
	ids := slices.AppendSeq(make([]string, 0, len(s)), maps.Keys(s))
	slices.Sort(ids)
	return ids
}

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	if s == nil {
		return make(Set)
	}
	return maps.Clone(s)
}
