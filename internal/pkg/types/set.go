package types

import (
	"cmp"
	"maps"
	"slices"
)

// Set is a generic hash set for comparable types. It is mutable: Add and
// Delete modify the set in place.
type Set[T comparable] map[T]struct{}

// NewSet creates a Set holding the given elements, duplicates collapsed.
func NewSet[T comparable](data ...T) Set[T] {
	set := make(Set[T], len(data))
	set.Add(data...)
	return set
}

// Add inserts one or more elements into the set.
func (s Set[T]) Add(values ...T) {
	for _, val := range values {
		s[val] = struct{}{}
	}
}

// Delete removes one or more elements from the set.
func (s Set[T]) Delete(values ...T) {
	for _, val := range values {
		delete(s, val)
	}
}

// Has reports whether v is in the set.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// ToSlice returns the elements in no particular order.
func (s Set[T]) ToSlice() []T {
	return slices.Collect(maps.Keys(s))
}

// Sorted returns the elements of an ordered set in ascending order.
func Sorted[T cmp.Ordered](s Set[T]) []T {
	return slices.Sorted(maps.Keys(s))
}

// Dedupe returns values with repeated elements removed, keeping the first
// occurrence of each and the original order.
func Dedupe[T comparable](values []T) []T {
	seen := make(Set[T], len(values))
	out := make([]T, 0, len(values))
	for _, v := range values {
		if seen.Has(v) {
			continue
		}
		seen.Add(v)
		out = append(out, v)
	}
	return out
}
