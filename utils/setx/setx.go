// File: setx.go
// Title: Read-Only Set Views
// Description: Implements the corekit set abstraction with empty, singleton,
//              copying, and wrapping read-only views plus the usual set
//              algebra helpers.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial implementation with set views

package setx

import (
	"iter"

	"github.com/msto63/corekit/utils/iterx"
)

// Set is a read-only collection of unique values. Like listx.List, it
// exposes no mutators; read-only is enforced by the type system rather
// than by runtime failures. Iteration order is unspecified.
type Set[T comparable] interface {
	Len() int
	Contains(value T) bool
	Iterator() iterx.Iterator[T]
	Seq() iter.Seq[T]
	ForEach(fn func(T))
	Slice() []T
}

// mapSet is a Set backed by a map
type mapSet[T comparable] struct {
	items map[T]struct{}
}

// Empty returns an immutable empty set
func Empty[T comparable]() Set[T] {
	return mapSet[T]{}
}

// Singleton returns an immutable set holding exactly one value
func Singleton[T comparable](value T) Set[T] {
	return mapSet[T]{items: map[T]struct{}{value: {}}}
}

// Of returns an immutable set of the given values; duplicates collapse
func Of[T comparable](values ...T) Set[T] {
	if len(values) == 0 {
		return Empty[T]()
	}
	items := make(map[T]struct{}, len(values))
	for _, v := range values {
		items[v] = struct{}{}
	}
	return mapSet[T]{items: items}
}

// Unmodifiable returns a read-only live view of the given member map.
// The map is not copied; additions and removals remain visible through
// the view.
func Unmodifiable[T comparable](members map[T]struct{}) Set[T] {
	return mapSet[T]{items: members}
}

// Len returns the number of elements
func (s mapSet[T]) Len() int {
	return len(s.items)
}

// Contains reports whether the set contains the value
func (s mapSet[T]) Contains(value T) bool {
	_, ok := s.items[value]
	return ok
}

// Iterator returns a cursor over the set in unspecified order
func (s mapSet[T]) Iterator() iterx.Iterator[T] {
	return iterx.FromSeq(s.Seq())
}

// Seq returns a range-over-func sequence over the set
func (s mapSet[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s.items {
			if !yield(v) {
				return
			}
		}
	}
}

// ForEach applies fn to every element
func (s mapSet[T]) ForEach(fn func(T)) {
	if fn == nil {
		return
	}
	for v := range s.items {
		fn(v)
	}
}

// Slice returns the elements as a fresh slice in unspecified order
func (s mapSet[T]) Slice() []T {
	if len(s.items) == 0 {
		return nil
	}
	result := make([]T, 0, len(s.items))
	for v := range s.items {
		result = append(result, v)
	}
	return result
}

// Union returns a new set with all elements of both sets
func Union[T comparable](a, b Set[T]) Set[T] {
	items := make(map[T]struct{}, setLen(a)+setLen(b))
	collect(a, items)
	collect(b, items)
	return mapSet[T]{items: items}
}

// Intersect returns a new set with the elements present in both sets
func Intersect[T comparable](a, b Set[T]) Set[T] {
	if a == nil || b == nil {
		return Empty[T]()
	}

	// Iterate the smaller side
	if b.Len() < a.Len() {
		a, b = b, a
	}

	items := make(map[T]struct{})
	a.ForEach(func(v T) {
		if b.Contains(v) {
			items[v] = struct{}{}
		}
	})
	return mapSet[T]{items: items}
}

// Difference returns a new set with the elements of a that are not in b
func Difference[T comparable](a, b Set[T]) Set[T] {
	if a == nil {
		return Empty[T]()
	}

	items := make(map[T]struct{})
	a.ForEach(func(v T) {
		if b == nil || !b.Contains(v) {
			items[v] = struct{}{}
		}
	})
	return mapSet[T]{items: items}
}

// Equal reports whether two sets contain the same elements
func Equal[T comparable](a, b Set[T]) bool {
	la, lb := setLen(a), setLen(b)
	if la != lb {
		return false
	}
	if la == 0 {
		return true
	}

	equal := true
	a.ForEach(func(v T) {
		if !b.Contains(v) {
			equal = false
		}
	})
	return equal
}

// IsSubset reports whether every element of a is in b
func IsSubset[T comparable](a, b Set[T]) bool {
	if setLen(a) == 0 {
		return true
	}
	if b == nil {
		return false
	}

	subset := true
	a.ForEach(func(v T) {
		if !b.Contains(v) {
			subset = false
		}
	})
	return subset
}

// setLen is the nil-tolerant length
func setLen[T comparable](s Set[T]) int {
	if s == nil {
		return 0
	}
	return s.Len()
}

// collect copies the elements of s into dst
func collect[T comparable](s Set[T], dst map[T]struct{}) {
	if s == nil {
		return
	}
	s.ForEach(func(v T) {
		dst[v] = struct{}{}
	})
}
