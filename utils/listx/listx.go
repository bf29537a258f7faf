// File: listx.go
// Title: Read-Only List Views
// Description: Implements the corekit list abstraction with empty, singleton,
//              copying, and wrapping read-only views over slices, plus the
//              search helpers that work on any view.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial implementation with list views

package listx

import (
	"fmt"
	"iter"

	"github.com/msto63/corekit/utils/iterx"
)

// List is a read-only, index-addressable sequence. Mutation is impossible
// by construction: the interface exposes no mutators, so "unsupported
// operation" failures cannot happen at runtime. Get panics on an
// out-of-range index, exactly like indexing a slice.
type List[T any] interface {
	Len() int
	Get(index int) T
	Iterator() iterx.Iterator[T]
	Seq() iter.Seq[T]
	ForEach(fn func(T))
	Slice() []T
}

// sliceList is a List backed by a slice
type sliceList[T any] struct {
	items []T
}

// Empty returns an immutable empty list
func Empty[T any]() List[T] {
	return sliceList[T]{}
}

// Singleton returns an immutable list holding exactly one value
func Singleton[T any](value T) List[T] {
	return sliceList[T]{items: []T{value}}
}

// Of returns an immutable list of the given values.
// The values are copied; later changes to the arguments are not visible.
func Of[T any](values ...T) List[T] {
	if len(values) == 0 {
		return Empty[T]()
	}
	items := make([]T, len(values))
	copy(items, values)
	return sliceList[T]{items: items}
}

// Unmodifiable returns a read-only live view of the given slice.
// The slice is not copied: changes to its elements remain visible through
// the view, but the view itself offers no way to modify them.
func Unmodifiable[T any](slice []T) List[T] {
	return sliceList[T]{items: slice}
}

// Len returns the number of elements
func (l sliceList[T]) Len() int {
	return len(l.items)
}

// Get returns the element at the given index
func (l sliceList[T]) Get(index int) T {
	if index < 0 || index >= len(l.items) {
		panic(fmt.Sprintf("listx: index %d out of range [0:%d]", index, len(l.items)))
	}
	return l.items[index]
}

// Iterator returns a cursor over the list
func (l sliceList[T]) Iterator() iterx.Iterator[T] {
	return iterx.FromSlice(l.items)
}

// Seq returns a range-over-func sequence over the list
func (l sliceList[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.items {
			if !yield(v) {
				return
			}
		}
	}
}

// ForEach applies fn to every element in order
func (l sliceList[T]) ForEach(fn func(T)) {
	if fn == nil {
		return
	}
	for _, v := range l.items {
		fn(v)
	}
}

// Slice returns a fresh copy of the list contents
func (l sliceList[T]) Slice() []T {
	if len(l.items) == 0 {
		return nil
	}
	result := make([]T, len(l.items))
	copy(result, l.items)
	return result
}

// IndexOf returns the index of the first occurrence of value, or -1
func IndexOf[T comparable](list List[T], value T) int {
	if list == nil {
		return -1
	}
	for i := 0; i < list.Len(); i++ {
		if list.Get(i) == value {
			return i
		}
	}
	return -1
}

// Contains reports whether the list contains the value
func Contains[T comparable](list List[T], value T) bool {
	return IndexOf(list, value) >= 0
}

// Equal reports whether two lists have the same elements in the same order
func Equal[T comparable](a, b List[T]) bool {
	if a == nil || b == nil {
		return (a == nil || a.Len() == 0) && (b == nil || b.Len() == 0)
	}
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if a.Get(i) != b.Get(i) {
			return false
		}
	}
	return true
}
