// File: iterx.go
// Title: Iterator and Enumeration Adapters
// Description: Implements the corekit iterator abstraction with empty and
//              singleton iterators, slice and sequence adapters, and a
//              legacy enumeration cursor with bridging in both directions.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial implementation with iterator adapters

package iterx

import "iter"

// Iterator is the corekit iteration cursor. Next returns the next element
// and true, or the zero value and false once the iterator is exhausted.
// Exhausted iterators keep returning false on every subsequent call.
type Iterator[T any] interface {
	Next() (T, bool)
}

// Func adapts a plain function to the Iterator interface
type Func[T any] func() (T, bool)

// Next implements the Iterator interface
func (f Func[T]) Next() (T, bool) {
	return f()
}

// Empty returns an iterator that is exhausted from the start
func Empty[T any]() Iterator[T] {
	return Func[T](func() (T, bool) {
		var zero T
		return zero, false
	})
}

// Singleton returns an iterator that yields exactly one value
func Singleton[T any](value T) Iterator[T] {
	done := false
	return Func[T](func() (T, bool) {
		if done {
			var zero T
			return zero, false
		}
		done = true
		return value, true
	})
}

// FromSlice returns an iterator over the elements of a slice.
// The slice is read live; it must not shrink while iterating.
func FromSlice[T any](slice []T) Iterator[T] {
	idx := 0
	return Func[T](func() (T, bool) {
		if idx >= len(slice) {
			var zero T
			return zero, false
		}
		v := slice[idx]
		idx++
		return v, true
	})
}

// Of returns an iterator over the given values
func Of[T any](values ...T) Iterator[T] {
	return FromSlice(values)
}

// FromSeq adapts a standard iter.Seq to an Iterator.
// The returned iterator owns the underlying pull cursor; it is released
// automatically when the sequence is exhausted.
func FromSeq[T any](seq iter.Seq[T]) Iterator[T] {
	next, stop := iter.Pull(seq)
	done := false
	return Func[T](func() (T, bool) {
		if done {
			var zero T
			return zero, false
		}
		v, ok := next()
		if !ok {
			done = true
			stop()
			var zero T
			return zero, false
		}
		return v, true
	})
}

// Seq adapts an Iterator to a standard iter.Seq usable in range-over-func
func Seq[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if it == nil {
			return
		}
		for {
			v, ok := it.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Collect drains an iterator into a slice
func Collect[T any](it Iterator[T]) []T {
	if it == nil {
		return nil
	}

	var result []T
	for {
		v, ok := it.Next()
		if !ok {
			return result
		}
		result = append(result, v)
	}
}

// Count drains an iterator and returns the number of elements it yielded
func Count[T any](it Iterator[T]) int {
	if it == nil {
		return 0
	}

	count := 0
	for {
		if _, ok := it.Next(); !ok {
			return count
		}
		count++
	}
}

// ForEach applies fn to every remaining element of the iterator
func ForEach[T any](it Iterator[T], fn func(T)) {
	if it == nil || fn == nil {
		return
	}
	for {
		v, ok := it.Next()
		if !ok {
			return
		}
		fn(v)
	}
}

// Filter returns an iterator yielding only elements matching the predicate
func Filter[T any](it Iterator[T], predicate func(T) bool) Iterator[T] {
	if it == nil || predicate == nil {
		return Empty[T]()
	}
	return Func[T](func() (T, bool) {
		for {
			v, ok := it.Next()
			if !ok {
				var zero T
				return zero, false
			}
			if predicate(v) {
				return v, true
			}
		}
	})
}

// Map returns an iterator applying mapper to every element
func Map[T, R any](it Iterator[T], mapper func(T) R) Iterator[R] {
	if it == nil || mapper == nil {
		return Empty[R]()
	}
	return Func[R](func() (R, bool) {
		v, ok := it.Next()
		if !ok {
			var zero R
			return zero, false
		}
		return mapper(v), true
	})
}

// Enumeration is the legacy two-call cursor kept for callers porting code
// built around hasNext/next pairs. NextElement returns false when the
// enumeration is exhausted.
type Enumeration[T any] interface {
	HasMoreElements() bool
	NextElement() (T, bool)
}

// sliceEnumeration enumerates a slice by index
type sliceEnumeration[T any] struct {
	slice []T
	idx   int
}

// EnumerationOf returns an Enumeration over the given values
func EnumerationOf[T any](values ...T) Enumeration[T] {
	return &sliceEnumeration[T]{slice: values}
}

// HasMoreElements implements the Enumeration interface
func (e *sliceEnumeration[T]) HasMoreElements() bool {
	return e.idx < len(e.slice)
}

// NextElement implements the Enumeration interface
func (e *sliceEnumeration[T]) NextElement() (T, bool) {
	if e.idx >= len(e.slice) {
		var zero T
		return zero, false
	}
	v := e.slice[e.idx]
	e.idx++
	return v, true
}

// FromEnumeration adapts an Enumeration to an Iterator
func FromEnumeration[T any](e Enumeration[T]) Iterator[T] {
	if e == nil {
		return Empty[T]()
	}
	return Func[T](func() (T, bool) {
		if !e.HasMoreElements() {
			var zero T
			return zero, false
		}
		return e.NextElement()
	})
}

// ToEnumeration adapts an Iterator to an Enumeration.
// HasMoreElements has to read ahead one element to answer truthfully.
func ToEnumeration[T any](it Iterator[T]) Enumeration[T] {
	return &iteratorEnumeration[T]{it: it}
}

type iteratorEnumeration[T any] struct {
	it      Iterator[T]
	pending T
	loaded  bool
	done    bool
}

func (e *iteratorEnumeration[T]) HasMoreElements() bool {
	if e.loaded {
		return true
	}
	if e.done || e.it == nil {
		return false
	}
	v, ok := e.it.Next()
	if !ok {
		e.done = true
		return false
	}
	e.pending = v
	e.loaded = true
	return true
}

func (e *iteratorEnumeration[T]) NextElement() (T, bool) {
	if !e.HasMoreElements() {
		var zero T
		return zero, false
	}
	v := e.pending
	var zero T
	e.pending = zero
	e.loaded = false
	return v, true
}
