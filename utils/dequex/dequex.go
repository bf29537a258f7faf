// File: dequex.go
// Title: Ring-Buffer Deque and Queue
// Description: Implements a growable double-ended queue backed by a circular
//              buffer, a FIFO queue facade over it, and a read-only view for
//              handing deques to consumers that must not mutate them.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial implementation with ring-buffer deque

package dequex

import (
	"iter"

	"github.com/msto63/corekit/utils/iterx"
)

// minCapacity is the smallest buffer allocated once the deque holds data.
// Must be a power of two so index masking works.
const minCapacity = 8

// Deque is a growable double-ended queue over a circular buffer.
// The zero value is an empty deque ready for use. Pop and peek operations
// return an ok-bool; an empty deque yields the zero value and false.
// Not safe for concurrent use.
type Deque[T any] struct {
	buf   []T
	head  int
	count int
}

// New creates an empty deque
func New[T any]() *Deque[T] {
	return &Deque[T]{}
}

// WithCapacity creates an empty deque with room for at least n elements
func WithCapacity[T any](n int) *Deque[T] {
	capacity := minCapacity
	for capacity < n {
		capacity <<= 1
	}
	return &Deque[T]{buf: make([]T, capacity)}
}

// Of creates a deque holding the given values front to back
func Of[T any](values ...T) *Deque[T] {
	d := WithCapacity[T](len(values))
	for _, v := range values {
		d.PushBack(v)
	}
	return d
}

// Len returns the number of elements
func (d *Deque[T]) Len() int {
	return d.count
}

// IsEmpty reports whether the deque holds no elements
func (d *Deque[T]) IsEmpty() bool {
	return d.count == 0
}

// PushBack appends a value at the back
func (d *Deque[T]) PushBack(value T) {
	d.growIfFull()
	d.buf[d.index(d.count)] = value
	d.count++
}

// PushFront prepends a value at the front
func (d *Deque[T]) PushFront(value T) {
	d.growIfFull()
	d.head = d.index(-1)
	d.buf[d.head] = value
	d.count++
}

// PopFront removes and returns the front value
func (d *Deque[T]) PopFront() (T, bool) {
	if d.count == 0 {
		var zero T
		return zero, false
	}
	v := d.buf[d.head]
	var zero T
	d.buf[d.head] = zero // release reference
	d.head = d.index(1)
	d.count--
	return v, true
}

// PopBack removes and returns the back value
func (d *Deque[T]) PopBack() (T, bool) {
	if d.count == 0 {
		var zero T
		return zero, false
	}
	idx := d.index(d.count - 1)
	v := d.buf[idx]
	var zero T
	d.buf[idx] = zero
	d.count--
	return v, true
}

// Front returns the front value without removing it
func (d *Deque[T]) Front() (T, bool) {
	if d.count == 0 {
		var zero T
		return zero, false
	}
	return d.buf[d.head], true
}

// Back returns the back value without removing it
func (d *Deque[T]) Back() (T, bool) {
	if d.count == 0 {
		var zero T
		return zero, false
	}
	return d.buf[d.index(d.count-1)], true
}

// At returns the element at position i counted from the front
func (d *Deque[T]) At(i int) (T, bool) {
	if i < 0 || i >= d.count {
		var zero T
		return zero, false
	}
	return d.buf[d.index(i)], true
}

// Clear removes all elements, keeping the allocated buffer
func (d *Deque[T]) Clear() {
	var zero T
	for i := 0; i < d.count; i++ {
		d.buf[d.index(i)] = zero
	}
	d.head = 0
	d.count = 0
}

// Clone returns an independent copy of the deque
func (d *Deque[T]) Clone() *Deque[T] {
	clone := WithCapacity[T](d.count)
	for i := 0; i < d.count; i++ {
		clone.PushBack(d.buf[d.index(i)])
	}
	return clone
}

// Slice returns the elements front to back as a fresh slice
func (d *Deque[T]) Slice() []T {
	if d.count == 0 {
		return nil
	}
	result := make([]T, d.count)
	for i := 0; i < d.count; i++ {
		result[i] = d.buf[d.index(i)]
	}
	return result
}

// Iterator returns a cursor from front to back.
// The deque must not be modified while iterating.
func (d *Deque[T]) Iterator() iterx.Iterator[T] {
	i := 0
	return iterx.Func[T](func() (T, bool) {
		if i >= d.count {
			var zero T
			return zero, false
		}
		v := d.buf[d.index(i)]
		i++
		return v, true
	})
}

// Seq returns a range-over-func sequence from front to back
func (d *Deque[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < d.count; i++ {
			if !yield(d.buf[d.index(i)]) {
				return
			}
		}
	}
}

// index maps a logical offset from head to a buffer position
func (d *Deque[T]) index(offset int) int {
	return (d.head + offset + len(d.buf)) & (len(d.buf) - 1)
}

// growIfFull doubles the buffer when no slot is free
func (d *Deque[T]) growIfFull() {
	if d.count < len(d.buf) {
		return
	}

	capacity := len(d.buf) * 2
	if capacity == 0 {
		capacity = minCapacity
	}

	buf := make([]T, capacity)
	for i := 0; i < d.count; i++ {
		buf[i] = d.buf[d.index(i)]
	}
	d.buf = buf
	d.head = 0
}

// Queue is a FIFO facade over a Deque
type Queue[T any] struct {
	d Deque[T]
}

// NewQueue creates an empty queue
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Offer appends a value at the tail
func (q *Queue[T]) Offer(value T) {
	q.d.PushBack(value)
}

// Poll removes and returns the head value
func (q *Queue[T]) Poll() (T, bool) {
	return q.d.PopFront()
}

// Peek returns the head value without removing it
func (q *Queue[T]) Peek() (T, bool) {
	return q.d.Front()
}

// Len returns the number of queued elements
func (q *Queue[T]) Len() int {
	return q.d.Len()
}

// Slice returns the queued elements head to tail
func (q *Queue[T]) Slice() []T {
	return q.d.Slice()
}

// View is a read-only window onto a deque
type View[T any] interface {
	Len() int
	Front() (T, bool)
	Back() (T, bool)
	At(i int) (T, bool)
	Iterator() iterx.Iterator[T]
	Seq() iter.Seq[T]
	Slice() []T
}

// dequeView adapts *Deque to the read-only View interface
type dequeView[T any] struct {
	d *Deque[T]
}

// Unmodifiable returns a read-only live view of the deque.
// Changes to the deque remain visible; the view offers no mutators.
func Unmodifiable[T any](d *Deque[T]) View[T] {
	if d == nil {
		d = New[T]()
	}
	return dequeView[T]{d: d}
}

func (v dequeView[T]) Len() int                    { return v.d.Len() }
func (v dequeView[T]) Front() (T, bool)            { return v.d.Front() }
func (v dequeView[T]) Back() (T, bool)             { return v.d.Back() }
func (v dequeView[T]) At(i int) (T, bool)          { return v.d.At(i) }
func (v dequeView[T]) Iterator() iterx.Iterator[T] { return v.d.Iterator() }
func (v dequeView[T]) Seq() iter.Seq[T]            { return v.d.Seq() }
func (v dequeView[T]) Slice() []T                  { return v.d.Slice() }
