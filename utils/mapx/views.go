// File: views.go
// Title: Read-Only Map Views
// Description: Implements empty, singleton, copying, and wrapping read-only
//              map views with the shared View interface.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial implementation with map views

package mapx

import (
	"iter"
	"maps"
)

// View is a read-only window onto string-to-value associations. As with the
// other corekit views, there are no mutators to misuse: immutability is a
// property of the interface, not a runtime check.
type View[K comparable, V any] interface {
	Len() int
	Get(key K) (V, bool)
	Has(key K) bool
	Keys() []K
	Seq() iter.Seq2[K, V]
	ForEach(fn func(K, V))
	Map() map[K]V
}

// mapView is a View backed by a map
type mapView[K comparable, V any] struct {
	items map[K]V
}

// EmptyView returns an immutable empty view
func EmptyView[K comparable, V any]() View[K, V] {
	return mapView[K, V]{}
}

// SingletonView returns an immutable view holding exactly one pair
func SingletonView[K comparable, V any](key K, value V) View[K, V] {
	return mapView[K, V]{items: map[K]V{key: value}}
}

// Of returns an immutable view of the given entries.
// Later entries win on key conflicts; the input is copied.
func Of[K comparable, V any](entries ...Entry[K, V]) View[K, V] {
	if len(entries) == 0 {
		return EmptyView[K, V]()
	}
	return mapView[K, V]{items: FromEntries(entries)}
}

// Unmodifiable returns a read-only live view of the given map.
// The map is not copied; changes to it remain visible through the view.
func Unmodifiable[K comparable, V any](m map[K]V) View[K, V] {
	return mapView[K, V]{items: m}
}

// Len returns the number of entries
func (v mapView[K, V]) Len() int {
	return len(v.items)
}

// Get returns the value for the key and whether it was present
func (v mapView[K, V]) Get(key K) (V, bool) {
	value, ok := v.items[key]
	return value, ok
}

// Has reports whether the key is present
func (v mapView[K, V]) Has(key K) bool {
	_, ok := v.items[key]
	return ok
}

// Keys returns the keys in unspecified order
func (v mapView[K, V]) Keys() []K {
	return Keys(v.items)
}

// Seq returns a range-over-func sequence of key-value pairs
func (v mapView[K, V]) Seq() iter.Seq2[K, V] {
	return maps.All(v.items)
}

// ForEach applies fn to every pair
func (v mapView[K, V]) ForEach(fn func(K, V)) {
	if fn == nil {
		return
	}
	for k, val := range v.items {
		fn(k, val)
	}
}

// Map returns a fresh mutable copy of the view contents
func (v mapView[K, V]) Map() map[K]V {
	if len(v.items) == 0 {
		return map[K]V{}
	}
	return maps.Clone(v.items)
}
