// File: mapx.go
// Title: Core Map Utilities
// Description: Implements map helper functions for transformation, lookup,
//              and merging built on the standard maps package, used by the
//              view types and by corekit's JSON and i18n components.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial implementation with map utilities

package mapx

import (
	"cmp"
	"maps"
	"slices"
)

// Entry represents a key-value pair
type Entry[K comparable, V any] struct {
	Key   K `json:"key"`
	Value V `json:"value"`
}

// E is a shorthand constructor for Entry, intended for Of call sites
func E[K comparable, V any](key K, value V) Entry[K, V] {
	return Entry[K, V]{Key: key, Value: value}
}

// Keys returns the keys of the map in unspecified order
func Keys[K comparable, V any](m map[K]V) []K {
	if m == nil {
		return nil
	}
	return slices.Collect(maps.Keys(m))
}

// SortedKeys returns the keys of the map in ascending order
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := Keys(m)
	slices.Sort(keys)
	return keys
}

// Values returns the values of the map in unspecified order
func Values[K comparable, V any](m map[K]V) []V {
	if m == nil {
		return nil
	}
	return slices.Collect(maps.Values(m))
}

// Clone creates a shallow copy of the map
func Clone[K comparable, V any](m map[K]V) map[K]V {
	return maps.Clone(m)
}

// Merge creates a new map by merging the given maps.
// Later maps override values from earlier maps for duplicate keys.
func Merge[K comparable, V any](ms ...map[K]V) map[K]V {
	total := 0
	for _, m := range ms {
		total += len(m)
	}

	result := make(map[K]V, total)
	for _, m := range ms {
		maps.Copy(result, m)
	}
	return result
}

// Filter returns a new map with the entries matching the predicate
func Filter[K comparable, V any](m map[K]V, predicate func(K, V) bool) map[K]V {
	if m == nil || predicate == nil {
		return nil
	}

	result := make(map[K]V)
	for k, v := range m {
		if predicate(k, v) {
			result[k] = v
		}
	}
	return result
}

// TransformValues returns a new map with every value put through the mapper
func TransformValues[K comparable, V, R any](m map[K]V, mapper func(V) R) map[K]R {
	if m == nil || mapper == nil {
		return nil
	}

	result := make(map[K]R, len(m))
	for k, v := range m {
		result[k] = mapper(v)
	}
	return result
}

// HasKey checks if the map contains the key
func HasKey[K comparable, V any](m map[K]V, key K) bool {
	_, ok := m[key]
	return ok
}

// GetOrDefault returns the value for the key, or the fallback when absent
func GetOrDefault[K comparable, V any](m map[K]V, key K, fallback V) V {
	if v, ok := m[key]; ok {
		return v
	}
	return fallback
}

// Equal checks if two maps hold the same keys with the same values
func Equal[K, V comparable](a, b map[K]V) bool {
	return maps.Equal(a, b)
}

// ToEntries converts a map to a slice of entries in unspecified order
func ToEntries[K comparable, V any](m map[K]V) []Entry[K, V] {
	if m == nil {
		return nil
	}

	result := make([]Entry[K, V], 0, len(m))
	for k, v := range m {
		result = append(result, Entry[K, V]{Key: k, Value: v})
	}
	return result
}

// FromEntries creates a map from entries; later entries win on key conflicts
func FromEntries[K comparable, V any](entries []Entry[K, V]) map[K]V {
	if entries == nil {
		return nil
	}

	result := make(map[K]V, len(entries))
	for _, e := range entries {
		result[e.Key] = e.Value
	}
	return result
}
