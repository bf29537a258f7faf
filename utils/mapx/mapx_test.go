// File: mapx_test.go
// Title: Map Utilities Tests
// Description: Tests for map helper functions including transformation,
//              merging, lookup, and entry conversion.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial test coverage

package mapx

import (
	"slices"
	"strconv"
	"testing"
)

func TestKeysAndValues(t *testing.T) {
	tests := []struct {
		name  string
		input map[string]int
		count int
	}{
		{"nil map", nil, 0},
		{"empty map", map[string]int{}, 0},
		{"populated", map[string]int{"a": 1, "b": 2, "c": 3}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys := Keys(tt.input)
			values := Values(tt.input)
			if len(keys) != tt.count || len(values) != tt.count {
				t.Errorf("Keys/Values lengths = %d/%d, want %d", len(keys), len(values), tt.count)
			}
			for _, k := range keys {
				if !HasKey(tt.input, k) {
					t.Errorf("Keys() returned absent key %q", k)
				}
			}
		})
	}
}

func TestSortedKeys(t *testing.T) {
	m := map[string]int{"c": 3, "a": 1, "b": 2}
	if got := SortedKeys(m); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("SortedKeys = %v", got)
	}
	if got := SortedKeys[string, int](nil); got != nil {
		t.Errorf("SortedKeys(nil) = %v, want nil", got)
	}
}

func TestClone(t *testing.T) {
	src := map[string]int{"a": 1}
	clone := Clone(src)

	clone["a"] = 99
	if src["a"] != 1 {
		t.Error("Clone aliased the source map")
	}

	if Clone[string, int](nil) != nil {
		t.Error("Clone(nil) != nil")
	}
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name  string
		input []map[string]int
		want  map[string]int
	}{
		{"no maps", nil, map[string]int{}},
		{"single", []map[string]int{{"a": 1}}, map[string]int{"a": 1}},
		{
			"later wins",
			[]map[string]int{{"a": 1, "b": 2}, {"b": 20, "c": 3}},
			map[string]int{"a": 1, "b": 20, "c": 3},
		},
		{"nil members", []map[string]int{nil, {"a": 1}, nil}, map[string]int{"a": 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Merge(tt.input...); !Equal(got, tt.want) {
				t.Errorf("Merge = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilter(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2, "c": 3}

	got := Filter(m, func(k string, v int) bool { return v%2 == 1 })
	if !Equal(got, map[string]int{"a": 1, "c": 3}) {
		t.Errorf("Filter = %v", got)
	}

	if Filter(m, nil) != nil {
		t.Error("Filter with nil predicate != nil")
	}
	if Filter[string, int](nil, func(string, int) bool { return true }) != nil {
		t.Error("Filter(nil) != nil")
	}
}

func TestTransformValues(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2}

	got := TransformValues(m, strconv.Itoa)
	if got["a"] != "1" || got["b"] != "2" {
		t.Errorf("TransformValues = %v", got)
	}
}

func TestGetOrDefault(t *testing.T) {
	m := map[string]int{"a": 1}

	if got := GetOrDefault(m, "a", 9); got != 1 {
		t.Errorf("GetOrDefault(present) = %d", got)
	}
	if got := GetOrDefault(m, "b", 9); got != 9 {
		t.Errorf("GetOrDefault(absent) = %d", got)
	}
	if got := GetOrDefault(nil, "a", 9); got != 9 {
		t.Errorf("GetOrDefault(nil) = %d", got)
	}
}

func TestEntriesRoundTrip(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2}

	entries := ToEntries(m)
	if len(entries) != 2 {
		t.Fatalf("ToEntries len = %d", len(entries))
	}

	back := FromEntries(entries)
	if !Equal(back, m) {
		t.Errorf("round trip = %v, want %v", back, m)
	}

	// Later entries win
	dup := FromEntries([]Entry[string, int]{E("k", 1), E("k", 2)})
	if dup["k"] != 2 {
		t.Errorf("FromEntries duplicate = %d, want 2", dup["k"])
	}
}
