// File: views_test.go
// Title: Map View Tests
// Description: Tests for empty, singleton, copying, and wrapping map views.
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
	"testing"
)

func TestEmptyView(t *testing.T) {
	v := EmptyView[string, int]()

	if v.Len() != 0 {
		t.Errorf("Len = %d", v.Len())
	}
	if _, ok := v.Get("any"); ok {
		t.Error("Get on empty view returned ok")
	}
	if v.Has("any") {
		t.Error("Has on empty view = true")
	}
	if got := v.Map(); got == nil || len(got) != 0 {
		t.Errorf("Map() = %v, want empty non-nil", got)
	}
}

func TestSingletonView(t *testing.T) {
	v := SingletonView("answer", 42)

	if v.Len() != 1 {
		t.Fatalf("Len = %d", v.Len())
	}
	if got, ok := v.Get("answer"); !ok || got != 42 {
		t.Errorf("Get = %d, %v", got, ok)
	}
	if _, ok := v.Get("question"); ok {
		t.Error("Get(absent) returned ok")
	}
}

func TestOfCopiesEntries(t *testing.T) {
	v := Of(E("a", 1), E("b", 2), E("a", 10))

	if v.Len() != 2 {
		t.Errorf("Len = %d, want 2 (duplicate key collapses)", v.Len())
	}
	if got, _ := v.Get("a"); got != 10 {
		t.Errorf("Get(a) = %d, want 10 (later entry wins)", got)
	}

	keys := v.Keys()
	slices.Sort(keys)
	if !slices.Equal(keys, []string{"a", "b"}) {
		t.Errorf("Keys = %v", keys)
	}
}

func TestUnmodifiableViewIsLive(t *testing.T) {
	m := map[string]int{"a": 1}
	v := Unmodifiable(m)

	m["b"] = 2

	if !v.Has("b") {
		t.Error("live view missed addition")
	}
	if v.Len() != 2 {
		t.Errorf("Len = %d", v.Len())
	}
}

func TestViewMapReturnsCopy(t *testing.T) {
	m := map[string]int{"a": 1}
	v := Unmodifiable(m)

	copied := v.Map()
	copied["a"] = 99

	if m["a"] != 1 {
		t.Error("Map() aliased the backing map")
	}
}

func TestViewSeqAndForEach(t *testing.T) {
	v := Of(E("a", 1), E("b", 2))

	total := 0
	for _, val := range v.Seq() {
		total += val
	}
	if total != 3 {
		t.Errorf("Seq sum = %d, want 3", total)
	}

	visited := map[string]int{}
	v.ForEach(func(k string, val int) { visited[k] = val })
	if !Equal(visited, map[string]int{"a": 1, "b": 2}) {
		t.Errorf("ForEach visited = %v", visited)
	}

	v.ForEach(nil) // must not panic
}
