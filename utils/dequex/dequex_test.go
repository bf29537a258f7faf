// File: dequex_test.go
// Title: Deque and Queue Tests
// Description: Tests for ring-buffer growth and wrap-around, both-end
//              operations, the queue facade, and read-only views.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial test coverage

package dequex

import (
	"slices"
	"testing"
)

func TestZeroValueDeque(t *testing.T) {
	var d Deque[int]

	if !d.IsEmpty() || d.Len() != 0 {
		t.Fatalf("zero value not empty: Len=%d", d.Len())
	}
	if _, ok := d.PopFront(); ok {
		t.Error("PopFront on empty returned ok")
	}
	if _, ok := d.PopBack(); ok {
		t.Error("PopBack on empty returned ok")
	}
	if _, ok := d.Front(); ok {
		t.Error("Front on empty returned ok")
	}

	d.PushBack(1)
	if v, ok := d.Front(); !ok || v != 1 {
		t.Errorf("Front = %d, %v after PushBack", v, ok)
	}
}

func TestPushPopBothEnds(t *testing.T) {
	d := New[int]()
	d.PushBack(2)
	d.PushBack(3)
	d.PushFront(1)
	d.PushFront(0)

	if got := d.Slice(); !slices.Equal(got, []int{0, 1, 2, 3}) {
		t.Fatalf("Slice() = %v, want [0 1 2 3]", got)
	}

	if v, _ := d.PopFront(); v != 0 {
		t.Errorf("PopFront = %d, want 0", v)
	}
	if v, _ := d.PopBack(); v != 3 {
		t.Errorf("PopBack = %d, want 3", v)
	}
	if v, _ := d.Front(); v != 1 {
		t.Errorf("Front = %d, want 1", v)
	}
	if v, _ := d.Back(); v != 2 {
		t.Errorf("Back = %d, want 2", v)
	}
	if d.Len() != 2 {
		t.Errorf("Len = %d, want 2", d.Len())
	}
}

func TestGrowthPreservesOrder(t *testing.T) {
	d := New[int]()

	// Force several buffer doublings with interleaved wrap-around
	for i := 0; i < 100; i++ {
		d.PushBack(i)
	}
	for i := 0; i < 50; i++ {
		if v, _ := d.PopFront(); v != i {
			t.Fatalf("PopFront = %d, want %d", v, i)
		}
	}
	for i := 100; i < 300; i++ {
		d.PushBack(i)
	}

	want := make([]int, 0, 250)
	for i := 50; i < 300; i++ {
		want = append(want, i)
	}
	if got := d.Slice(); !slices.Equal(got, want) {
		t.Errorf("order lost after growth: first=%v last=%v len=%d", got[0], got[len(got)-1], len(got))
	}
}

func TestWrapAround(t *testing.T) {
	d := WithCapacity[string](4)

	// Rotate through the buffer repeatedly
	for i := 0; i < 20; i++ {
		d.PushBack("x")
		if _, ok := d.PopFront(); !ok {
			t.Fatal("PopFront failed during rotation")
		}
	}
	if d.Len() != 0 {
		t.Errorf("Len = %d after balanced rotation", d.Len())
	}

	d.PushFront("b")
	d.PushFront("a")
	d.PushBack("c")
	if got := d.Slice(); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("Slice after wrap = %v", got)
	}
}

func TestAt(t *testing.T) {
	d := Of(10, 20, 30)

	tests := []struct {
		index  int
		want   int
		wantOK bool
	}{
		{0, 10, true},
		{2, 30, true},
		{-1, 0, false},
		{3, 0, false},
	}

	for _, tt := range tests {
		v, ok := d.At(tt.index)
		if v != tt.want || ok != tt.wantOK {
			t.Errorf("At(%d) = %d, %v; want %d, %v", tt.index, v, ok, tt.want, tt.wantOK)
		}
	}
}

func TestClearAndClone(t *testing.T) {
	d := Of(1, 2, 3)
	clone := d.Clone()

	d.Clear()

	if d.Len() != 0 {
		t.Errorf("Len after Clear = %d", d.Len())
	}
	if got := clone.Slice(); !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("clone affected by Clear: %v", got)
	}

	clone.PushBack(4)
	if d.Len() != 0 {
		t.Error("original affected by clone mutation")
	}
}

func TestIteratorAndSeq(t *testing.T) {
	d := Of("a", "b", "c")

	var collected []string
	it := d.Iterator()
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		collected = append(collected, v)
	}
	if !slices.Equal(collected, []string{"a", "b", "c"}) {
		t.Errorf("Iterator order = %v", collected)
	}

	var ranged []string
	for v := range d.Seq() {
		ranged = append(ranged, v)
		if v == "b" {
			break
		}
	}
	if !slices.Equal(ranged, []string{"a", "b"}) {
		t.Errorf("Seq early break = %v", ranged)
	}
}

func TestQueueFIFO(t *testing.T) {
	q := NewQueue[int]()

	if _, ok := q.Poll(); ok {
		t.Error("Poll on empty queue returned ok")
	}

	q.Offer(1)
	q.Offer(2)
	q.Offer(3)

	if v, ok := q.Peek(); !ok || v != 1 {
		t.Errorf("Peek = %d, %v; want 1, true", v, ok)
	}
	if q.Len() != 3 {
		t.Errorf("Len = %d, want 3 (Peek must not consume)", q.Len())
	}

	var drained []int
	for {
		v, ok := q.Poll()
		if !ok {
			break
		}
		drained = append(drained, v)
	}
	if !slices.Equal(drained, []int{1, 2, 3}) {
		t.Errorf("drained = %v, want [1 2 3]", drained)
	}
}

func TestUnmodifiableView(t *testing.T) {
	d := Of(1, 2)
	v := Unmodifiable(d)

	if v.Len() != 2 {
		t.Errorf("view Len = %d", v.Len())
	}

	// Live view: mutations through the deque are visible
	d.PushBack(3)
	if back, _ := v.Back(); back != 3 {
		t.Errorf("view Back = %d, want 3", back)
	}
	if got := v.Slice(); !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("view Slice = %v", got)
	}

	// nil deque degrades to an empty view
	nv := Unmodifiable[int](nil)
	if nv.Len() != 0 {
		t.Errorf("nil view Len = %d", nv.Len())
	}
}
