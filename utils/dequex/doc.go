// File: doc.go
// Title: Package Documentation for dequex
// Description: Package dequex provides a ring-buffer deque, a FIFO queue
//              facade, and read-only deque views.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial documentation

// Package dequex provides a growable double-ended queue.
//
// Deque is backed by a power-of-two circular buffer, so pushes and pops at
// either end are amortized O(1) with no per-element allocation. The zero
// value is ready to use:
//
//	var d dequex.Deque[int]
//	d.PushBack(1)
//	d.PushFront(0)
//	v, ok := d.PopFront() // 0, true
//
// Queue is a FIFO facade (Offer/Poll/Peek) for callers that want queue
// vocabulary. Unmodifiable wraps a deque as a read-only View for handing
// out without copy.
//
// Neither type is safe for concurrent use.
package dequex
