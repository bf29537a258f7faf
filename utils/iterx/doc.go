// File: doc.go
// Title: Package Documentation for iterx
// Description: Package iterx provides the corekit iteration abstraction
//              with adapters between slices, iter.Seq sequences, and the
//              legacy enumeration cursor.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial documentation

// Package iterx provides corekit's iteration cursor and its adapters.
//
// The central type is Iterator[T], a single-method cursor:
//
//	it := iterx.Of(1, 2, 3)
//	for {
//	    v, ok := it.Next()
//	    if !ok {
//	        break
//	    }
//	    fmt.Println(v)
//	}
//
// The ok-bool replaces exception-style exhaustion signalling: an exhausted
// iterator returns the zero value and false, on this and every later call.
//
// Adapters bridge to the rest of the ecosystem:
//
//	for v := range iterx.Seq(it) { ... }        // range-over-func
//	it := iterx.FromSeq(maps.Keys(m))           // from iter.Seq
//	it := iterx.FromEnumeration(legacyCursor)   // from Enumeration
//
// Empty and Singleton are allocation-light constructors for the degenerate
// cases; Filter, Map, Collect, Count, and ForEach cover the common
// pipeline operations without pulling in a streaming framework.
//
// Iterators are not safe for concurrent use. They read their backing store
// live and take no snapshot.
package iterx
