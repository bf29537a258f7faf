// File: doc.go
// Title: Package Documentation for listx
// Description: Package listx provides read-only list views over slices.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial documentation

// Package listx provides read-only list views over slices.
//
// A List[T] cannot be modified through its interface; APIs that hand out
// a List guarantee their callers cannot mutate the backing data by
// accident. Of and Singleton copy their inputs and are fully immutable;
// Unmodifiable wraps the given slice live and only shields it from writes.
//
//	caps := listx.Of("read", "list")
//	for c := range caps.Seq() {
//	    fmt.Println(c)
//	}
//
// Get panics on out-of-range indexes, matching slice indexing behavior.
package listx
