// File: doc.go
// Title: Package Documentation for setx
// Description: Package setx provides read-only set views and set algebra.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial documentation

// Package setx provides read-only set views over comparable values.
//
// Of and Singleton build fully immutable sets; Unmodifiable wraps an
// existing map[T]struct{} as a live read-only view. Union, Intersect,
// Difference, Equal, and IsSubset operate on any Set implementation and
// always return fresh sets.
//
// Iteration order over a set is unspecified, matching map iteration.
package setx
