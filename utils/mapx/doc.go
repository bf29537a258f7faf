// File: doc.go
// Title: Package Documentation for mapx
// Description: Package mapx provides map helper functions and read-only map
//              views with type-safe generic implementations.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial documentation

// Package mapx provides map helpers and read-only map views.
//
// The helper half extends the standard maps package with the operations
// corekit needs day to day:
//
//	keys := mapx.SortedKeys(m)
//	cfg := mapx.Merge(defaults, overrides)
//	port := mapx.GetOrDefault(cfg, "port", 8080)
//
// All helpers are nil-tolerant: a nil input map behaves like an empty one,
// and input maps are never modified.
//
// The view half provides the factory and wrapper surface:
//
//	mapx.EmptyView[string, int]()
//	mapx.SingletonView("answer", 42)
//	mapx.Of(mapx.E("a", 1), mapx.E("b", 2))   // immutable, copies
//	mapx.Unmodifiable(existing)               // read-only, live
//
// Of and SingletonView own their data and are fully immutable.
// Unmodifiable only shields the wrapped map from writes through the view;
// the owner can still mutate it, and the view sees those changes.
package mapx
