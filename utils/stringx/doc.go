// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides string helper functions used across
//              the corekit library.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-02
// Modified: 2025-02-02
//
// Change History:
// - 2025-02-02 v0.1.0: Initial documentation

// Package stringx provides the string helpers corekit uses internally:
// blank checks, defaults, and Unicode-safe truncation. All functions are
// pure and safe for concurrent use.
package stringx
