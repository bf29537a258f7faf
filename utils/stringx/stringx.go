// File: stringx.go
// Title: Core String Utility Functions
// Description: Implements the small set of string operations the rest of
//              corekit relies on: blank checks, defaults, and Unicode-safe
//              truncation.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-02
// Modified: 2025-02-02
//
// Change History:
// - 2025-02-02 v0.1.0: Initial implementation with core utilities

package stringx

import (
	"strings"
	"unicode"
)

// IsEmpty returns true if the string is empty (length 0)
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace
func IsBlank(s string) bool {
	if len(s) == 0 {
		return true
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotEmpty returns true if the string is not empty
func IsNotEmpty(s string) bool {
	return len(s) > 0
}

// IsNotBlank returns true if the string contains non-whitespace characters
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// DefaultIfEmpty returns the fallback if the string is empty
func DefaultIfEmpty(s, fallback string) string {
	if IsEmpty(s) {
		return fallback
	}
	return s
}

// DefaultIfBlank returns the fallback if the string is blank
func DefaultIfBlank(s, fallback string) string {
	if IsBlank(s) {
		return fallback
	}
	return s
}

// Truncate shortens a string to at most maxRunes runes.
// Truncation happens on rune boundaries, never inside a UTF-8 sequence.
func Truncate(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}

	count := 0
	for i := range s {
		if count == maxRunes {
			return s[:i]
		}
		count++
	}
	return s
}

// Abbreviate shortens a string to at most maxRunes runes, appending an
// ellipsis when truncation happened. maxRunes below 4 falls back to Truncate.
func Abbreviate(s string, maxRunes int) string {
	if maxRunes < 4 {
		return Truncate(s, maxRunes)
	}
	if len([]rune(s)) <= maxRunes {
		return s
	}
	return Truncate(s, maxRunes-3) + "..."
}

// EqualsIgnoreCase compares two strings case-insensitively
func EqualsIgnoreCase(a, b string) bool {
	return strings.EqualFold(a, b)
}

// CountRunes returns the number of runes in the string
func CountRunes(s string) int {
	count := 0
	for range s {
		count++
	}
	return count
}
