// File: entry.go
// Title: Log Entry Structure
// Description: Defines the log entry structure that holds all information
//              about a single log message including level, fields, and an
//              optional error.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-02
// Modified: 2025-02-02
//
// Change History:
// - 2025-02-02 v0.1.0: Initial implementation

package log

import "time"

// Entry represents a single log entry with all its metadata
type Entry struct {
	Timestamp time.Time
	Level     Level
	Message   string
	Logger    string
	Fields    Fields
	Error     error
}

// Fields represents custom key-value pairs for structured logging
type Fields map[string]interface{}

// Field creates a single field for logging
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Err creates an error field for logging
func Err(err error) Fields {
	return Fields{"error": err}
}

// merged combines multiple field maps; later maps win on key conflicts
func merged(base Fields, extra []Fields) Fields {
	if len(extra) == 0 {
		return base
	}

	result := make(Fields, len(base))
	for k, v := range base {
		result[k] = v
	}
	for _, f := range extra {
		for k, v := range f {
			result[k] = v
		}
	}
	return result
}
