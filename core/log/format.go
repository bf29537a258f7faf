// File: format.go
// Title: Log Format Definitions
// Description: Defines output formats for log messages including JSON and
//              human-readable text. Provides formatters for the respective
//              output destinations.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-02
// Modified: 2025-02-02
//
// Change History:
// - 2025-02-02 v0.1.0: Initial implementation with JSON and text formats

package log

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Format represents the output format for log messages
type Format int

const (
	// FormatText outputs human-readable text logs (default for CLIs)
	FormatText Format = iota

	// FormatJSON outputs structured JSON logs
	FormatJSON
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a log format
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text":
		return FormatText, true
	case "json":
		return FormatJSON, true
	default:
		return FormatText, false
	}
}

// Formatter defines the interface for log formatters
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// GetFormatter returns the formatter for the given format
func GetFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{}
	default:
		return &TextFormatter{}
	}
}

// JSONFormatter formats log entries as single-line JSON objects
type JSONFormatter struct {
	// TimestampFormat specifies the timestamp format (default RFC3339)
	TimestampFormat string
}

// Format implements the Formatter interface
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	tsFormat := f.TimestampFormat
	if tsFormat == "" {
		tsFormat = time.RFC3339
	}

	data := map[string]interface{}{
		"time":    entry.Timestamp.Format(tsFormat),
		"level":   entry.Level.String(),
		"message": entry.Message,
	}

	if entry.Logger != "" {
		data["logger"] = entry.Logger
	}
	if entry.Error != nil {
		data["error"] = entry.Error.Error()
	}
	for k, v := range entry.Fields {
		if _, reserved := data[k]; !reserved {
			data[k] = v
		}
	}

	line, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return append(line, '\n'), nil
}

// TextFormatter formats log entries as human-readable lines
type TextFormatter struct {
	// TimestampFormat specifies the timestamp format (default time-only)
	TimestampFormat string
}

// Format implements the Formatter interface
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	tsFormat := f.TimestampFormat
	if tsFormat == "" {
		tsFormat = "15:04:05.000"
	}

	var b strings.Builder
	b.WriteString(entry.Timestamp.Format(tsFormat))
	b.WriteByte(' ')
	b.WriteString(entry.Level.ShortString())
	if entry.Logger != "" {
		b.WriteString(" [")
		b.WriteString(entry.Logger)
		b.WriteByte(']')
	}
	b.WriteByte(' ')
	b.WriteString(entry.Message)

	if len(entry.Fields) > 0 {
		// Stable field order for readable diffs
		keys := make([]string, 0, len(entry.Fields))
		for k := range entry.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, " %s=%v", k, entry.Fields[k])
		}
	}

	if entry.Error != nil {
		fmt.Fprintf(&b, " error=%q", entry.Error.Error())
	}

	b.WriteByte('\n')
	return []byte(b.String()), nil
}
