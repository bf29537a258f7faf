// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger type that provides leveled, structured
//              logging for corekit components. Intentionally small: corekit
//              is a library, so its logger only has to serve the catalog
//              watcher and the jsonkit CLI.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-02
// Modified: 2025-02-02
//
// Change History:
// - 2025-02-02 v0.1.0: Initial implementation with leveled structured logging

package log

import (
	"io"
	"os"
	"sync"
	"time"
)

// Logger represents a leveled, structured logger
type Logger struct {
	level         Level
	formatter     Formatter
	output        io.Writer
	name          string
	contextFields Fields

	mu sync.Mutex
}

// Config represents logger configuration
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
	Name   string
}

// New creates a new logger with default configuration
func New() *Logger {
	return &Logger{
		level:         DefaultLevel(),
		formatter:     &TextFormatter{},
		output:        os.Stderr,
		contextFields: make(Fields),
	}
}

// NewWithConfig creates a new logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	logger := &Logger{
		level:         config.Level,
		output:        config.Output,
		name:          config.Name,
		formatter:     GetFormatter(config.Format),
		contextFields: make(Fields),
	}

	if logger.output == nil {
		logger.output = os.Stderr
	}

	return logger
}

// Nop returns a logger that discards everything.
// Library code takes an optional *Logger; Nop is the safe default.
func Nop() *Logger {
	return &Logger{
		level:         LevelError + 1,
		formatter:     &TextFormatter{},
		output:        io.Discard,
		contextFields: make(Fields),
	}
}

// clone creates a copy sharing the output writer
func (l *Logger) clone() *Logger {
	fields := make(Fields, len(l.contextFields))
	for k, v := range l.contextFields {
		fields[k] = v
	}
	return &Logger{
		level:         l.level,
		formatter:     l.formatter,
		output:        l.output,
		name:          l.name,
		contextFields: fields,
	}
}

// WithLevel returns a copy with the minimum log level set
func (l *Logger) WithLevel(level Level) *Logger {
	clone := l.clone()
	clone.level = level
	return clone
}

// WithFormat returns a copy with the output format set
func (l *Logger) WithFormat(format Format) *Logger {
	clone := l.clone()
	clone.formatter = GetFormatter(format)
	return clone
}

// WithOutput returns a copy with the output destination set
func (l *Logger) WithOutput(output io.Writer) *Logger {
	clone := l.clone()
	clone.output = output
	return clone
}

// WithName returns a copy with the logger name set
func (l *Logger) WithName(name string) *Logger {
	clone := l.clone()
	clone.name = name
	return clone
}

// WithFields returns a copy with context fields added to every entry
func (l *Logger) WithFields(fields Fields) *Logger {
	clone := l.clone()
	for k, v := range fields {
		clone.contextFields[k] = v
	}
	return clone
}

// Enabled reports whether the given level would be logged
func (l *Logger) Enabled(level Level) bool {
	return level >= l.level
}

// Debug logs a message at debug level
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields)
}

// Info logs a message at info level
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields)
}

// Warn logs a message at warn level
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields)
}

// Error logs a message with an error at error level
func (l *Logger) Error(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields)
}

// log builds and writes an entry if the level passes the filter
func (l *Logger) log(level Level, message string, err error, fields []Fields) {
	if !l.Enabled(level) {
		return
	}

	entry := &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Logger:    l.name,
		Fields:    merged(l.contextFields, fields),
		Error:     err,
	}

	line, ferr := l.formatter.Format(entry)
	if ferr != nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = l.output.Write(line)
}
