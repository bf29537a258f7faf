// File: error.go
// Title: Core Error Implementation
// Description: Implements the main Error type with error codes, contextual
//              details, and cause chaining. Maintains full compatibility with
//              Go's standard errors package (Is/As/Unwrap) while adding the
//              structured classification used throughout corekit.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-02
// Modified: 2025-02-02
//
// Change History:
// - 2025-02-02 v0.1.0: Initial implementation with coded, detail-carrying errors

package errorx

import (
	"fmt"
	"strings"
)

// MaxChainDepth limits the depth of error wrapping to prevent unbounded chains
const MaxChainDepth = 15

// Error represents a structured error with a code, details, and a cause
type Error struct {
	message   string
	cause     error
	code      Code
	operation string
	details   map[string]interface{}
}

// New creates a new Error with the given message
func New(message string) *Error {
	return &Error{
		message: message,
		code:    CodeUnknown,
	}
}

// Newf creates a new Error with a formatted message
func Newf(format string, args ...interface{}) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with additional context.
// Wrapping nil returns nil so call sites can wrap unconditionally.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	// Truncate over-deep chains instead of growing them further
	if depth := chainDepth(err); depth >= MaxChainDepth {
		root := RootCause(err)
		return &Error{
			message: fmt.Sprintf("%s (chain truncated at depth %d): %s", message, MaxChainDepth, root.Error()),
			code:    CodeInternal,
		}
	}

	// Preserve code and details when wrapping one of our own errors
	if ce, ok := err.(*Error); ok {
		wrapped := &Error{
			message:   message,
			cause:     ce,
			code:      ce.code,
			operation: ce.operation,
		}
		if len(ce.details) > 0 {
			wrapped.details = make(map[string]interface{}, len(ce.details))
			for k, v := range ce.details {
				wrapped.details[k] = v
			}
		}
		return wrapped
	}

	return &Error{
		message: message,
		cause:   err,
		code:    CodeUnknown,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, format string, args ...interface{}) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Error implements the standard error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.message, e.cause.Error())
	}
	return e.message
}

// Unwrap returns the underlying cause for error unwrapping
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether the target matches this error by code.
// Two *Error values match when their codes are equal and valid.
func (e *Error) Is(target error) bool {
	te, ok := target.(*Error)
	if !ok {
		return false
	}
	return te.code != CodeUnknown && te.code == e.code
}

// WithCode sets the error code
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	return e
}

// WithOperation sets the operation that caused the error
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// WithDetail adds a key-value detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.details == nil {
		e.details = make(map[string]interface{})
	}
	e.details[key] = value
	return e
}

// WithDetails adds multiple key-value details to the error
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	for k, v := range details {
		e.WithDetail(k, v)
	}
	return e
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Message returns the error message without the cause chain
func (e *Error) Message() string {
	return e.message
}

// Operation returns the operation that caused the error
func (e *Error) Operation() string {
	return e.operation
}

// Detail returns a single detail value and whether it was set
func (e *Error) Detail(key string) (interface{}, bool) {
	v, ok := e.details[key]
	return v, ok
}

// Details returns a copy of the error details
func (e *Error) Details() map[string]interface{} {
	if len(e.details) == 0 {
		return nil
	}
	result := make(map[string]interface{}, len(e.details))
	for k, v := range e.details {
		result[k] = v
	}
	return result
}

// String returns a detailed multi-line representation of the error
func (e *Error) String() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("Error: %s", e.message))
	parts = append(parts, fmt.Sprintf("Code: %s", e.code))

	if e.operation != "" {
		parts = append(parts, fmt.Sprintf("Operation: %s", e.operation))
	}

	if len(e.details) > 0 {
		detailStrs := make([]string, 0, len(e.details))
		for k, v := range e.details {
			detailStrs = append(detailStrs, fmt.Sprintf("%s=%v", k, v))
		}
		parts = append(parts, fmt.Sprintf("Details: {%s}", strings.Join(detailStrs, ", ")))
	}

	if e.cause != nil {
		parts = append(parts, fmt.Sprintf("Cause: %s", e.cause.Error()))
	}

	return strings.Join(parts, "\n")
}

// chainDepth calculates the depth of an error chain
func chainDepth(err error) int {
	depth := 0
	current := err

	for current != nil && depth < MaxChainDepth*2 {
		depth++
		if ce, ok := current.(*Error); ok {
			current = ce.cause
		} else {
			break
		}
	}

	return depth
}

// RootCause returns the deepest error in a chain
func RootCause(err error) error {
	current := err
	last := err

	for current != nil {
		last = current
		if ce, ok := current.(*Error); ok {
			current = ce.cause
		} else {
			break
		}
	}

	return last
}

// HasCode checks if an error carries a specific code
func HasCode(err error, code Code) bool {
	if ce, ok := err.(*Error); ok {
		return ce.code == code
	}
	return false
}

// GetCode returns the error code from an error, or CodeUnknown for foreign errors
func GetCode(err error) Code {
	if ce, ok := err.(*Error); ok {
		return ce.code
	}
	return CodeUnknown
}
