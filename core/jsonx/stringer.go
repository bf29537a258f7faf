// File: stringer.go
// Title: JSON Stringer
// Description: Implements the streaming JSON writer with a mode stack that
//              enforces well-formed output: keys only inside objects,
//              values only where a value may appear, balanced begin/end
//              calls.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-04
// Modified: 2025-02-04
//
// Change History:
// - 2025-02-04 v0.1.0: Initial stringer implementation

package jsonx

import (
	"strings"

	"github.com/msto63/corekit/core/errorx"
)

// maxStringerDepth caps container nesting in the writer
const maxStringerDepth = 200

// writer modes
type stringerMode int

const (
	modeInit     stringerMode = iota // nothing written yet
	modeKey                          // inside an object, expecting a key
	modeValue                        // inside an object, expecting a value
	modeArray                        // inside an array
	modeDone                         // a complete top-level value written
)

// Stringer builds a JSON text incrementally. Calls return the Stringer for
// chaining; the first misuse or write failure is latched and reported by
// Err and String, and all later calls become no-ops.
//
//	s := jsonx.NewStringer()
//	text, err := s.Object().Key("id").Value(7).EndObject().String()
type Stringer struct {
	b     strings.Builder
	stack []stringerMode // enclosing container modes
	mode  stringerMode
	comma bool // a separator is due before the next element
	err   error
}

// NewStringer creates an empty writer
func NewStringer() *Stringer {
	return &Stringer{mode: modeInit}
}

// Object begins a new JSON object
func (s *Stringer) Object() *Stringer {
	if !s.beforeValue("Object") {
		return s
	}
	s.push(modeKey)
	s.b.WriteByte('{')
	s.comma = false
	return s
}

// EndObject closes the current JSON object
func (s *Stringer) EndObject() *Stringer {
	if s.err != nil {
		return s
	}
	if s.mode != modeKey {
		return s.fail("EndObject outside an object")
	}
	s.b.WriteByte('}')
	s.pop()
	return s
}

// Array begins a new JSON array
func (s *Stringer) Array() *Stringer {
	if !s.beforeValue("Array") {
		return s
	}
	s.push(modeArray)
	s.b.WriteByte('[')
	s.comma = false
	return s
}

// EndArray closes the current JSON array
func (s *Stringer) EndArray() *Stringer {
	if s.err != nil {
		return s
	}
	if s.mode != modeArray {
		return s.fail("EndArray outside an array")
	}
	s.b.WriteByte(']')
	s.pop()
	return s
}

// Key writes an object key. Only legal directly inside an object, before
// the corresponding Value.
func (s *Stringer) Key(key string) *Stringer {
	if s.err != nil {
		return s
	}
	if s.mode != modeKey {
		return s.fail("Key outside an object")
	}
	if s.comma {
		s.b.WriteByte(',')
	}
	s.b.WriteString(Quote(key))
	s.b.WriteByte(':')
	s.mode = modeValue
	s.comma = false
	return s
}

// Value writes a value: a scalar, *Object, *Array, or nil for null
func (s *Stringer) Value(value interface{}) *Stringer {
	if !s.beforeValue("Value") {
		return s
	}
	if err := writeValue(&s.b, normalize(value), 0, 0); err != nil {
		s.err = err
		return s
	}
	s.afterValue()
	return s
}

// Err returns the first error encountered, or nil
func (s *Stringer) Err() error {
	return s.err
}

// String returns the completed JSON text. It is an error to call String
// before the top-level value is complete.
func (s *Stringer) String() (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if s.mode != modeDone {
		return "", errorx.New("incomplete JSON text").
			WithCode(errorx.CodeJSONState).
			WithOperation("Stringer.String")
	}
	return s.b.String(), nil
}

// beforeValue validates that a value may start here and writes a pending
// separator. Returns false when the writer is failed or misused.
func (s *Stringer) beforeValue(operation string) bool {
	if s.err != nil {
		return false
	}

	switch s.mode {
	case modeInit:
		return true
	case modeArray:
		if s.comma {
			s.b.WriteByte(',')
		}
		return true
	case modeValue:
		return true
	case modeKey:
		s.fail(operation + " where an object key is expected")
		return false
	default:
		s.fail(operation + " after the top-level value is complete")
		return false
	}
}

// afterValue restores the enclosing mode after a scalar value
func (s *Stringer) afterValue() {
	switch s.mode {
	case modeInit:
		s.mode = modeDone
	case modeValue:
		s.mode = modeKey
		s.comma = true
	case modeArray:
		s.comma = true
	}
}

// push enters a container
func (s *Stringer) push(mode stringerMode) {
	if len(s.stack) >= maxStringerDepth {
		s.err = errorx.New("writer nesting exceeds maximum depth").
			WithCode(errorx.CodeJSONDepth).
			WithOperation("Stringer").
			WithDetail("max_depth", maxStringerDepth)
		return
	}
	s.stack = append(s.stack, s.mode)
	s.mode = mode
}

// pop leaves a container and accounts for it as a value in the parent
func (s *Stringer) pop() {
	s.mode = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.afterValue()
}

// fail latches a state error
func (s *Stringer) fail(message string) *Stringer {
	s.err = errorx.New(message).
		WithCode(errorx.CodeJSONState).
		WithOperation("Stringer")
	return s
}
