// File: array.go
// Title: JSON Array
// Description: Implements the ordered heterogeneous JSON array with typed
//              getters, index padding, joining, and serialization to
//              compact or indented text.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-04
// Modified: 2025-02-04
//
// Change History:
// - 2025-02-04 v0.1.0: Initial array implementation

package jsonx

import (
	"iter"
	"strconv"
	"strings"

	"github.com/msto63/corekit/core/errorx"
)

// Array is an ordered sequence of heterogeneous JSON values.
// Not safe for concurrent use.
type Array struct {
	items []interface{}
}

// NewArray creates an empty array
func NewArray() *Array {
	return &Array{}
}

// ParseArray parses a JSON text into an Array. The text must contain
// exactly one array; trailing non-whitespace input is an error.
func ParseArray(input string) (*Array, error) {
	t := NewTokener(input)

	value, err := t.NextValue()
	if err != nil {
		return nil, err
	}

	arr, ok := value.(*Array)
	if !ok {
		return nil, errorx.Newf("text is not a JSON array but %T", value).
			WithCode(errorx.CodeJSONSyntax).
			WithOperation("ParseArray")
	}

	if !t.remainderIsWhitespace() {
		return nil, t.syntaxError("unexpected trailing characters after array")
	}

	return arr, nil
}

// Len returns the number of elements
func (a *Array) Len() int {
	return len(a.items)
}

// Append adds values at the end and returns the array for chaining
func (a *Array) Append(values ...interface{}) *Array {
	for _, v := range values {
		a.items = append(a.items, normalize(v))
	}
	return a
}

// Put sets the element at the given index, padding intermediate positions
// with Null when the index is beyond the current length. Negative indexes
// are an error.
func (a *Array) Put(index int, value interface{}) error {
	if index < 0 {
		return errorx.Newf("negative index %d", index).
			WithCode(errorx.CodeOutOfRange).
			WithOperation("Array.Put")
	}

	for len(a.items) <= index {
		a.items = append(a.items, Null)
	}
	a.items[index] = normalize(value)
	return nil
}

// Remove deletes the element at the given index and returns its former
// value, or nil when the index is out of range
func (a *Array) Remove(index int) interface{} {
	if index < 0 || index >= len(a.items) {
		return nil
	}

	value := a.items[index]
	a.items = append(a.items[:index], a.items[index+1:]...)
	return value
}

// IsNull reports whether the index is out of range or holds Null
func (a *Array) IsNull(index int) bool {
	if index < 0 || index >= len(a.items) {
		return true
	}
	return IsNull(a.items[index])
}

// Seq returns a range-over-func sequence over the elements
func (a *Array) Seq() iter.Seq[interface{}] {
	return func(yield func(interface{}) bool) {
		for _, v := range a.items {
			if !yield(v) {
				return
			}
		}
	}
}

// Get returns the raw value at the index
func (a *Array) Get(index int) (interface{}, error) {
	if index < 0 || index >= len(a.items) {
		return nil, errorx.Newf("index %d out of range [0:%d]", index, len(a.items)).
			WithCode(errorx.CodeOutOfRange).
			WithOperation("Array.Get").
			WithDetail("index", index)
	}
	return a.items[index], nil
}

// Opt returns the raw value at the index, or nil when out of range
func (a *Array) Opt(index int) interface{} {
	if index < 0 || index >= len(a.items) {
		return nil
	}
	return a.items[index]
}

// GetString returns the element as a string, coercing scalars
func (a *Array) GetString(index int) (string, error) {
	value, err := a.Get(index)
	if err != nil {
		return "", err
	}
	return coerceString(value, "Array.GetString", indexKey(index))
}

// OptString returns the element as a string, or the fallback
func (a *Array) OptString(index int, fallback string) string {
	if v, err := a.GetString(index); err == nil {
		return v
	}
	return fallback
}

// GetInt returns the element as an int
func (a *Array) GetInt(index int) (int, error) {
	v, err := a.GetInt64(index)
	return int(v), err
}

// OptInt returns the element as an int, or the fallback
func (a *Array) OptInt(index, fallback int) int {
	if v, err := a.GetInt(index); err == nil {
		return v
	}
	return fallback
}

// GetInt64 returns the element as an int64, coercing numeric strings
func (a *Array) GetInt64(index int) (int64, error) {
	value, err := a.Get(index)
	if err != nil {
		return 0, err
	}
	return coerceInt64(value, "Array.GetInt64", indexKey(index))
}

// OptInt64 returns the element as an int64, or the fallback
func (a *Array) OptInt64(index int, fallback int64) int64 {
	if v, err := a.GetInt64(index); err == nil {
		return v
	}
	return fallback
}

// GetFloat64 returns the element as a float64, coercing numeric strings
func (a *Array) GetFloat64(index int) (float64, error) {
	value, err := a.Get(index)
	if err != nil {
		return 0, err
	}
	return coerceFloat64(value, "Array.GetFloat64", indexKey(index))
}

// OptFloat64 returns the element as a float64, or the fallback
func (a *Array) OptFloat64(index int, fallback float64) float64 {
	if v, err := a.GetFloat64(index); err == nil {
		return v
	}
	return fallback
}

// GetBool returns the element as a bool
func (a *Array) GetBool(index int) (bool, error) {
	value, err := a.Get(index)
	if err != nil {
		return false, err
	}
	return coerceBool(value, "Array.GetBool", indexKey(index))
}

// OptBool returns the element as a bool, or the fallback
func (a *Array) OptBool(index int, fallback bool) bool {
	if v, err := a.GetBool(index); err == nil {
		return v
	}
	return fallback
}

// GetObject returns the element as a nested Object
func (a *Array) GetObject(index int) (*Object, error) {
	value, err := a.Get(index)
	if err != nil {
		return nil, err
	}

	obj, ok := value.(*Object)
	if !ok {
		return nil, typeError(value, "object", "Array.GetObject", indexKey(index))
	}
	return obj, nil
}

// OptObject returns the element as a nested Object, or nil
func (a *Array) OptObject(index int) *Object {
	obj, _ := a.GetObject(index)
	return obj
}

// GetArray returns the element as a nested Array
func (a *Array) GetArray(index int) (*Array, error) {
	value, err := a.Get(index)
	if err != nil {
		return nil, err
	}

	arr, ok := value.(*Array)
	if !ok {
		return nil, typeError(value, "array", "Array.GetArray", indexKey(index))
	}
	return arr, nil
}

// OptArray returns the element as a nested Array, or nil
func (a *Array) OptArray(index int) *Array {
	arr, _ := a.GetArray(index)
	return arr
}

// Join concatenates the serialized elements with the given separator.
// String elements are quoted, matching the serialized form.
func (a *Array) Join(separator string) (string, error) {
	var b strings.Builder
	for i, v := range a.items {
		if i > 0 {
			b.WriteString(separator)
		}
		if err := writeValue(&b, v, 0, 0); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

// Slice exports the array as a plain slice, deeply converting nested
// containers and mapping Null to nil
func (a *Array) Slice() []interface{} {
	if len(a.items) == 0 {
		return nil
	}

	result := make([]interface{}, len(a.items))
	for i, v := range a.items {
		result[i] = denormalize(v)
	}
	return result
}

// String returns the compact JSON text, or an empty string on
// serialization failure
func (a *Array) String() string {
	s, err := a.Indent(0)
	if err != nil {
		return ""
	}
	return s
}

// Indent returns the JSON text indented by the given number of spaces per
// nesting level; 0 produces compact output
func (a *Array) Indent(indentFactor int) (string, error) {
	var b strings.Builder
	if err := a.write(&b, indentFactor, 0); err != nil {
		return "", err
	}
	return b.String(), nil
}

// write serializes the array into the builder
func (a *Array) write(b *strings.Builder, indentFactor, depth int) error {
	if len(a.items) == 0 {
		b.WriteString("[]")
		return nil
	}

	b.WriteByte('[')
	for i, v := range a.items {
		if i > 0 {
			b.WriteByte(',')
		}
		indent(b, indentFactor, depth+1)
		if err := writeValue(b, v, indentFactor, depth+1); err != nil {
			return err
		}
	}
	indent(b, indentFactor, depth)
	b.WriteByte(']')
	return nil
}

// MarshalJSON implements json.Marshaler
func (a *Array) MarshalJSON() ([]byte, error) {
	s, err := a.Indent(0)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (a *Array) UnmarshalJSON(data []byte) error {
	parsed, err := ParseArray(string(data))
	if err != nil {
		return err
	}
	*a = *parsed
	return nil
}

// indexKey renders an index for error messages
func indexKey(index int) string {
	return "[" + strconv.Itoa(index) + "]"
}
