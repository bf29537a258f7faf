// File: object.go
// Title: JSON Object
// Description: Implements the insertion-ordered JSON object with typed
//              getters, lenient Opt accessors, null handling, and
//              serialization to compact or indented text.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-04
// Modified: 2025-02-04
//
// Change History:
// - 2025-02-04 v0.1.0: Initial object implementation

package jsonx

import (
	"iter"
	"strings"

	"github.com/spf13/cast"

	"github.com/msto63/corekit/core/errorx"
)

// Object is a string-keyed container of heterogeneous JSON values that
// remembers insertion order. Re-putting an existing key replaces the value
// but keeps the key's original position. Not safe for concurrent use.
type Object struct {
	keys   []string
	values map[string]interface{}
}

// NewObject creates an empty object
func NewObject() *Object {
	return &Object{
		values: make(map[string]interface{}),
	}
}

// ParseObject parses a JSON text into an Object. The text must contain
// exactly one object; trailing non-whitespace input is an error.
func ParseObject(input string) (*Object, error) {
	t := NewTokener(input)

	value, err := t.NextValue()
	if err != nil {
		return nil, err
	}

	obj, ok := value.(*Object)
	if !ok {
		return nil, errorx.Newf("text is not a JSON object but %T", value).
			WithCode(errorx.CodeJSONSyntax).
			WithOperation("ParseObject")
	}

	if !t.remainderIsWhitespace() {
		return nil, t.syntaxError("unexpected trailing characters after object")
	}

	return obj, nil
}

// Len returns the number of members
func (o *Object) Len() int {
	return len(o.keys)
}

// Has reports whether the key is present, including keys holding Null
func (o *Object) Has(key string) bool {
	_, ok := o.values[key]
	return ok
}

// IsNull reports whether the key is absent or holds the Null sentinel
func (o *Object) IsNull(key string) bool {
	v, ok := o.values[key]
	return !ok || IsNull(v)
}

// Keys returns the keys in insertion order
func (o *Object) Keys() []string {
	result := make([]string, len(o.keys))
	copy(result, o.keys)
	return result
}

// Names returns the keys as an Array, or nil for an empty object
func (o *Object) Names() *Array {
	if len(o.keys) == 0 {
		return nil
	}

	arr := NewArray()
	for _, k := range o.keys {
		arr.Append(k)
	}
	return arr
}

// Seq returns a range-over-func sequence of members in insertion order
func (o *Object) Seq() iter.Seq2[string, interface{}] {
	return func(yield func(string, interface{}) bool) {
		for _, k := range o.keys {
			if !yield(k, o.values[k]) {
				return
			}
		}
	}
}

// Put sets a member. A nil value stores the explicit Null sentinel; use
// Remove to delete a member. Returns the object for chaining.
func (o *Object) Put(key string, value interface{}) *Object {
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = normalize(value)
	return o
}

// PutNonNil sets a member only when the value is neither nil nor Null
func (o *Object) PutNonNil(key string, value interface{}) *Object {
	if IsNull(value) {
		return o
	}
	return o.Put(key, value)
}

// Append appends a value to the Array stored under key, creating a
// single-element Array when the key is absent. Appending to a non-array
// member is an error.
func (o *Object) Append(key string, value interface{}) error {
	current, exists := o.values[key]
	if !exists {
		arr := NewArray()
		arr.Append(value)
		o.Put(key, arr)
		return nil
	}

	arr, ok := current.(*Array)
	if !ok {
		return errorx.Newf("member %q is %T, not an array", key, current).
			WithCode(errorx.CodeJSONType).
			WithOperation("Object.Append")
	}
	arr.Append(value)
	return nil
}

// Remove deletes a member and returns its former value
func (o *Object) Remove(key string) interface{} {
	value, ok := o.values[key]
	if !ok {
		return nil
	}

	delete(o.values, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
	return value
}

// Get returns the raw value for the key
func (o *Object) Get(key string) (interface{}, error) {
	value, ok := o.values[key]
	if !ok {
		return nil, errorx.Newf("member %q not found", key).
			WithCode(errorx.CodeNotFound).
			WithOperation("Object.Get").
			WithDetail("key", key)
	}
	return value, nil
}

// Opt returns the raw value for the key, or nil when absent
func (o *Object) Opt(key string) interface{} {
	return o.values[key]
}

// GetString returns the member as a string, coercing scalars
func (o *Object) GetString(key string) (string, error) {
	value, err := o.Get(key)
	if err != nil {
		return "", err
	}
	return coerceString(value, "Object.GetString", key)
}

// OptString returns the member as a string, or the fallback when absent
// or not coercible
func (o *Object) OptString(key, fallback string) string {
	if v, err := o.GetString(key); err == nil {
		return v
	}
	return fallback
}

// GetInt returns the member as an int, coercing numeric strings
func (o *Object) GetInt(key string) (int, error) {
	v, err := o.GetInt64(key)
	return int(v), err
}

// OptInt returns the member as an int, or the fallback
func (o *Object) OptInt(key string, fallback int) int {
	if v, err := o.GetInt(key); err == nil {
		return v
	}
	return fallback
}

// GetInt64 returns the member as an int64, coercing numeric strings
func (o *Object) GetInt64(key string) (int64, error) {
	value, err := o.Get(key)
	if err != nil {
		return 0, err
	}
	return coerceInt64(value, "Object.GetInt64", key)
}

// OptInt64 returns the member as an int64, or the fallback
func (o *Object) OptInt64(key string, fallback int64) int64 {
	if v, err := o.GetInt64(key); err == nil {
		return v
	}
	return fallback
}

// GetFloat64 returns the member as a float64, coercing numeric strings
func (o *Object) GetFloat64(key string) (float64, error) {
	value, err := o.Get(key)
	if err != nil {
		return 0, err
	}
	return coerceFloat64(value, "Object.GetFloat64", key)
}

// OptFloat64 returns the member as a float64, or the fallback
func (o *Object) OptFloat64(key string, fallback float64) float64 {
	if v, err := o.GetFloat64(key); err == nil {
		return v
	}
	return fallback
}

// GetBool returns the member as a bool, coercing "true"/"false" strings
func (o *Object) GetBool(key string) (bool, error) {
	value, err := o.Get(key)
	if err != nil {
		return false, err
	}
	return coerceBool(value, "Object.GetBool", key)
}

// OptBool returns the member as a bool, or the fallback
func (o *Object) OptBool(key string, fallback bool) bool {
	if v, err := o.GetBool(key); err == nil {
		return v
	}
	return fallback
}

// GetObject returns the member as a nested Object
func (o *Object) GetObject(key string) (*Object, error) {
	value, err := o.Get(key)
	if err != nil {
		return nil, err
	}

	obj, ok := value.(*Object)
	if !ok {
		return nil, typeError(value, "object", "Object.GetObject", key)
	}
	return obj, nil
}

// OptObject returns the member as a nested Object, or nil
func (o *Object) OptObject(key string) *Object {
	obj, _ := o.GetObject(key)
	return obj
}

// GetArray returns the member as a nested Array
func (o *Object) GetArray(key string) (*Array, error) {
	value, err := o.Get(key)
	if err != nil {
		return nil, err
	}

	arr, ok := value.(*Array)
	if !ok {
		return nil, typeError(value, "array", "Object.GetArray", key)
	}
	return arr, nil
}

// OptArray returns the member as a nested Array, or nil
func (o *Object) OptArray(key string) *Array {
	arr, _ := o.GetArray(key)
	return arr
}

// Map exports the object as a plain map, deeply converting nested
// containers and mapping Null to nil
func (o *Object) Map() map[string]interface{} {
	result := make(map[string]interface{}, len(o.keys))
	for _, k := range o.keys {
		result[k] = denormalize(o.values[k])
	}
	return result
}

// String returns the compact JSON text. Serialization failures (foreign
// value types, non-finite numbers) render as an empty string; use Indent
// or MarshalJSON for an error-checked rendition.
func (o *Object) String() string {
	s, err := o.Indent(0)
	if err != nil {
		return ""
	}
	return s
}

// Indent returns the JSON text indented by the given number of spaces per
// nesting level; 0 produces compact output
func (o *Object) Indent(indentFactor int) (string, error) {
	var b strings.Builder
	if err := o.write(&b, indentFactor, 0); err != nil {
		return "", err
	}
	return b.String(), nil
}

// write serializes the object into the builder
func (o *Object) write(b *strings.Builder, indentFactor, depth int) error {
	if len(o.keys) == 0 {
		b.WriteString("{}")
		return nil
	}

	b.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			b.WriteByte(',')
		}
		indent(b, indentFactor, depth+1)
		b.WriteString(Quote(k))
		b.WriteByte(':')
		if indentFactor > 0 {
			b.WriteByte(' ')
		}
		if err := writeValue(b, o.values[k], indentFactor, depth+1); err != nil {
			return err
		}
	}
	indent(b, indentFactor, depth)
	b.WriteByte('}')
	return nil
}

// MarshalJSON implements json.Marshaler
func (o *Object) MarshalJSON() ([]byte, error) {
	s, err := o.Indent(0)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (o *Object) UnmarshalJSON(data []byte) error {
	parsed, err := ParseObject(string(data))
	if err != nil {
		return err
	}
	*o = *parsed
	return nil
}

// coerceString converts scalar values to string
func coerceString(value interface{}, operation, key string) (string, error) {
	if IsNull(value) {
		return "", typeError(value, "string", operation, key)
	}
	s, err := cast.ToStringE(value)
	if err != nil {
		return "", typeError(value, "string", operation, key)
	}
	return s, nil
}

// coerceInt64 converts numeric values and numeric strings to int64
func coerceInt64(value interface{}, operation, key string) (int64, error) {
	if IsNull(value) {
		return 0, typeError(value, "int64", operation, key)
	}
	n, err := cast.ToInt64E(value)
	if err != nil {
		return 0, typeError(value, "int64", operation, key)
	}
	return n, nil
}

// coerceFloat64 converts numeric values and numeric strings to float64
func coerceFloat64(value interface{}, operation, key string) (float64, error) {
	if IsNull(value) {
		return 0, typeError(value, "float64", operation, key)
	}
	f, err := cast.ToFloat64E(value)
	if err != nil {
		return 0, typeError(value, "float64", operation, key)
	}
	return f, nil
}

// coerceBool converts bools and "true"/"false" strings to bool
func coerceBool(value interface{}, operation, key string) (bool, error) {
	if IsNull(value) {
		return false, typeError(value, "bool", operation, key)
	}
	b, err := cast.ToBoolE(value)
	if err != nil {
		return false, typeError(value, "bool", operation, key)
	}
	return b, nil
}

// typeError builds a JSON type mismatch error
func typeError(value interface{}, want, operation, key string) *errorx.Error {
	return errorx.Newf("member %q is %T, not %s", key, value, want).
		WithCode(errorx.CodeJSONType).
		WithOperation(operation).
		WithDetail("key", key)
}
