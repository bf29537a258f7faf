// File: value.go
// Title: JSON Value Model
// Description: Defines the null sentinel, value normalization rules, and
//              the shared serialization routines used by Object, Array, and
//              Stringer. Establishes which Go types may live inside the
//              JSON containers.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-04
// Modified: 2025-02-04
//
// Change History:
// - 2025-02-04 v0.1.0: Initial implementation of the value model

package jsonx

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/msto63/corekit/core/errorx"
)

// MaxDepth is the default nesting limit for parsing and serialization.
// It guards the recursive descent against stack exhaustion on crafted input.
const MaxDepth = 512

// nullValue is the type of the Null sentinel
type nullValue struct{}

// Null is the explicit JSON null. It is distinct from "absent": an Object
// key holding Null exists (Has returns true) but IsNull reports true for it.
// Putting a nil interface value into a container stores Null.
var Null = nullValue{}

// String returns the JSON literal
func (nullValue) String() string {
	return "null"
}

// IsNull reports whether the value is the Null sentinel or a nil interface
func IsNull(value interface{}) bool {
	if value == nil {
		return true
	}
	_, ok := value.(nullValue)
	return ok
}

// Parse parses a JSON text holding exactly one value of any kind:
// *Object, *Array, string, bool, int64, float64, or Null. Trailing
// non-whitespace input is an error. Use ParseObject or ParseArray when
// the expected container type is known.
func Parse(input string) (interface{}, error) {
	t := NewTokener(input)

	value, err := t.NextValue()
	if err != nil {
		return nil, err
	}
	if !t.remainderIsWhitespace() {
		return nil, t.syntaxError("unexpected trailing characters after value")
	}
	return value, nil
}

// Serialize renders any JSON value to text. An indentFactor of 0 produces
// compact output. The value is normalized first, so plain Go maps, slices,
// and integer kinds serialize directly.
func Serialize(value interface{}, indentFactor int) (string, error) {
	var b strings.Builder
	if err := writeValue(&b, normalize(value), indentFactor, 0); err != nil {
		return "", err
	}
	return b.String(), nil
}

// normalize maps arbitrary Go values onto the canonical container types:
// nil -> Null, integer kinds -> int64, float32 -> float64, maps and slices
// -> Object and Array. Unknown types pass through and fail at
// serialization time.
func normalize(value interface{}) interface{} {
	switch v := value.(type) {
	case nil:
		return Null
	case nullValue, bool, string, int64, float64, *Object, *Array:
		return v
	case int:
		return int64(v)
	case int8:
		return int64(v)
	case int16:
		return int64(v)
	case int32:
		return int64(v)
	case uint:
		return int64(v)
	case uint8:
		return int64(v)
	case uint16:
		return int64(v)
	case uint32:
		return int64(v)
	case uint64:
		return int64(v)
	case float32:
		return float64(v)
	case map[string]interface{}:
		return FromMap(v)
	case []interface{}:
		return FromSlice(v)
	default:
		return v
	}
}

// denormalize converts container values back to plain Go types for Map and
// Slice exports: Null -> nil, *Object -> map, *Array -> slice, deeply.
func denormalize(value interface{}) interface{} {
	switch v := value.(type) {
	case nullValue:
		return nil
	case *Object:
		return v.Map()
	case *Array:
		return v.Slice()
	default:
		return v
	}
}

// FromMap builds an Object from a plain map, recursively converting nested
// maps and slices. Keys are inserted in sorted order so the result is
// deterministic.
func FromMap(m map[string]interface{}) *Object {
	obj := NewObject()
	if m == nil {
		return obj
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		obj.Put(k, m[k])
	}
	return obj
}

// FromSlice builds an Array from a plain slice, recursively converting
// nested maps and slices
func FromSlice(s []interface{}) *Array {
	arr := NewArray()
	for _, v := range s {
		arr.Append(v)
	}
	return arr
}

// writeValue serializes a single value. indentFactor 0 means compact
// output; depth counts nesting for both indentation and the depth guard.
func writeValue(b *strings.Builder, value interface{}, indentFactor, depth int) error {
	if depth > MaxDepth {
		return errorx.New("value nesting exceeds maximum depth").
			WithCode(errorx.CodeJSONDepth).
			WithDetail("max_depth", MaxDepth)
	}

	switch v := value.(type) {
	case nullValue:
		b.WriteString("null")
	case bool:
		b.WriteString(strconv.FormatBool(v))
	case string:
		b.WriteString(Quote(v))
	case int64:
		b.WriteString(strconv.FormatInt(v, 10))
	case float64:
		s, err := formatFloat(v)
		if err != nil {
			return err
		}
		b.WriteString(s)
	case *Object:
		return v.write(b, indentFactor, depth)
	case *Array:
		return v.write(b, indentFactor, depth)
	default:
		return errorx.Newf("value of type %T cannot be serialized", value).
			WithCode(errorx.CodeJSONType)
	}
	return nil
}

// formatFloat renders a float the way JSON expects: plain notation for the
// common range, exponent notation only at the extremes, and an error for
// values JSON cannot represent at all.
func formatFloat(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", errorx.New("JSON does not allow non-finite numbers").
			WithCode(errorx.CodeJSONType).
			WithDetail("value", f)
	}

	abs := math.Abs(f)
	format := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}

	return strconv.FormatFloat(f, format, -1, 64), nil
}

// indent writes a newline and depth*factor spaces
func indent(b *strings.Builder, indentFactor, depth int) {
	if indentFactor <= 0 {
		return
	}
	b.WriteByte('\n')
	for i := 0; i < depth*indentFactor; i++ {
		b.WriteByte(' ')
	}
}

// Quote returns the value as a JSON string literal including the
// surrounding double quotes. Control characters, quotes, and backslashes
// are escaped; a forward slash is escaped after '<' so the output is safe
// to embed in HTML script contexts.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')

	var prev rune
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '/':
			if prev == '<' {
				b.WriteString(`\/`)
			} else {
				b.WriteByte('/')
			}
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 || (r >= 0x80 && r < 0xa0) || (r >= 0x2000 && r < 0x2100) {
				b.WriteString(`\u`)
				hex := strconv.FormatInt(int64(r), 16)
				for len(hex) < 4 {
					hex = "0" + hex
				}
				b.WriteString(hex)
			} else {
				b.WriteRune(r)
			}
		}
		prev = r
	}

	b.WriteByte('"')
	return b.String()
}
