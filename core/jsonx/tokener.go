// File: tokener.go
// Title: JSON Tokener
// Description: Implements the character-level reader for JSON text with
//              position tracking and the recursive-descent value parser.
//              Accepts a lenient dialect with single quotes, unquoted
//              keys, comments, and relaxed separators, while the strict
//              entry points reject trailing garbage.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-04
// Modified: 2025-02-04
//
// Change History:
// - 2025-02-04 v0.1.0: Initial tokener implementation

package jsonx

import (
	"strconv"
	"strings"

	"github.com/msto63/corekit/core/errorx"
)

// Tokener reads a JSON text character by character while tracking line and
// column for error reporting. It is the parsing backend of ParseObject and
// ParseArray, and usable directly for pulling several values out of one
// buffer.
type Tokener struct {
	input       string
	pos         int  // next byte to read
	line        int  // 1-based
	column      int  // 0-based, column of the last read byte
	usePrevious bool // one-step pushback
	previous    byte
}

// NewTokener creates a tokener over the given JSON text
func NewTokener(input string) *Tokener {
	return &Tokener{
		input: input,
		line:  1,
	}
}

// More reports whether another character can be read
func (t *Tokener) More() bool {
	return t.usePrevious || t.pos < len(t.input)
}

// Next returns the next character, or 0 at end of input
func (t *Tokener) Next() byte {
	if t.usePrevious {
		t.usePrevious = false
		return t.previous
	}
	if t.pos >= len(t.input) {
		return 0
	}

	c := t.input[t.pos]
	t.pos++

	if c == '\n' {
		t.line++
		t.column = 0
	} else {
		t.column++
	}

	t.previous = c
	return c
}

// Back pushes the last read character back. Only one step of pushback is
// supported; calling Back twice without an intervening Next is an error in
// the caller and simply keeps the earlier pushback.
func (t *Tokener) Back() {
	if t.pos > 0 {
		t.usePrevious = true
	}
}

// NextClean returns the next character, skipping whitespace and comments.
// Supported comment styles are //, /* */, and # to end of line.
func (t *Tokener) NextClean() (byte, error) {
	for {
		c := t.Next()
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		case '/':
			switch t.Next() {
			case '/':
				t.skipToLineEnd()
			case '*':
				if err := t.skipBlockComment(); err != nil {
					return 0, err
				}
			default:
				t.Back()
				return '/', nil
			}
		case '#':
			t.skipToLineEnd()
		default:
			return c, nil
		}
	}
}

// skipToLineEnd consumes characters up to and including the next newline
func (t *Tokener) skipToLineEnd() {
	for {
		c := t.Next()
		if c == '\n' || c == 0 {
			return
		}
	}
}

// skipBlockComment consumes a /* */ comment body
func (t *Tokener) skipBlockComment() error {
	for {
		c := t.Next()
		if c == 0 {
			return t.syntaxError("unclosed comment")
		}
		if c == '*' {
			if t.Next() == '/' {
				return nil
			}
			t.Back()
		}
	}
}

// NextString reads a string literal up to the given closing quote.
// The opening quote must already be consumed. Handles the standard escape
// sequences and \uXXXX including surrogate pairs.
func (t *Tokener) NextString(quote byte) (string, error) {
	var b strings.Builder
	for {
		c := t.Next()
		switch c {
		case 0, '\n', '\r':
			return "", t.syntaxError("unterminated string")
		case quote:
			return b.String(), nil
		case '\\':
			esc := t.Next()
			switch esc {
			case 'b':
				b.WriteByte('\b')
			case 't':
				b.WriteByte('\t')
			case 'n':
				b.WriteByte('\n')
			case 'f':
				b.WriteByte('\f')
			case 'r':
				b.WriteByte('\r')
			case '"', '\'', '\\', '/':
				b.WriteByte(esc)
			case 'u':
				r, err := t.readUnicodeEscape()
				if err != nil {
					return "", err
				}
				b.WriteRune(r)
			default:
				return "", t.syntaxError("invalid escape sequence")
			}
		default:
			b.WriteByte(c)
		}
	}
}

// readUnicodeEscape reads the four hex digits of a \u escape and, when the
// result is a high surrogate followed by another \u escape, combines the
// pair into a single rune.
func (t *Tokener) readUnicodeEscape() (rune, error) {
	r, err := t.readHex4()
	if err != nil {
		return 0, err
	}

	if r >= 0xd800 && r <= 0xdbff {
		// High surrogate; a low surrogate must follow for a valid pair
		if t.Next() == '\\' && t.Next() == 'u' {
			low, err := t.readHex4()
			if err != nil {
				return 0, err
			}
			if low >= 0xdc00 && low <= 0xdfff {
				return 0x10000 + (r-0xd800)<<10 + (low - 0xdc00), nil
			}
			return 0, t.syntaxError("invalid low surrogate")
		}
		return 0, t.syntaxError("unpaired surrogate")
	}

	return r, nil
}

// readHex4 reads four hex digits
func (t *Tokener) readHex4() (rune, error) {
	var r rune
	for i := 0; i < 4; i++ {
		c := t.Next()
		var d rune
		switch {
		case c >= '0' && c <= '9':
			d = rune(c - '0')
		case c >= 'a' && c <= 'f':
			d = rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = rune(c-'A') + 10
		default:
			return 0, t.syntaxError("invalid \\u escape")
		}
		r = r<<4 | d
	}
	return r, nil
}

// NextValue parses and returns the next JSON value: an *Object, *Array,
// string, bool, int64, float64, or Null. Characters after the value are
// left unread.
func (t *Tokener) NextValue() (interface{}, error) {
	return t.nextValue(0)
}

// nextValue is NextValue with depth tracking
func (t *Tokener) nextValue(depth int) (interface{}, error) {
	if depth > MaxDepth {
		return nil, errorx.New("document nesting exceeds maximum depth").
			WithCode(errorx.CodeJSONDepth).
			WithOperation("Tokener.NextValue").
			WithDetail("max_depth", MaxDepth)
	}

	c, err := t.NextClean()
	if err != nil {
		return nil, err
	}

	switch c {
	case '{':
		return t.parseObject(depth + 1)
	case '[':
		return t.parseArray(depth + 1)
	case '"', '\'':
		return t.NextString(c)
	case 0:
		return nil, t.syntaxError("unexpected end of input")
	default:
		t.Back()
		return t.parseLiteral()
	}
}

// parseObject parses the members after an already-consumed '{'
func (t *Tokener) parseObject(depth int) (*Object, error) {
	obj := NewObject()

	c, err := t.NextClean()
	if err != nil {
		return nil, err
	}
	if c == '}' {
		return obj, nil
	}
	t.Back()

	for {
		// Key: quoted, or a bare literal in the lenient dialect
		c, err := t.NextClean()
		if err != nil {
			return nil, err
		}

		var key string
		switch c {
		case 0:
			return nil, t.syntaxError("unterminated object")
		case '"', '\'':
			key, err = t.NextString(c)
			if err != nil {
				return nil, err
			}
		default:
			t.Back()
			raw, err := t.parseLiteral()
			if err != nil {
				return nil, err
			}
			key = literalText(raw)
			if key == "" {
				return nil, t.syntaxError("missing object key")
			}
		}

		// Separator: ':' canonically, '=' and '=>' tolerated
		c, err = t.NextClean()
		if err != nil {
			return nil, err
		}
		if c == '=' {
			if t.Next() != '>' {
				t.Back()
			}
		} else if c != ':' {
			return nil, t.syntaxError("expected ':' after object key")
		}

		value, err := t.nextValue(depth)
		if err != nil {
			return nil, err
		}
		obj.Put(key, value)

		// Member separator or end
		c, err = t.NextClean()
		if err != nil {
			return nil, err
		}
		switch c {
		case ',', ';':
			next, err := t.NextClean()
			if err != nil {
				return nil, err
			}
			if next == '}' {
				return obj, nil // trailing separator
			}
			t.Back()
		case '}':
			return obj, nil
		default:
			return nil, t.syntaxError("expected ',' or '}' in object")
		}
	}
}

// parseArray parses the elements after an already-consumed '['
func (t *Tokener) parseArray(depth int) (*Array, error) {
	arr := NewArray()

	c, err := t.NextClean()
	if err != nil {
		return nil, err
	}
	if c == ']' {
		return arr, nil
	}
	t.Back()

	for {
		value, err := t.nextValue(depth)
		if err != nil {
			return nil, err
		}
		arr.Append(value)

		c, err := t.NextClean()
		if err != nil {
			return nil, err
		}
		switch c {
		case ',', ';':
			next, err := t.NextClean()
			if err != nil {
				return nil, err
			}
			if next == ']' {
				return arr, nil // trailing separator
			}
			t.Back()
		case ']':
			return arr, nil
		case 0:
			return nil, t.syntaxError("unterminated array")
		default:
			return nil, t.syntaxError("expected ',' or ']' in array")
		}
	}
}

// parseLiteral reads an unquoted run of characters and interprets it as
// true, false, null, a number, or (lenient dialect) a bare string.
func (t *Tokener) parseLiteral() (interface{}, error) {
	var b strings.Builder
	for {
		c := t.Next()
		if c == 0 || strings.IndexByte(",:]}/\\\"[{;=# \t\n\r", c) >= 0 {
			if c != 0 {
				t.Back()
			}
			break
		}
		b.WriteByte(c)
	}

	text := strings.TrimSpace(b.String())
	if text == "" {
		return nil, t.syntaxError("missing value")
	}

	switch text {
	case "true":
		return true, nil
	case "false":
		return false, nil
	case "null":
		return Null, nil
	}

	// Numbers: integral first so 42 stays int64, then float.
	// "-0" must stay a float to preserve the sign.
	if looksNumeric(text) {
		if text != "-0" {
			if i, err := strconv.ParseInt(text, 10, 64); err == nil {
				return i, nil
			}
		}
		if f, err := strconv.ParseFloat(text, 64); err == nil {
			return f, nil
		}
	}

	// Lenient dialect: bare word becomes a string
	return text, nil
}

// looksNumeric reports whether a literal starts like a JSON number
func looksNumeric(s string) bool {
	c := s[0]
	return (c >= '0' && c <= '9') || c == '-' || c == '+' || c == '.'
}

// literalText renders a literal back to its textual form for use as a key
func literalText(v interface{}) string {
	switch value := v.(type) {
	case string:
		return value
	case bool:
		return strconv.FormatBool(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case nullValue:
		return "null"
	default:
		return ""
	}
}

// SkipTo advances to the next occurrence of the given character and stops
// just before it, returning true when found. The position is unchanged
// when the character does not occur.
func (t *Tokener) SkipTo(target byte) bool {
	idx := strings.IndexByte(t.input[t.pos:], target)
	if idx < 0 {
		return false
	}

	for i := 0; i < idx; i++ {
		t.Next()
	}
	return true
}

// SkipPast advances past the next occurrence of the given substring,
// returning true when found
func (t *Tokener) SkipPast(substr string) bool {
	idx := strings.Index(t.input[t.pos:], substr)
	if idx < 0 {
		t.pos = len(t.input)
		t.usePrevious = false
		return false
	}

	for i := 0; i < idx+len(substr); i++ {
		t.Next()
	}
	return true
}

// Line returns the current 1-based line number
func (t *Tokener) Line() int {
	return t.line
}

// Column returns the current 0-based column number
func (t *Tokener) Column() int {
	return t.column
}

// syntaxError builds a positioned syntax error
func (t *Tokener) syntaxError(message string) *errorx.Error {
	return errorx.New(message).
		WithCode(errorx.CodeJSONSyntax).
		WithOperation("Tokener").
		WithDetail("line", t.line).
		WithDetail("column", t.column).
		WithDetail("position", t.pos)
}

// remainderIsWhitespace reports whether only whitespace and comments remain
func (t *Tokener) remainderIsWhitespace() bool {
	c, err := t.NextClean()
	if err != nil {
		return false
	}
	return c == 0
}
