// File: tokener_test.go
// Title: JSON Tokener Tests
// Description: Tests for character-level reading, the lenient dialect,
//              string escapes, number parsing, and syntax error positions.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-04
// Modified: 2025-02-04
//
// Change History:
// - 2025-02-04 v0.1.0: Initial tokener tests

package jsonx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/corekit/core/errorx"
)

func TestTokenerNextAndBack(t *testing.T) {
	tok := NewTokener("ab")

	assert.True(t, tok.More())
	assert.Equal(t, byte('a'), tok.Next())

	tok.Back()
	assert.Equal(t, byte('a'), tok.Next())
	assert.Equal(t, byte('b'), tok.Next())

	assert.False(t, tok.More())
	assert.Equal(t, byte(0), tok.Next())
}

func TestTokenerLineColumn(t *testing.T) {
	tok := NewTokener("a\nbc")

	tok.Next()
	assert.Equal(t, 1, tok.Line())

	tok.Next() // newline
	tok.Next() // b
	assert.Equal(t, 2, tok.Line())
	assert.Equal(t, 1, tok.Column())
}

func TestNextCleanSkipsCommentsAndWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  byte
	}{
		{"leading whitespace", "   \t\n  x", 'x'},
		{"line comment", "// comment\nx", 'x'},
		{"block comment", "/* comment */ x", 'x'},
		{"hash comment", "# comment\nx", 'x'},
		{"stacked comments", "// a\n/* b */ # c\n x", 'x'},
		{"slash not starting a comment", "/x", '/'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := NewTokener(tt.input)
			c, err := tok.NextClean()
			require.NoError(t, err)
			assert.Equal(t, tt.want, c)
		})
	}
}

func TestNextCleanUnclosedComment(t *testing.T) {
	tok := NewTokener("/* never closed")
	_, err := tok.NextClean()
	require.Error(t, err)
	assert.True(t, errorx.HasCode(err, errorx.CodeJSONSyntax))
}

func TestNextString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		quote byte
		want  string
	}{
		{"plain", `hello"`, '"', "hello"},
		{"single quoted", `it works'`, '\'', "it works"},
		{"escapes", `a\tb\nc\\d\"e"`, '"', "a\tb\nc\\d\"e"},
		{"unicode escape", `café"`, '"', "café"},
		{"surrogate pair", `😀"`, '"', "😀"},
		{"escaped slash", `a\/b"`, '"', "a/b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := NewTokener(tt.input)
			s, err := tok.NextString(tt.quote)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s)
		})
	}
}

func TestNextStringErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unterminated", `abc`},
		{"raw newline", "ab\ncd\""},
		{"bad escape", `ab\qcd"`},
		{"bad unicode escape", `\uZZZZ"`},
		{"unpaired high surrogate", `\ud83dx"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := NewTokener(tt.input)
			_, err := tok.NextString('"')
			require.Error(t, err)
			assert.True(t, errorx.HasCode(err, errorx.CodeJSONSyntax))
		})
	}
}

func TestNextValueScalars(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  interface{}
	}{
		{"string", `"hi"`, "hi"},
		{"single quoted string", `'hi'`, "hi"},
		{"true", `true`, true},
		{"false", `false`, false},
		{"null", `null`, Null},
		{"int", `42`, int64(42)},
		{"negative int", `-17`, int64(-17)},
		{"float", `3.25`, 3.25},
		{"exponent", `1e3`, 1000.0},
		{"bare word", `hello`, "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := NewTokener(tt.input)
			v, err := tok.NextValue()
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestNextValueNegativeZeroStaysFloat(t *testing.T) {
	tok := NewTokener("-0")
	v, err := tok.NextValue()
	require.NoError(t, err)

	f, ok := v.(float64)
	require.True(t, ok, "-0 must parse as float64, got %T", v)
	assert.True(t, f == 0)
}

func TestNextValueLenientObject(t *testing.T) {
	input := `{
		// identity
		name: 'corekit';
		"version" = 1,
		meta => { stable: true }, # trailing separator next
	}`

	tok := NewTokener(input)
	v, err := tok.NextValue()
	require.NoError(t, err)

	obj, ok := v.(*Object)
	require.True(t, ok)

	assert.Equal(t, []string{"name", "version", "meta"}, obj.Keys())
	assert.Equal(t, "corekit", obj.OptString("name", ""))
	assert.Equal(t, int64(1), obj.OptInt64("version", 0))

	meta := obj.OptObject("meta")
	require.NotNil(t, meta)
	assert.True(t, meta.OptBool("stable", false))
}

func TestNextValueLenientArray(t *testing.T) {
	tok := NewTokener(`[1; 2, 3,]`)
	v, err := tok.NextValue()
	require.NoError(t, err)

	arr, ok := v.(*Array)
	require.True(t, ok)
	assert.Equal(t, 3, arr.Len())
	assert.Equal(t, int64(2), arr.OptInt64(1, 0))
}

func TestNextValueSyntaxErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ``},
		{"unterminated object", `{"a": 1`},
		{"missing colon", `{"a" 1}`},
		{"unterminated array", `[1, 2`},
		{"missing key", `{: 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := NewTokener(tt.input)
			_, err := tok.NextValue()
			require.Error(t, err)
			assert.True(t, errorx.HasCode(err, errorx.CodeJSONSyntax))
		})
	}
}

func TestNextValueDepthLimit(t *testing.T) {
	input := strings.Repeat("[", MaxDepth+2) + strings.Repeat("]", MaxDepth+2)

	tok := NewTokener(input)
	_, err := tok.NextValue()
	require.Error(t, err)
	assert.True(t, errorx.HasCode(err, errorx.CodeJSONDepth))
}

func TestSyntaxErrorCarriesPosition(t *testing.T) {
	_, err := ParseObject("{\"a\": 1,\n\"b\" 2}")
	require.Error(t, err)

	var e *errorx.Error
	require.ErrorAs(t, err, &e)

	line, ok := e.Detail("line")
	require.True(t, ok)
	assert.Equal(t, 2, line)
}

func TestTokenerMultipleValues(t *testing.T) {
	tok := NewTokener(`1 "two" [3]`)

	v1, err := tok.NextValue()
	require.NoError(t, err)
	assert.Equal(t, int64(1), v1)

	v2, err := tok.NextValue()
	require.NoError(t, err)
	assert.Equal(t, "two", v2)

	v3, err := tok.NextValue()
	require.NoError(t, err)
	arr, ok := v3.(*Array)
	require.True(t, ok)
	assert.Equal(t, 1, arr.Len())
}

func TestSkipTo(t *testing.T) {
	tok := NewTokener("abcdef")

	assert.True(t, tok.SkipTo('d'))
	assert.Equal(t, byte('d'), tok.Next())

	assert.False(t, tok.SkipTo('z'))
	assert.Equal(t, byte('e'), tok.Next())
}

func TestSkipPast(t *testing.T) {
	tok := NewTokener("abcdef")

	assert.True(t, tok.SkipPast("cd"))
	assert.Equal(t, byte('e'), tok.Next())

	assert.False(t, tok.SkipPast("zz"))
	assert.False(t, tok.More())
}
