// File: stringer_test.go
// Title: JSON Stringer Tests
// Description: Tests for the streaming JSON writer covering nesting,
//              separators, misuse detection, and the depth guard.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-04
// Modified: 2025-02-04
//
// Change History:
// - 2025-02-04 v0.1.0: Initial stringer tests

package jsonx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/corekit/core/errorx"
)

func TestStringerObject(t *testing.T) {
	text, err := NewStringer().
		Object().
		Key("id").Value(7).
		Key("name").Value("corekit").
		Key("active").Value(true).
		Key("gone").Value(nil).
		EndObject().
		String()

	require.NoError(t, err)
	assert.Equal(t, `{"id":7,"name":"corekit","active":true,"gone":null}`, text)
}

func TestStringerArray(t *testing.T) {
	text, err := NewStringer().
		Array().
		Value(1).Value("two").Value(false).
		EndArray().
		String()

	require.NoError(t, err)
	assert.Equal(t, `[1,"two",false]`, text)
}

func TestStringerNested(t *testing.T) {
	text, err := NewStringer().
		Object().
		Key("list").Array().
		Value(1).
		Object().Key("deep").Value(true).EndObject().
		EndArray().
		Key("empty").Object().EndObject().
		EndObject().
		String()

	require.NoError(t, err)
	assert.Equal(t, `{"list":[1,{"deep":true}],"empty":{}}`, text)
}

func TestStringerTopLevelScalar(t *testing.T) {
	text, err := NewStringer().Value("alone").String()
	require.NoError(t, err)
	assert.Equal(t, `"alone"`, text)
}

func TestStringerEmbeddedContainers(t *testing.T) {
	obj := NewObject().Put("k", 1)
	arr := NewArray().Append(2)

	text, err := NewStringer().
		Array().Value(obj).Value(arr).EndArray().
		String()

	require.NoError(t, err)
	assert.Equal(t, `[{"k":1},[2]]`, text)
}

func TestStringerMisuse(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Stringer
	}{
		{
			name:  "value where key expected",
			build: func() *Stringer { return NewStringer().Object().Value(1) },
		},
		{
			name:  "key outside object",
			build: func() *Stringer { return NewStringer().Array().Key("k") },
		},
		{
			name:  "end object without object",
			build: func() *Stringer { return NewStringer().Array().EndObject() },
		},
		{
			name:  "end array inside object",
			build: func() *Stringer { return NewStringer().Object().EndArray() },
		},
		{
			name:  "second top-level value",
			build: func() *Stringer { return NewStringer().Value(1).Value(2) },
		},
		{
			name:  "end object after key",
			build: func() *Stringer { return NewStringer().Object().Key("k").EndObject() },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.build()
			require.Error(t, s.Err())
			assert.True(t, errorx.HasCode(s.Err(), errorx.CodeJSONState))

			_, err := s.String()
			require.Error(t, err)
		})
	}
}

func TestStringerErrorLatches(t *testing.T) {
	s := NewStringer().Object().Value(1)
	first := s.Err()
	require.Error(t, first)

	// Further calls keep the original error
	s.Key("k").Value(2).EndObject()
	assert.Same(t, first.(*errorx.Error), s.Err().(*errorx.Error))
}

func TestStringerIncomplete(t *testing.T) {
	s := NewStringer().Object().Key("open").Value(1)

	_, err := s.String()
	require.Error(t, err)
	assert.True(t, errorx.HasCode(err, errorx.CodeJSONState))
}

func TestStringerDepthLimit(t *testing.T) {
	s := NewStringer()
	for i := 0; i <= maxStringerDepth; i++ {
		s.Array()
	}

	require.Error(t, s.Err())
	assert.True(t, errorx.HasCode(s.Err(), errorx.CodeJSONDepth))
}

func TestStringerRoundTrip(t *testing.T) {
	text, err := NewStringer().
		Object().
		Key("nums").Array().Value(1).Value(2.5).EndArray().
		Key("label").Value("a \"quoted\" thing").
		EndObject().
		String()
	require.NoError(t, err)

	obj, err := ParseObject(text)
	require.NoError(t, err)
	assert.Equal(t, 2.5, obj.OptArray("nums").OptFloat64(1, 0))
	assert.Equal(t, `a "quoted" thing`, obj.OptString("label", ""))
}
