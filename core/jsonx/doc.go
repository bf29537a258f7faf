// File: doc.go
// Title: Package Documentation for jsonx
// Description: Package jsonx provides an insertion-ordered JSON object
//              model with a lenient recursive-descent reader and a
//              streaming writer.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-04
// Modified: 2025-02-04
//
// Change History:
// - 2025-02-04 v0.1.0: Initial documentation

// Package jsonx provides a document-style JSON object model.
//
// Unlike encoding/json, which maps JSON onto Go structs, jsonx keeps the
// document as a navigable value tree: Object (insertion-ordered members),
// Array (ordered elements), and the scalars string, bool, int64, float64,
// and the Null sentinel. This suits code that builds, inspects, or edits
// JSON whose shape is not known at compile time.
//
// Parsing:
//
//	obj, err := jsonx.ParseObject(`{"name": "corekit", "tags": ["go"]}`)
//	name, _ := obj.GetString("name")
//	tag := obj.OptArray("tags").OptString(0, "")
//
// The reader accepts a lenient dialect:
// single-quoted strings, unquoted keys, '=' and '=>' as key separators,
// ';' as an element separator, trailing separators, and //, /* */, and #
// comments. ParseObject and ParseArray reject trailing garbage after the
// top-level value; Tokener.NextValue does not, so several values can be
// pulled from one buffer.
//
// Typed getters coerce loosely: GetInt on the string "42" yields 42.
// Get variants return an error for absent or incompatible members; Opt
// variants return a caller-supplied fallback. Has and IsNull distinguish
// a member holding the explicit Null from an absent member.
//
// Building:
//
//	obj := jsonx.NewObject().Put("id", 7).Put("active", true)
//	text, err := jsonx.NewStringer().
//	    Object().Key("id").Value(7).EndObject().
//	    String()
//
// The Stringer enforces well-formed output through a mode stack; misuse
// (a value where a key belongs, unbalanced End calls) latches an error
// with code errorx.CodeJSONState.
//
// Parsing and serialization are depth-limited (MaxDepth) so crafted
// documents cannot exhaust the stack. Malformed input yields errors with
// code errorx.CodeJSONSyntax carrying line and column details.
//
// Object and Array are not safe for concurrent mutation.
package jsonx
