// File: doc.go
// Title: Package Documentation for errorx
// Description: Package errorx provides structured error handling for the
//              corekit library with error codes, contextual details, and
//              cause chaining compatible with the standard errors package.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-02
// Modified: 2025-02-02
//
// Change History:
// - 2025-02-02 v0.1.0: Initial documentation

// Package errorx provides structured error handling for corekit.
//
// Every error produced by corekit packages is an *errorx.Error carrying a
// classification code, an optional operation name, and free-form details.
// The type is a drop-in error: it works with errors.Is, errors.As, and
// errors.Unwrap, and wrapping a nil error yields nil.
//
// Creating errors:
//
//	err := errorx.New("value is not a number").
//	    WithCode(errorx.CodeJSONType).
//	    WithOperation("Object.GetInt").
//	    WithDetail("key", "age")
//
// Wrapping preserves the code and details of the wrapped corekit error:
//
//	if err := loadCatalog(path); err != nil {
//	    return errorx.Wrap(err, "catalog reload failed")
//	}
//
// Inspecting errors:
//
//	if errorx.HasCode(err, errorx.CodeJSONSyntax) {
//	    line, _ := err.(*errorx.Error).Detail("line")
//	    // report position to the user
//	}
//
// Wrap chains are capped at MaxChainDepth; deeper chains are flattened to
// their root cause so pathological re-wrapping loops cannot grow memory.
package errorx
