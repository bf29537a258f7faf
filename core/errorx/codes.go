// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across the corekit library. Codes enable
//              structured error handling and programmatic error inspection
//              without string matching on messages.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-02
// Modified: 2025-02-02
//
// Change History:
// - 2025-02-02 v0.1.0: Initial implementation with corekit error codes

package errorx

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for the corekit library
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeOutOfRange   Code = "OUT_OF_RANGE"

	// JSON model
	CodeJSONSyntax Code = "JSON_SYNTAX"
	CodeJSONState  Code = "JSON_STATE"
	CodeJSONType   Code = "JSON_TYPE"
	CodeJSONDepth  Code = "JSON_DEPTH"

	// i18n message resolution
	CodeCatalogParse   Code = "CATALOG_PARSE"
	CodeLocaleUnknown  Code = "LOCALE_UNKNOWN"
	CodeMessageMissing Code = "MESSAGE_MISSING"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeOutOfRange,
		CodeJSONSyntax, CodeJSONState, CodeJSONType, CodeJSONDepth,
		CodeCatalogParse, CodeLocaleUnknown, CodeMessageMissing,
		CodeValidationFailed, CodeInvalidFormat:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeJSONSyntax, CodeJSONState, CodeJSONType, CodeJSONDepth:
		return "json"
	case CodeCatalogParse, CodeLocaleUnknown, CodeMessageMissing:
		return "i18n"
	case CodeValidationFailed, CodeInvalidFormat:
		return "validation"
	default:
		return "generic"
	}
}
