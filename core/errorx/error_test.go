// File: error_test.go
// Title: Core Error Tests
// Description: Tests for the structured Error type including creation,
//              wrapping, code propagation, detail handling, and standard
//              library interoperability.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-02
// Modified: 2025-02-02
//
// Change History:
// - 2025-02-02 v0.1.0: Initial test coverage

package errorx

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New("something failed")

	if err.Error() != "something failed" {
		t.Errorf("Error() = %q, want %q", err.Error(), "something failed")
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Unwrap() != nil {
		t.Errorf("Unwrap() = %v, want nil", err.Unwrap())
	}
}

func TestNewf(t *testing.T) {
	err := Newf("failed after %d attempts", 3)
	if err.Error() != "failed after 3 attempts" {
		t.Errorf("Newf() = %q", err.Error())
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		wantNil bool
		want    string
	}{
		{
			name:    "nil error",
			err:     nil,
			message: "context",
			wantNil: true,
		},
		{
			name:    "standard error",
			err:     errors.New("io failure"),
			message: "load failed",
			want:    "load failed: io failure",
		},
		{
			name:    "corekit error",
			err:     New("missing key").WithCode(CodeNotFound),
			message: "lookup failed",
			want:    "lookup failed: missing key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if wrapped != nil {
					t.Fatalf("Wrap(nil) = %v, want nil", wrapped)
				}
				return
			}
			if wrapped.Error() != tt.want {
				t.Errorf("Wrap().Error() = %q, want %q", wrapped.Error(), tt.want)
			}
		})
	}
}

func TestWrapPreservesCodeAndDetails(t *testing.T) {
	inner := New("bad token").
		WithCode(CodeJSONSyntax).
		WithDetail("line", 4).
		WithDetail("column", 17)

	wrapped := Wrap(inner, "parse failed")

	if wrapped.Code() != CodeJSONSyntax {
		t.Errorf("Code() = %v, want %v", wrapped.Code(), CodeJSONSyntax)
	}
	if v, ok := wrapped.Detail("line"); !ok || v != 4 {
		t.Errorf("Detail(line) = %v, %v", v, ok)
	}
	if !errors.Is(wrapped, inner) {
		t.Error("errors.Is(wrapped, inner) = false, want true")
	}
}

func TestWrapTruncatesDeepChains(t *testing.T) {
	var err error = New("root")
	for i := 0; i < MaxChainDepth+5; i++ {
		err = Wrap(err, fmt.Sprintf("layer %d", i))
	}

	// The chain must stay bounded
	if depth := chainDepth(err); depth > MaxChainDepth+1 {
		t.Errorf("chainDepth = %d, want <= %d", depth, MaxChainDepth+1)
	}
	if !strings.Contains(err.Error(), "chain truncated") {
		t.Errorf("truncated chain message missing: %q", err.Error())
	}
}

func TestErrorsAsInterop(t *testing.T) {
	base := errors.New("disk full")
	wrapped := Wrap(base, "write failed").WithCode(CodeInternal)

	if !errors.Is(wrapped, base) {
		t.Error("errors.Is did not find the wrapped cause")
	}

	var ce *Error
	if !errors.As(wrapped, &ce) {
		t.Fatal("errors.As failed to extract *Error")
	}
	if ce.Code() != CodeInternal {
		t.Errorf("extracted code = %v, want %v", ce.Code(), CodeInternal)
	}
}

func TestRootCause(t *testing.T) {
	base := errors.New("root problem")
	err := Wrap(Wrap(base, "middle"), "outer")

	if got := RootCause(err); got != base {
		t.Errorf("RootCause() = %v, want %v", got, base)
	}

	plain := New("standalone")
	if got := RootCause(plain); got != plain {
		t.Errorf("RootCause(standalone) = %v, want itself", got)
	}
}

func TestHasCodeAndGetCode(t *testing.T) {
	err := New("no such message").WithCode(CodeMessageMissing)

	if !HasCode(err, CodeMessageMissing) {
		t.Error("HasCode() = false, want true")
	}
	if HasCode(err, CodeNotFound) {
		t.Error("HasCode() matched the wrong code")
	}
	if HasCode(errors.New("plain"), CodeNotFound) {
		t.Error("HasCode() matched a foreign error")
	}
	if got := GetCode(errors.New("plain")); got != CodeUnknown {
		t.Errorf("GetCode(foreign) = %v, want %v", got, CodeUnknown)
	}
}

func TestWithDetails(t *testing.T) {
	err := New("invalid value").WithDetails(map[string]interface{}{
		"index": 2,
		"value": "x",
	})

	details := err.Details()
	if len(details) != 2 {
		t.Fatalf("Details() has %d entries, want 2", len(details))
	}
	if details["index"] != 2 {
		t.Errorf("Details()[index] = %v, want 2", details["index"])
	}

	// Details() must return a copy
	details["index"] = 99
	if v, _ := err.Detail("index"); v != 2 {
		t.Error("Details() exposed internal state")
	}
}

func TestStringRepresentation(t *testing.T) {
	err := New("bad input").
		WithCode(CodeInvalidInput).
		WithOperation("Tokener.NextValue").
		WithDetail("position", 12)

	s := err.String()
	for _, want := range []string{"bad input", "INVALID_INPUT", "Tokener.NextValue", "position=12"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in %q", want, s)
		}
	}
}
