// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and details.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2026-10-15 v0.2.0: Calendar codes and chain lookups

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}

	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}

	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() should not be empty")
	}
}

func TestNewf(t *testing.T) {
	err := Newf("MonthOfYear %d is out of range [%d, %d]", 13, 1, 12)
	if err.Error() != "MonthOfYear 13 is out of range [1, 12]" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original error"),
			message:  "wrapper message",
			wantMsg:  "wrapper message: original error",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap structured error keeps code",
			err:      New("day 31 invalid for November").WithCode(CodeInvalidFieldCombination),
			message:  "adjust failed",
			wantMsg:  "adjust failed: day 31 invalid for November",
			wantCode: CodeInvalidFieldCombination,
		},
		{
			name:     "wrap fmt wrapped structured error keeps code",
			err:      fmt.Errorf("resolver: %w", New("bad").WithCode(CodeValueOutOfRange)),
			message:  "outer",
			wantMsg:  "outer: resolver: bad",
			wantCode: CodeValueOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Wrap(tt.err, tt.message)

			if tt.wantNil {
				if result != nil {
					t.Errorf("Wrap() = %v, want nil", result)
				}
				return
			}

			if result.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", result.Error(), tt.wantMsg)
			}
			if result.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", result.Code(), tt.wantCode)
			}
			if !errors.Is(result, tt.err) {
				t.Error("wrapped error should match original with errors.Is")
			}
		})
	}
}

func TestWrapCopiesDetails(t *testing.T) {
	inner := New("out of range").WithDetail("value", 13).WithDetail("max", 12)
	outer := Wrap(inner, "lookup failed").WithDetail("operation", "cli")

	details := outer.Details()
	if details["value"] != 13 || details["max"] != 12 || details["operation"] != "cli" {
		t.Errorf("Details() = %v", details)
	}
	if _, ok := inner.Detail("operation"); ok {
		t.Error("wrapping must not modify the inner error's details")
	}
}

func TestWrapTruncatesDeepChains(t *testing.T) {
	var err error = New("root")
	for i := 0; i < MaxErrorChainDepth+5; i++ {
		err = Wrap(err, fmt.Sprintf("level %d", i))
	}

	e, ok := As(err)
	if !ok {
		t.Fatal("As() failed")
	}
	if v, _ := e.Detail("truncated"); v != true {
		t.Errorf("expected truncated detail on deep chain, got %v", e.Details())
	}
	if !strings.Contains(err.Error(), "root") {
		t.Errorf("truncated message should keep the root cause: %q", err.Error())
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeValueOutOfRange, SeverityLow},
		{CodeRequiredField, SeverityLow},
		{CodeInvalidFieldCombination, SeverityLow},
		{CodeInvalidConfig, SeverityHigh},
		{CodeInternal, SeverityCritical},
		{CodeUnknown, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}

	explicit := New("x").WithSeverity(SeverityCritical).WithCode(CodeValueOutOfRange)
	if explicit.Severity() != SeverityCritical {
		t.Errorf("explicit severity overwritten: %v", explicit.Severity())
	}
}

func TestHasCodeAndGetCode(t *testing.T) {
	inner := New("bad month").WithCode(CodeValueOutOfRange)
	chain := fmt.Errorf("cli: %w", Wrap(inner, "parse"))

	if !HasCode(chain, CodeValueOutOfRange) {
		t.Error("HasCode() should find code through fmt wrapping")
	}
	if HasCode(chain, CodeRequiredField) {
		t.Error("HasCode() matched wrong code")
	}
	if HasCode(errors.New("plain"), CodeValueOutOfRange) {
		t.Error("HasCode() matched a plain error")
	}
	if GetCode(chain) != CodeValueOutOfRange {
		t.Errorf("GetCode() = %v", GetCode(chain))
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode() of plain error should be CodeUnknown")
	}
	if GetSeverity(errors.New("plain")) != SeverityMedium {
		t.Error("GetSeverity() of plain error should be SeverityMedium")
	}
}

func TestRootCause(t *testing.T) {
	root := errors.New("root")
	err := Wrap(Wrap(root, "middle"), "top")
	if err.RootCause() != root {
		t.Errorf("RootCause() = %v, want %v", err.RootCause(), root)
	}

	single := New("alone")
	if single.RootCause() != single {
		t.Error("RootCause() of unwrapped error should be itself")
	}
}

func TestString(t *testing.T) {
	err := New("MonthOfYear 0 is out of range [1, 12]").
		WithCode(CodeValueOutOfRange).
		WithOperation("calendar.MonthOfYearOf").
		WithDetail("value", 0).
		WithDetail("min", 1)

	s := err.String()
	for _, want := range []string{
		"Error: MonthOfYear 0 is out of range [1, 12]",
		"Code: VALUE_OUT_OF_RANGE",
		"Severity: low",
		"Operation: calendar.MonthOfYearOf",
		"Details: {min=1, value=0}",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("cause"), "failed").
		WithCode(CodeInvalidFieldCombination).
		WithOperation("calendar.AdjustDateWith").
		WithDetail("day", 31)

	data, marshalErr := json.Marshal(err)
	if marshalErr != nil {
		t.Fatalf("json.Marshal() error = %v", marshalErr)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}

	if decoded["code"] != "INVALID_FIELD_COMBINATION" {
		t.Errorf("code = %v", decoded["code"])
	}
	if decoded["operation"] != "calendar.AdjustDateWith" {
		t.Errorf("operation = %v", decoded["operation"])
	}
	if decoded["cause"] != "cause" {
		t.Errorf("cause = %v", decoded["cause"])
	}
	if decoded["severity"] != "low" {
		t.Errorf("severity = %v", decoded["severity"])
	}
}

func TestCodeCategoryAndExitCode(t *testing.T) {
	tests := []struct {
		code     Code
		category string
		exit     int
	}{
		{CodeValueOutOfRange, "validation", 2},
		{CodeRequiredField, "validation", 2},
		{CodeInvalidFieldCombination, "calendar", 2},
		{CodeInvalidConfig, "configuration", 3},
		{CodeInternal, "generic", 1},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if !tt.code.IsValid() {
				t.Errorf("%s should be valid", tt.code)
			}
			if got := tt.code.Category(); got != tt.category {
				t.Errorf("Category() = %q, want %q", got, tt.category)
			}
			if got := tt.code.ExitCode(); got != tt.exit {
				t.Errorf("ExitCode() = %d, want %d", got, tt.exit)
			}
		})
	}

	if Code("NOPE").IsValid() {
		t.Error("unknown code reported valid")
	}
}

func TestSeverityString(t *testing.T) {
	tests := map[Severity]string{
		SeverityLow:      "low",
		SeverityMedium:   "medium",
		SeverityHigh:     "high",
		SeverityCritical: "critical",
		Severity(42):     "unknown",
	}
	for s, want := range tests {
		if s.String() != want {
			t.Errorf("Severity(%d).String() = %q, want %q", s, s.String(), want)
		}
	}
	if SeverityMedium.ShouldAlert() || !SeverityHigh.ShouldAlert() {
		t.Error("ShouldAlert() threshold should be SeverityHigh")
	}
}
