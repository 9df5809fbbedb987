// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across chrono. Calendar field
//              failures use the validation and calendar categories; the
//              remaining codes serve configuration, i18n and the CLI.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-15 v0.2.0: Added calendar codes, removed service and TCOL codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeRequiredField    Code = "REQUIRED_FIELD"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"

	// Calendar
	CodeInvalidFieldCombination Code = "INVALID_FIELD_COMBINATION"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeValidationFailed, CodeRequiredField, CodeInvalidFormat, CodeValueOutOfRange,
		CodeInvalidFieldCombination:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeRequiredField, CodeInvalidFormat, CodeValueOutOfRange:
		return "validation"
	case CodeInvalidFieldCombination:
		return "calendar"
	default:
		return "generic"
	}
}

// ExitCode returns the process exit status the CLI uses for this code
func (c Code) ExitCode() int {
	switch c.Category() {
	case "validation", "calendar":
		return 2
	case "configuration":
		return 3
	default:
		return 1
	}
}
