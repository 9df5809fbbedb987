// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels and the default severity for each code.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-15 v0.2.0: Severity mapping for calendar codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates rejected input, e.g. a month number outside 1..12
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	SeverityMedium

	// SeverityHigh indicates a serious error such as an unreadable configuration
	SeverityHigh

	// SeverityCritical indicates the program cannot continue
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return SeverityHigh

	case CodeInvalidInput, CodeNotFound, CodeValidationFailed, CodeRequiredField,
		CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidFieldCombination:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
