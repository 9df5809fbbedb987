// File: level.go
// Title: Log Levels
// Description: Defines log levels, their textual forms and parsing.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-15 v0.2.0: Removed audit level, parse errors are structured errors

package log

import (
	"strings"

	mdwerror "github.com/msto63/chrono/core/error"
)

// Level represents the severity of a log entry
type Level int

const (
	// LevelTrace is for very fine-grained diagnostics
	LevelTrace Level = iota

	// LevelDebug is for diagnostics useful while developing
	LevelDebug

	// LevelInfo is the default level for normal operation
	LevelInfo

	// LevelWarn indicates a condition worth attention
	LevelWarn

	// LevelError indicates a failed operation
	LevelError
)

// String returns the string representation of the log level
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// ShortString returns a four letter form used by the text formatter
func (l Level) ShortString() string {
	switch l {
	case LevelTrace:
		return "TRCE"
	case LevelDebug:
		return "DEBU"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERRO"
	default:
		return "UNKN"
	}
}

// Color returns the ANSI color sequence used by the console formatter
func (l Level) Color() string {
	switch l {
	case LevelTrace, LevelDebug:
		return "\033[37m"
	case LevelInfo:
		return "\033[36m"
	case LevelWarn:
		return "\033[33m"
	case LevelError:
		return "\033[31m"
	default:
		return "\033[0m"
	}
}

// IsEnabled reports whether entries of this level pass the minimum level
func (l Level) IsEnabled(minLevel Level) bool {
	return l >= minLevel
}

// ParseLevel parses a level name, case-insensitively
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, mdwerror.Newf("unknown log level %q", level).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("log.ParseLevel").
			WithDetail("value", level)
	}
}
