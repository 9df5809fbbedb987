// File: logger.go
// Title: Core Logger Implementation
// Description: Structured leveled logger used by the chrono CLI. Loggers are
//              immutable after construction; With* methods return copies.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-15 v0.2.0: Synchronous only, severity mapping for calendar errors

package log

import (
	"io"
	"os"
	"sync"

	mdwerror "github.com/msto63/chrono/core/error"
)

// Logger represents a structured logger with contextual fields
type Logger struct {
	level         Level
	formatter     Formatter
	output        io.Writer
	name          string
	contextFields Fields

	// guards writes to output
	mutex *sync.Mutex
}

// Config represents logger configuration
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
	Name   string
}

// New creates a logger writing text at info level to stderr
func New() *Logger {
	return NewWithConfig(Config{Level: LevelInfo, Format: FormatText})
}

// NewWithConfig creates a new logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	output := config.Output
	if output == nil {
		output = os.Stderr
	}
	return &Logger{
		level:         config.Level,
		formatter:     GetFormatter(config.Format),
		output:        output,
		name:          config.Name,
		contextFields: make(Fields),
		mutex:         &sync.Mutex{},
	}
}

// Discard returns a logger that drops every entry
func Discard() *Logger {
	return NewWithConfig(Config{Level: LevelError + 1, Output: io.Discard})
}

// WithLevel returns a copy with the given minimum level
func (l *Logger) WithLevel(level Level) *Logger {
	clone := l.clone()
	clone.level = level
	return clone
}

// WithName returns a copy with the given logger name
func (l *Logger) WithName(name string) *Logger {
	clone := l.clone()
	clone.name = name
	return clone
}

// WithField returns a copy that adds the field to every entry
func (l *Logger) WithField(key string, value interface{}) *Logger {
	clone := l.clone()
	clone.contextFields[key] = value
	return clone
}

// WithFields returns a copy that adds the fields to every entry
func (l *Logger) WithFields(fields Fields) *Logger {
	clone := l.clone()
	for k, v := range fields {
		clone.contextFields[k] = v
	}
	return clone
}

// Trace logs a trace message
func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(LevelTrace, message, nil, fields...)
}

// Debug logs a debug message
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields...)
}

// Info logs an info message
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields...)
}

// Warn logs a warning message
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields...)
}

// Error logs an error message
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, fields...)
}

// ErrorWithErr logs an error message with an error object
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields...)
}

// LogError logs err at a level derived from its severity. Rejected input
// (low severity) is a warning; anything else is an error.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	e, ok := mdwerror.As(err)
	if !ok {
		l.log(LevelError, err.Error(), err)
		return
	}

	fields := Fields{"error_severity": e.Severity().String()}
	if e.Operation() != "" {
		fields["error_operation"] = e.Operation()
	}

	level := LevelError
	if e.Severity() == mdwerror.SeverityLow {
		level = LevelWarn
	}
	l.log(level, e.Message(), err, fields)
}

// IsLevelEnabled returns true if the given level is enabled
func (l *Logger) IsLevelEnabled(level Level) bool {
	return level.IsEnabled(l.level)
}

// Level returns the minimum level
func (l *Logger) Level() Level {
	return l.level
}

func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	if !level.IsEnabled(l.level) {
		return
	}

	entry := NewEntry(level, message)
	entry.Logger = l.name
	entry.Error = err
	entry.WithFields(l.contextFields)
	for _, f := range fields {
		entry.WithFields(f)
	}

	formatted, formatErr := l.formatter.Format(entry)
	if formatErr != nil {
		return
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()
	_, _ = l.output.Write(formatted)
}

func (l *Logger) clone() *Logger {
	return &Logger{
		level:         l.level,
		formatter:     l.formatter,
		output:        l.output,
		name:          l.name,
		contextFields: l.contextFields.Merge(nil),
		mutex:         l.mutex,
	}
}

var (
	defaultLogger   = New()
	defaultLoggerMu sync.RWMutex
)

// GetDefault returns the default logger instance
func GetDefault() *Logger {
	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger instance
func SetDefault(logger *Logger) {
	defaultLoggerMu.Lock()
	defer defaultLoggerMu.Unlock()
	defaultLogger = logger
}
