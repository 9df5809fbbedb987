// File: entry.go
// Title: Log Entry and Fields
// Description: Defines the log entry record and the Fields helpers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-15 v0.2.0: Dropped request/user context, sorted field keys

package log

import (
	"sort"
	"time"
)

// Entry represents a single log entry
type Entry struct {
	Timestamp time.Time
	Level     Level
	Message   string
	Logger    string
	Fields    Fields
	Error     error
}

// Fields represents custom key-value pairs for structured logging
type Fields map[string]interface{}

// Field creates a single field for logging
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Err creates an error field
func Err(err error) Fields {
	return Fields{"error": err}
}

// Int creates an integer field
func Int(key string, value int) Fields {
	return Fields{key: value}
}

// String creates a string field
func String(key string, value string) Fields {
	return Fields{key: value}
}

// Bool creates a boolean field
func Bool(key string, value bool) Fields {
	return Fields{key: value}
}

// Merge returns a new Fields containing f overlaid with other
func (f Fields) Merge(other Fields) Fields {
	result := make(Fields, len(f)+len(other))
	for k, v := range f {
		result[k] = v
	}
	for k, v := range other {
		result[k] = v
	}
	return result
}

// Keys returns the field keys in sorted order
func (f Fields) Keys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NewEntry creates a new log entry with the given level and message
func NewEntry(level Level, message string) *Entry {
	return &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    make(Fields),
	}
}

// WithFields adds custom fields to the entry
func (e *Entry) WithFields(fields Fields) *Entry {
	if e.Fields == nil {
		e.Fields = make(Fields)
	}
	for k, v := range fields {
		e.Fields[k] = v
	}
	return e
}

// WithError adds error information to the entry
func (e *Entry) WithError(err error) *Entry {
	e.Error = err
	return e
}
