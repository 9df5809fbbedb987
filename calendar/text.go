// File: text.go
// Title: Text Projection Interfaces
// Description: The locale symbol lookup capability the calendar types use to
//              render their names. core/i18n provides the implementation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15

package calendar

// TextStyle selects the length of a rendered field name
type TextStyle string

const (
	TextStyleShort TextStyle = "short"
	TextStyleFull  TextStyle = "full"
)

// TextSymbols looks up the localized text of a field value. ok is false when
// the locale has no text for the value.
type TextSymbols interface {
	FieldValueText(locale, field, style string, value int) (text string, ok bool)
}

// FieldValue pairs a field name with its numeric value
type FieldValue struct {
	Field string
	Value int
}
