// File: symbols.go
// Title: Calendar Field Symbols
// Description: Serves localized names of calendar field values from the
//              "fields" table of the locale files and ships the embedded
//              default locales.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15

package i18n

import (
	"embed"
	"io/fs"
	"strconv"
)

//go:embed locales
var embeddedLocales embed.FS

// Embedded returns the built-in locale files (en, de, fr)
func Embedded() fs.FS {
	sub, err := fs.Sub(embeddedLocales, "locales")
	if err != nil {
		panic(err)
	}
	return sub
}

// FieldValueText returns the text stored under fields.<field>.<style>.<value>
// for the locale or its base language. It never falls back to the default
// locale, so callers can substitute their own rendering on a miss.
func (m *Manager) FieldValueText(locale, field, style string, value int) (string, bool) {
	key := "fields." + field + "." + style + "." + strconv.Itoa(value)

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, candidate := range localeCandidates(locale) {
		translations, exists := m.translations[candidate]
		if !exists {
			continue
		}
		if text, ok := getNestedRawValue(translations, key).(string); ok && text != "" {
			return text, true
		}
	}
	return "", false
}
