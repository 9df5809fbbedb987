// File: locale.go
// Title: Locale Detection and Matching
// Description: Normalizes locale tags, detects the preferred locale from
//              Accept-Language style lists and POSIX environment variables,
//              and matches requested locales against the loaded ones.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of locale detection
// - 2026-10-15 v0.2.0: POSIX locale variables, base-language matching,
//                       BCP 47 canonicalization via x/text

package i18n

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// LocalePreference represents a locale preference with quality score
type LocalePreference struct {
	Locale  string  // Locale code (e.g., "en", "en-US", "de-DE")
	Quality float64 // Quality score (0.0 - 1.0)
}

// environment variables consulted by LocaleFromEnv, highest priority first
var localeEnvVars = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// NormalizeLocale converts POSIX and BCP 47 spellings to the canonical
// BCP 47 form: "de_DE.UTF-8" and "de-de" both become "de-DE". "C", "POSIX"
// and unparsable tags yield "".
func NormalizeLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	if locale == "" || locale == "C" || locale == "POSIX" {
		return ""
	}

	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil || tag == language.Und {
		return ""
	}
	return tag.String()
}

// BaseLanguage returns the language subtag, e.g. "en" for "en-US"
func BaseLanguage(locale string) string {
	normalized := NormalizeLocale(locale)
	if normalized == "" {
		return ""
	}
	base, _ := language.MustParse(normalized).Base()
	return base.String()
}

// localeCandidates lists the lookup order for a locale: the locale itself,
// then its base language
func localeCandidates(locale string) []string {
	normalized := NormalizeLocale(locale)
	if normalized == "" {
		return nil
	}
	candidates := []string{normalized}
	if base := BaseLanguage(normalized); base != normalized {
		candidates = append(candidates, base)
	}
	return candidates
}

// LocaleFromEnv returns the normalized locale from LC_ALL, LC_MESSAGES or
// LANG, whichever is set first, or "" when none names a real locale.
// getenv is usually os.Getenv.
func LocaleFromEnv(getenv func(string) string) string {
	for _, name := range localeEnvVars {
		if locale := NormalizeLocale(getenv(name)); locale != "" {
			return locale
		}
	}
	return ""
}

// Match returns the loaded locale that serves the requested one: the exact
// locale or its base language. It returns "" when neither is loaded.
func (m *Manager) Match(locale string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.match(locale)
}

func (m *Manager) match(locale string) string {
	for _, candidate := range localeCandidates(locale) {
		if _, exists := m.translations[candidate]; exists {
			return candidate
		}
	}
	return ""
}

// DetectLocale picks the best loaded locale from a preference list such as
// an Accept-Language header ("de-CH, de;q=0.9, en;q=0.5") or the GNU
// LANGUAGE variable ("de:en"). It falls back to the default locale.
func (m *Manager) DetectLocale(preferences string) string {
	for _, pref := range parseLocalePreferences(preferences) {
		if matched := m.Match(pref.Locale); matched != "" {
			return matched
		}
	}
	return m.GetDefaultLocale()
}

// parseLocalePreferences parses a comma or colon separated preference list
// into locale preferences sorted by quality, highest first
func parseLocalePreferences(list string) []LocalePreference {
	var preferences []LocalePreference

	fields := strings.FieldsFunc(list, func(r rune) bool { return r == ',' || r == ':' })
	for _, part := range fields {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		// Format: "en-US;q=0.9" or "en;q=0.8" or "de"
		quality := 1.0
		subParts := strings.Split(part, ";")
		locale := strings.TrimSpace(subParts[0])
		for _, subPart := range subParts[1:] {
			subPart = strings.TrimSpace(subPart)
			if strings.HasPrefix(subPart, "q=") {
				if q, err := strconv.ParseFloat(strings.TrimPrefix(subPart, "q="), 64); err == nil {
					quality = q
				}
				break
			}
		}

		if locale != "" && locale != "*" && quality > 0 {
			preferences = append(preferences, LocalePreference{
				Locale:  locale,
				Quality: quality,
			})
		}
	}

	sort.SliceStable(preferences, func(i, j int) bool {
		return preferences[i].Quality > preferences[j].Quality
	})

	return preferences
}
