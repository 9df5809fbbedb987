// File: doc.go
// Title: Internationalization (i18n) Package Documentation
// Description: Package i18n loads locale files and serves localized calendar
//              field names and CLI messages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-15 v0.2.0: Calendar field symbols and embedded default locales

/*
Package i18n provides locale symbols and messages for chrono.

Key Features:
  • Locale files in TOML or YAML, one file per locale, named after the locale
  • Embedded defaults for en, de and fr; an fs.FS or directory can replace them
  • Calendar field names implementing calendar.TextSymbols
  • Message templates with text/template interpolation and plural forms
  • Locale detection from POSIX variables and Accept-Language style lists
  • Thread-safe concurrent lookups

# Language File Organization

	locales/
	├── en.toml          # English (default)
	├── de.toml          # German
	└── fr.yaml          # French (YAML format)

Field names live under fields.<Field>.<style>.<value>, where style is
"short" or "full" and value is the 1-based field value:

	[fields.MonthOfYear.short]
	1 = "Jan"

	[fields.MonthOfYear.full]
	1 = "January"

Messages are plain keys; list values hold plural forms:

	[cli]
	days = ["{{.Count}} day", "{{.Count}} days"]

# Lookup Order

FieldValueText tries the requested locale, then its base language
("de-AT" then "de"). It does not fall back to the default locale, so
calendar.MonthOfYear.Text can render the decimal value on a miss.
Messages (T, TryT, Plural) additionally fall back to the default locale
unless Options.NoFallback is set.

# Usage

	manager, err := i18n.NewDefault()
	if err != nil {
		return err
	}
	fmt.Println(calendar.March.FullText(manager, "de")) // März

	_ = manager.SetLocale(i18n.LocaleFromEnv(os.Getenv))
	fmt.Println(manager.Plural("cli.days", 29, nil)) // 29 days
*/
package i18n
