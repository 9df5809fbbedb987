// File: doc.go
// Title: Configuration Package Documentation
// Description: Package config loads chrono settings from TOML or YAML files
//              with environment overrides.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2026-10-15 v0.2.0: Typed chrono settings

/*
Package config loads and validates chrono settings.

A settings file is TOML or YAML, chosen by extension:

	[calendar]
	locale = "de"          # empty: taken from LC_ALL, LC_MESSAGES or LANG
	resolver = "previous"  # strict, previous, next or lenient

	[i18n]
	locales_dir = ""       # empty: embedded en, de and fr locales

	[log]
	level = "warn"         # trace, debug, info, warn or error
	format = "text"        # text, json, console or logfmt

Unknown keys are rejected with INVALID_CONFIG so typos do not go unnoticed.

Discover looks for chrono.toml, chrono.yaml or chrono.yml in ".",
"./configs" and $HOME/.config/chrono, in that order. Each setting can be
overridden by an environment variable named after its key:

	CHRONO_CALENDAR_LOCALE=fr chrono month 8

Validate reports every invalid value at once; DateResolver, LogLevel and
LogFormat convert single values for use.
*/
package config
