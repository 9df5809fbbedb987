// File: env.go
// Title: Environment Variable Overrides
// Description: Applies PREFIX_SECTION_KEY environment variables on top of
//              loaded settings.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15

package config

import (
	"os"
	"strings"
)

// envBinding ties a dotted settings key to its field
type envBinding struct {
	key   string
	field func(s *Settings) *string
}

var envBindings = []envBinding{
	{"calendar.locale", func(s *Settings) *string { return &s.Calendar.Locale }},
	{"calendar.resolver", func(s *Settings) *string { return &s.Calendar.Resolver }},
	{"i18n.locales_dir", func(s *Settings) *string { return &s.I18n.LocalesDir }},
	{"log.level", func(s *Settings) *string { return &s.Log.Level }},
	{"log.format", func(s *Settings) *string { return &s.Log.Format }},
}

// EnvName returns the environment variable for a dotted key, e.g.
// "calendar.locale" becomes CHRONO_CALENDAR_LOCALE
func EnvName(prefix, key string) string {
	if prefix == "" {
		prefix = DefaultEnvPrefix
	}
	name := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	return strings.ToUpper(prefix) + "_" + name
}

// EnvNames returns every supported override variable, in settings order
func EnvNames(prefix string) []string {
	names := make([]string, len(envBindings))
	for i, b := range envBindings {
		names[i] = EnvName(prefix, b.key)
	}
	return names
}

// ApplyEnv overrides settings from non-empty environment variables. An empty
// prefix means CHRONO and a nil getenv means os.Getenv.
func (s *Settings) ApplyEnv(prefix string, getenv func(string) string) {
	if getenv == nil {
		getenv = os.Getenv
	}
	for _, b := range envBindings {
		if value := strings.TrimSpace(getenv(EnvName(prefix, b.key))); value != "" {
			*b.field(s) = value
		}
	}
}
