// File: validation.go
// Title: Configuration Validation Implementation
// Description: Validates settings values and converts them to the calendar
//              and logging types they configure.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of validation
// - 2026-10-15 v0.2.0: Typed settings validation

package config

import (
	"strings"

	"github.com/msto63/chrono/calendar"
	mdwerror "github.com/msto63/chrono/core/error"
	mdwlog "github.com/msto63/chrono/core/log"
)

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Validate checks every setting and reports all problems at once
func (s *Settings) Validate() *ValidationResult {
	result := &ValidationResult{
		Valid:  true,
		Errors: make([]string, 0),
	}

	checks := []func() error{
		func() error { _, err := s.DateResolver(); return err },
		func() error { _, err := s.LogLevel(); return err },
		func() error { _, err := s.LogFormat(); return err },
		func() error {
			if strings.ContainsAny(s.Calendar.Locale, " /\\") {
				return mdwerror.Newf("invalid locale %q", s.Calendar.Locale)
			}
			return nil
		},
	}

	for _, check := range checks {
		if err := check(); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
		}
	}

	return result
}

// Err returns the validation problems as one INVALID_CONFIG error, or nil
func (r *ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return mdwerror.Newf("invalid configuration: %s", strings.Join(r.Errors, "; ")).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("errors", r.Errors)
}

// DateResolver returns the configured resolution strategy
func (s *Settings) DateResolver() (calendar.DateResolver, error) {
	name := s.Calendar.Resolver
	if strings.TrimSpace(name) == "" {
		return calendar.DefaultResolver(), nil
	}
	resolver, err := calendar.ResolverByName(name)
	if err != nil {
		return nil, invalidSetting(err, "calendar.resolver", name)
	}
	return resolver, nil
}

// LogLevel returns the configured log level
func (s *Settings) LogLevel() (mdwlog.Level, error) {
	level, err := mdwlog.ParseLevel(s.Log.Level)
	if err != nil {
		return level, invalidSetting(err, "log.level", s.Log.Level)
	}
	return level, nil
}

// LogFormat returns the configured log format
func (s *Settings) LogFormat() (mdwlog.Format, error) {
	format, err := mdwlog.ParseFormat(s.Log.Format)
	if err != nil {
		return format, invalidSetting(err, "log.format", s.Log.Format)
	}
	return format, nil
}

func invalidSetting(err error, key, value string) error {
	return mdwerror.Wrap(err, "invalid setting "+key).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Settings").
		WithDetail("key", key).
		WithDetail("value", value)
}
