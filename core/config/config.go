// File: config.go
// Title: Core Configuration Management Implementation
// Description: Implements the Settings type and loading of chrono settings
//              from TOML and YAML files with environment variable overrides.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-15 v0.2.0: Typed settings decoding, unknown keys are rejected

package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/chrono/core/error"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// ParseFormat parses "toml", "yaml" or "yml"
func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatTOML, mdwerror.Newf("unsupported config format %q", format).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("config.ParseFormat").
			WithDetail("allowed", []string{"toml", "yaml"})
	}
}

// DefaultEnvPrefix is the prefix of environment variable overrides
const DefaultEnvPrefix = "CHRONO"

// Settings holds the application settings
type Settings struct {
	Calendar CalendarSettings `toml:"calendar" yaml:"calendar"`
	I18n     I18nSettings     `toml:"i18n" yaml:"i18n"`
	Log      LogSettings      `toml:"log" yaml:"log"`

	// path of the file the settings were loaded from, empty for defaults
	source string
}

// CalendarSettings configures month rendering and date resolution
type CalendarSettings struct {
	Locale   string `toml:"locale" yaml:"locale"`
	Resolver string `toml:"resolver" yaml:"resolver"`
}

// I18nSettings configures where locale files come from
type I18nSettings struct {
	// LocalesDir replaces the embedded locales when set
	LocalesDir string `toml:"locales_dir" yaml:"locales_dir"`
}

// LogSettings configures the logger
type LogSettings struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// Default returns the settings used when no file is found. An empty locale
// means the locale is taken from the environment.
func Default() *Settings {
	return &Settings{
		Calendar: CalendarSettings{Resolver: "previous"},
		Log:      LogSettings{Level: "warn", Format: "text"},
	}
}

// Source returns the file the settings were loaded from
func (s *Settings) Source() string {
	return s.source
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format              // File format (default: auto-detect)
	EnvPrefix string              // Environment variable prefix (default: CHRONO)
	Getenv    func(string) string // Environment lookup (default: os.Getenv)
	NoEnv     bool                // Skip environment overrides
}

// Load loads settings from a file with default options
func Load(filePath string) (*Settings, error) {
	return LoadWithOptions(filePath, LoadOptions{Format: FormatAuto})
}

// LoadWithOptions loads settings from a file. Values missing from the file
// keep their defaults; environment overrides are applied last.
func LoadWithOptions(filePath string, options LoadOptions) (*Settings, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, mdwerror.New("config file path cannot be empty").
			WithCode(mdwerror.CodeValidationFailed).
			WithOperation("config.LoadWithOptions")
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, mdwerror.Newf("config file not found: %s", filePath).
				WithCode(mdwerror.CodeMissingConfig).
				WithOperation("config.LoadWithOptions").
				WithDetail("filePath", filePath)
		}
		return nil, mdwerror.Wrap(err, "failed to read config file").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	settings, err := decode(content, format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config file").
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
	}
	settings.source = filePath

	if !options.NoEnv {
		settings.ApplyEnv(options.EnvPrefix, options.Getenv)
	}
	return settings, nil
}

// LoadFromString loads settings from a string with specified format.
// Environment overrides are not applied.
func LoadFromString(content string, format Format) (*Settings, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	settings, err := decode([]byte(content), format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config from string").
			WithOperation("config.LoadFromString").
			WithDetail("format", format.String())
	}
	return settings, nil
}

// detectFormat determines the configuration format from file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// decode parses content over the defaults and rejects unknown keys
func decode(content []byte, format Format) (*Settings, error) {
	settings := Default()

	switch format {
	case FormatTOML:
		meta, err := toml.Decode(string(content), settings)
		if err != nil {
			return nil, mdwerror.Wrap(err, "TOML parse error").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.decode")
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, key := range undecoded {
				keys[i] = key.String()
			}
			sort.Strings(keys)
			return nil, mdwerror.Newf("unknown config keys: %s", strings.Join(keys, ", ")).
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.decode").
				WithDetail("keys", keys)
		}
	case FormatYAML:
		decoder := yaml.NewDecoder(bytes.NewReader(content))
		decoder.KnownFields(true)
		if err := decoder.Decode(settings); err != nil && !errors.Is(err, io.EOF) {
			return nil, mdwerror.Wrap(err, "YAML parse error").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.decode")
		}
	default:
		return nil, mdwerror.Newf("unsupported format: %s", format).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("config.decode").
			WithDetail("format", format.String())
	}

	return settings, nil
}

// Encode writes the settings in the given format
func (s *Settings) Encode(w io.Writer, format Format) error {
	var err error
	switch format {
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err = encoder.Encode(s); err == nil {
			err = encoder.Close()
		}
	default:
		err = toml.NewEncoder(w).Encode(s)
	}
	if err != nil {
		return mdwerror.Wrap(err, "failed to encode settings").
			WithCode(mdwerror.CodeInternal).
			WithOperation("config.Settings.Encode").
			WithDetail("format", format.String())
	}
	return nil
}
