// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Implements configuration file discovery across the working
//              directory, ./configs and the user configuration directory.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2026-10-15 v0.2.0: chrono search paths, defaults when nothing is found

package config

import (
	"os"
	"path/filepath"
	"strings"

	mdwerror "github.com/msto63/chrono/core/error"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string            // Directories to search for config files
	Filenames  []string            // Base filenames to look for (without extension)
	Extensions []string            // File extensions to try (.toml, .yaml, .yml)
	EnvPrefix  string              // Environment variable prefix for overrides
	Getenv     func(string) string // Environment lookup (default: os.Getenv)
	Required   bool                // Whether finding a config file is required
}

// DefaultDiscoveryOptions searches ".", "./configs" and
// $HOME/.config/chrono for chrono.toml, chrono.yaml or chrono.yml
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{".", "./configs"}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".config", "chrono"))
	}
	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"chrono"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  DefaultEnvPrefix,
		Required:   false,
	}
}

// Discover loads the first configuration file found. When none exists and
// the file is not required, defaults with environment overrides are
// returned.
func Discover(options DiscoveryOptions) (*Settings, error) {
	configPath, err := FindConfigFile(options)
	if err == nil {
		settings, loadErr := LoadWithOptions(configPath, LoadOptions{
			Format:    FormatAuto,
			EnvPrefix: options.EnvPrefix,
			Getenv:    options.Getenv,
		})
		if loadErr != nil {
			return nil, mdwerror.Wrap(loadErr, "found config file "+configPath+" but failed to load").
				WithOperation("config.Discover").
				WithDetail("configPath", configPath)
		}
		return settings, nil
	}

	if options.Required {
		return nil, err
	}

	settings := Default()
	settings.ApplyEnv(options.EnvPrefix, options.Getenv)
	return settings, nil
}

// FindConfigFile searches for a configuration file without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	if len(options.Paths) == 0 {
		options.Paths = []string{"."}
	}
	if len(options.Filenames) == 0 {
		options.Filenames = []string{"chrono"}
	}
	if len(options.Extensions) == 0 {
		options.Extensions = []string{".toml", ".yaml", ".yml"}
	}

	searchPaths := make([]string, 0, len(options.Paths)*len(options.Filenames)*len(options.Extensions))
	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				configPath := filepath.Join(path, filename+ext)
				if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
					return configPath, nil
				}
				searchPaths = append(searchPaths, configPath)
			}
		}
	}

	return "", mdwerror.Newf("no configuration file found in paths: %s", strings.Join(searchPaths, ", ")).
		WithCode(mdwerror.CodeMissingConfig).
		WithOperation("config.FindConfigFile").
		WithDetail("searchPaths", searchPaths)
}
