// File: i18n.go
// Title: Core Internationalization Implementation
// Description: Implements the i18n Manager which loads locale symbol files in
//              TOML and YAML from a directory, any fs.FS or the embedded
//              defaults, and serves translations with template interpolation
//              and pluralization.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-07-26 v0.1.1: Fixed template cache collision issue in pluralization,
//                       improved cache key uniqueness for plural forms
// - 2026-10-15 v0.2.0: Load from fs.FS with embedded defaults, calendar field
//                       symbols, parse errors are reported instead of skipped

package i18n

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"
	"text/template"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/chrono/core/error"
)

// Format represents the language file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto accepts both formats, detected from the file extension
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

// extensions returns the file extensions accepted for the format
func (f Format) extensions() []string {
	switch f {
	case FormatTOML:
		return []string{".toml"}
	case FormatYAML:
		return []string{".yaml", ".yml"}
	default:
		return []string{".toml", ".yaml", ".yml"}
	}
}

// Options defines configuration options for the i18n manager
type Options struct {
	DefaultLocale string // Default locale (e.g., "en")
	LocalesDir    string // Directory containing language files
	FS            fs.FS  // Takes precedence over LocalesDir
	Format        Format // File format (default: auto-detect)
	NoFallback    bool   // Disable message fallback to the default locale
}

// Manager manages locale symbols and messages for an application
type Manager struct {
	mu            sync.RWMutex
	defaultLocale string
	currentLocale string
	source        string
	format        Format
	fallback      bool
	translations  map[string]TranslationData // locale -> translations

	templatesMu sync.Mutex
	templates   map[string]*template.Template // key -> compiled template
}

// TranslationData represents the structure of a translation file
type TranslationData map[string]interface{}

// New creates a new i18n manager with the specified options. When neither
// FS nor LocalesDir is set, the embedded default locales are used.
func New(options Options) (*Manager, error) {
	if strings.TrimSpace(options.DefaultLocale) == "" {
		return nil, mdwerror.New("default locale cannot be empty").
			WithCode(mdwerror.CodeValidationFailed).
			WithOperation("i18n.New")
	}

	fsys := options.FS
	source := "fs"
	switch {
	case fsys != nil:
	case options.LocalesDir != "":
		info, err := os.Stat(options.LocalesDir)
		if err != nil || !info.IsDir() {
			return nil, mdwerror.New("locales directory not found").
				WithCode(mdwerror.CodeNotFound).
				WithOperation("i18n.New").
				WithDetail("directory", options.LocalesDir)
		}
		fsys = os.DirFS(options.LocalesDir)
		source = options.LocalesDir
	default:
		fsys = Embedded()
		source = "embedded"
	}

	manager := &Manager{
		defaultLocale: options.DefaultLocale,
		currentLocale: options.DefaultLocale,
		source:        source,
		format:        options.Format,
		fallback:      !options.NoFallback,
		translations:  make(map[string]TranslationData),
		templates:     make(map[string]*template.Template),
	}

	if err := manager.loadAllLocales(fsys); err != nil {
		return nil, err
	}

	return manager, nil
}

// NewDefault creates a manager over the embedded locales with English as
// the default locale
func NewDefault() (*Manager, error) {
	return New(Options{DefaultLocale: "en", Format: FormatAuto})
}

// loadAllLocales loads every supported locale file at the root of fsys
func (m *Manager) loadAllLocales(fsys fs.FS) error {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return mdwerror.Wrap(err, "failed to read locales directory").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("i18n.loadAllLocales").
			WithDetail("source", m.source)
	}

	supported := m.format.extensions()
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		fileName := entry.Name()
		ext := strings.ToLower(path.Ext(fileName))
		if !contains(supported, ext) {
			continue
		}

		// "en.toml" -> "en"
		locale := NormalizeLocale(strings.TrimSuffix(fileName, path.Ext(fileName)))
		if locale == "" {
			continue
		}

		if err := m.loadLocale(fsys, fileName, locale, ext); err != nil {
			return err
		}
	}

	if _, exists := m.translations[m.defaultLocale]; !exists {
		return mdwerror.Newf("default locale '%s' not found", m.defaultLocale).
			WithCode(mdwerror.CodeNotFound).
			WithOperation("i18n.loadAllLocales").
			WithDetail("source", m.source).
			WithDetail("available", m.availableLocales())
	}

	return nil
}

// loadLocale parses one locale file and merges it into the locale's data
func (m *Manager) loadLocale(fsys fs.FS, fileName, locale, ext string) error {
	content, err := fs.ReadFile(fsys, fileName)
	if err != nil {
		return mdwerror.Wrap(err, "failed to read locale file").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("i18n.loadLocale").
			WithDetail("file", fileName)
	}

	var data TranslationData
	switch ext {
	case ".toml":
		err = toml.Unmarshal(content, &data)
	default:
		err = yaml.Unmarshal(content, &data)
	}
	if err != nil {
		return mdwerror.Wrap(err, "failed to parse locale file").
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation("i18n.loadLocale").
			WithDetail("file", fileName).
			WithDetail("locale", locale)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.translations[locale]; ok {
		mergeData(existing, data)
		return nil
	}
	if data == nil {
		data = TranslationData{}
	}
	m.translations[locale] = data
	return nil
}

// mergeData copies src into dst, recursing into nested tables
func mergeData(dst, src map[string]interface{}) {
	for key, value := range src {
		srcMap, srcIsMap := asMap(value)
		dstMap, dstIsMap := asMap(dst[key])
		if srcIsMap && dstIsMap {
			mergeData(dstMap, srcMap)
			continue
		}
		dst[key] = value
	}
}

// T translates a key with optional template data. A missing key renders
// as "[key]".
func (m *Manager) T(key string, data ...map[string]interface{}) string {
	translation, err := m.TryT(key, data...)
	if err != nil && translation == "" {
		return fmt.Sprintf("[%s]", key)
	}
	return translation
}

// TryT translates a key and returns an error if translation fails
func (m *Manager) TryT(key string, data ...map[string]interface{}) (string, error) {
	m.mu.RLock()
	translation := m.getTranslation(key, m.currentLocale)
	m.mu.RUnlock()

	if translation == "" {
		return "", mdwerror.New("translation not found").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("i18n.TryT").
			WithDetail("key", key)
	}

	if len(data) > 0 && data[0] != nil {
		rendered, err := m.renderTemplate(key, translation, data[0])
		if err != nil {
			return translation, mdwerror.Wrap(err, "template rendering failed").
				WithCode(mdwerror.CodeInvalidFormat).
				WithOperation("i18n.renderTemplate").
				WithDetail("key", key)
		}
		return rendered, nil
	}

	return translation, nil
}

// TWithFallback translates a key with fallback to default message
func (m *Manager) TWithFallback(key string, fallbackMsg string, data ...map[string]interface{}) string {
	if translation, err := m.TryT(key, data...); err == nil {
		return translation
	}

	if len(data) > 0 && data[0] != nil {
		if rendered, err := m.renderTemplate(key+"_fallback", fallbackMsg, data[0]); err == nil {
			return rendered
		}
	}

	return fallbackMsg
}

// Plural returns the appropriate plural form based on count. The template
// data receives Count in addition to the given values.
func (m *Manager) Plural(key string, count int, data map[string]interface{}) string {
	m.mu.RLock()
	locale := m.currentLocale
	rawValue := m.getRawTranslation(key, locale)
	m.mu.RUnlock()

	if rawValue == nil {
		return fmt.Sprintf("[%s]", key)
	}

	forms := parsePluralForms(rawValue)
	if len(forms) == 0 {
		return fmt.Sprintf("[%s]", key)
	}

	formIndex := pluralFormIndex(count, locale)
	if formIndex >= len(forms) {
		formIndex = len(forms) - 1
	}

	values := make(map[string]interface{}, len(data)+1)
	for k, v := range data {
		values[k] = v
	}
	values["Count"] = count

	if rendered, err := m.renderTemplate(fmt.Sprintf("%s_plural_%d", key, formIndex), forms[formIndex], values); err == nil {
		return rendered
	}
	return forms[formIndex]
}

// getTranslation retrieves a translation for a specific locale with fallback.
// Callers hold m.mu.
func (m *Manager) getTranslation(key, locale string) string {
	value := m.getRawTranslation(key, locale)
	if value == nil {
		return ""
	}
	if arr, isSlice := value.([]interface{}); isSlice {
		// Return first element for non-plural calls
		if len(arr) > 0 {
			return fmt.Sprintf("%v", arr[0])
		}
		return ""
	}
	if _, isMap := asMap(value); isMap {
		return ""
	}
	return fmt.Sprintf("%v", value)
}

// getRawTranslation looks the key up in the locale, its base language and,
// when fallback is enabled, the default locale. Callers hold m.mu.
func (m *Manager) getRawTranslation(key, locale string) interface{} {
	candidates := localeCandidates(locale)
	if m.fallback {
		candidates = append(candidates, m.defaultLocale)
	}
	for _, candidate := range candidates {
		if translations, exists := m.translations[candidate]; exists {
			if value := getNestedRawValue(translations, key); value != nil {
				return value
			}
		}
	}
	return nil
}

// getNestedRawValue retrieves a nested raw value using dot notation
func getNestedRawValue(data map[string]interface{}, key string) interface{} {
	keys := strings.Split(key, ".")
	current := data

	for i, k := range keys {
		value, ok := current[k]
		if !ok {
			return nil
		}
		if i == len(keys)-1 {
			return value
		}
		next, isMap := asMap(value)
		if !isMap {
			return nil
		}
		current = next
	}

	return nil
}

// asMap normalizes the table types produced by the TOML and YAML decoders
func asMap(value interface{}) (map[string]interface{}, bool) {
	switch v := value.(type) {
	case map[string]interface{}:
		return v, true
	case TranslationData:
		return v, true
	case map[interface{}]interface{}:
		converted := make(map[string]interface{}, len(v))
		for key, item := range v {
			converted[fmt.Sprint(key)] = item
		}
		return converted, true
	default:
		return nil, false
	}
}

// renderTemplate renders a translation template with data
func (m *Manager) renderTemplate(key, text string, data map[string]interface{}) (string, error) {
	// the same key renders different text per locale
	cacheKey := key + "\x00" + text

	m.templatesMu.Lock()
	tmpl, exists := m.templates[cacheKey]
	if !exists {
		var err error
		tmpl, err = template.New(key).Option("missingkey=zero").Parse(text)
		if err != nil {
			m.templatesMu.Unlock()
			return text, fmt.Errorf("template compilation failed: %w", err)
		}
		m.templates[cacheKey] = tmpl
	}
	m.templatesMu.Unlock()

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return text, fmt.Errorf("template execution failed: %w", err)
	}
	return result.String(), nil
}

// parsePluralForms parses plural forms from a raw translation value
func parsePluralForms(value interface{}) []string {
	if arr, ok := value.([]interface{}); ok {
		forms := make([]string, len(arr))
		for i, v := range arr {
			forms[i] = fmt.Sprintf("%v", v)
		}
		return forms
	}
	if _, isMap := asMap(value); isMap {
		return nil
	}
	return []string{fmt.Sprintf("%v", value)}
}

// pluralFormIndex returns the plural form index for a count and locale
func pluralFormIndex(count int, locale string) int {
	// Simplified plural rules - can be extended with full CLDR support
	switch BaseLanguage(locale) {
	case "fr":
		if count >= -1 && count <= 1 {
			return 0
		}
		return 1
	default:
		if count == 1 {
			return 0
		}
		return 1
	}
}

// SetLocale changes the current locale. A regional locale whose base
// language is loaded is accepted, e.g. "de-AT" when only "de" exists.
func (m *Manager) SetLocale(locale string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	matched := m.match(locale)
	if matched == "" {
		return mdwerror.New("locale not available").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("i18n.SetLocale").
			WithDetail("locale", locale).
			WithDetail("available", m.availableLocales())
	}

	m.currentLocale = NormalizeLocale(locale)
	return nil
}

// GetCurrentLocale returns the current active locale
func (m *Manager) GetCurrentLocale() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentLocale
}

// GetDefaultLocale returns the default locale
func (m *Manager) GetDefaultLocale() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultLocale
}

// GetAvailableLocales returns a list of all available locales
func (m *Manager) GetAvailableLocales() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.availableLocales()
}

func (m *Manager) availableLocales() []string {
	locales := make([]string, 0, len(m.translations))
	for locale := range m.translations {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// HasLocale checks if a locale is loaded under exactly this name
func (m *Manager) HasLocale(locale string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, exists := m.translations[NormalizeLocale(locale)]
	return exists
}

// HasTranslation checks if a translation key exists in the current locale
func (m *Manager) HasTranslation(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.getTranslation(key, m.currentLocale) != ""
}

// GetTranslationKeys returns all leaf keys of the given locale, sorted
func (m *Manager) GetTranslationKeys(locale string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	translations := m.translations[NormalizeLocale(locale)]
	if translations == nil {
		return nil
	}

	keys := collectKeys(translations, "")
	sort.Strings(keys)
	return keys
}

// collectKeys recursively collects all keys from nested translation data
func collectKeys(data map[string]interface{}, prefix string) []string {
	var keys []string

	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		if nested, ok := asMap(value); ok {
			keys = append(keys, collectKeys(nested, fullKey)...)
		} else {
			keys = append(keys, fullKey)
		}
	}

	return keys
}

// String provides a readable representation of the manager
func (m *Manager) String() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	parts := []string{
		fmt.Sprintf("i18n.Manager{defaultLocale: %s, currentLocale: %s", m.defaultLocale, m.currentLocale),
		fmt.Sprintf("source: %s", m.source),
		fmt.Sprintf("format: %s", m.format.String()),
	}

	if m.fallback {
		parts = append(parts, "fallback: true")
	}

	parts = append(parts, fmt.Sprintf("locales: %d}", len(m.translations)))

	return strings.Join(parts, ", ")
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
