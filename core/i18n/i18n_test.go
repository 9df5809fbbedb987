// File: i18n_test.go
// Title: Internationalization Module Tests
// Description: Tests for loading TOML/YAML locale files, message templates,
//              pluralization, locale matching and calendar field symbols.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation
// - 2026-10-15 v0.2.0: Field symbol and embedded locale tests

package i18n

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/msto63/chrono/calendar"
	mdwerror "github.com/msto63/chrono/core/error"
)

var _ calendar.TextSymbols = (*Manager)(nil)

func writeLocale(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
}

func TestNew(t *testing.T) {
	tempDir := t.TempDir()
	writeLocale(t, tempDir, "en.toml", `
[messages]
welcome = "Welcome"
`)

	t.Run("create with valid options", func(t *testing.T) {
		manager, err := New(Options{
			DefaultLocale: "en",
			LocalesDir:    tempDir,
			Format:        FormatTOML,
		})
		if err != nil {
			t.Fatalf("Failed to create i18n manager: %v", err)
		}
		if manager.GetDefaultLocale() != "en" {
			t.Errorf("Expected default locale 'en', got '%s'", manager.GetDefaultLocale())
		}
		if manager.GetCurrentLocale() != "en" {
			t.Errorf("Expected current locale 'en', got '%s'", manager.GetCurrentLocale())
		}
	})

	t.Run("empty default locale", func(t *testing.T) {
		_, err := New(Options{DefaultLocale: " ", LocalesDir: tempDir})
		if !mdwerror.HasCode(err, mdwerror.CodeValidationFailed) {
			t.Errorf("Expected VALIDATION_FAILED, got %v", err)
		}
	})

	t.Run("nonexistent locales directory", func(t *testing.T) {
		_, err := New(Options{DefaultLocale: "en", LocalesDir: "/nonexistent/directory"})
		if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
			t.Errorf("Expected NOT_FOUND, got %v", err)
		}
	})

	t.Run("default locale missing", func(t *testing.T) {
		_, err := New(Options{DefaultLocale: "de", LocalesDir: tempDir})
		if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
			t.Errorf("Expected NOT_FOUND, got %v", err)
		}
	})

	t.Run("malformed file is reported", func(t *testing.T) {
		fsys := fstest.MapFS{
			"en.toml": {Data: []byte("[messages\nbroken")},
		}
		_, err := New(Options{DefaultLocale: "en", FS: fsys})
		if !mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
			t.Errorf("Expected INVALID_FORMAT, got %v", err)
		}
	})
}

func TestFormatFiltering(t *testing.T) {
	fsys := fstest.MapFS{
		"en.toml":   {Data: []byte(`greeting = "Hello"`)},
		"de.yaml":   {Data: []byte(`greeting: Hallo`)},
		"fr.yml":    {Data: []byte(`greeting: Bonjour`)},
		"notes.txt": {Data: []byte(`ignored`)},
	}

	tests := []struct {
		format Format
		want   []string
	}{
		{FormatAuto, []string{"de", "en", "fr"}},
		{FormatTOML, []string{"en"}},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			manager, err := New(Options{DefaultLocale: "en", FS: fsys, Format: tt.format})
			if err != nil {
				t.Fatalf("New() error: %v", err)
			}
			if got := manager.GetAvailableLocales(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("GetAvailableLocales() = %v, want %v", got, tt.want)
			}
		})
	}

	_, err := New(Options{DefaultLocale: "en", FS: fsys, Format: FormatYAML})
	if err == nil {
		t.Error("YAML-only manager should not find the TOML default locale")
	}
}

func TestTranslation(t *testing.T) {
	fsys := fstest.MapFS{
		"en.toml": {Data: []byte(`
[messages]
welcome = "Welcome, {{.Name}}!"
simple = "Hello"
only_english = "English only"

[nested.deep]
value = "Deep value"

[plurals]
item_count = ["{{.Count}} item", "{{.Count}} items"]
`)},
		"de.yaml": {Data: []byte(`
messages:
  welcome: "Willkommen, {{.Name}}!"
  simple: Hallo
nested:
  deep:
    value: Tiefer Wert
plurals:
  item_count:
    - "{{.Count}} Element"
    - "{{.Count}} Elemente"
`)},
	}

	manager, err := New(Options{DefaultLocale: "en", FS: fsys, Format: FormatAuto})
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	t.Run("simple and nested keys", func(t *testing.T) {
		if got := manager.T("messages.simple"); got != "Hello" {
			t.Errorf("T(messages.simple) = %q", got)
		}
		if got := manager.T("nested.deep.value"); got != "Deep value" {
			t.Errorf("T(nested.deep.value) = %q", got)
		}
	})

	t.Run("template data", func(t *testing.T) {
		got := manager.T("messages.welcome", map[string]interface{}{"Name": "Ada"})
		if got != "Welcome, Ada!" {
			t.Errorf("T(messages.welcome) = %q", got)
		}
	})

	t.Run("missing key", func(t *testing.T) {
		if got := manager.T("messages.nope"); got != "[messages.nope]" {
			t.Errorf("T(missing) = %q", got)
		}
		if _, err := manager.TryT("messages.nope"); !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
			t.Errorf("TryT(missing) error = %v", err)
		}
		if got := manager.TWithFallback("messages.nope", "Hi {{.Name}}", map[string]interface{}{"Name": "Bo"}); got != "Hi Bo" {
			t.Errorf("TWithFallback() = %q", got)
		}
		if manager.HasTranslation("messages") {
			t.Error("a table is not a translation")
		}
	})

	t.Run("switch locale", func(t *testing.T) {
		if err := manager.SetLocale("de-AT"); err != nil {
			t.Fatalf("SetLocale(de-AT) error: %v", err)
		}
		defer func() { _ = manager.SetLocale("en") }()

		got := manager.T("messages.welcome", map[string]interface{}{"Name": "Ada"})
		if got != "Willkommen, Ada!" {
			t.Errorf("T(messages.welcome) in de = %q", got)
		}
		if got := manager.T("messages.only_english"); got != "English only" {
			t.Errorf("fallback to default locale = %q", got)
		}
		if got := manager.Plural("plurals.item_count", 3, nil); got != "3 Elemente" {
			t.Errorf("Plural(3) in de = %q", got)
		}
	})

	t.Run("unknown locale", func(t *testing.T) {
		err := manager.SetLocale("ja")
		if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
			t.Errorf("SetLocale(ja) error = %v", err)
		}
		if manager.GetCurrentLocale() != "en" {
			t.Errorf("current locale changed to %q", manager.GetCurrentLocale())
		}
	})

	t.Run("plural forms", func(t *testing.T) {
		tests := []struct {
			count int
			want  string
		}{
			{0, "0 items"},
			{1, "1 item"},
			{2, "2 items"},
		}
		for _, tt := range tests {
			if got := manager.Plural("plurals.item_count", tt.count, nil); got != tt.want {
				t.Errorf("Plural(%d) = %q, want %q", tt.count, got, tt.want)
			}
		}
		if got := manager.Plural("plurals.none", 1, nil); got != "[plurals.none]" {
			t.Errorf("Plural(missing) = %q", got)
		}
	})

	t.Run("no fallback", func(t *testing.T) {
		strict, err := New(Options{DefaultLocale: "en", FS: fsys, Format: FormatAuto, NoFallback: true})
		if err != nil {
			t.Fatal(err)
		}
		if err := strict.SetLocale("de"); err != nil {
			t.Fatal(err)
		}
		if _, err := strict.TryT("messages.only_english"); err == nil {
			t.Error("expected no fallback to en")
		}
	})
}

func TestPluralFormIndex(t *testing.T) {
	tests := []struct {
		locale string
		count  int
		want   int
	}{
		{"en", 1, 0},
		{"en", 0, 1},
		{"de-DE", 1, 0},
		{"de-DE", 2, 1},
		{"fr", 0, 0},
		{"fr", 1, 0},
		{"fr", 2, 1},
	}

	for _, tt := range tests {
		if got := pluralFormIndex(tt.count, tt.locale); got != tt.want {
			t.Errorf("pluralFormIndex(%d, %s) = %d, want %d", tt.count, tt.locale, got, tt.want)
		}
	}
}

func TestEmbeddedLocales(t *testing.T) {
	manager, err := NewDefault()
	if err != nil {
		t.Fatalf("NewDefault() error: %v", err)
	}

	want := []string{"de", "en", "fr"}
	if got := manager.GetAvailableLocales(); !reflect.DeepEqual(got, want) {
		t.Fatalf("GetAvailableLocales() = %v, want %v", got, want)
	}

	// every locale carries the same keys
	reference := manager.GetTranslationKeys("en")
	for _, locale := range want {
		if got := manager.GetTranslationKeys(locale); !reflect.DeepEqual(got, reference) {
			t.Errorf("%s keys differ from en: %v", locale, got)
		}
	}

	for _, locale := range want {
		for _, m := range calendar.MonthsOfYear() {
			for _, style := range []calendar.TextStyle{calendar.TextStyleShort, calendar.TextStyleFull} {
				if _, ok := manager.FieldValueText(locale, calendar.FieldMonthOfYear, string(style), m.Value()); !ok {
					t.Errorf("%s has no %s text for %v", locale, style, m)
				}
			}
		}
	}
}

func TestFieldValueText(t *testing.T) {
	manager, err := NewDefault()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		month  calendar.MonthOfYear
		locale string
		style  calendar.TextStyle
		want   string
	}{
		{"english short", calendar.January, "en", calendar.TextStyleShort, "Jan"},
		{"english full", calendar.January, "en", calendar.TextStyleFull, "January"},
		{"regional english", calendar.September, "en-GB", calendar.TextStyleFull, "September"},
		{"posix german", calendar.March, "de_DE.UTF-8", calendar.TextStyleFull, "März"},
		{"german short", calendar.December, "de", calendar.TextStyleShort, "Dez."},
		{"french from yaml", calendar.August, "fr", calendar.TextStyleFull, "août"},
		{"unknown locale renders number", calendar.May, "ja", calendar.TextStyleFull, "5"},
		{"unknown style renders number", calendar.May, "en", calendar.TextStyle("narrow"), "5"},
		{"empty locale renders number", calendar.May, "", calendar.TextStyleFull, "5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.month.Text(manager, tt.locale, tt.style); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}

	if got, ok := manager.FieldValueText("de", calendar.FieldQuarterOfYear, "full", 2); !ok || got != "2. Quartal" {
		t.Errorf("quarter text = %q, %v", got, ok)
	}
	if got, ok := manager.FieldValueText("fr", calendar.FieldDayOfWeek, "short", 7); !ok || got != "di" {
		t.Errorf("day-of-week text = %q, %v", got, ok)
	}
}

func TestFieldValueTextFromDirectory(t *testing.T) {
	tempDir := t.TempDir()
	writeLocale(t, tempDir, "en.toml", `
[fields.MonthOfYear.full]
1 = "Janvember"
`)
	writeLocale(t, tempDir, "nl.yaml", `
fields:
  MonthOfYear:
    full:
      1: januari
`)

	manager, err := New(Options{DefaultLocale: "en", LocalesDir: tempDir, Format: FormatAuto})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if got := calendar.January.FullText(manager, "en"); got != "Janvember" {
		t.Errorf("FullText(en) = %q", got)
	}
	if got := calendar.January.FullText(manager, "nl"); got != "januari" {
		t.Errorf("FullText(nl) with unquoted YAML key = %q", got)
	}
	if got := calendar.February.FullText(manager, "nl"); got != "2" {
		t.Errorf("missing entry should not fall back to en: %q", got)
	}
}

func TestManagerString(t *testing.T) {
	manager, err := NewDefault()
	if err != nil {
		t.Fatal(err)
	}
	s := manager.String()
	for _, part := range []string{"defaultLocale: en", "source: embedded", "locales: 3"} {
		if !strings.Contains(s, part) {
			t.Errorf("String() = %q, missing %q", s, part)
		}
	}
}
