package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/chrono/calendar"
	"github.com/msto63/chrono/core/config"
	"github.com/msto63/chrono/core/i18n"
	mdwlog "github.com/msto63/chrono/core/log"
)

// app carries what every command needs, built once per invocation
type app struct {
	settings *config.Settings
	symbols  *i18n.Manager
	locale   string
	resolver calendar.DateResolver
	logger   *mdwlog.Logger
}

var current *app

// replaced in tests
var (
	getenv           = os.Getenv
	discoveryOptions = config.DefaultDiscoveryOptions
)

func setupApp(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	if err := settings.Validate().Err(); err != nil {
		return err
	}

	level, _ := settings.LogLevel()
	if verbose {
		level = mdwlog.LevelDebug
	}
	format, _ := settings.LogFormat()
	logger := mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		Name:   "chrono",
	})
	mdwlog.SetDefault(logger)

	source := settings.Source()
	if source == "" {
		source = "defaults"
	}
	logger.Debug("configuration loaded", mdwlog.String("source", source))

	symbols, err := i18n.New(i18n.Options{
		DefaultLocale: "en",
		LocalesDir:    settings.I18n.LocalesDir,
		Format:        i18n.FormatAuto,
	})
	if err != nil {
		return err
	}

	resolver, _ := settings.DateResolver()

	current = &app{
		settings: settings,
		symbols:  symbols,
		resolver: resolver,
		logger:   logger,
	}
	current.locale = current.selectLocale()
	return nil
}

func loadSettings() (*config.Settings, error) {
	if cfgFile != "" {
		return config.LoadWithOptions(cfgFile, config.LoadOptions{
			Format: config.FormatAuto,
			Getenv: getenv,
		})
	}
	options := discoveryOptions()
	options.Getenv = getenv
	return config.Discover(options)
}

// selectLocale applies the precedence flag, settings, environment, default
// and switches the message catalog to the result
func (a *app) selectLocale() string {
	requested, origin := localeFlag, "flag"
	if requested == "" {
		requested, origin = a.settings.Calendar.Locale, "config"
	}
	if requested == "" {
		requested, origin = i18n.LocaleFromEnv(getenv), "environment"
	}

	locale := a.symbols.GetDefaultLocale()
	if requested != "" {
		if matched := a.symbols.Match(requested); matched != "" {
			locale = matched
		} else {
			a.logger.Warn("locale not available, using default", mdwlog.Fields{
				"requested": requested,
				"origin":    origin,
				"available": a.symbols.GetAvailableLocales(),
			})
		}
	}

	_ = a.symbols.SetLocale(locale)
	a.logger.Debug("locale selected", mdwlog.String("locale", locale), mdwlog.String("origin", origin))
	return locale
}

// days renders a localized day count, e.g. "29 days"
func (a *app) days(count int) string {
	return a.symbols.Plural("cli.days", count, nil)
}

// monthName renders the full localized month name
func (a *app) monthName(m calendar.MonthOfYear) string {
	return m.FullText(a.symbols, a.locale)
}
