package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/chrono/core/config"
)

var outputFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Shows the effective configuration",
	Long: `Shows the configuration after discovery and environment overrides,
together with the file it came from and the selected locale.

Environment variables:
  CHRONO_CALENDAR_LOCALE, CHRONO_CALENDAR_RESOLVER,
  CHRONO_I18N_LOCALES_DIR, CHRONO_LOG_LEVEL, CHRONO_LOG_FORMAT

Examples:
  chrono config
  chrono config --output yaml > chrono.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVarP(&outputFormat, "output", "o", "toml", "output format (toml, yaml)")
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	format, err := config.ParseFormat(outputFormat)
	if err != nil {
		return err
	}

	source := current.settings.Source()
	if source == "" {
		source = "defaults"
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# source: %s\n", source)
	fmt.Fprintf(out, "# locale: %s\n", current.locale)
	return current.settings.Encode(out, format)
}
