package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/chrono/core/error"
)

var (
	cfgFile    string
	localeFlag string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "chrono",
	Short: "Months of the ISO calendar",
	Long: `chrono answers questions about the twelve months of the ISO calendar:
lengths in common and leap years, quarters, month arithmetic that wraps
around the year, and moving dates between months.

Months are given as numbers, January is 1.

Examples:
  chrono month 2                      # everything about February
  chrono length 2 2024                # days in February 2024
  chrono plus 11 3                    # three months after November
  chrono minus -- 1 -2                # negative amounts follow "--"
  chrono adjust 2007-12-31 11         # December 31 moved to November
  chrono cal 2024 2 --locale de       # month grid in German`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setupApp,
}

// Execute runs the command line and reports a failure on stderr
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

// ExitCode maps an error to the process exit status: 2 for invalid input
// and calendar errors, 3 for configuration errors, 1 otherwise
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return mdwerror.GetCode(err).ExitCode()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: chrono.toml in ., ./configs or ~/.config/chrono)")
	rootCmd.PersistentFlags().StringVarP(&localeFlag, "locale", "l", "", "locale for month names, e.g. de or fr-CA")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func printError(err error) {
	if current != nil && verbose {
		current.logger.LogError(err)
		return
	}
	fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
}
