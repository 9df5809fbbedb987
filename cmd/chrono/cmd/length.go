package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/chrono/core/log"
)

var lengthCmd = &cobra.Command{
	Use:   "length <month> [year]",
	Short: "Shows the length of a month in days",
	Long: `Shows the length of a month in days. With a year the exact length is
shown, without one the range between common and leap years.

Examples:
  chrono length 2 2024            # February 2024 has 29 days.
  chrono length 2 1900            # February 1900 has 28 days.
  chrono length 2                 # February has between 28 and 29 days.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runLength,
}

func init() {
	rootCmd.AddCommand(lengthCmd)
}

func runLength(cmd *cobra.Command, args []string) error {
	month, err := parseMonth(args[0])
	if err != nil {
		return err
	}

	a := current
	name := a.monthName(month)

	if len(args) == 1 {
		fmt.Fprintln(cmd.OutOrStdout(), a.symbols.T("cli.length.range", map[string]interface{}{
			"Month": name,
			"Min":   month.MinLengthInDays(),
			"Max":   month.MaxLengthInDays(),
		}))
		return nil
	}

	year, err := parseYear(args[1])
	if err != nil {
		return err
	}
	days, err := month.LengthInDays(year)
	if err != nil {
		return err
	}

	a.logger.Debug("month length computed", mdwlog.Fields{
		"month": month.Value(),
		"year":  year.Value(),
		"leap":  year.IsLeap(),
		"days":  days,
	})

	fmt.Fprintln(cmd.OutOrStdout(), a.symbols.T("cli.length.year", map[string]interface{}{
		"Month": name,
		"Year":  year.Value(),
		"Days":  a.days(days),
	}))
	return nil
}
