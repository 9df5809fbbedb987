package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/chrono/calendar"
	mdwlog "github.com/msto63/chrono/core/log"
)

var resolverFlag string

var adjustCmd = &cobra.Command{
	Use:   "adjust <yyyy-mm-dd> <month>",
	Short: "Moves a date into another month",
	Long: `Moves a date into another month, keeping year and day. A day that does
not exist in the target month is handled by the resolver:

  strict     fail
  previous   last day of the target month (default)
  next       first day of the following month
  lenient    days past the month end carry into the following month

The resolver defaults to calendar.resolver from the configuration.

Examples:
  chrono adjust 2007-12-31 11                   # 2007-11-30
  chrono adjust 2007-12-31 11 --resolver next   # 2007-12-01
  chrono adjust 2024-01-31 2 --resolver lenient # 2024-03-02`,
	Args: cobra.ExactArgs(2),
	RunE: runAdjust,
}

var matchesCmd = &cobra.Command{
	Use:   "matches <yyyy-mm-dd> <month>",
	Short: "Reports whether a date falls in a month",
	Long: `Prints true when the date falls in the month and false otherwise. The
exit status is 0 either way.

Examples:
  chrono matches 2007-12-03 12    # true`,
	Args: cobra.ExactArgs(2),
	RunE: runMatches,
}

func init() {
	adjustCmd.Flags().StringVarP(&resolverFlag, "resolver", "r", "",
		"day-of-month resolver: "+strings.Join(calendar.ResolverNames(), ", "))

	rootCmd.AddCommand(adjustCmd)
	rootCmd.AddCommand(matchesCmd)
}

func runAdjust(cmd *cobra.Command, args []string) error {
	date, month, err := dateAndMonth(args)
	if err != nil {
		return err
	}

	resolver := current.resolver
	if resolverFlag != "" {
		if resolver, err = calendar.ResolverByName(resolverFlag); err != nil {
			return err
		}
	}

	adjusted, err := month.AdjustDateWith(date, resolver)
	if err != nil {
		return err
	}

	current.logger.Debug("date adjusted", mdwlog.Fields{
		"date":     date.String(),
		"month":    month.Value(),
		"resolver": fmt.Sprint(resolver),
		"result":   adjusted.String(),
	})

	fmt.Fprintln(cmd.OutOrStdout(), adjusted)
	return nil
}

func runMatches(cmd *cobra.Command, args []string) error {
	date, month, err := dateAndMonth(args)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), month.MatchesDate(date))
	return nil
}

func dateAndMonth(args []string) (calendar.LocalDate, calendar.MonthOfYear, error) {
	date, err := calendar.ParseLocalDate(strings.TrimSpace(args[0]))
	if err != nil {
		return calendar.LocalDate{}, 0, err
	}
	month, err := parseMonth(args[1])
	if err != nil {
		return calendar.LocalDate{}, 0, err
	}
	return date, month, nil
}
