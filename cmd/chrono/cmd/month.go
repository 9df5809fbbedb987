package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msto63/chrono/calendar"
)

var monthCmd = &cobra.Command{
	Use:   "month <month>",
	Short: "Shows everything about a month",
	Long: `Shows the value, the localized names, the quarter and the possible
lengths of a month.

Examples:
  chrono month 2
  chrono month 12 --locale fr`,
	Args: cobra.ExactArgs(1),
	RunE: runMonth,
}

var nextCmd = &cobra.Command{
	Use:   "next <month>",
	Short: "Shows the month after a month",
	Long: `Shows the month after a month. December is followed by January.

Examples:
  chrono next 12`,
	Args: cobra.ExactArgs(1),
	RunE: runNext,
}

var previousCmd = &cobra.Command{
	Use:   "previous <month>",
	Short: "Shows the month before a month",
	Long: `Shows the month before a month. January is preceded by December.

Examples:
  chrono previous 1`,
	Args: cobra.ExactArgs(1),
	RunE: runPrevious,
}

var plusCmd = &cobra.Command{
	Use:   "plus <month> <months>",
	Short: "Adds months, wrapping around the year",
	Long: `Adds a number of months to a month. The result wraps around the end of
the year, so only the amount modulo 12 matters.

Examples:
  chrono plus 11 3                # February
  chrono plus -- 3 -4             # November`,
	Args: cobra.ExactArgs(2),
	RunE: runPlus,
}

var minusCmd = &cobra.Command{
	Use:   "minus <month> <months>",
	Short: "Subtracts months, wrapping around the year",
	Long: `Subtracts a number of months from a month. The result wraps around the
start of the year.

Examples:
  chrono minus 2 3                # November
  chrono minus -- 1 -2            # March`,
	Args: cobra.ExactArgs(2),
	RunE: runMinus,
}

func init() {
	rootCmd.AddCommand(monthCmd)
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(previousCmd)
	rootCmd.AddCommand(plusCmd)
	rootCmd.AddCommand(minusCmd)
}

func runMonth(cmd *cobra.Command, args []string) error {
	month, err := parseMonth(args[0])
	if err != nil {
		return err
	}

	a := current
	quarter := month.QuarterOfYear()
	quarterText := quarter.String()
	if text, ok := a.symbols.FieldValueText(a.locale, calendar.FieldQuarterOfYear, string(calendar.TextStyleFull), quarter.Value()); ok {
		quarterText = fmt.Sprintf("%s (%s)", quarter, text)
	}

	rows := [][2]string{
		{a.symbols.T("cli.month.value"), strconv.Itoa(month.Value())},
		{a.symbols.T("cli.month.name"), month.String()},
		{a.symbols.T("cli.month.short"), month.ShortText(a.symbols, a.locale)},
		{a.symbols.T("cli.month.full"), month.FullText(a.symbols, a.locale)},
		{a.symbols.T("cli.month.quarter"), quarterText},
		{a.symbols.T("cli.month.month_of_quarter"), strconv.Itoa(month.MonthOfQuarter())},
		{a.symbols.T("cli.month.min_length"), a.days(month.MinLengthInDays())},
		{a.symbols.T("cli.month.max_length"), a.days(month.MaxLengthInDays())},
		{a.symbols.T("cli.month.first_day"), fmt.Sprintf("%d / %d", month.FirstDayOfYear(false), month.FirstDayOfYear(true))},
	}

	fmt.Fprintln(cmd.OutOrStdout(), newStyles(cmd.OutOrStdout()).table(rows))
	return nil
}

func runNext(cmd *cobra.Command, args []string) error {
	month, err := parseMonth(args[0])
	if err != nil {
		return err
	}
	printMonth(cmd, month.Next())
	return nil
}

func runPrevious(cmd *cobra.Command, args []string) error {
	month, err := parseMonth(args[0])
	if err != nil {
		return err
	}
	printMonth(cmd, month.Previous())
	return nil
}

func runPlus(cmd *cobra.Command, args []string) error {
	month, amount, err := monthAndAmount(args)
	if err != nil {
		return err
	}
	printMonth(cmd, month.Plus(amount))
	return nil
}

func runMinus(cmd *cobra.Command, args []string) error {
	month, amount, err := monthAndAmount(args)
	if err != nil {
		return err
	}
	printMonth(cmd, month.Minus(amount))
	return nil
}

func monthAndAmount(args []string) (calendar.MonthOfYear, int, error) {
	month, err := parseMonth(args[0])
	if err != nil {
		return 0, 0, err
	}
	amount, err := parseInt("months", args[1])
	if err != nil {
		return 0, 0, err
	}
	return month, amount, nil
}

// printMonth writes "<value> <localized name>", e.g. "2 February"
func printMonth(cmd *cobra.Command, month calendar.MonthOfYear) {
	fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", month.Value(), current.monthName(month))
}
