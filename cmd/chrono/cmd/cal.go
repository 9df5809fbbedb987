package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/msto63/chrono/calendar"
)

var calCmd = &cobra.Command{
	Use:   "cal <year> <month>",
	Short: "Shows a month as a calendar grid",
	Long: `Shows a month as a calendar grid. Weeks start on Monday, day names
follow the selected locale.

Examples:
  chrono cal 2024 2
  chrono cal 2024 2 --locale de`,
	Args: cobra.ExactArgs(2),
	RunE: runCal,
}

func init() {
	rootCmd.AddCommand(calCmd)
}

func runCal(cmd *cobra.Command, args []string) error {
	year, err := parseYear(args[0])
	if err != nil {
		return err
	}
	month, err := parseMonth(args[1])
	if err != nil {
		return err
	}

	grid, err := renderMonthGrid(newStyles(cmd.OutOrStdout()), current, year, month)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), grid)
	return nil
}

// renderMonthGrid lays out the days of a month in Monday-first weeks
func renderMonthGrid(s styles, a *app, year calendar.Year, month calendar.MonthOfYear) (string, error) {
	first, err := calendar.NewLocalDate(year.Value(), month, 1)
	if err != nil {
		return "", err
	}
	length, err := month.LengthInDays(year)
	if err != nil {
		return "", err
	}

	title := a.symbols.T("cli.cal.title", map[string]interface{}{
		"Month": a.monthName(month),
		"Year":  year.Value(),
	})

	header := make([]string, 7)
	for i := range header {
		name, ok := a.symbols.FieldValueText(a.locale, calendar.FieldDayOfWeek, string(calendar.TextStyleShort), i+1)
		if !ok {
			name = strconv.Itoa(i + 1)
		}
		header[i] = s.header.Render(name)
	}

	rows := []string{
		s.title.Render(title),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, header...),
	}

	// Monday is column 0
	offset := (int(first.DayOfWeek()) + 6) % 7
	week := make([]string, 0, 7)
	for i := 0; i < offset; i++ {
		week = append(week, s.day.Render(""))
	}
	for day := 1; day <= length; day++ {
		style := s.day
		if len(week) >= 5 {
			style = s.weekend
		}
		week = append(week, style.Render(strconv.Itoa(day)))
		if len(week) == 7 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, week...))
			week = week[:0]
		}
	}
	if len(week) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, week...))
	}

	return s.box.Render(strings.Join(rows, "\n")), nil
}
