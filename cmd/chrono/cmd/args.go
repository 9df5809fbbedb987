package cmd

import (
	"strconv"
	"strings"

	"github.com/msto63/chrono/calendar"
	mdwerror "github.com/msto63/chrono/core/error"
)

// parseInt parses a decimal command argument; name appears in the error
func parseInt(name, arg string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, mdwerror.Newf("%s must be a whole number, got %q", name, arg).
			WithCode(mdwerror.CodeInvalidFormat).
			WithDetail("argument", name).
			WithDetail("value", arg)
	}
	return value, nil
}

// parseMonth parses a month number 1-12
func parseMonth(arg string) (calendar.MonthOfYear, error) {
	value, err := parseInt("month", arg)
	if err != nil {
		return 0, err
	}
	return calendar.MonthOfYearOf(value)
}

func parseYear(arg string) (calendar.Year, error) {
	value, err := parseInt("year", arg)
	if err != nil {
		return 0, err
	}
	return calendar.YearOf(value)
}
