package calendar_test

import (
	"fmt"

	"github.com/msto63/chrono/calendar"
)

func ExampleMonthOfYear_Plus() {
	fmt.Println(calendar.November.Plus(3))
	fmt.Println(calendar.January.Minus(1))
	// Output:
	// February
	// December
}

func ExampleMonthOfYear_AdjustDate() {
	date := calendar.MustLocalDate(2007, calendar.December, 31)
	fmt.Println(calendar.November.AdjustDate(date))
	// Output: 2007-11-30
}

func ExampleMonthOfYear_LengthInDays() {
	for _, year := range []calendar.Year{2023, 2024} {
		days, err := calendar.February.LengthInDays(year)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(year, days)
	}
	// Output:
	// 2023 28
	// 2024 29
}

func ExampleMonthOfYearOf() {
	_, err := calendar.MonthOfYearOf(13)
	fmt.Println(err)
	// Output: MonthOfYear 13 is out of range [1, 12]
}

func ExampleMonthOfYear_AdjustDateWith() {
	date := calendar.MustLocalDate(2007, calendar.December, 31)
	next, _ := calendar.November.AdjustDateWith(date, calendar.NextValidResolver())
	fmt.Println(next)
	_, err := calendar.November.AdjustDateWith(date, calendar.StrictResolver())
	fmt.Println(calendar.IsUnresolvable(err))
	// Output:
	// 2007-12-01
	// true
}
