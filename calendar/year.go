// File: year.go
// Title: ISO Year and Day of Month
// Description: Thin year and day-of-month value types used by MonthOfYear
//              and LocalDate.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15

package calendar

import "strconv"

// Year is a proleptic Gregorian year. Year 0 is 1 BC.
type Year int

// YearOf returns the year after checking it lies within MinYear..MaxYear
func YearOf(year int) (Year, error) {
	if err := yearRange.Check(year, "calendar.YearOf"); err != nil {
		return 0, err
	}
	return Year(year), nil
}

// IsLeapYear applies the proleptic Gregorian rule: divisible by 4, except
// centuries not divisible by 400.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// IsLeap reports whether the year has 366 days
func (y Year) IsLeap() bool {
	return IsLeapYear(int(y))
}

// LengthInDays returns 365 or 366
func (y Year) LengthInDays() int {
	if y.IsLeap() {
		return 366
	}
	return 365
}

// Value returns the year as an int
func (y Year) Value() int {
	return int(y)
}

// String returns the decimal year
func (y Year) String() string {
	return strconv.Itoa(int(y))
}

// DayOfMonth is a day within a month, 1 to 31
type DayOfMonth int

// DayOfMonthOf returns the day after checking it lies within 1..31
func DayOfMonthOf(dayOfMonth int) (DayOfMonth, error) {
	if err := dayOfMonthRange.Check(dayOfMonth, "calendar.DayOfMonthOf"); err != nil {
		return 0, err
	}
	return DayOfMonth(dayOfMonth), nil
}

// Value returns the day as an int
func (d DayOfMonth) Value() int {
	return int(d)
}

// String returns the decimal day
func (d DayOfMonth) String() string {
	return strconv.Itoa(int(d))
}
