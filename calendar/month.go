// File: month.go
// Title: Month of Year
// Description: Implements MonthOfYear, the twelve months of the ISO calendar
//              with wrap-around arithmetic, leap-year aware lengths, quarter
//              decomposition and the date adjuster/matcher roles.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MonthOfYear is a month of the ISO calendar. Its numeric value is the
// 1-based calendar position: January is 1 and December is 12. The twelve
// constants below are the only valid values; methods panic on any other.
type MonthOfYear int

const (
	January MonthOfYear = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

const monthsPerYear = 12

var monthNames = [monthsPerYear]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// LeapYearProvider is anything that knows whether it is a leap year
type LeapYearProvider interface {
	IsLeap() bool
}

// MonthOfYearOf returns the month with the given 1-based value. Values
// outside 1..12 yield a VALUE_OUT_OF_RANGE error with the bounds attached.
func MonthOfYearOf(monthOfYear int) (MonthOfYear, error) {
	if err := monthOfYearRange.Check(monthOfYear, "calendar.MonthOfYearOf"); err != nil {
		return 0, err
	}
	return MonthOfYear(monthOfYear), nil
}

// MustMonthOfYear is like MonthOfYearOf but panics on invalid input.
// Intended for constants and tests.
func MustMonthOfYear(monthOfYear int) MonthOfYear {
	m, err := MonthOfYearOf(monthOfYear)
	if err != nil {
		panic(err)
	}
	return m
}

// MonthOfYearFrom returns the month of the date supplied by p
func MonthOfYearFrom(p DateProvider) MonthOfYear {
	return p.ToLocalDate().MonthOfYear()
}

// MonthOfYearFromTime returns the month of t in t's location
func MonthOfYearFromTime(t time.Time) MonthOfYear {
	return MonthOfYear(t.Month())
}

// FromTimeMonth converts a time.Month, rejecting values outside 1..12
func FromTimeMonth(m time.Month) (MonthOfYear, error) {
	return MonthOfYearOf(int(m))
}

// MonthsOfYear returns the twelve months in calendar order
func MonthsOfYear() []MonthOfYear {
	months := make([]MonthOfYear, monthsPerYear)
	for i := range months {
		months[i] = MonthOfYear(i + 1)
	}
	return months
}

// IsValid reports whether m is one of the twelve months
func (m MonthOfYear) IsValid() bool {
	return m >= January && m <= December
}

// Value returns the 1-based month number, January being 1
func (m MonthOfYear) Value() int {
	m.mustBeValid()
	return int(m)
}

// position is the 0-based index used for modular arithmetic only.
func (m MonthOfYear) position() int {
	m.mustBeValid()
	return int(m) - 1
}

func (m MonthOfYear) mustBeValid() {
	if !m.IsValid() {
		panic(fmt.Sprintf("calendar: invalid MonthOfYear %d", int(m)))
	}
}

func fromPosition(pos int) MonthOfYear {
	return MonthOfYear(floorMod(pos, monthsPerYear) + 1)
}

// floorMod returns x mod n in [0, n) for n > 0 regardless of the sign of x
func floorMod(x, n int) int {
	r := x % n
	if r < 0 {
		r += n
	}
	return r
}

// Next returns the following month; December wraps to January
func (m MonthOfYear) Next() MonthOfYear {
	return fromPosition(m.position() + 1)
}

// Previous returns the preceding month; January wraps to December
func (m MonthOfYear) Previous() MonthOfYear {
	return fromPosition(m.position() - 1)
}

// Plus returns the month the given number of months later, wrapping in
// either direction. Any int is accepted.
func (m MonthOfYear) Plus(months int) MonthOfYear {
	return fromPosition(m.position() + months%monthsPerYear)
}

// Minus returns the month the given number of months earlier. It is the
// inverse of Plus and accepts any int, including math.MinInt.
func (m MonthOfYear) Minus(months int) MonthOfYear {
	return fromPosition(m.position() - months%monthsPerYear)
}

func (m MonthOfYear) length(leap bool) int {
	switch m {
	case February:
		if leap {
			return 29
		}
		return 28
	case April, June, September, November:
		return 30
	case January, March, May, July, August, October, December:
		return 31
	default:
		m.mustBeValid()
		return 0
	}
}

// LengthInDays returns the number of days in this month of the given year.
// A nil year yields a REQUIRED_FIELD error.
func (m MonthOfYear) LengthInDays(year LeapYearProvider) (int, error) {
	if year == nil {
		return 0, missingArgument("year", "calendar.MonthOfYear.LengthInDays")
	}
	return m.length(year.IsLeap()), nil
}

// LengthInDaysOfYear returns the number of days in this month of the given
// ISO year after checking the year lies within MinYear..MaxYear.
func (m MonthOfYear) LengthInDaysOfYear(year int) (int, error) {
	if err := yearRange.Check(year, "calendar.MonthOfYear.LengthInDaysOfYear"); err != nil {
		return 0, err
	}
	return m.length(IsLeapYear(year)), nil
}

// MinLengthInDays returns the length of the month in a non-leap year
func (m MonthOfYear) MinLengthInDays() int {
	return m.length(false)
}

// MaxLengthInDays returns the length of the month in a leap year
func (m MonthOfYear) MaxLengthInDays() int {
	return m.length(true)
}

// LastDayOfMonth returns the last day of this month in the given year
func (m MonthOfYear) LastDayOfMonth(year LeapYearProvider) (DayOfMonth, error) {
	if year == nil {
		return 0, missingArgument("year", "calendar.MonthOfYear.LastDayOfMonth")
	}
	return DayOfMonth(m.length(year.IsLeap())), nil
}

// FirstDayOfYear returns the day-of-year of the first day of this month
func (m MonthOfYear) FirstDayOfYear(leap bool) int {
	m.mustBeValid()
	day := 1
	for prev := January; prev < m; prev++ {
		day += prev.length(leap)
	}
	return day
}

// QuarterOfYear returns the quarter containing this month
func (m MonthOfYear) QuarterOfYear() QuarterOfYear {
	return QuarterOfYear(m.position()/3 + 1)
}

// MonthOfQuarter returns the 1-based position of this month in its quarter
func (m MonthOfYear) MonthOfQuarter() int {
	return m.position()%3 + 1
}

// AdjustDate returns a copy of date with its month replaced by m. A day
// that does not exist in the new month is clamped to the month's last day.
func (m MonthOfYear) AdjustDate(date LocalDate) LocalDate {
	if date.month == m {
		return date
	}
	return clampToMonth(date.year, m, date.day)
}

// AdjustDateWith returns a copy of date with its month replaced by m,
// delegating day-of-month conflicts to resolver.
func (m MonthOfYear) AdjustDateWith(date LocalDate, resolver DateResolver) (LocalDate, error) {
	if resolver == nil {
		return LocalDate{}, missingArgument("resolver", "calendar.MonthOfYear.AdjustDateWith")
	}
	return date.WithMonthOfYear(m, resolver)
}

// MatchesDate reports whether date falls in this month
func (m MonthOfYear) MatchesDate(date LocalDate) bool {
	return date.month == m
}

// Text returns the localized name of the month in the given style, or the
// decimal month number when symbols is nil or has no entry for locale.
func (m MonthOfYear) Text(symbols TextSymbols, locale string, style TextStyle) string {
	if symbols != nil {
		if text, ok := symbols.FieldValueText(locale, FieldMonthOfYear, string(style), m.Value()); ok {
			return text
		}
	}
	return strconv.Itoa(m.Value())
}

// ShortText returns the abbreviated localized name, e.g. "Jan"
func (m MonthOfYear) ShortText(symbols TextSymbols, locale string) string {
	return m.Text(symbols, locale, TextStyleShort)
}

// FullText returns the full localized name, e.g. "January"
func (m MonthOfYear) FullText(symbols TextSymbols, locale string) string {
	return m.Text(symbols, locale, TextStyleFull)
}

// FieldValue returns the month as a generic field/value pair
func (m MonthOfYear) FieldValue() FieldValue {
	return FieldValue{Field: FieldMonthOfYear, Value: m.Value()}
}

// ToTimeMonth converts to the standard library month
func (m MonthOfYear) ToTimeMonth() time.Month {
	return time.Month(m.Value())
}

// String returns the English name of the month
func (m MonthOfYear) String() string {
	if !m.IsValid() {
		return "%!MonthOfYear(" + strconv.Itoa(int(m)) + ")"
	}
	return monthNames[m-1]
}

// GoString returns the debug form "MonthOfYear=JANUARY"
func (m MonthOfYear) GoString() string {
	return "MonthOfYear=" + strings.ToUpper(m.String())
}
