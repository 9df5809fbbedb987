// File: date.go
// Title: Local Date
// Description: An immutable ISO date without time or zone, plus the adjuster,
//              matcher and provider interfaces that MonthOfYear plugs into.
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
	"regexp"
	"strconv"
	"time"

	mdwerror "github.com/msto63/chrono/core/error"
)

// DateProvider is anything that can be viewed as a LocalDate
type DateProvider interface {
	ToLocalDate() LocalDate
}

// DateAdjuster derives a new date from an existing one
type DateAdjuster interface {
	AdjustDate(date LocalDate) LocalDate
}

// DateMatcher is a predicate over dates
type DateMatcher interface {
	MatchesDate(date LocalDate) bool
}

// LocalDate is a valid year, month and day. The zero value is not a valid
// date; use NewLocalDate or LocalDateFromTime.
type LocalDate struct {
	year  Year
	month MonthOfYear
	day   DayOfMonth
}

const (
	daysPerCycle      = 146097
	days0000To1970    = daysPerCycle*5 - (30*365 + 7)
	isoDateLayoutHint = "[+-]YYYY-MM-DD"
)

var isoDatePattern = regexp.MustCompile(`^([+-]?\d{4,9})-(\d{2})-(\d{2})$`)

// NewLocalDate validates each field and that the day exists in the month
func NewLocalDate(year int, month MonthOfYear, day int) (LocalDate, error) {
	return newLocalDate(year, month, day, "calendar.NewLocalDate")
}

func newLocalDate(year int, month MonthOfYear, day int, operation string) (LocalDate, error) {
	if err := yearRange.Check(year, operation); err != nil {
		return LocalDate{}, err
	}
	if !month.IsValid() {
		return LocalDate{}, outOfRange(monthOfYearRange, int(month), operation)
	}
	if err := dayOfMonthRange.Check(day, operation); err != nil {
		return LocalDate{}, err
	}
	if day > month.length(IsLeapYear(year)) {
		return LocalDate{}, unresolvable(Year(year), month, DayOfMonth(day), operation)
	}
	return LocalDate{year: Year(year), month: month, day: DayOfMonth(day)}, nil
}

// MustLocalDate is like NewLocalDate but panics on invalid input
func MustLocalDate(year int, month MonthOfYear, day int) LocalDate {
	d, err := NewLocalDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// LocalDateFromTime returns the date of t in t's location
func LocalDateFromTime(t time.Time) LocalDate {
	y, m, d := t.Date()
	return LocalDate{year: Year(y), month: MonthOfYear(m), day: DayOfMonth(d)}
}

// ParseLocalDate parses the ISO-8601 extended form, e.g. "2007-12-03"
func ParseLocalDate(s string) (LocalDate, error) {
	match := isoDatePattern.FindStringSubmatch(s)
	if match == nil {
		return LocalDate{}, mdwerror.Newf("cannot parse %q as a date, expected %s", s, isoDateLayoutHint).
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation("calendar.ParseLocalDate").
			WithDetail("value", s)
	}
	year, _ := strconv.Atoi(match[1])
	month, _ := strconv.Atoi(match[2])
	day, _ := strconv.Atoi(match[3])
	if err := monthOfYearRange.Check(month, "calendar.ParseLocalDate"); err != nil {
		return LocalDate{}, err
	}
	return newLocalDate(year, MonthOfYear(month), day, "calendar.ParseLocalDate")
}

// IsZero reports whether d is the zero value
func (d LocalDate) IsZero() bool {
	return d == LocalDate{}
}

// Year returns the year
func (d LocalDate) Year() Year {
	return d.year
}

// MonthOfYear returns the month
func (d LocalDate) MonthOfYear() MonthOfYear {
	return d.month
}

// DayOfMonth returns the day of the month
func (d LocalDate) DayOfMonth() DayOfMonth {
	return d.day
}

// ToLocalDate implements DateProvider
func (d LocalDate) ToLocalDate() LocalDate {
	return d
}

// IsLeapYear reports whether the date lies in a leap year
func (d LocalDate) IsLeapYear() bool {
	return d.year.IsLeap()
}

// LengthOfMonth returns the number of days in the date's month
func (d LocalDate) LengthOfMonth() int {
	return d.month.length(d.year.IsLeap())
}

// DayOfYear returns the 1-based day within the year
func (d LocalDate) DayOfYear() int {
	return d.month.FirstDayOfYear(d.year.IsLeap()) + int(d.day) - 1
}

// EpochDay returns the number of days since 1970-01-01
func (d LocalDate) EpochDay() int64 {
	y := int64(d.year)
	m := int64(d.month)
	total := 365 * y
	if y >= 0 {
		total += (y+3)/4 - (y+99)/100 + (y+399)/400
	} else {
		total -= y/-4 - y/-100 + y/-400
	}
	total += (367*m - 362) / 12
	total += int64(d.day) - 1
	if m > 2 {
		total--
		if !d.year.IsLeap() {
			total--
		}
	}
	return total - days0000To1970
}

// DayOfWeek returns the weekday of the date
func (d LocalDate) DayOfWeek() time.Weekday {
	// 1970-01-01 was a Thursday
	return time.Weekday(floorMod64(d.EpochDay()+int64(time.Thursday), 7))
}

func floorMod64(x, n int64) int64 {
	r := x % n
	if r < 0 {
		r += n
	}
	return r
}

// WithMonthOfYear returns a copy with the month replaced. When the day does
// not exist in the new month, resolver decides the outcome; a resolver
// failure is reported as INVALID_FIELD_COMBINATION.
func (d LocalDate) WithMonthOfYear(month MonthOfYear, resolver DateResolver) (LocalDate, error) {
	if !month.IsValid() {
		return LocalDate{}, outOfRange(monthOfYearRange, int(month), "calendar.LocalDate.WithMonthOfYear")
	}
	if d.month == month {
		return d, nil
	}
	return d.resolve(d.year, month, d.day, resolver, "calendar.LocalDate.WithMonthOfYear")
}

// WithYear returns a copy with the year replaced, resolving February 29 in
// a non-leap target year through resolver.
func (d LocalDate) WithYear(year int, resolver DateResolver) (LocalDate, error) {
	if err := yearRange.Check(year, "calendar.LocalDate.WithYear"); err != nil {
		return LocalDate{}, err
	}
	if Year(year) == d.year {
		return d, nil
	}
	return d.resolve(Year(year), d.month, d.day, resolver, "calendar.LocalDate.WithYear")
}

// WithDayOfMonth returns a copy with the day replaced
func (d LocalDate) WithDayOfMonth(day int) (LocalDate, error) {
	return newLocalDate(int(d.year), d.month, day, "calendar.LocalDate.WithDayOfMonth")
}

func (d LocalDate) resolve(year Year, month MonthOfYear, day DayOfMonth, resolver DateResolver, operation string) (LocalDate, error) {
	if resolver == nil {
		return LocalDate{}, missingArgument("resolver", operation)
	}
	resolved, err := resolver.Resolve(year, month, day)
	if err != nil {
		if IsUnresolvable(err) {
			return LocalDate{}, err
		}
		return LocalDate{}, mdwerror.Wrap(err, "date resolver failed").
			WithCode(mdwerror.CodeInvalidFieldCombination).
			WithOperation(operation)
	}
	if !resolved.isValid() {
		return LocalDate{}, unresolvable(year, month, day, operation).
			WithDetail("resolver_result", resolved.String())
	}
	return resolved, nil
}

func (d LocalDate) isValid() bool {
	return yearRange.IsValid(int(d.year)) && d.month.IsValid() &&
		d.day >= 1 && int(d.day) <= d.month.length(d.year.IsLeap())
}

// PlusMonths adds months, clamping the day to the end of the target month
func (d LocalDate) PlusMonths(months int) (LocalDate, error) {
	pos := d.month.position() + months%monthsPerYear
	yearDelta := months/monthsPerYear + floorDiv(pos, monthsPerYear)
	year := int(d.year) + yearDelta
	if err := yearRange.Check(year, "calendar.LocalDate.PlusMonths"); err != nil {
		return LocalDate{}, err
	}
	return clampToMonth(Year(year), fromPosition(pos), d.day), nil
}

func floorDiv(x, n int) int {
	q := x / n
	if x%n != 0 && (x < 0) != (n < 0) {
		q--
	}
	return q
}

// With applies an adjuster
func (d LocalDate) With(adjuster DateAdjuster) LocalDate {
	return adjuster.AdjustDate(d)
}

// Matches applies a matcher
func (d LocalDate) Matches(matcher DateMatcher) bool {
	return matcher.MatchesDate(d)
}

// Compare returns -1, 0 or +1 ordering d before, equal to or after other
func (d LocalDate) Compare(other LocalDate) int {
	switch {
	case d.year != other.year:
		return compareInts(int(d.year), int(other.year))
	case d.month != other.month:
		return compareInts(int(d.month), int(other.month))
	default:
		return compareInts(int(d.day), int(other.day))
	}
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Equal reports whether both dates are the same day
func (d LocalDate) Equal(other LocalDate) bool {
	return d == other
}

// Before reports whether d is before other
func (d LocalDate) Before(other LocalDate) bool {
	return d.Compare(other) < 0
}

// After reports whether d is after other
func (d LocalDate) After(other LocalDate) bool {
	return d.Compare(other) > 0
}

// ToTime returns midnight of the date in loc
func (d LocalDate) ToTime(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(int(d.year), time.Month(d.month), int(d.day), 0, 0, 0, 0, loc)
}

// String returns the ISO-8601 form. Years outside 0..9999 carry a sign.
func (d LocalDate) String() string {
	y := int(d.year)
	var year string
	switch {
	case y < 0 && y > -10000:
		year = fmt.Sprintf("-%04d", -y)
	case y < 0:
		year = strconv.Itoa(y)
	case y > 9999:
		year = "+" + strconv.Itoa(y)
	default:
		year = fmt.Sprintf("%04d", y)
	}
	return fmt.Sprintf("%s-%02d-%02d", year, int(d.month), int(d.day))
}

var (
	_ DateAdjuster = January
	_ DateMatcher  = January
	_ DateProvider = LocalDate{}
)
