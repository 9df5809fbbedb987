// Package calendar implements the month of the year and the small set of
// ISO calendar types it works with.
//
// Package: calendar
// Title: ISO Calendar Month of Year
// Description: MonthOfYear is a closed set of twelve values numbered 1 to 12.
//              It provides wrap-around arithmetic, leap-year aware lengths,
//              quarter decomposition, and acts as a DateAdjuster and
//              DateMatcher over LocalDate. Day-of-month conflicts after a
//              month change are settled by a pluggable DateResolver.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// # Numbering
//
// Every externally visible month number is 1-based. The 0-based position used
// for modular arithmetic never leaves the package.
//
// # Errors
//
// Failures are *error.Error values from core/error:
//   - VALUE_OUT_OF_RANGE: month, day, quarter or year outside its bounds;
//     details "field", "value", "min", "max"
//   - REQUIRED_FIELD: a nil year or resolver
//   - INVALID_FIELD_COMBINATION: a day that a resolver could not settle
//   - INVALID_FORMAT: ParseLocalDate input not in ISO-8601 form
//
// # Usage
//
//	m, err := calendar.MonthOfYearOf(11)
//	if err != nil {
//		return err
//	}
//	days, _ := m.LengthInDaysOfYear(2024)          // 30
//	q := m.QuarterOfYear()                         // Q4
//	d := calendar.MustLocalDate(2024, calendar.December, 31)
//	adjusted := m.AdjustDate(d)                    // 2024-11-30
//	_, err = m.AdjustDateWith(d, calendar.StrictResolver()) // INVALID_FIELD_COMBINATION
//
// All types are immutable values and safe for concurrent use.
package calendar
