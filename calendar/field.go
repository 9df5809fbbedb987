// File: field.go
// Title: Calendar Field Bounds
// Description: Defines the named value ranges of the calendar fields and the
//              structured errors raised when a value falls outside them.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package calendar

import (
	mdwerror "github.com/msto63/chrono/core/error"
)

// Field names used in error details and text lookups
const (
	FieldYear          = "Year"
	FieldMonthOfYear   = "MonthOfYear"
	FieldDayOfMonth    = "DayOfMonth"
	FieldQuarterOfYear = "QuarterOfYear"
	FieldDayOfWeek     = "DayOfWeek"
)

// Supported year range of the ISO chronology
const (
	MinYear = -999_999_999
	MaxYear = 999_999_999
)

// FieldRange describes the inclusive bounds of a calendar field
type FieldRange struct {
	Field string
	Min   int
	Max   int
}

var (
	yearRange          = FieldRange{Field: FieldYear, Min: MinYear, Max: MaxYear}
	monthOfYearRange   = FieldRange{Field: FieldMonthOfYear, Min: 1, Max: 12}
	dayOfMonthRange    = FieldRange{Field: FieldDayOfMonth, Min: 1, Max: 31}
	quarterOfYearRange = FieldRange{Field: FieldQuarterOfYear, Min: 1, Max: 4}
)

// YearRange returns the bounds of the year field
func YearRange() FieldRange { return yearRange }

// MonthOfYearRange returns the bounds of the month-of-year field
func MonthOfYearRange() FieldRange { return monthOfYearRange }

// DayOfMonthRange returns the bounds of the day-of-month field
func DayOfMonthRange() FieldRange { return dayOfMonthRange }

// QuarterOfYearRange returns the bounds of the quarter-of-year field
func QuarterOfYearRange() FieldRange { return quarterOfYearRange }

// IsValid reports whether value lies within the range
func (r FieldRange) IsValid(value int) bool {
	return value >= r.Min && value <= r.Max
}

// Check returns an out-of-range error when value lies outside the range.
// operation names the public function performing the check.
func (r FieldRange) Check(value int, operation string) error {
	if r.IsValid(value) {
		return nil
	}
	return outOfRange(r, value, operation)
}

func outOfRange(r FieldRange, value int, operation string) *mdwerror.Error {
	return mdwerror.Newf("%s %d is out of range [%d, %d]", r.Field, value, r.Min, r.Max).
		WithCode(mdwerror.CodeValueOutOfRange).
		WithOperation(operation).
		WithDetails(map[string]interface{}{
			"field": r.Field,
			"value": value,
			"min":   r.Min,
			"max":   r.Max,
		})
}

func missingArgument(name, operation string) *mdwerror.Error {
	return mdwerror.Newf("the %s must not be nil", name).
		WithCode(mdwerror.CodeRequiredField).
		WithOperation(operation).
		WithDetail("argument", name)
}

func unresolvable(year Year, month MonthOfYear, day DayOfMonth, operation string) *mdwerror.Error {
	return mdwerror.Newf("day %d is not valid for %s %d", int(day), month, int(year)).
		WithCode(mdwerror.CodeInvalidFieldCombination).
		WithOperation(operation).
		WithDetails(map[string]interface{}{
			"year":  int(year),
			"month": month.Value(),
			"day":   int(day),
		})
}

// OutOfRangeDetails extracts the violated range and the rejected value from
// an out-of-range error anywhere in the chain of err.
func OutOfRangeDetails(err error) (FieldRange, int, bool) {
	for current := err; current != nil; {
		e, found := mdwerror.As(current)
		if !found {
			break
		}
		if e.Code() == mdwerror.CodeValueOutOfRange {
			d := e.Details()
			field, okField := d["field"].(string)
			value, okValue := d["value"].(int)
			lo, okMin := d["min"].(int)
			hi, okMax := d["max"].(int)
			if okField && okValue && okMin && okMax {
				return FieldRange{Field: field, Min: lo, Max: hi}, value, true
			}
		}
		current = e.Unwrap()
	}
	return FieldRange{}, 0, false
}

// IsOutOfRange reports whether err is a field value out-of-range error
func IsOutOfRange(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeValueOutOfRange)
}

// IsMissingArgument reports whether err reports a missing required argument
func IsMissingArgument(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeRequiredField)
}

// IsUnresolvable reports whether err reports a date that could not be resolved
func IsUnresolvable(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeInvalidFieldCombination)
}
