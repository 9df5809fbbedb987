// File: quarter.go
// Title: Quarter of Year
// Description: The four three-month groupings of the calendar year.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15

package calendar

import (
	"fmt"
	"strconv"
)

// QuarterOfYear is one of Q1..Q4
type QuarterOfYear int

const (
	Q1 QuarterOfYear = iota + 1
	Q2
	Q3
	Q4
)

// QuarterOfYearOf returns the quarter with the given value, 1 to 4
func QuarterOfYearOf(quarterOfYear int) (QuarterOfYear, error) {
	if err := quarterOfYearRange.Check(quarterOfYear, "calendar.QuarterOfYearOf"); err != nil {
		return 0, err
	}
	return QuarterOfYear(quarterOfYear), nil
}

// IsValid reports whether q is one of Q1..Q4
func (q QuarterOfYear) IsValid() bool {
	return q >= Q1 && q <= Q4
}

// Value returns the 1-based quarter number
func (q QuarterOfYear) Value() int {
	q.mustBeValid()
	return int(q)
}

func (q QuarterOfYear) mustBeValid() {
	if !q.IsValid() {
		panic(fmt.Sprintf("calendar: invalid QuarterOfYear %d", int(q)))
	}
}

// Next returns the following quarter; Q4 wraps to Q1
func (q QuarterOfYear) Next() QuarterOfYear {
	return QuarterOfYear(q.Value()%4 + 1)
}

// Previous returns the preceding quarter; Q1 wraps to Q4
func (q QuarterOfYear) Previous() QuarterOfYear {
	return QuarterOfYear((q.Value()+2)%4 + 1)
}

// FirstMonth returns the first month of the quarter
func (q QuarterOfYear) FirstMonth() MonthOfYear {
	return MonthOfYear((q.Value()-1)*3 + 1)
}

// Months returns the three months of the quarter in order
func (q QuarterOfYear) Months() [3]MonthOfYear {
	first := q.FirstMonth()
	return [3]MonthOfYear{first, first + 1, first + 2}
}

// String returns "Q1".."Q4"
func (q QuarterOfYear) String() string {
	if !q.IsValid() {
		return "%!QuarterOfYear(" + strconv.Itoa(int(q)) + ")"
	}
	return "Q" + strconv.Itoa(int(q))
}
