// File: quarter_test.go
// Title: Quarter and Year Tests
// Description: QuarterOfYear navigation and the Year and DayOfMonth helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15

package calendar

import "testing"

func TestQuarterOfYearNavigation(t *testing.T) {
	tests := []struct {
		quarter  QuarterOfYear
		next     QuarterOfYear
		previous QuarterOfYear
		first    MonthOfYear
		text     string
	}{
		{Q1, Q2, Q4, January, "Q1"},
		{Q2, Q3, Q1, April, "Q2"},
		{Q3, Q4, Q2, July, "Q3"},
		{Q4, Q1, Q3, October, "Q4"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if tt.quarter.Next() != tt.next {
				t.Errorf("Next() = %v, want %v", tt.quarter.Next(), tt.next)
			}
			if tt.quarter.Previous() != tt.previous {
				t.Errorf("Previous() = %v, want %v", tt.quarter.Previous(), tt.previous)
			}
			if tt.quarter.FirstMonth() != tt.first {
				t.Errorf("FirstMonth() = %v, want %v", tt.quarter.FirstMonth(), tt.first)
			}
			if tt.quarter.String() != tt.text {
				t.Errorf("String() = %q", tt.quarter.String())
			}
			for i, m := range tt.quarter.Months() {
				if m.QuarterOfYear() != tt.quarter || m.MonthOfQuarter() != i+1 {
					t.Errorf("%v does not map back to %v position %d", m, tt.quarter, i+1)
				}
			}
			q, err := QuarterOfYearOf(tt.quarter.Value())
			if err != nil || q != tt.quarter {
				t.Errorf("QuarterOfYearOf(%d) = %v, %v", tt.quarter.Value(), q, err)
			}
		})
	}

	for _, n := range []int{0, 5, -1} {
		if _, err := QuarterOfYearOf(n); !IsOutOfRange(err) {
			t.Errorf("QuarterOfYearOf(%d) error = %v", n, err)
		}
	}
	if QuarterOfYear(9).String() != "%!QuarterOfYear(9)" {
		t.Errorf("invalid quarter String() = %q", QuarterOfYear(9).String())
	}
}

func TestYear(t *testing.T) {
	tests := []struct {
		year   int
		leap   bool
		length int
	}{
		{2000, true, 366},
		{1900, false, 365},
		{2024, true, 366},
		{2023, false, 365},
		{0, true, 366},
		{-1, false, 365},
		{-400, true, 366},
	}

	for _, tt := range tests {
		y, err := YearOf(tt.year)
		if err != nil {
			t.Fatalf("YearOf(%d): %v", tt.year, err)
		}
		if y.IsLeap() != tt.leap || IsLeapYear(tt.year) != tt.leap {
			t.Errorf("%d leap = %v, want %v", tt.year, y.IsLeap(), tt.leap)
		}
		if y.LengthInDays() != tt.length {
			t.Errorf("%d length = %d, want %d", tt.year, y.LengthInDays(), tt.length)
		}
		if y.Value() != tt.year {
			t.Errorf("Value() = %d", y.Value())
		}
	}

	if _, err := YearOf(MinYear - 1); !IsOutOfRange(err) {
		t.Errorf("YearOf(MinYear-1) error = %v", err)
	}
	if Year(-44).String() != "-44" {
		t.Errorf("String() = %q", Year(-44).String())
	}
}

func TestDayOfMonth(t *testing.T) {
	d, err := DayOfMonthOf(31)
	if err != nil || d.Value() != 31 || d.String() != "31" {
		t.Errorf("DayOfMonthOf(31) = %v, %v", d, err)
	}
	for _, n := range []int{0, 32} {
		if _, err := DayOfMonthOf(n); !IsOutOfRange(err) {
			t.Errorf("DayOfMonthOf(%d) error = %v", n, err)
		}
	}
}
