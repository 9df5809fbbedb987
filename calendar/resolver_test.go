// File: resolver_test.go
// Title: Date Resolver Tests
// Description: Behavior of the built-in resolution strategies and name lookup.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15

package calendar

import (
	"fmt"
	"reflect"
	"testing"

	mdwerror "github.com/msto63/chrono/core/error"
)

func TestResolvers(t *testing.T) {
	type outcome struct {
		date  LocalDate
		fails bool
	}

	tests := []struct {
		name     string
		year     Year
		month    MonthOfYear
		day      DayOfMonth
		strict   outcome
		previous outcome
		next     outcome
		lenient  outcome
	}{
		{
			name: "valid day", year: 2023, month: June, day: 15,
			strict:   outcome{date: MustLocalDate(2023, June, 15)},
			previous: outcome{date: MustLocalDate(2023, June, 15)},
			next:     outcome{date: MustLocalDate(2023, June, 15)},
			lenient:  outcome{date: MustLocalDate(2023, June, 15)},
		},
		{
			name: "november 31", year: 2007, month: November, day: 31,
			strict:   outcome{fails: true},
			previous: outcome{date: MustLocalDate(2007, November, 30)},
			next:     outcome{date: MustLocalDate(2007, December, 1)},
			lenient:  outcome{date: MustLocalDate(2007, December, 1)},
		},
		{
			name: "february 30 common year", year: 2023, month: February, day: 30,
			strict:   outcome{fails: true},
			previous: outcome{date: MustLocalDate(2023, February, 28)},
			next:     outcome{date: MustLocalDate(2023, March, 1)},
			lenient:  outcome{date: MustLocalDate(2023, March, 2)},
		},
		{
			name: "february 31 leap year", year: 2024, month: February, day: 31,
			strict:   outcome{fails: true},
			previous: outcome{date: MustLocalDate(2024, February, 29)},
			next:     outcome{date: MustLocalDate(2024, March, 1)},
			lenient:  outcome{date: MustLocalDate(2024, March, 2)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for name, want := range map[string]outcome{
				ResolverStrict:        tt.strict,
				ResolverPreviousValid: tt.previous,
				ResolverNextValid:     tt.next,
				ResolverPartLenient:   tt.lenient,
			} {
				r, err := ResolverByName(name)
				if err != nil {
					t.Fatalf("ResolverByName(%q): %v", name, err)
				}
				got, err := r.Resolve(tt.year, tt.month, tt.day)
				if want.fails {
					if !IsUnresolvable(err) {
						t.Errorf("%s: error = %v, want INVALID_FIELD_COMBINATION", name, err)
					}
					continue
				}
				if err != nil {
					t.Errorf("%s: unexpected error: %v", name, err)
					continue
				}
				if !got.Equal(want.date) {
					t.Errorf("%s: got %v, want %v", name, got, want.date)
				}
			}
		})
	}
}

func TestResolverYearRollover(t *testing.T) {
	got, err := NextValidResolver().Resolve(2023, December, 32)
	if err != nil || !got.Equal(MustLocalDate(2024, January, 1)) {
		t.Errorf("next valid: %v, %v", got, err)
	}
	got, err = PartLenientResolver().Resolve(2023, December, 33)
	if err != nil || !got.Equal(MustLocalDate(2024, January, 2)) {
		t.Errorf("part lenient: %v, %v", got, err)
	}
	if _, err = NextValidResolver().Resolve(MaxYear, December, 32); !IsOutOfRange(err) {
		t.Errorf("rollover past MaxYear error = %v", err)
	}
	if _, err = PreviousValidResolver().Resolve(MaxYear+1, January, 1); !IsOutOfRange(err) {
		t.Errorf("previous valid with bad year error = %v", err)
	}
}

func TestResolverByName(t *testing.T) {
	for _, name := range []string{"strict", "STRICT", " previous ", "Next", "lenient"} {
		r, err := ResolverByName(name)
		if err != nil {
			t.Errorf("ResolverByName(%q) unexpected error: %v", name, err)
			continue
		}
		if r == nil {
			t.Errorf("ResolverByName(%q) returned nil", name)
		}
	}

	if got := fmt.Sprint(DefaultResolver()); got != ResolverPreviousValid {
		t.Errorf("DefaultResolver() = %q, want %q", got, ResolverPreviousValid)
	}

	_, err := ResolverByName("smart")
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Fatalf("unknown resolver error = %v", err)
	}
	e, _ := mdwerror.As(err)
	if allowed, _ := e.Detail("allowed"); !reflect.DeepEqual(allowed, ResolverNames()) {
		t.Errorf("allowed detail = %v", allowed)
	}

	want := []string{"lenient", "next", "previous", "strict"}
	if !reflect.DeepEqual(ResolverNames(), want) {
		t.Errorf("ResolverNames() = %v, want %v", ResolverNames(), want)
	}
}
