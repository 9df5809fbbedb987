// File: resolver.go
// Title: Date Resolvers
// Description: Strategies that turn a year, month and day combination into a
//              valid date when the day does not exist in the month, e.g. after
//              replacing the month of December 31 with November.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation with strict, previous-valid,
//                       next-valid and part-lenient strategies

package calendar

import (
	"sort"
	"strings"

	mdwerror "github.com/msto63/chrono/core/error"
)

// DateResolver produces a valid date from a possibly invalid combination of
// year, month and day. Implementations return an INVALID_FIELD_COMBINATION
// error when they cannot.
type DateResolver interface {
	Resolve(year Year, month MonthOfYear, day DayOfMonth) (LocalDate, error)
}

// DateResolverFunc adapts a function to DateResolver
type DateResolverFunc func(year Year, month MonthOfYear, day DayOfMonth) (LocalDate, error)

// Resolve calls f
func (f DateResolverFunc) Resolve(year Year, month MonthOfYear, day DayOfMonth) (LocalDate, error) {
	return f(year, month, day)
}

// Resolver names accepted by ResolverByName
const (
	ResolverStrict        = "strict"
	ResolverPreviousValid = "previous"
	ResolverNextValid     = "next"
	ResolverPartLenient   = "lenient"
)

type namedResolver struct {
	name string
	DateResolverFunc
}

func (r namedResolver) String() string {
	return r.name
}

var resolvers = map[string]namedResolver{
	ResolverStrict:        {ResolverStrict, resolveStrict},
	ResolverPreviousValid: {ResolverPreviousValid, resolvePreviousValid},
	ResolverNextValid:     {ResolverNextValid, resolveNextValid},
	ResolverPartLenient:   {ResolverPartLenient, resolvePartLenient},
}

// StrictResolver rejects any day that does not exist in the month
func StrictResolver() DateResolver {
	return resolvers[ResolverStrict]
}

// PreviousValidResolver clamps an invalid day to the last day of the month,
// so November 31 becomes November 30. This is the default strategy.
func PreviousValidResolver() DateResolver {
	return resolvers[ResolverPreviousValid]
}

// NextValidResolver moves an invalid day to the first day of the following
// month, so November 31 becomes December 1.
func NextValidResolver() DateResolver {
	return resolvers[ResolverNextValid]
}

// PartLenientResolver carries the excess days into the following month, so
// February 30 of a non-leap year becomes March 2.
func PartLenientResolver() DateResolver {
	return resolvers[ResolverPartLenient]
}

// DefaultResolver returns the strategy used when none is given
func DefaultResolver() DateResolver {
	return PreviousValidResolver()
}

// ResolverByName returns the named strategy. Names are case-insensitive.
func ResolverByName(name string) (DateResolver, error) {
	r, ok := resolvers[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, mdwerror.Newf("unknown date resolver %q", name).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("calendar.ResolverByName").
			WithDetail("value", name).
			WithDetail("allowed", ResolverNames())
	}
	return r, nil
}

// ResolverNames returns the accepted resolver names, sorted
func ResolverNames() []string {
	names := make([]string, 0, len(resolvers))
	for name := range resolvers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func resolveStrict(year Year, month MonthOfYear, day DayOfMonth) (LocalDate, error) {
	if int(day) > month.length(year.IsLeap()) {
		return LocalDate{}, unresolvable(year, month, day, "calendar.StrictResolver")
	}
	return newLocalDate(int(year), month, int(day), "calendar.StrictResolver")
}

func resolvePreviousValid(year Year, month MonthOfYear, day DayOfMonth) (LocalDate, error) {
	if err := yearRange.Check(int(year), "calendar.PreviousValidResolver"); err != nil {
		return LocalDate{}, err
	}
	return clampToMonth(year, month, day), nil
}

func resolveNextValid(year Year, month MonthOfYear, day DayOfMonth) (LocalDate, error) {
	if int(day) <= month.length(year.IsLeap()) {
		return newLocalDate(int(year), month, int(day), "calendar.NextValidResolver")
	}
	nextYear := int(year)
	if month == December {
		nextYear++
	}
	return newLocalDate(nextYear, month.Next(), 1, "calendar.NextValidResolver")
}

func resolvePartLenient(year Year, month MonthOfYear, day DayOfMonth) (LocalDate, error) {
	length := month.length(year.IsLeap())
	if int(day) <= length {
		return newLocalDate(int(year), month, int(day), "calendar.PartLenientResolver")
	}
	nextYear := int(year)
	if month == December {
		nextYear++
	}
	return newLocalDate(nextYear, month.Next(), int(day)-length, "calendar.PartLenientResolver")
}

// clampToMonth never fails for a valid month and a year within range
func clampToMonth(year Year, month MonthOfYear, day DayOfMonth) LocalDate {
	if last := DayOfMonth(month.length(year.IsLeap())); day > last {
		day = last
	}
	if day < 1 {
		day = 1
	}
	return LocalDate{year: year, month: month, day: day}
}
