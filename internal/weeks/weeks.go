// Package weeks iterates 7-day report windows across a date range and assigns
// each one its ordinal within the calendar month it starts in.
package weeks

import (
	"fmt"
	"iter"
	"time"

	"github.com/jonathan/weekly-stubs/internal/types"
)

const (
	// MaxWeeksPerMonth caps the week-in-month ordinal. A fifth week starting in
	// the same month is dropped rather than moved to another month.
	MaxWeeksPerMonth = 4

	// DateLayout is the ISO-8601 calendar date layout used for flags and front matter.
	DateLayout = time.DateOnly

	daysPerWeek = 7
)

type monthKey struct {
	year  int
	month time.Month
}

// Range yields the retained weeks from start through end (inclusive).
//
// Each step covers [current, current+6 days] and advances current by exactly
// seven days, whether or not the week is retained. Only a week's start date is
// checked against end. The sequence is lazy and may be ranged over repeatedly.
func Range(start, end time.Time) iter.Seq[types.Week] {
	start = truncateDay(start)
	end = truncateDay(end)

	return func(yield func(types.Week) bool) {
		seen := make(map[monthKey]int)

		for current := start; !current.After(end); current = current.AddDate(0, 0, daysPerWeek) {
			key := monthKey{year: current.Year(), month: current.Month()}
			seen[key]++

			if seen[key] > MaxWeeksPerMonth {
				continue
			}

			week := types.Week{
				Start:       current,
				End:         current.AddDate(0, 0, daysPerWeek-1),
				Year:        key.year,
				Month:       key.month,
				WeekInMonth: seen[key],
			}
			if !yield(week) {
				return
			}
		}
	}
}

// EndOfYear returns December 31 of year.
func EndOfYear(year int) time.Time {
	return time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date as a UTC calendar day.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// FormatDate formats t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
