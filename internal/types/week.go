// Package types provides type definitions for structured data used throughout the weekly stub generator.
package types

import (
	"fmt"
	"time"
)

// Week is a single 7-day window emitted by the week iterator, already placed
// within its calendar month.
type Week struct {
	Start       time.Time
	End         time.Time // Start + 6 days; may fall into the next month or year
	Year        int
	Month       time.Month
	WeekInMonth int // 1-based ordinal within (Year, Month)
}

// Slug returns the language-independent identifier shared by every language
// variant of the week, e.g. "2025-11-w1".
func (w Week) Slug() string {
	return fmt.Sprintf("%d-%02d-w%d", w.Year, int(w.Month), w.WeekInMonth)
}

// Counters tracks file decisions made during one generation run.
type Counters struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}

// Summary returns the line reported at the end of a run.
func (c Counters) Summary() string {
	return fmt.Sprintf("Created %d files, skipped %d existing files.", c.Created, c.Skipped)
}
