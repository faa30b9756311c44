package hr

import (
	"fmt"
	"time"

	"github.com/bizsuite/backend/internal/domain/shared"
)

// PeriodLayout is the canonical calendar-month period format
const PeriodLayout = "2006-01"

// Period identifies a calendar month ("YYYY-MM") scoping payroll facts
type Period struct {
	year  int
	month time.Month
}

// ParsePeriod parses a period string in YYYY-MM form
func ParsePeriod(s string) (Period, error) {
	t, err := time.Parse(PeriodLayout, s)
	if err != nil {
		return Period{}, shared.NewDomainError("INVALID_PERIOD", fmt.Sprintf("Period must be in YYYY-MM form, got %q", s))
	}
	return Period{year: t.Year(), month: t.Month()}, nil
}

// PeriodOf returns the period containing the given time
func PeriodOf(t time.Time) Period {
	return Period{year: t.Year(), month: t.Month()}
}

// String returns the canonical YYYY-MM representation
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.year, p.month)
}

// IsZero returns true for the zero-value period
func (p Period) IsZero() bool {
	return p.year == 0 && p.month == 0
}

// FirstDay returns midnight UTC on the first calendar day of the period
func (p Period) FirstDay() time.Time {
	return time.Date(p.year, p.month, 1, 0, 0, 0, 0, time.UTC)
}

// LastDay returns midnight UTC on the last calendar day of the period
func (p Period) LastDay() time.Time {
	return p.FirstDay().AddDate(0, 1, -1)
}

// Previous returns the preceding calendar month
func (p Period) Previous() Period {
	t := p.FirstDay().AddDate(0, -1, 0)
	return Period{year: t.Year(), month: t.Month()}
}

// ContainsDate reports whether the given date falls inside the period.
// Matching is by calendar month, the equivalent of a YYYY-MM prefix match
// on the date's string form.
func (p Period) ContainsDate(t time.Time) bool {
	return t.Year() == p.year && t.Month() == p.month
}

// OverlapsRange reports whether a date range counts toward the period:
// the range's start or end falls inside the period, or the range spans
// the period's first and last calendar days entirely.
func (p Period) OverlapsRange(start, end time.Time) bool {
	if p.ContainsDate(start) || p.ContainsDate(end) {
		return true
	}
	return !start.After(p.FirstDay()) && !end.Before(p.LastDay())
}
