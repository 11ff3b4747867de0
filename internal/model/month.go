// Package model defines the core types shared across the application.
package model

import (
	"fmt"
	"time"
)

// Month identifies a single calendar month. All query windows and sheet
// rows are keyed by Month, never by a full date.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month enclosing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// ParseMonth parses a month in "2006-01" form.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q (want YYYY-MM): %w", s, err)
	}
	return MonthOf(t), nil
}

// First returns the first day of the month in UTC.
func (m Month) First() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Range returns the first and last day of the month. Querying any date
// inside a month always produces this exact window.
func (m Month) Range() (start, end time.Time) {
	start = m.First()
	end = start.AddDate(0, 1, -1)
	return start, end
}

// Next returns the following calendar month.
func (m Month) Next() Month {
	return MonthOf(m.First().AddDate(0, 1, 0))
}

// Prev returns the preceding calendar month.
func (m Month) Prev() Month {
	return MonthOf(m.First().AddDate(0, -1, 0))
}

// Before reports whether m is chronologically before o.
func (m Month) Before(o Month) bool {
	if m.Year != o.Year {
		return m.Year < o.Year
	}
	return m.Month < o.Month
}

// After reports whether m is chronologically after o.
func (m Month) After(o Month) bool {
	return o.Before(m)
}

// IsZero reports whether m is the zero value.
func (m Month) IsZero() bool {
	return m.Year == 0 && m.Month == 0
}

func (m Month) String() string {
	return m.First().Format("2006-01")
}

// MonthsBetween returns the inclusive list of months from from to to in
// chronological order. An inverted range yields nil.
func MonthsBetween(from, to Month) []Month {
	if to.Before(from) {
		return nil
	}
	var out []Month
	for m := from; !m.After(to); m = m.Next() {
		out = append(out, m)
	}
	return out
}
