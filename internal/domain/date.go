package domain

import "time"

// dateLayout is the ISO 8601 calendar-day form used everywhere a date
// is stored or compared. It matches the snapshot file format.
const dateLayout = "2006-01-02"

// Date is a calendar day in YYYY-MM-DD form. Streak arithmetic works on
// whole calendar days, never on timestamps, so a plain day string is
// the natural representation and serializes directly into the snapshot.
type Date string

// Today returns the current calendar day in local time.
func Today() Date {
	return Date(time.Now().Format(dateLayout))
}

// Prev returns the calendar day immediately before d. A malformed or
// zero date has no predecessor and returns the empty Date.
func (d Date) Prev() Date {
	t, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return ""
	}
	return Date(t.AddDate(0, 0, -1).Format(dateLayout))
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d == ""
}
