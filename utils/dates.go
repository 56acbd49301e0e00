package utils

import "time"

// All stored activity dates are calendar days at UTC midnight, and every
// comparison goes through DayKey. This is the single normalization point;
// nothing else in the codebase compares dates directly.

const dayLayout = "2006-01-02"

// DayOf truncates a timestamp to its calendar day at UTC midnight.
func DayOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DayKey renders a timestamp as its canonical YYYY-MM-DD key.
func DayKey(t time.Time) string {
	return DayOf(t).Format(dayLayout)
}

// ParseDay parses a YYYY-MM-DD string into a UTC-midnight day.
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(dayLayout, s, time.UTC)
}

// StartOfWeek returns the Sunday at or before t, at UTC midnight.
func StartOfWeek(t time.Time) time.Time {
	d := DayOf(t)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// DaysAgo returns the day n calendar days before now.
func DaysAgo(n int, now time.Time) time.Time {
	return DayOf(now).AddDate(0, 0, -n)
}
