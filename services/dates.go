package services

import "time"

// DateOnly truncates to a civil date in UTC, the representation every
// plan_date and log date is stored and compared in.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekStart returns the Monday of the week containing t.
func WeekStart(t time.Time) time.Time {
	d := DateOnly(t)
	sinceMonday := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -sinceMonday)
}
