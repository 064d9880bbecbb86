// Package streak computes consecutive-day activity streaks against a
// fixed IST (UTC+5:30) calendar day. Days are compared as YYYY-MM-DD
// strings; the offset never shifts, so there is no DST handling.
package streak

import "time"

// istOffset is fixed; a skewed system clock shifts the computed day
// silently, which is an accepted approximation.
var istOffset = 5*time.Hour + 30*time.Minute

const layout = "2006-01-02"

// DateString truncates an instant to its IST calendar date.
func DateString(t time.Time) string {
	return t.UTC().Add(istOffset).Format(layout)
}

// Today is the current IST calendar date.
func Today() string {
	return DateString(time.Now())
}

// Yesterday returns the calendar day before date. Malformed input
// yields an empty string, which never matches a stored date.
func Yesterday(date string) string {
	d, err := time.Parse(layout, date)
	if err != nil {
		return ""
	}
	return d.AddDate(0, 0, -1).Format(layout)
}

// Compute returns the streak after an activity on today.
//
//	no prior activity            -> 1
//	already active today         -> current (idempotent)
//	last active yesterday        -> current + 1
//	gap of two or more days      -> 1
func Compute(lastActive string, current int, today string) int {
	if lastActive == "" {
		return 1
	}
	if lastActive == today {
		return current
	}
	if lastActive == Yesterday(today) {
		return current + 1
	}
	return 1
}
