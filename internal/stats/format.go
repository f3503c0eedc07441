// ABOUTME: Human-readable date/time formatting and day-boundary predicates.
// ABOUTME: All comparisons use local calendar days, not elapsed durations.
package stats

import "time"

// SameDay reports whether two timestamps fall on the same local calendar
// day. Two times 23 hours apart can be different days; two times a minute
// apart across midnight always are.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// FormatDate renders t relative to now: "Today", "Yesterday", the weekday
// name if within the last seven days, otherwise "Jan 2, 2006".
func FormatDate(t, now time.Time) string {
	if SameDay(t, now) {
		return "Today"
	}
	if SameDay(t, now.AddDate(0, 0, -1)) {
		return "Yesterday"
	}
	if t.After(now.AddDate(0, 0, -7)) {
		return t.Weekday().String()
	}
	return t.Format("Jan 2, 2006")
}

// FormatTime renders t as a 12-hour clock string, e.g. "2:30 PM".
func FormatTime(t time.Time) string {
	return t.Format("3:04 PM")
}

// Greeting returns the time-of-day greeting for now's local hour.
func Greeting(now time.Time) string {
	switch hour := now.Hour(); {
	case hour < 12:
		return "Good Morning"
	case hour < 18:
		return "Good Afternoon"
	default:
		return "Good Evening"
	}
}
