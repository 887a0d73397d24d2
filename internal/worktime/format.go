// Package worktime formats durations in Jira's work-tracking notation.
package worktime

import (
	"fmt"
	"strings"
)

// Jira's default time tracking ratios.
const (
	hoursPerDay = 8
	daysPerWeek = 5
)

// Format renders seconds in work notation (1d = 8h, 1w = 5d).
// Only non-zero units are included, largest first: "1w 1d 1h 30m".
// Zero renders as "0m".
func Format(seconds int) string {
	totalMinutes := seconds / 60
	m := totalMinutes % 60
	totalHours := totalMinutes / 60
	h := totalHours % hoursPerDay
	totalDays := totalHours / hoursPerDay
	d := totalDays % daysPerWeek
	w := totalDays / daysPerWeek

	var parts []string
	if w > 0 {
		parts = append(parts, fmt.Sprintf("%dw", w))
	}
	if d > 0 {
		parts = append(parts, fmt.Sprintf("%dd", d))
	}
	if h > 0 {
		parts = append(parts, fmt.Sprintf("%dh", h))
	}
	if m > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%dm", m))
	}
	return strings.Join(parts, " ")
}

// FormatClock renders seconds as wall-clock hours and minutes: "1h 30m".
// Both components are always present, with no day/week rollover.
func FormatClock(seconds int) string {
	h := seconds / 3600
	m := seconds % 3600 / 60
	return fmt.Sprintf("%dh %dm", h, m)
}
