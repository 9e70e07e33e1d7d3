package timeclock

import (
	"regexp"
	"strconv"
	"strings"
)

// timeRegex matches 24-hour HH:MM, hours 00-23, minutes 00-59.
var timeRegex = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// IsValidTime reports whether s is a 24-hour HH:MM time string.
func IsValidTime(s string) bool {
	return timeRegex.MatchString(s)
}

// MinutesOfDay converts an HH:MM string to minutes since midnight.
// The caller is expected to have validated the string first.
func MinutesOfDay(s string) int {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	return h*60 + m
}

// ComputeHours returns the worked hours between clockIn and clockOut minus
// breakMinutes. If clockOut is at or before clockIn the shift is treated as
// crossing midnight, so a zero-length span counts as a full 24-hour shift.
// Returns 0 when either time is absent, and never goes negative even when the
// break exceeds the span.
func ComputeHours(clockIn, clockOut string, breakMinutes int) float64 {
	if clockIn == "" || clockOut == "" {
		return 0
	}

	in := MinutesOfDay(clockIn)
	out := MinutesOfDay(clockOut)

	// Overnight shift: clock out is earlier than (or equal to) clock in.
	if out <= in {
		out += 24 * 60
	}

	total := out - in - breakMinutes
	if total < 0 {
		return 0
	}
	return float64(total) / 60
}
