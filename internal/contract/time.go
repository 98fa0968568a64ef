package contract

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TimeFormat is the default time representation.
var TimeFormat = time.RFC3339

// dateLayouts are tried in order when parsing absolute dates.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Define the regular expression to capture "N [units] ago"
// e.g., "2 years ago", "3 months ago", "1 week ago".
var relativeTimeRe = regexp.MustCompile(`^(\d+)\s+(year|month|week|day|hour|minute)s?\s+ago$`)

// ParseDate converts a date string into a time.Time. It accepts common
// absolute layouts (ISO date, RFC3339) and falls back to relative forms like
// "2 weeks ago" anchored on now.
func ParseDate(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return time.Time{}, errors.New("empty date")
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return parseRelativeTime(s, now)
}

// parseRelativeTime converts strings like "2 years ago" into a time.Time in the past.
func parseRelativeTime(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	matches := relativeTimeRe.FindStringSubmatch(s)

	if len(matches) == 0 {
		return time.Time{}, fmt.Errorf("invalid date format: %s", s)
	}

	value, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch unit {
	case "year":
		return now.AddDate(-value, 0, 0), nil
	case "month":
		return now.AddDate(0, -value, 0), nil
	case "week":
		return now.Add(time.Duration(-value) * 7 * 24 * time.Hour), nil
	case "day":
		return now.Add(time.Duration(-value) * 24 * time.Hour), nil
	case "hour":
		return now.Add(time.Duration(-value) * time.Hour), nil
	case "minute":
		return now.Add(time.Duration(-value) * time.Minute), nil
	default:
		return time.Time{}, fmt.Errorf("unsupported time unit: %s", unit)
	}
}

// Define the regular expression to capture "N [units]".
var animDurationRe = regexp.MustCompile(`^(\d+)\s+(year|month|week|day|hour|minute|second)s?$`)

// ParseAnimationDuration converts strings like "30s", "2 minutes" or "1 hour"
// into a time.Duration for the duration-based playback mode. It first tries
// Go's built-in time.ParseDuration, then falls back to human-readable forms.
func ParseAnimationDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)

	if duration, err := time.ParseDuration(s); err == nil {
		if duration <= 0 {
			return 0, errors.New("animation duration must be positive")
		}
		return duration, nil
	}

	s = strings.ToLower(s)
	matches := animDurationRe.FindStringSubmatch(s)
	if len(matches) == 0 {
		return 0, fmt.Errorf("invalid duration format: %s", s)
	}

	value, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	var totalDuration time.Duration
	switch unit {
	case "year":
		totalDuration = time.Duration(value) * 365 * 24 * time.Hour
	case "month":
		totalDuration = time.Duration(value) * 30 * 24 * time.Hour
	case "week":
		totalDuration = time.Duration(value) * 7 * 24 * time.Hour
	case "day":
		totalDuration = time.Duration(value) * 24 * time.Hour
	case "hour":
		totalDuration = time.Duration(value) * time.Hour
	case "minute":
		totalDuration = time.Duration(value) * time.Minute
	case "second":
		totalDuration = time.Duration(value) * time.Second
	default:
		return 0, errors.New("unsupported time unit")
	}

	if totalDuration == 0 {
		return 0, errors.New("zero duration is not useful")
	}
	return totalDuration, nil
}

// DaysBetween returns the whole days from start to end, truncating toward
// zero. Negative when end precedes start.
func DaysBetween(start, end time.Time) int {
	return int(end.Sub(start) / (24 * time.Hour))
}
