package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ParseDate parses a session date relative to now.
// Supported formats:
// - "today", "yesterday"
// - dd/mm/yyyy (e.g., "15/03/2026")
// - X days ago (e.g., "3 days ago")
// The result is always normalized to midnight local time; future dates are
// rejected since sessions record what already happened.
func ParseDate(input string, now time.Time) (time.Time, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	today := midnight(now)

	switch input {
	case "", "today":
		return today, nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	}

	if date, err := parseDateFormat(input, now); err == nil {
		if date.After(today) {
			return time.Time{}, fmt.Errorf("session date cannot be in the future")
		}
		return date, nil
	}

	if date, err := parseDaysAgo(input, today); err == nil {
		return date, nil
	}

	return time.Time{}, fmt.Errorf("invalid date format. Use: today, yesterday, dd/mm/yyyy, or X days ago")
}

// parseDateFormat parses dd/mm/yyyy format
func parseDateFormat(input string, now time.Time) (time.Time, error) {
	dateRegex := regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	matches := dateRegex.FindStringSubmatch(input)

	if len(matches) != 4 {
		return time.Time{}, fmt.Errorf("invalid date format")
	}

	day, _ := strconv.Atoi(matches[1])
	month, _ := strconv.Atoi(matches[2])
	year, _ := strconv.Atoi(matches[3])

	if day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("day must be between 1 and 31")
	}
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("month must be between 1 and 12")
	}
	if year < 2000 || year > now.Year() {
		return time.Time{}, fmt.Errorf("year must be between 2000 and %d", now.Year())
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location())

	// Check if date is valid (handles leap years, etc.)
	if date.Day() != day || date.Month() != time.Month(month) || date.Year() != year {
		return time.Time{}, fmt.Errorf("invalid date")
	}

	return date, nil
}

// parseDaysAgo parses "X days ago" style input
func parseDaysAgo(input string, today time.Time) (time.Time, error) {
	agoRegex := regexp.MustCompile(`^(\d+)\s+(day|days)\s+ago$`)
	matches := agoRegex.FindStringSubmatch(input)

	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("invalid relative date format")
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil || amount < 1 || amount > 3650 {
		return time.Time{}, fmt.Errorf("days must be between 1 and 3650")
	}

	return today.AddDate(0, 0, -amount), nil
}

// FormatSessionDate formats a session date for display
func FormatSessionDate(date time.Time, now time.Time) string {
	today := midnight(now)
	day := midnight(date)
	daysDiff := int(today.Sub(day).Hours() / 24)

	dateStr := date.Format("02/01/2006")

	if daysDiff == 0 {
		return fmt.Sprintf("today (%s)", dateStr)
	} else if daysDiff == 1 {
		return fmt.Sprintf("yesterday (%s)", dateStr)
	} else if daysDiff > 1 && daysDiff <= 7 {
		return fmt.Sprintf("%s (%d days ago)", dateStr, daysDiff)
	}
	return dateStr
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
