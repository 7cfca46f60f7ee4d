package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/kfutrack/kfu/internal/models"
)

// ParseDuration parses a session duration into minutes.
// Supported formats:
// - bare minutes (e.g., "45")
// - minutes with suffix (e.g., "45m")
// - hours (e.g., "2h")
// - hours and minutes (e.g., "1h30m")
func ParseDuration(input string) (int, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return 0, fmt.Errorf("duration is required")
	}

	// Bare minutes
	if minutes, err := strconv.Atoi(input); err == nil {
		return checkDurationRange(minutes)
	}

	durationRegex := regexp.MustCompile(`^(?:(\d+)h)?(?:(\d+)m)?$`)
	matches := durationRegex.FindStringSubmatch(input)
	if matches == nil || (matches[1] == "" && matches[2] == "") {
		return 0, fmt.Errorf("invalid duration format. Use: 45, 45m, 2h, or 1h30m")
	}

	minutes := 0
	if matches[1] != "" {
		hours, err := strconv.Atoi(matches[1])
		if err != nil {
			return 0, fmt.Errorf("invalid hours")
		}
		minutes += hours * 60
	}
	if matches[2] != "" {
		m, err := strconv.Atoi(matches[2])
		if err != nil {
			return 0, fmt.Errorf("invalid minutes")
		}
		minutes += m
	}

	return checkDurationRange(minutes)
}

func checkDurationRange(minutes int) (int, error) {
	if minutes < models.MinSessionMinutes || minutes > models.MaxSessionMinutes {
		return 0, fmt.Errorf("duration must be between %d and %d minutes",
			models.MinSessionMinutes, models.MaxSessionMinutes)
	}
	return minutes, nil
}

// FormatMinutes formats a minute count in a human-readable way
func FormatMinutes(minutes int) string {
	if minutes >= 60 {
		if minutes%60 == 0 {
			return fmt.Sprintf("%dh", minutes/60)
		}
		return fmt.Sprintf("%dh%02dm", minutes/60, minutes%60)
	}
	return fmt.Sprintf("%dm", minutes)
}

// FormatHours formats fractional hours for display
func FormatHours(hours float64) string {
	return fmt.Sprintf("%.1fh", hours)
}
