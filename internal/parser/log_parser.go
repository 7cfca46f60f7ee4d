package parser

import (
	"strings"
	"time"

	"github.com/kfutrack/kfu/internal/models"
)

// ParsedSession represents a session parsed from quick-log arguments
type ParsedSession struct {
	DurationMinutes int
	Type            string
	Date            time.Time
	Notes           string
	Errors          []string
}

// ParseLogArgs extracts session fields from free-form quick-log input.
// Syntax: "45m @forms on:yesterday felt strong today"
//   - duration token: 45, 45m, 2h, 1h30m (first parseable token wins)
//   - @type: session type (@forms, @sparring, ...)
//   - on:DATE: session date (on:today, on:yesterday, on:15/03/2026)
//   - everything else becomes the notes text
func ParseLogArgs(args []string, now time.Time) ParsedSession {
	result := ParsedSession{
		Date:   midnight(now),
		Errors: []string{},
	}

	var noteWords []string
	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "@"):
			t := strings.ToLower(strings.TrimPrefix(arg, "@"))
			if models.IsValidSessionType(t) {
				result.Type = t
			} else {
				result.Errors = append(result.Errors,
					"Unknown type '"+t+"'. Use: "+strings.Join(models.SessionTypes, ", "))
			}

		case strings.HasPrefix(strings.ToLower(arg), "on:"):
			date, err := ParseDate(arg[3:], now)
			if err != nil {
				result.Errors = append(result.Errors, "Invalid date '"+arg[3:]+"': "+err.Error())
			} else {
				result.Date = date
			}

		default:
			// First token that parses as a duration claims the duration slot
			if result.DurationMinutes == 0 {
				if minutes, err := ParseDuration(arg); err == nil {
					result.DurationMinutes = minutes
					continue
				}
			}
			noteWords = append(noteWords, arg)
		}
	}

	result.Notes = strings.Join(noteWords, " ")
	return result
}
