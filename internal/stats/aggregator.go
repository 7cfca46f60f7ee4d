// Package stats derives aggregate statistics and trends from the session log.
// Everything here is a pure function of the session slice plus an explicit
// "now"; nothing reads the system clock or touches storage.
package stats

import (
	"time"

	"github.com/kfutrack/kfu/internal/models"
)

// Aggregate holds the derived statistics for the full session history.
// It is a cache: always recomputed in full, always safe to discard.
type Aggregate struct {
	TotalSessions         int            `json:"total_sessions"`
	TotalHours            float64        `json:"total_hours"`
	WeeklyHours           float64        `json:"weekly_hours"`  // trailing 7 days from now
	MonthlyHours          float64        `json:"monthly_hours"` // trailing 30 days from now
	AverageSessionMinutes float64        `json:"average_session_minutes"`
	TypeDistribution      map[string]int `json:"type_distribution"` // type -> cumulative minutes
}

// Compute reduces the session list into an Aggregate. Deterministic for a
// given now: the trailing 7/30-day windows are measured backwards from it.
// Malformed sessions (non-positive duration or empty type) are skipped.
func Compute(sessions []models.Session, now time.Time) Aggregate {
	agg := Aggregate{
		TypeDistribution: make(map[string]int),
	}

	weekStart := now.AddDate(0, 0, -7)
	monthStart := now.AddDate(0, 0, -30)

	totalMinutes := 0
	weekMinutes := 0
	monthMinutes := 0

	for _, s := range sessions {
		if s.DurationMinutes <= 0 || s.Type == "" {
			continue
		}

		agg.TotalSessions++
		totalMinutes += s.DurationMinutes
		agg.TypeDistribution[s.Type] += s.DurationMinutes

		if !s.Date.Before(weekStart) && !s.Date.After(now) {
			weekMinutes += s.DurationMinutes
		}
		if !s.Date.Before(monthStart) && !s.Date.After(now) {
			monthMinutes += s.DurationMinutes
		}
	}

	agg.TotalHours = float64(totalMinutes) / 60.0
	agg.WeeklyHours = float64(weekMinutes) / 60.0
	agg.MonthlyHours = float64(monthMinutes) / 60.0
	if agg.TotalSessions > 0 {
		agg.AverageSessionMinutes = float64(totalMinutes) / float64(agg.TotalSessions)
	}

	return agg
}
