// Package predict forecasts time-to-rank from the historical training rate.
package predict

import (
	"math"
	"time"

	"github.com/kfutrack/kfu/internal/belt"
	"github.com/kfutrack/kfu/internal/models"
	"github.com/kfutrack/kfu/internal/stats"
)

// Report statuses. Anything other than StatusOK carries no predictions.
type Status string

const (
	StatusOK           Status = "ok"
	StatusNoData       Status = "no_data"      // no training rate at all: start training
	StatusInsufficient Status = "insufficient" // fewer than 3 sessions logged
	StatusMaxRank      Status = "max_rank"     // already at the ladder terminal
)

// minSessionsForForecast is the floor below which no numeric forecast is
// produced, only an insufficient-data result.
const minSessionsForForecast = 3

// Prediction is the forecast for one future rank. Ephemeral, never persisted.
type Prediction struct {
	TargetBelt    string    `json:"target_belt"`
	TargetTitle   string    `json:"target_title"`
	HoursNeeded   float64   `json:"hours_needed"`
	MonthsNeeded  int       `json:"months_needed"` // cumulative from now
	EstimatedDate time.Time `json:"estimated_date"`
	Confidence    int       `json:"confidence"` // 0-100
	ReadyNow      bool      `json:"ready_now"`
}

// Report is the predictor output for the full remaining ladder.
type Report struct {
	Status      Status       `json:"status"`
	MonthlyRate float64      `json:"monthly_rate"` // hours per month
	Predictions []Prediction `json:"predictions,omitempty"`
}

// decayStep maps a cumulative-months horizon to a confidence multiplier.
// Explicit table rather than a formula so the schedule is auditable.
type decayStep struct {
	maxMonths int
	factor    float64
}

var decayTable = []decayStep{
	{6, 1.00},
	{12, 0.90},
	{24, 0.80},
	{36, 0.70},
}

// decayBeyondTable applies to horizons past the last breakpoint.
const decayBeyondTable = 0.60

// confidenceFloor is the minimum confidence ever reported for a reachable rank.
const confidenceFloor = 15

// Forecast produces per-rank predictions for every rank after the current
// one, in ladder order. Pure given now; reads no clock and writes nothing.
func Forecast(sessions []models.Session, agg stats.Aggregate, ledger *belt.Ledger, state *models.BeltState, now time.Time) Report {
	if ledger.Terminal(state.CurrentBelt) {
		return Report{Status: StatusMaxRank}
	}

	rate := monthlyRate(sessions, agg, now)
	if rate == 0 {
		return Report{Status: StatusNoData}
	}
	if len(sessions) < minSessionsForForecast {
		return Report{Status: StatusInsufficient, MonthlyRate: rate}
	}

	base := baseConfidence(sessions, now)

	report := Report{Status: StatusOK, MonthlyRate: rate}
	cumulativeMonths := 0
	for _, rank := range ledger.RanksAfter(state.CurrentBelt) {
		p := Prediction{
			TargetBelt:  rank.Name,
			TargetTitle: rank.Title,
			HoursNeeded: math.Max(0, rank.HoursThreshold()-agg.TotalHours),
		}

		if p.HoursNeeded == 0 {
			p.ReadyNow = true
			p.Confidence = 100
			p.EstimatedDate = now
		} else {
			months := int(math.Ceil(p.HoursNeeded / rate))
			cumulativeMonths += months
			p.MonthsNeeded = cumulativeMonths
			p.EstimatedDate = now.AddDate(0, cumulativeMonths, 0)
			p.Confidence = confidenceAt(base, cumulativeMonths)
		}

		report.Predictions = append(report.Predictions, p)
	}

	return report
}

// monthlyRate estimates training hours per month from the trailing 90 days,
// falling back to the lifetime average when the window is empty. Never
// returns NaN or Inf; zero means no usable data.
func monthlyRate(sessions []models.Session, agg stats.Aggregate, now time.Time) float64 {
	windowStart := now.AddDate(0, 0, -90)

	recentMinutes := 0
	var firstDate time.Time
	for _, s := range sessions {
		if s.DurationMinutes <= 0 || s.Type == "" {
			continue
		}
		if firstDate.IsZero() || s.Date.Before(firstDate) {
			firstDate = s.Date
		}
		if !s.Date.Before(windowStart) && !s.Date.After(now) {
			recentMinutes += s.DurationMinutes
		}
	}

	if recentMinutes > 0 {
		return float64(recentMinutes) / 60.0 / 3.0
	}

	if agg.TotalHours == 0 || firstDate.IsZero() {
		return 0
	}

	// Lifetime fallback with a one-month minimum denominator
	months := now.Sub(firstDate).Hours() / 24 / 30
	if months < 1 {
		months = 1
	}
	return agg.TotalHours / months
}

// baseConfidence scales session count and trailing-30-day frequency into
// the [20,90] band.
func baseConfidence(sessions []models.Session, now time.Time) float64 {
	monthStart := now.AddDate(0, 0, -30)
	recent := 0
	for _, s := range sessions {
		if !s.Date.Before(monthStart) && !s.Date.After(now) {
			recent++
		}
	}

	raw := float64(len(sessions))*1.5 + float64(recent)*2.5
	return 20 + math.Min(70, raw)
}

// confidenceAt applies the horizon decay table to the base confidence.
func confidenceAt(base float64, cumulativeMonths int) int {
	factor := decayBeyondTable
	for _, step := range decayTable {
		if cumulativeMonths <= step.maxMonths {
			factor = step.factor
			break
		}
	}

	c := int(math.Round(base * factor))
	if c < confidenceFloor {
		c = confidenceFloor
	}
	if c > 100 {
		c = 100
	}
	return c
}
