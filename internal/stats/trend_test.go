package stats

import (
	"testing"
	"time"

	"github.com/kfutrack/kfu/internal/models"
)

func TestGrowthTrendIncreasing(t *testing.T) {
	// 8 months of history: second half trains 50% more often
	var sessions []models.Session
	for daysAgo := 239; daysAgo > 120; daysAgo -= 12 { // ~10 sessions
		sessions = append(sessions, session(daysAgo, 60, models.TypeForms))
	}
	for daysAgo := 119; daysAgo > 0; daysAgo -= 8 { // ~15 sessions
		sessions = append(sessions, session(daysAgo, 60, models.TypeForms))
	}

	if got := GrowthTrend(sessions); got != TrendIncreasing {
		t.Errorf("GrowthTrend = %q, want %q", got, TrendIncreasing)
	}
}

func TestGrowthTrendDecreasing(t *testing.T) {
	var sessions []models.Session
	for daysAgo := 239; daysAgo > 120; daysAgo -= 6 {
		sessions = append(sessions, session(daysAgo, 60, models.TypeForms))
	}
	for daysAgo := 119; daysAgo > 0; daysAgo -= 15 {
		sessions = append(sessions, session(daysAgo, 60, models.TypeForms))
	}

	if got := GrowthTrend(sessions); got != TrendDecreasing {
		t.Errorf("GrowthTrend = %q, want %q", got, TrendDecreasing)
	}
}

func TestGrowthTrendStable(t *testing.T) {
	var sessions []models.Session
	for daysAgo := 239; daysAgo > 0; daysAgo -= 10 {
		sessions = append(sessions, session(daysAgo, 60, models.TypeForms))
	}

	if got := GrowthTrend(sessions); got != TrendStable {
		t.Errorf("GrowthTrend = %q, want %q", got, TrendStable)
	}
}

func TestGrowthTrendTooLittleHistory(t *testing.T) {
	sessions := []models.Session{
		session(1, 60, models.TypeForms),
		session(2, 60, models.TypeForms),
	}

	if got := GrowthTrend(sessions); got != TrendStable {
		t.Errorf("GrowthTrend = %q, want %q for tiny history", got, TrendStable)
	}
}

func TestConsistencyScoreDailyTraining(t *testing.T) {
	// Training every single day for a month: top score band
	var sessions []models.Session
	for daysAgo := 29; daysAgo >= 0; daysAgo-- {
		sessions = append(sessions, session(daysAgo, 60, models.TypeForms))
	}

	c := ConsistencyScore(sessions, testNow)
	if c.Score < 80 {
		t.Errorf("daily training score = %d, want >= 80", c.Score)
	}
	if c.Label != LabelExcellent {
		t.Errorf("label = %q, want %q", c.Label, LabelExcellent)
	}
}

func TestConsistencyScoreSparseTraining(t *testing.T) {
	// Long erratic gaps, nothing recent
	sessions := []models.Session{
		session(300, 60, models.TypeForms),
		session(220, 60, models.TypeForms),
		session(100, 60, models.TypeForms),
	}

	c := ConsistencyScore(sessions, testNow)
	if c.Score >= 40 {
		t.Errorf("sparse training score = %d, want < 40", c.Score)
	}
	if c.Label != LabelBeginner {
		t.Errorf("label = %q, want %q", c.Label, LabelBeginner)
	}
}

func TestConsistencyScoreNoHistory(t *testing.T) {
	c := ConsistencyScore(nil, testNow)
	if c.Score != 0 || c.Label != LabelBeginner {
		t.Errorf("empty history = %+v, want score 0 Beginner", c)
	}
}

func TestWeekdayBreakdown(t *testing.T) {
	// Monday sessions only, for several weeks
	monday := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC) // a Monday
	var sessions []models.Session
	for week := 0; week < 8; week++ {
		sessions = append(sessions, models.Session{
			Date:            monday.AddDate(0, 0, -7*week),
			DurationMinutes: 60,
			Type:            models.TypeForms,
		})
	}

	breakdown := WeekdayBreakdown(sessions)
	if len(breakdown) != 7 {
		t.Fatalf("expected 7 weekday entries, got %d", len(breakdown))
	}

	mon := breakdown[time.Monday]
	if mon.Sessions != 8 {
		t.Errorf("Monday sessions = %d, want 8", mon.Sessions)
	}
	if mon.AverageMinutes != 60 {
		t.Errorf("Monday average = %v, want 60", mon.AverageMinutes)
	}
	if mon.UnderTrained {
		t.Error("Monday flagged under-trained despite being the only trained day")
	}
	if !breakdown[time.Wednesday].UnderTrained {
		t.Error("Wednesday not flagged under-trained with zero sessions")
	}
}

func TestSeasonalBestAndWorstMonths(t *testing.T) {
	sessions := []models.Session{
		{Date: time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), DurationMinutes: 300, Type: models.TypeForms},
		{Date: time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), DurationMinutes: 300, Type: models.TypeForms},
		{Date: time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC), DurationMinutes: 60, Type: models.TypeForms},
	}

	report := Analyze(sessions, testNow)

	if report.BestMonth != time.March {
		t.Errorf("BestMonth = %v, want March", report.BestMonth)
	}
	if report.WorstMonth != time.June {
		t.Errorf("WorstMonth = %v, want June", report.WorstMonth)
	}
	if len(report.Seasonal) != 2 {
		t.Errorf("expected 2 seasonal entries, got %d", len(report.Seasonal))
	}
}
