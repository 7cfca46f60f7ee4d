package stats

import (
	"math"
	"sort"
	"time"

	"github.com/kfutrack/kfu/internal/models"
)

// Growth trend classifications
const (
	TrendIncreasing = "increasing"
	TrendStable     = "stable"
	TrendDecreasing = "decreasing"
)

// Consistency labels, from fixed score breakpoints
const (
	LabelBeginner  = "Beginner"
	LabelFair      = "Fair"
	LabelGood      = "Good"
	LabelExcellent = "Excellent"
)

// growthThreshold is the relative frequency change needed before the trend
// is classified as anything other than stable.
const growthThreshold = 0.20

// WeekdayStats holds the per-weekday training distribution.
type WeekdayStats struct {
	Weekday        time.Weekday `json:"weekday"`
	Sessions       int          `json:"sessions"`
	AverageMinutes float64      `json:"average_minutes"`
	UnderTrained   bool         `json:"under_trained"`
}

// Consistency combines gap variance and recent frequency into a 0-100 score.
type Consistency struct {
	Score int    `json:"score"`
	Label string `json:"label"`
}

// SeasonalMonth holds cumulative hours for one calendar month.
type SeasonalMonth struct {
	Month time.Month `json:"month"`
	Hours float64    `json:"hours"`
}

// TrendReport is the full output of the trend analyzer.
type TrendReport struct {
	Weekdays    []WeekdayStats  `json:"weekdays"`
	Consistency Consistency     `json:"consistency"`
	Growth      string          `json:"growth"`
	Seasonal    []SeasonalMonth `json:"seasonal"`
	BestMonth   time.Month      `json:"best_month"`
	WorstMonth  time.Month      `json:"worst_month"`
}

// Analyze computes all four trend views from the session list.
func Analyze(sessions []models.Session, now time.Time) TrendReport {
	return TrendReport{
		Weekdays:    WeekdayBreakdown(sessions),
		Consistency: ConsistencyScore(sessions, now),
		Growth:      GrowthTrend(sessions),
		Seasonal:    seasonalReport(sessions),
	}.withBestWorst()
}

func (r TrendReport) withBestWorst() TrendReport {
	best, worst := -1.0, math.MaxFloat64
	for _, m := range r.Seasonal {
		if m.Hours > best {
			best = m.Hours
			r.BestMonth = m.Month
		}
		if m.Hours < worst && m.Hours > 0 {
			worst = m.Hours
			r.WorstMonth = m.Month
		}
	}
	return r
}

// WeekdayBreakdown returns session count and average duration for each of
// the 7 weekdays. A day is flagged under-trained when its session count is
// below half the mean across trained days.
func WeekdayBreakdown(sessions []models.Session) []WeekdayStats {
	counts := [7]int{}
	minutes := [7]int{}

	total := 0
	for _, s := range sessions {
		wd := s.Date.Weekday()
		counts[wd]++
		minutes[wd] += s.DurationMinutes
		total++
	}

	mean := float64(total) / 7.0

	out := make([]WeekdayStats, 7)
	for wd := 0; wd < 7; wd++ {
		ws := WeekdayStats{Weekday: time.Weekday(wd), Sessions: counts[wd]}
		if counts[wd] > 0 {
			ws.AverageMinutes = float64(minutes[wd]) / float64(counts[wd])
		}
		// Only meaningful once there is some history to compare against
		if total >= 7 && float64(counts[wd]) < mean/2 {
			ws.UnderTrained = true
		}
		out[wd] = ws
	}

	return out
}

// ConsistencyScore maps inter-session gap variance plus trailing-30-day
// frequency onto a 0-100 score and a qualitative label.
func ConsistencyScore(sessions []models.Session, now time.Time) Consistency {
	if len(sessions) < 2 {
		return Consistency{Score: 0, Label: LabelBeginner}
	}

	days := sessionDays(sessions)

	// Variance of gaps between consecutive training days
	var gaps []float64
	for i := 1; i < len(days); i++ {
		gaps = append(gaps, days[i].Sub(days[i-1]).Hours()/24)
	}
	stddev := stdDev(gaps)

	// Regularity: perfect daily training scores 50, long erratic gaps decay
	// towards 0
	regularity := 50.0 / (1.0 + stddev/4.0)

	// Frequency: trailing 30 days, capped at 50
	monthStart := now.AddDate(0, 0, -30)
	recent := 0
	for _, s := range sessions {
		if !s.Date.Before(monthStart) && !s.Date.After(now) {
			recent++
		}
	}
	frequency := math.Min(50, float64(recent)*4)

	score := int(math.Round(regularity + frequency))
	if score > 100 {
		score = 100
	}

	return Consistency{Score: score, Label: consistencyLabel(score)}
}

func consistencyLabel(score int) string {
	switch {
	case score < 40:
		return LabelBeginner
	case score < 60:
		return LabelFair
	case score < 80:
		return LabelGood
	default:
		return LabelExcellent
	}
}

// GrowthTrend compares per-day session frequency of the chronological first
// half of history against the second half, at a +/-20% change threshold.
func GrowthTrend(sessions []models.Session) string {
	if len(sessions) < 4 {
		return TrendStable
	}

	days := sessionDays(sessions)
	first, last := days[0], days[len(days)-1]
	span := last.Sub(first)
	if span < 48*time.Hour {
		return TrendStable
	}

	mid := first.Add(span / 2)

	firstHalf, secondHalf := 0, 0
	for _, s := range sessions {
		if s.Date.Before(mid) {
			firstHalf++
		} else {
			secondHalf++
		}
	}

	// Both halves cover the same span, so raw counts compare directly
	if firstHalf == 0 {
		return TrendIncreasing
	}

	change := (float64(secondHalf) - float64(firstHalf)) / float64(firstHalf)
	switch {
	case change > growthThreshold:
		return TrendIncreasing
	case change < -growthThreshold:
		return TrendDecreasing
	default:
		return TrendStable
	}
}

// seasonalReport sums hours per calendar month across the whole history.
func seasonalReport(sessions []models.Session) []SeasonalMonth {
	minutes := map[time.Month]int{}
	for _, s := range sessions {
		minutes[s.Date.Month()] += s.DurationMinutes
	}

	var out []SeasonalMonth
	for m := time.January; m <= time.December; m++ {
		if minutes[m] == 0 {
			continue
		}
		out = append(out, SeasonalMonth{Month: m, Hours: float64(minutes[m]) / 60.0})
	}
	return out
}

// sessionDays returns the session dates sorted ascending.
func sessionDays(sessions []models.Session) []time.Time {
	days := make([]time.Time, 0, len(sessions))
	for _, s := range sessions {
		days = append(days, s.Day())
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

func stdDev(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	mean := 0.0
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))

	variance := 0.0
	for _, x := range xs {
		variance += (x - mean) * (x - mean)
	}
	variance /= float64(len(xs))

	return math.Sqrt(variance)
}
