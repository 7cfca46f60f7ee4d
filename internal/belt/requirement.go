package belt

import (
	"fmt"
	"time"

	"github.com/kfutrack/kfu/internal/models"
	"github.com/kfutrack/kfu/internal/stats"
)

// Requirement kinds known to the evaluator registry.
const (
	KindHours             = "hours"
	KindWeeklyConsistency = "weekly_consistency"
	KindTypeVariety       = "type_variety"
)

// trailingWeeks is the window inspected by the weekly consistency check.
const trailingWeeks = 12

// Snapshot is the evaluated view of the training history that requirements
// are checked against. Built once per progression update.
type Snapshot struct {
	TotalHours    float64
	ActiveWeeks   int // distinct ISO weeks with a session, trailing 12 weeks
	DistinctTypes int
}

// NewSnapshot derives a Snapshot from the session history and aggregate
// statistics, with the observation time passed in explicitly.
func NewSnapshot(sessions []models.Session, agg stats.Aggregate, now time.Time) Snapshot {
	windowStart := now.AddDate(0, 0, -7*trailingWeeks)

	weeks := map[string]bool{}
	types := map[string]bool{}
	for _, s := range sessions {
		if s.DurationMinutes <= 0 || s.Type == "" {
			continue
		}
		types[s.Type] = true
		if !s.Date.Before(windowStart) && !s.Date.After(now) {
			year, week := s.Date.ISOWeek()
			weeks[fmt.Sprintf("%d-W%02d", year, week)] = true
		}
	}

	return Snapshot{
		TotalHours:    agg.TotalHours,
		ActiveWeeks:   len(weeks),
		DistinctTypes: len(types),
	}
}

// evaluatorFunc checks one requirement against a snapshot.
type evaluatorFunc func(req Requirement, snap Snapshot) bool

// evaluators is the capability-keyed dispatch table. New requirement kinds
// register here; the advance loop never changes.
var evaluators = map[string]evaluatorFunc{
	KindHours: func(req Requirement, snap Snapshot) bool {
		return snap.TotalHours >= req.Hours
	},
	KindWeeklyConsistency: func(req Requirement, snap Snapshot) bool {
		return snap.ActiveWeeks >= req.Weeks
	},
	KindTypeVariety: func(req Requirement, snap Snapshot) bool {
		return snap.DistinctTypes >= req.Types
	},
}

// Satisfied reports whether every requirement of the rank passes against the
// snapshot. Unknown kinds fail closed (validation rejects them at load, so
// this only matters for hand-built ledgers in tests).
func (r Rank) Satisfied(snap Snapshot) bool {
	for _, req := range r.Requirements {
		eval, ok := evaluators[req.Kind]
		if !ok || !eval(req, snap) {
			return false
		}
	}
	return true
}
