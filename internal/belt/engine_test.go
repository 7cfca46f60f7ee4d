package belt

import (
	"testing"
	"time"

	"github.com/kfutrack/kfu/internal/models"
	"github.com/kfutrack/kfu/internal/stats"
)

// testLadder is a small hours-only ladder for engine tests.
const testLadder = `
ranks:
  - name: white
    title: White Belt
  - name: yellow
    title: Yellow Belt
    requirements:
      - kind: hours
        hours: 10
  - name: green
    title: Green Belt
    requirements:
      - kind: hours
        hours: 60
  - name: black
    title: Black Belt
    requirements:
      - kind: hours
        hours: 100
`

func testEngine(t *testing.T) *Engine {
	t.Helper()
	ledger, err := ParseLedger([]byte(testLadder))
	if err != nil {
		t.Fatalf("parse test ladder: %v", err)
	}
	return NewEngine(ledger)
}

func freshState() *models.BeltState {
	return &models.BeltState{CurrentBelt: "white", UnlockedBelts: "white"}
}

func TestAdvanceSingleRank(t *testing.T) {
	engine := testEngine(t)
	state := freshState()

	newly, err := engine.Advance(state, Snapshot{TotalHours: 15})
	if err != nil {
		t.Fatal(err)
	}

	if len(newly) != 1 || newly[0].Name != "yellow" {
		t.Fatalf("unlocked %v, want [yellow]", newly)
	}
	if state.CurrentBelt != "yellow" {
		t.Errorf("current = %q, want yellow", state.CurrentBelt)
	}
	if err := engine.CheckState(state); err != nil {
		t.Errorf("prefix invariant violated: %v", err)
	}
}

func TestAdvanceCascadesMultipleRanks(t *testing.T) {
	engine := testEngine(t)
	state := freshState()

	// A large imported history can satisfy several thresholds at once
	newly, err := engine.Advance(state, Snapshot{TotalHours: 120})
	if err != nil {
		t.Fatal(err)
	}

	if len(newly) != 3 {
		t.Fatalf("unlocked %d ranks, want 3", len(newly))
	}
	if state.CurrentBelt != "black" {
		t.Errorf("current = %q, want black", state.CurrentBelt)
	}
	if got := state.UnlockedBelts; got != "white,yellow,green,black" {
		t.Errorf("unlocked = %q", got)
	}
	if err := engine.CheckState(state); err != nil {
		t.Errorf("prefix invariant violated: %v", err)
	}
}

func TestAdvanceIdempotent(t *testing.T) {
	engine := testEngine(t)
	state := freshState()

	engine.Advance(state, Snapshot{TotalHours: 15})
	newly, err := engine.Advance(state, Snapshot{TotalHours: 15})
	if err != nil {
		t.Fatal(err)
	}

	if len(newly) != 0 {
		t.Errorf("second advance with unchanged stats unlocked %v", newly)
	}
	if state.CurrentBelt != "yellow" {
		t.Errorf("current = %q, want yellow", state.CurrentBelt)
	}
}

func TestAdvanceExactThresholdBoundary(t *testing.T) {
	engine := testEngine(t)

	// Exactly at the 60h threshold: unlocks
	state := freshState()
	engine.Advance(state, Snapshot{TotalHours: 60})
	if state.CurrentBelt != "green" {
		t.Errorf("at exactly 60h current = %q, want green", state.CurrentBelt)
	}

	// Just below: does not
	state = freshState()
	engine.Advance(state, Snapshot{TotalHours: 59.99})
	if state.CurrentBelt != "yellow" {
		t.Errorf("at 59.99h current = %q, want yellow", state.CurrentBelt)
	}
}

func TestAdvanceMonotonic(t *testing.T) {
	engine := testEngine(t)
	state := freshState()

	engine.Advance(state, Snapshot{TotalHours: 65})
	before := engine.Ledger().IndexOf(state.CurrentBelt)

	// More hours never decreases the rank index
	engine.Advance(state, Snapshot{TotalHours: 80})
	after := engine.Ledger().IndexOf(state.CurrentBelt)

	if after < before {
		t.Errorf("rank index decreased from %d to %d", before, after)
	}
}

func TestAdvanceStopsAtTerminal(t *testing.T) {
	engine := testEngine(t)
	state := freshState()

	engine.Advance(state, Snapshot{TotalHours: 1000})
	if state.CurrentBelt != "black" {
		t.Fatalf("current = %q, want black", state.CurrentBelt)
	}

	// Staying at the terminal rank is valid
	newly, err := engine.Advance(state, Snapshot{TotalHours: 5000})
	if err != nil {
		t.Fatal(err)
	}
	if len(newly) != 0 {
		t.Errorf("advanced past terminal rank: %v", newly)
	}
}

func TestAdvanceNotifiesObserversInOrder(t *testing.T) {
	engine := testEngine(t)
	state := freshState()

	var seen []string
	engine.Subscribe(func(rank Rank) {
		seen = append(seen, rank.Name)
	})
	engine.Subscribe(func(rank Rank) {
		seen = append(seen, "second:"+rank.Name)
	})

	engine.Advance(state, Snapshot{TotalHours: 70})

	want := []string{"yellow", "second:yellow", "green", "second:green"}
	if len(seen) != len(want) {
		t.Fatalf("notifications %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("notifications %v, want %v", seen, want)
		}
	}
}

func TestAdvanceUnknownCurrentBelt(t *testing.T) {
	engine := testEngine(t)
	state := &models.BeltState{CurrentBelt: "plaid", UnlockedBelts: "plaid"}

	if _, err := engine.Advance(state, Snapshot{TotalHours: 100}); err == nil {
		t.Fatal("expected error for unknown current belt")
	}
}

func TestSnapshotRequirementInputs(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	var sessions []models.Session
	// 5 distinct weeks of training in the trailing 12 weeks, 2 types
	for week := 0; week < 5; week++ {
		sessions = append(sessions, models.Session{
			Date:            now.AddDate(0, 0, -7*week),
			DurationMinutes: 60,
			Type:            models.TypeForms,
		})
	}
	sessions = append(sessions, models.Session{
		Date:            now.AddDate(0, 0, -2),
		DurationMinutes: 30,
		Type:            models.TypeSparring,
	})
	// Old session outside the weekly window still counts for variety
	sessions = append(sessions, models.Session{
		Date:            now.AddDate(-1, 0, 0),
		DurationMinutes: 30,
		Type:            models.TypeWeapons,
	})

	agg := stats.Compute(sessions, now)
	snap := NewSnapshot(sessions, agg, now)

	if snap.ActiveWeeks != 5 {
		t.Errorf("ActiveWeeks = %d, want 5", snap.ActiveWeeks)
	}
	if snap.DistinctTypes != 3 {
		t.Errorf("DistinctTypes = %d, want 3", snap.DistinctTypes)
	}
	if snap.TotalHours != agg.TotalHours {
		t.Errorf("TotalHours = %v, want %v", snap.TotalHours, agg.TotalHours)
	}
}

func TestRequirementDispatch(t *testing.T) {
	snap := Snapshot{TotalHours: 50, ActiveWeeks: 4, DistinctTypes: 2}

	tests := []struct {
		name string
		rank Rank
		want bool
	}{
		{"hours pass", Rank{Requirements: []Requirement{{Kind: KindHours, Hours: 50}}}, true},
		{"hours fail", Rank{Requirements: []Requirement{{Kind: KindHours, Hours: 50.01}}}, false},
		{"weeks pass", Rank{Requirements: []Requirement{{Kind: KindWeeklyConsistency, Weeks: 4}}}, true},
		{"weeks fail", Rank{Requirements: []Requirement{{Kind: KindWeeklyConsistency, Weeks: 5}}}, false},
		{"variety pass", Rank{Requirements: []Requirement{{Kind: KindTypeVariety, Types: 2}}}, true},
		{"variety fail", Rank{Requirements: []Requirement{{Kind: KindTypeVariety, Types: 3}}}, false},
		{"all must pass", Rank{Requirements: []Requirement{
			{Kind: KindHours, Hours: 10},
			{Kind: KindTypeVariety, Types: 3},
		}}, false},
		{"unknown kind fails closed", Rank{Requirements: []Requirement{{Kind: "moon_phase"}}}, false},
		{"no requirements", Rank{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rank.Satisfied(snap); got != tt.want {
				t.Errorf("Satisfied = %v, want %v", got, tt.want)
			}
		})
	}
}
