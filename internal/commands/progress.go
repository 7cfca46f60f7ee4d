package commands

import (
	"fmt"
	"time"

	"github.com/kfutrack/kfu/internal/belt"
	"github.com/kfutrack/kfu/internal/db"
	"github.com/kfutrack/kfu/internal/stats"
)

// runProgression is the recompute pipeline triggered after every session
// mutation: recompute aggregate stats, advance the belt ladder against them,
// persist the new state, and print a celebration line per unlocked rank.
func runProgression(now time.Time) error {
	sessions, err := db.GetSessions()
	if err != nil {
		return fmt.Errorf("failed to load sessions: %w", err)
	}

	ledger, err := belt.DefaultLedger()
	if err != nil {
		return err
	}

	state, err := db.GetBeltState(ledger.Ranks[0].Name)
	if err != nil {
		return fmt.Errorf("failed to load belt state: %w", err)
	}

	agg := stats.Compute(sessions, now)
	snap := belt.NewSnapshot(sessions, agg, now)

	engine := belt.NewEngine(ledger)
	engine.Subscribe(func(rank belt.Rank) {
		fmt.Printf("🥋 Belt unlocked: %s!\n", rank.Title)
	})

	newly, err := engine.Advance(state, snap)
	if err != nil {
		return err
	}

	if len(newly) > 0 {
		if err := db.SaveBeltState(state); err != nil {
			return fmt.Errorf("failed to save belt state: %w", err)
		}
	}

	return nil
}
