package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kfutrack/kfu/internal/belt"
	"github.com/kfutrack/kfu/internal/db"
	"github.com/kfutrack/kfu/internal/parser"
	"github.com/kfutrack/kfu/internal/stats"
	"github.com/kfutrack/kfu/internal/tui"
)

var beltCmd = &cobra.Command{
	Use:   "belt",
	Short: "Show belt rank and progress",
	Long:  "Show the current belt, the unlocked ladder, and progress towards the next rank. Use --ui for the animated dashboard.",
	Run: func(cmd *cobra.Command, args []string) {
		initDB()
		now := time.Now()

		// Make sure the displayed rank reflects the latest sessions
		if err := runProgression(now); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		sessions, err := db.GetSessions()
		if err != nil {
			fmt.Printf("Error fetching sessions: %v\n", err)
			return
		}

		ledger, err := belt.DefaultLedger()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		state, err := db.GetBeltState(ledger.Ranks[0].Name)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if useUI, _ := cmd.Flags().GetBool("ui"); useUI {
			if err := tui.RunBeltDashboardTUI(); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		agg := stats.Compute(sessions, now)
		snap := belt.NewSnapshot(sessions, agg, now)

		current, _ := ledger.RankByName(state.CurrentBelt)
		fmt.Printf("🥋 Current belt: %s\n", current.Title)
		fmt.Println()

		// Ladder with unlock markers
		unlocked := map[string]bool{}
		for _, name := range state.UnlockedList() {
			unlocked[name] = true
		}
		for _, rank := range ledger.Ranks {
			marker := "  "
			if unlocked[rank.Name] {
				marker = "✅"
			}
			fmt.Printf("  %s %-24s %s\n", marker, rank.Title, requirementSummary(rank))
		}

		fmt.Println()
		if ledger.Terminal(state.CurrentBelt) {
			fmt.Println("Maximum rank achieved. 九段. Nothing left to unlock.")
			return
		}

		next := ledger.RanksAfter(state.CurrentBelt)[0]
		fmt.Printf("Next: %s\n", next.Title)
		for _, req := range next.Requirements {
			fmt.Printf("  %s %s\n", requirementMark(req, snap), requirementLine(req, snap))
		}
	},
}

// requirementSummary renders a rank's requirement list in one short string
func requirementSummary(rank belt.Rank) string {
	if len(rank.Requirements) == 0 {
		return "starting rank"
	}
	var parts []string
	for _, req := range rank.Requirements {
		switch req.Kind {
		case belt.KindHours:
			parts = append(parts, fmt.Sprintf("%.0fh", req.Hours))
		case belt.KindWeeklyConsistency:
			parts = append(parts, fmt.Sprintf("%d active weeks", req.Weeks))
		case belt.KindTypeVariety:
			parts = append(parts, fmt.Sprintf("%d types", req.Types))
		}
	}
	return strings.Join(parts, ", ")
}

func requirementMark(req belt.Requirement, snap belt.Snapshot) string {
	if (belt.Rank{Requirements: []belt.Requirement{req}}).Satisfied(snap) {
		return "✅"
	}
	return "⬜"
}

func requirementLine(req belt.Requirement, snap belt.Snapshot) string {
	switch req.Kind {
	case belt.KindHours:
		return fmt.Sprintf("%s / %.0fh trained", parser.FormatHours(snap.TotalHours), req.Hours)
	case belt.KindWeeklyConsistency:
		return fmt.Sprintf("%d / %d active weeks (last 12 weeks)", snap.ActiveWeeks, req.Weeks)
	case belt.KindTypeVariety:
		return fmt.Sprintf("%d / %d session types practiced", snap.DistinctTypes, req.Types)
	default:
		return req.Kind
	}
}

func init() {
	beltCmd.Flags().Bool("ui", false, "Show the animated progress dashboard")
}
