package commands

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kfutrack/kfu/internal/db"
	"github.com/kfutrack/kfu/internal/parser"
	"github.com/kfutrack/kfu/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate training statistics",
	Run: func(cmd *cobra.Command, args []string) {
		initDB()

		sessions, err := db.GetSessions()
		if err != nil {
			fmt.Printf("Error fetching sessions: %v\n", err)
			return
		}

		agg := stats.Compute(sessions, time.Now())

		if agg.TotalSessions == 0 {
			fmt.Println("No sessions logged yet. Use 'kfu log 45m @forms' to get started.")
			return
		}

		fmt.Println("📊 Training Statistics")
		fmt.Println(strings.Repeat("-", 40))
		fmt.Printf("Total sessions:   %d\n", agg.TotalSessions)
		fmt.Printf("Total hours:      %s\n", parser.FormatHours(agg.TotalHours))
		fmt.Printf("Last 7 days:      %s\n", parser.FormatHours(agg.WeeklyHours))
		fmt.Printf("Last 30 days:     %s\n", parser.FormatHours(agg.MonthlyHours))
		fmt.Printf("Average session:  %s\n", parser.FormatMinutes(int(agg.AverageSessionMinutes)))

		fmt.Println()
		fmt.Println("By type:")
		printTypeDistribution(agg.TypeDistribution)
	},
}

// printTypeDistribution renders a minute-proportional bar per type
func printTypeDistribution(dist map[string]int) {
	type entry struct {
		name    string
		minutes int
	}
	var entries []entry
	maxMinutes := 0
	for name, minutes := range dist {
		entries = append(entries, entry{name, minutes})
		if minutes > maxMinutes {
			maxMinutes = minutes
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].minutes > entries[j].minutes })

	for _, e := range entries {
		barLen := 0
		if maxMinutes > 0 {
			barLen = e.minutes * 24 / maxMinutes
		}
		fmt.Printf("  %-14s %-24s %s\n",
			e.name,
			strings.Repeat("█", barLen),
			parser.FormatMinutes(e.minutes))
	}
}
