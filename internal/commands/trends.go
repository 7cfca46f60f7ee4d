package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kfutrack/kfu/internal/db"
	"github.com/kfutrack/kfu/internal/parser"
	"github.com/kfutrack/kfu/internal/stats"
)

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Show training trends and patterns",
	Long:  "Show weekday distribution, consistency score, growth trend, and seasonal output.",
	Run: func(cmd *cobra.Command, args []string) {
		initDB()

		sessions, err := db.GetSessions()
		if err != nil {
			fmt.Printf("Error fetching sessions: %v\n", err)
			return
		}

		if len(sessions) == 0 {
			fmt.Println("No sessions logged yet. Trends need some history first.")
			return
		}

		report := stats.Analyze(sessions, time.Now())

		fmt.Println("📅 By weekday")
		fmt.Println(strings.Repeat("-", 44))
		for _, wd := range report.Weekdays {
			flag := ""
			if wd.UnderTrained {
				flag = "  ⚠️ under-trained"
			}
			fmt.Printf("  %-10s %3d sessions  avg %-8s%s\n",
				wd.Weekday.String(),
				wd.Sessions,
				parser.FormatMinutes(int(wd.AverageMinutes)),
				flag)
		}

		fmt.Println()
		fmt.Printf("Consistency: %d/100 (%s)\n", report.Consistency.Score, report.Consistency.Label)
		fmt.Printf("Growth:      %s\n", report.Growth)

		if len(report.Seasonal) > 0 {
			fmt.Println()
			fmt.Println("🗓  By month")
			fmt.Println(strings.Repeat("-", 44))
			for _, m := range report.Seasonal {
				marker := ""
				if m.Month == report.BestMonth {
					marker = "  🏆 best"
				} else if m.Month == report.WorstMonth {
					marker = "  🐢 slowest"
				}
				fmt.Printf("  %-10s %s%s\n", m.Month.String(), parser.FormatHours(m.Hours), marker)
			}
		}
	},
}
