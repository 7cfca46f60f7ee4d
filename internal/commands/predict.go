package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kfutrack/kfu/internal/belt"
	"github.com/kfutrack/kfu/internal/db"
	"github.com/kfutrack/kfu/internal/parser"
	"github.com/kfutrack/kfu/internal/predict"
	"github.com/kfutrack/kfu/internal/stats"
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Forecast time to future belt ranks",
	Run: func(cmd *cobra.Command, args []string) {
		initDB()
		now := time.Now()

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

		agg := stats.Compute(sessions, now)
		report := predict.Forecast(sessions, agg, ledger, state, now)

		switch report.Status {
		case predict.StatusNoData:
			fmt.Println("No training data yet. Log a few sessions and come back. 🥋")
			return
		case predict.StatusInsufficient:
			fmt.Println("Not enough sessions for a reliable forecast yet. Log at least 3 sessions.")
			return
		case predict.StatusMaxRank:
			fmt.Println("Maximum rank achieved. Nothing left to forecast.")
			return
		}

		fmt.Printf("📈 Forecast at %s/month\n", parser.FormatHours(report.MonthlyRate))
		fmt.Println(strings.Repeat("-", 72))
		fmt.Printf("%-24s %-10s %-8s %-12s %s\n", "BELT", "HOURS", "MONTHS", "ESTIMATE", "CONFIDENCE")

		for _, p := range report.Predictions {
			if p.ReadyNow {
				fmt.Printf("%-24s %-10s %-8s %-12s %d%%\n",
					p.TargetTitle, "—", "—", "ready now", p.Confidence)
				continue
			}
			fmt.Printf("%-24s %-10s %-8d %-12s %d%%\n",
				p.TargetTitle,
				parser.FormatHours(p.HoursNeeded),
				p.MonthsNeeded,
				p.EstimatedDate.Format("Jan 2006"),
				p.Confidence)
		}
	},
}
