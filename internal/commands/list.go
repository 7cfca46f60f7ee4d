package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kfutrack/kfu/internal/db"
	"github.com/kfutrack/kfu/internal/models"
	"github.com/kfutrack/kfu/internal/parser"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List training sessions",
	Long:    "List logged sessions with optional type and date range filters",
	Run: func(cmd *cobra.Command, args []string) {
		initDB()
		now := time.Now()

		sessions, err := fetchFilteredSessions(cmd, now)
		if err != nil {
			fmt.Printf("Error fetching sessions: %v\n", err)
			return
		}

		if len(sessions) == 0 {
			fmt.Println("No sessions found. Use 'kfu log 45m @forms' to log your first session.")
			return
		}

		limit, _ := cmd.Flags().GetInt("limit")
		if limit > 0 && len(sessions) > limit {
			// Most recent N, still displayed oldest first
			sessions = sessions[len(sessions)-limit:]
		}

		// Print table header
		fmt.Printf("%-4s %-12s %-10s %-14s %s\n", "ID", "DATE", "DURATION", "TYPE", "NOTES")
		fmt.Println(strings.Repeat("-", 70))

		for _, session := range sessions {
			// Truncate notes if too long
			notes := session.Notes
			if len(notes) > 30 {
				notes = notes[:27] + "..."
			}

			fmt.Printf("%-4d %-12s %-10s %-14s %s\n",
				session.ID,
				session.Date.Format("02/01/2006"),
				parser.FormatMinutes(session.DurationMinutes),
				session.Type,
				notes)
		}
	},
}

// fetchFilteredSessions applies the --type/--from/--to flags
func fetchFilteredSessions(cmd *cobra.Command, now time.Time) ([]models.Session, error) {
	fromStr, _ := cmd.Flags().GetString("from")
	toStr, _ := cmd.Flags().GetString("to")

	var sessions []models.Session
	var err error

	if fromStr != "" || toStr != "" {
		from := time.Date(2000, 1, 1, 0, 0, 0, 0, now.Location())
		to := now
		if fromStr != "" {
			if from, err = parser.ParseDate(fromStr, now); err != nil {
				return nil, fmt.Errorf("invalid --from date: %w", err)
			}
		}
		if toStr != "" {
			if to, err = parser.ParseDate(toStr, now); err != nil {
				return nil, fmt.Errorf("invalid --to date: %w", err)
			}
		}
		sessions, err = db.GetSessionsInRange(from, to)
	} else {
		sessions, err = db.GetSessions()
	}
	if err != nil {
		return nil, err
	}

	if typeFilter, _ := cmd.Flags().GetString("type"); typeFilter != "" {
		var filtered []models.Session
		for _, s := range sessions {
			if s.Type == strings.ToLower(typeFilter) {
				filtered = append(filtered, s)
			}
		}
		sessions = filtered
	}

	return sessions, nil
}

func init() {
	listCmd.Flags().StringP("type", "t", "", "Filter by session type")
	listCmd.Flags().String("from", "", "Show sessions on or after this date")
	listCmd.Flags().String("to", "", "Show sessions on or before this date")
	listCmd.Flags().IntP("limit", "l", 0, "Show only the most recent N sessions")
}
