package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kfutrack/kfu/internal/db"
	"github.com/kfutrack/kfu/internal/parser"
	"github.com/kfutrack/kfu/internal/tui"
)

var editCmd = &cobra.Command{
	Use:   "edit <session_id>",
	Short: "Edit an existing session",
	Long: `Edit an existing session.

With no flags this opens the same wizard as 'kfu log -i' with all fields
pre-populated. With flags, only the given fields change.

Usage:
  kfu edit 42                    - Edit session 42 interactively
  kfu edit 42 --dur 1h --note "" - Change fields directly`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initDB()

		// Parse session ID
		sessionID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: Invalid session ID '%s'. Please provide a valid numeric ID.\n", args[0])
			return
		}

		session, err := db.GetSessionByID(uint(sessionID))
		if err != nil {
			fmt.Printf("Error: Session #%d not found.\n", sessionID)
			return
		}

		now := time.Now()

		// No flags: launch the edit wizard pre-filled with current values
		if !cmd.Flags().Changed("dur") && !cmd.Flags().Changed("type") &&
			!cmd.Flags().Changed("on") && !cmd.Flags().Changed("note") {
			prefilled := map[string]string{
				"duration": parser.FormatMinutes(session.DurationMinutes),
				"type":     session.Type,
				"date":     session.Date.Format("02/01/2006"),
				"notes":    session.Notes,
			}
			if err := tui.RunEditSessionTUI(session.ID, prefilled); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		// Flag-driven edit: start from current values, override what changed
		req := db.CreateSessionRequest{
			Date:            session.Date,
			DurationMinutes: session.DurationMinutes,
			Type:            session.Type,
			Notes:           session.Notes,
		}

		if cmd.Flags().Changed("dur") {
			durStr, _ := cmd.Flags().GetString("dur")
			d, err := parser.ParseDuration(durStr)
			if err != nil {
				fmt.Printf("Error parsing duration: %v\n", err)
				return
			}
			req.DurationMinutes = d
		}
		if cmd.Flags().Changed("type") {
			t, _ := cmd.Flags().GetString("type")
			req.Type = strings.ToLower(t)
		}
		if cmd.Flags().Changed("on") {
			onStr, _ := cmd.Flags().GetString("on")
			d, err := parser.ParseDate(onStr, now)
			if err != nil {
				fmt.Printf("Error parsing date: %v\n", err)
				return
			}
			req.Date = d
		}
		if cmd.Flags().Changed("note") {
			req.Notes, _ = cmd.Flags().GetString("note")
		}

		updated, err := db.UpdateSession(uint(sessionID), req)
		if err != nil {
			fmt.Printf("Error updating session: %v\n", err)
			return
		}

		fmt.Printf("Updated session #%d: %s of %s on %s\n",
			updated.ID,
			parser.FormatMinutes(updated.DurationMinutes),
			updated.Type,
			parser.FormatSessionDate(updated.Date, now))

		// Sessions changed: rerun the progression pipeline
		if err := runProgression(now); err != nil {
			fmt.Printf("Warning: progression check failed: %v\n", err)
		}
	},
}

func init() {
	editCmd.Flags().StringP("dur", "d", "", "New duration: 45, 45m, 2h, 1h30m")
	editCmd.Flags().StringP("type", "t", "", "New session type")
	editCmd.Flags().StringP("on", "o", "", "New session date")
	editCmd.Flags().StringP("note", "n", "", "New notes")
}
