package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/kfutrack/kfu/internal/db"
)

var deleteCmd = &cobra.Command{
	Use:     "rm <session_id>",
	Aliases: []string{"delete"},
	Short:   "Delete a session",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initDB()

		sessionID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid session ID '%s'\n", args[0])
			return
		}

		if err := db.DeleteSession(uint(sessionID)); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("Deleted session #%d\n", sessionID)

		// Sessions changed: rerun the progression pipeline. Rank never
		// regresses, but stats and forecasts must reflect the deletion.
		if err := runProgression(time.Now()); err != nil {
			fmt.Printf("Warning: progression check failed: %v\n", err)
		}
	},
}
