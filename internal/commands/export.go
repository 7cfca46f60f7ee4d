package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kfutrack/kfu/internal/db"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export all sessions and belt state as JSON",
	Long:  "Export the full training log as JSON. Writes to stdout when no file is given.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initDB()

		out := os.Stdout
		if len(args) == 1 {
			f, err := os.Create(args[0])
			if err != nil {
				fmt.Printf("Error creating file: %v\n", err)
				return
			}
			defer f.Close()
			out = f
		}

		if err := db.ExportAll(out); err != nil {
			fmt.Printf("Error exporting: %v\n", err)
			return
		}

		if len(args) == 1 {
			fmt.Printf("Exported training log to %s\n", args[0])
		}
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import sessions and belt state from a JSON export",
	Long:  "Replace the entire training log with the contents of a previous export.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initDB()

		f, err := os.Open(args[0])
		if err != nil {
			fmt.Printf("Error opening file: %v\n", err)
			return
		}
		defer f.Close()

		count, err := db.ImportAll(f)
		if err != nil {
			fmt.Printf("Error importing: %v\n", err)
			return
		}

		fmt.Printf("Imported %d sessions from %s\n", count, args[0])

		// Imported history may unlock several ranks at once
		if err := runProgression(time.Now()); err != nil {
			fmt.Printf("Warning: progression check failed: %v\n", err)
		}
	},
}
