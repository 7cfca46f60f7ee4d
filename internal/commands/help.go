package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for kfu",
	Long:  `Display detailed help for all kfu commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		showCustomHelp()
	},
}

func showCustomHelp() {
	fmt.Print(`
██╗  ██╗███████╗██╗   ██╗
██║ ██╔╝██╔════╝██║   ██║
█████╔╝ █████╗  ██║   ██║
██╔═██╗ ██╔══╝  ██║   ██║
██║  ██╗██║     ╚██████╔╝
╚═╝  ╚═╝╚═╝      ╚═════╝

kfu - CLI Kung Fu Training Log

COMMANDS:

  log [duration] [@type]  Log a training session
    -d, --dur             Duration: 45, 45m, 2h, 1h30m
    -t, --type            Type: forms|sparring|conditioning|weapons|basics|meditation
    -o, --on              Date: today, yesterday, dd/mm/yyyy, X days ago
    -n, --note            Session notes
    -i, --interactive     Open the log wizard

    Quick syntax:
      45m           Session duration
      @forms        Session type
      on:yesterday  Session date
      (free text)   Notes

    Example:
      kfu log 1h30m @sparring on:yesterday worked on footwork

  ls                      List sessions
    -t, --type            Filter by session type
    --from / --to         Date range filter
    -l, --limit           Show only the most recent N sessions

  edit <id>               Edit a session (wizard, or flags for direct edit)
  rm <id>                 Delete a session

  stats                   Aggregate statistics and type distribution
  trends                  Weekday patterns, consistency, growth, seasons
  belt                    Belt ladder and progress towards the next rank
    --ui                  Animated progress dashboard
  predict                 Time-to-rank forecast with confidence

  export [file]           Export everything as JSON (stdout by default)
  import <file>           Replace the log with a previous export

  help                    Show this help
  version                 Show version information

Logging, editing, deleting, or importing sessions automatically recomputes
statistics and checks for belt unlocks.

`)
}
