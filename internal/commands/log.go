package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kfutrack/kfu/internal/db"
	"github.com/kfutrack/kfu/internal/parser"
	"github.com/kfutrack/kfu/internal/tui"
)

var logCmd = &cobra.Command{
	Use:   "log [duration] [@type]",
	Short: "Log a training session",
	Long: `Log a new training session.

Modes:
  Interactive: kfu log -i (or just 'kfu log' with no arguments)
  Quick: kfu log 45m @forms (with optional flags)

Quick syntax:
  45, 45m, 1h30m  - Session duration
  @type           - Session type (forms, sparring, conditioning, weapons, basics, meditation)
  on:DATE         - Session date (today, yesterday, dd/mm/yyyy)
  anything else   - Notes

Example:
  kfu log 1h30m @sparring on:yesterday worked on footwork`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		initDB()
		interactive, _ := cmd.Flags().GetBool("interactive")

		// If no args and not explicitly interactive, go interactive
		if len(args) == 0 && !interactive {
			interactive = true
		}

		if interactive {
			runInteractiveLog(cmd, args)
			return
		}

		now := time.Now()
		parsed := parser.ParseLogArgs(args, now)

		if len(parsed.Errors) > 0 {
			// Parsing problems: fall back to the wizard with what we have
			fmt.Printf("⚠️  Found issues with parsing: %s\n", strings.Join(parsed.Errors, ", "))
			fmt.Println("Opening interactive mode for confirmation...")
			runInteractiveLogWithParsed(cmd, parsed)
			return
		}

		runDirectLog(cmd, parsed, now)
	},
}

// runInteractiveLog starts the log wizard
func runInteractiveLog(cmd *cobra.Command, args []string) {
	prefilled := make(map[string]string)

	if len(args) > 0 {
		parsed := parser.ParseLogArgs(args, time.Now())
		fillFromParsed(prefilled, parsed)
	}
	fillFromFlags(cmd, prefilled)

	if err := tui.RunLogSessionTUI(prefilled); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
}

// runInteractiveLogWithParsed starts the wizard pre-filled with parsed data
func runInteractiveLogWithParsed(cmd *cobra.Command, parsed parser.ParsedSession) {
	prefilled := make(map[string]string)
	fillFromParsed(prefilled, parsed)
	fillFromFlags(cmd, prefilled)

	if err := tui.RunLogSessionTUI(prefilled); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
}

func fillFromParsed(prefilled map[string]string, parsed parser.ParsedSession) {
	if parsed.DurationMinutes > 0 {
		prefilled["duration"] = parser.FormatMinutes(parsed.DurationMinutes)
	}
	if parsed.Type != "" {
		prefilled["type"] = parsed.Type
	}
	if !parsed.Date.IsZero() {
		prefilled["date"] = parsed.Date.Format("02/01/2006")
	}
	if parsed.Notes != "" {
		prefilled["notes"] = parsed.Notes
	}
}

func fillFromFlags(cmd *cobra.Command, prefilled map[string]string) {
	if dur, _ := cmd.Flags().GetString("dur"); dur != "" {
		prefilled["duration"] = dur
	}
	if sessionType, _ := cmd.Flags().GetString("type"); sessionType != "" {
		prefilled["type"] = sessionType
	}
	if on, _ := cmd.Flags().GetString("on"); on != "" {
		prefilled["date"] = on
	}
	if note, _ := cmd.Flags().GetString("note"); note != "" {
		prefilled["notes"] = note
	}
}

// runDirectLog creates the session directly without TUI
func runDirectLog(cmd *cobra.Command, parsed parser.ParsedSession, now time.Time) {
	duration := parsed.DurationMinutes
	sessionType := parsed.Type
	date := parsed.Date
	notes := parsed.Notes

	// Override with explicit flags (flags take precedence)
	if flagDur, _ := cmd.Flags().GetString("dur"); flagDur != "" {
		d, err := parser.ParseDuration(flagDur)
		if err != nil {
			fmt.Printf("Error parsing duration: %v\n", err)
			return
		}
		duration = d
	}
	if flagType, _ := cmd.Flags().GetString("type"); flagType != "" {
		sessionType = strings.ToLower(flagType)
	}
	if flagOn, _ := cmd.Flags().GetString("on"); flagOn != "" {
		d, err := parser.ParseDate(flagOn, now)
		if err != nil {
			fmt.Printf("Error parsing date: %v\n", err)
			return
		}
		date = d
	}
	if flagNote, _ := cmd.Flags().GetString("note"); flagNote != "" {
		notes = flagNote
	}

	req := db.CreateSessionRequest{
		Date:            date,
		DurationMinutes: duration,
		Type:            sessionType,
		Notes:           notes,
	}

	session, err := db.CreateSession(req)
	if err != nil {
		fmt.Printf("Error logging session: %v\n", err)
		return
	}

	fmt.Printf("Logged session #%d: %s of %s on %s\n",
		session.ID,
		parser.FormatMinutes(session.DurationMinutes),
		session.Type,
		parser.FormatSessionDate(session.Date, now))
	if session.Notes != "" {
		fmt.Printf("  Notes: %s\n", session.Notes)
	}

	// Sessions changed: rerun the progression pipeline
	if err := runProgression(now); err != nil {
		fmt.Printf("Warning: progression check failed: %v\n", err)
	}
}

func init() {
	logCmd.Flags().BoolP("interactive", "i", false, "Interactive mode with TUI")
	logCmd.Flags().StringP("dur", "d", "", "Session duration: 45, 45m, 2h, 1h30m")
	logCmd.Flags().StringP("type", "t", "", "Session type: forms, sparring, conditioning, weapons, basics, meditation")
	logCmd.Flags().StringP("on", "o", "", "Session date: today, yesterday, dd/mm/yyyy, X days ago")
	logCmd.Flags().StringP("note", "n", "", "Session notes")
}
