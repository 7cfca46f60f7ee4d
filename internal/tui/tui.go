package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kfutrack/kfu/internal/parser"
)

// RunLogSessionTUI starts the interactive log session wizard
func RunLogSessionTUI(prefilled map[string]string) error {
	model := NewLogSessionModel(prefilled)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()

	// Handle exit messages after TUI closes
	if err != nil {
		return err
	}

	if m, ok := finalModel.(LogSessionModel); ok {
		printLogOutcome(m)
	}

	return nil
}

// RunEditSessionTUI starts the wizard in edit mode for an existing session
func RunEditSessionTUI(sessionID uint, prefilled map[string]string) error {
	model := NewEditSessionModel(sessionID, prefilled)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()

	if err != nil {
		return err
	}

	if m, ok := finalModel.(LogSessionModel); ok {
		printLogOutcome(m)
	}

	return nil
}

func printLogOutcome(m LogSessionModel) {
	if m.cancelled {
		fmt.Println("❌ Session not saved.")
		return
	}
	if m.err != nil {
		fmt.Printf("❌ Error: %v\n", m.err)
		return
	}
	if m.completed && m.savedSessionID > 0 {
		verb := "logged"
		if m.isEditMode {
			verb = "updated"
		}
		fmt.Printf("✅ Session #%d %s: %s of %s\n",
			m.savedSessionID, verb,
			parser.FormatMinutes(m.savedMinutes), m.savedType)
		for _, title := range m.unlockedTitles {
			fmt.Printf("🥋 Belt unlocked: %s!\n", title)
		}
	}
}

// RunBeltDashboardTUI starts the animated belt progress dashboard
func RunBeltDashboardTUI() error {
	model, err := NewBeltDashboardModel()
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
