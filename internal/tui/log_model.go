package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kfutrack/kfu/internal/belt"
	"github.com/kfutrack/kfu/internal/db"
	"github.com/kfutrack/kfu/internal/models"
	"github.com/kfutrack/kfu/internal/parser"
	"github.com/kfutrack/kfu/internal/stats"
)

// Step represents the current step in the wizard
type Step int

const (
	StepDuration Step = iota
	StepType
	StepDate
	StepNotes
	StepSave
	StepComplete
)

// LogSessionModel represents the TUI model for logging sessions
type LogSessionModel struct {
	currentStep Step
	inputs      []textinput.Model
	width       int
	height      int

	// Session data
	duration    string
	sessionType string
	date        string
	notes       string

	// Type picker state
	typeCursor int

	// Pre-filled data from flags or parsing
	prefilled map[string]string

	// Edit mode
	isEditMode    bool
	editSessionID uint

	// State
	err            error
	completed      bool
	cancelled      bool
	validationErr  string
	savedSessionID uint
	savedMinutes   int
	savedType      string
	unlockedTitles []string
}

// NewLogSessionModel creates a new log session TUI model
func NewLogSessionModel(prefilled map[string]string) LogSessionModel {
	inputs := make([]textinput.Model, 3)

	// Apply color theme to all inputs
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 60

		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}

	// Duration input
	inputs[0].Placeholder = "Duration: 45, 45m, 2h, 1h30m (required)"
	inputs[0].Focus()
	inputs[0].CharLimit = 10

	// Date input
	inputs[1].Placeholder = "Date: today, yesterday, dd/mm/yyyy (Enter for today)"
	inputs[1].CharLimit = 20

	// Notes input
	inputs[2].Placeholder = "Notes (Enter to skip)"
	inputs[2].CharLimit = 500

	m := LogSessionModel{
		currentStep: StepDuration,
		inputs:      inputs,
		prefilled:   prefilled,
	}

	// Set pre-filled values
	if duration, ok := prefilled["duration"]; ok {
		m.inputs[0].SetValue(duration)
		m.duration = duration
	}
	if sessionType, ok := prefilled["type"]; ok {
		m.sessionType = sessionType
		for i, t := range models.SessionTypes {
			if t == sessionType {
				m.typeCursor = i
			}
		}
	}
	if date, ok := prefilled["date"]; ok {
		m.inputs[1].SetValue(date)
		m.date = date
	}
	if notes, ok := prefilled["notes"]; ok {
		m.inputs[2].SetValue(notes)
		m.notes = notes
	}

	return m
}

// NewEditSessionModel creates the wizard in edit mode with existing data
func NewEditSessionModel(sessionID uint, prefilled map[string]string) LogSessionModel {
	m := NewLogSessionModel(prefilled)
	m.isEditMode = true
	m.editSessionID = sessionID
	return m
}

// Init initializes the model
func (m LogSessionModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m LogSessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		maxInputWidth := m.width - 12
		if maxInputWidth < 30 {
			maxInputWidth = 30
		}
		if maxInputWidth > 70 {
			maxInputWidth = 70
		}
		for i := range m.inputs {
			m.inputs[i].Width = maxInputWidth
		}

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			if m.currentStep > StepDuration && msg.String() == "esc" {
				return m.prevStep()
			}
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			return m.handleEnter()

		case "up", "down":
			// Type step uses a picker, not a text input
			if m.currentStep == StepType {
				if msg.String() == "up" {
					m.typeCursor--
					if m.typeCursor < 0 {
						m.typeCursor = len(models.SessionTypes) - 1
					}
				} else {
					m.typeCursor = (m.typeCursor + 1) % len(models.SessionTypes)
				}
				return m, nil
			}
		}
	}

	// Pass the message to the focused text input
	if idx, ok := m.inputIndex(); ok {
		var cmd tea.Cmd
		m.inputs[idx], cmd = m.inputs[idx].Update(msg)
		return m, cmd
	}

	return m, nil
}

// inputIndex maps the current step to its text input, if it has one
func (m LogSessionModel) inputIndex() (int, bool) {
	switch m.currentStep {
	case StepDuration:
		return 0, true
	case StepDate:
		return 1, true
	case StepNotes:
		return 2, true
	}
	return 0, false
}

// handleEnter advances through the wizard, validating as it goes
func (m LogSessionModel) handleEnter() (LogSessionModel, tea.Cmd) {
	m.validationErr = ""

	switch m.currentStep {
	case StepDuration:
		value := strings.TrimSpace(m.inputs[0].Value())
		if _, err := parser.ParseDuration(value); err != nil {
			m.validationErr = err.Error()
			return m, nil
		}
		m.duration = value

	case StepType:
		m.sessionType = models.SessionTypes[m.typeCursor]

	case StepDate:
		value := strings.TrimSpace(m.inputs[1].Value())
		if _, err := parser.ParseDate(value, time.Now()); err != nil {
			m.validationErr = err.Error()
			return m, nil
		}
		m.date = value

	case StepNotes:
		m.notes = strings.TrimSpace(m.inputs[2].Value())

	case StepSave:
		return m.saveSession()
	}

	return m.nextStep()
}

func (m LogSessionModel) nextStep() (LogSessionModel, tea.Cmd) {
	if m.currentStep < StepSave {
		m.currentStep++
	}
	if idx, ok := m.inputIndex(); ok {
		for i := range m.inputs {
			m.inputs[i].Blur()
		}
		m.inputs[idx].Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m LogSessionModel) prevStep() (LogSessionModel, tea.Cmd) {
	if m.currentStep > StepDuration {
		m.currentStep--
	}
	m.validationErr = ""
	if idx, ok := m.inputIndex(); ok {
		for i := range m.inputs {
			m.inputs[i].Blur()
		}
		m.inputs[idx].Focus()
		return m, textinput.Blink
	}
	return m, nil
}

// saveSession validates everything, writes the session, and reruns the
// progression check so unlocks can be reported after the TUI closes.
func (m LogSessionModel) saveSession() (LogSessionModel, tea.Cmd) {
	now := time.Now()

	minutes, err := parser.ParseDuration(m.duration)
	if err != nil {
		m.validationErr = err.Error()
		m.currentStep = StepDuration
		return m, nil
	}

	date, err := parser.ParseDate(m.date, now)
	if err != nil {
		m.validationErr = err.Error()
		m.currentStep = StepDate
		return m, nil
	}

	req := db.CreateSessionRequest{
		Date:            date,
		DurationMinutes: minutes,
		Type:            m.sessionType,
		Notes:           m.notes,
	}

	var session *models.Session
	if m.isEditMode {
		session, err = db.UpdateSession(m.editSessionID, req)
	} else {
		session, err = db.CreateSession(req)
	}
	if err != nil {
		m.err = err
		return m, tea.Quit
	}

	m.savedSessionID = session.ID
	m.savedMinutes = session.DurationMinutes
	m.savedType = session.Type

	// Sessions changed: advance the ladder and remember any unlocks
	if unlocked, err := advanceProgression(now); err == nil {
		for _, rank := range unlocked {
			m.unlockedTitles = append(m.unlockedTitles, rank.Title)
		}
	}

	m.completed = true
	m.currentStep = StepComplete
	return m, tea.Quit
}

// advanceProgression mirrors the CLI recompute pipeline for in-TUI saves
func advanceProgression(now time.Time) ([]belt.Rank, error) {
	sessions, err := db.GetSessions()
	if err != nil {
		return nil, err
	}

	ledger, err := belt.DefaultLedger()
	if err != nil {
		return nil, err
	}

	state, err := db.GetBeltState(ledger.Ranks[0].Name)
	if err != nil {
		return nil, err
	}

	agg := stats.Compute(sessions, now)
	snap := belt.NewSnapshot(sessions, agg, now)

	engine := belt.NewEngine(ledger)
	unlocked, err := engine.Advance(state, snap)
	if err != nil {
		return nil, err
	}
	if len(unlocked) > 0 {
		if err := db.SaveBeltState(state); err != nil {
			return unlocked, err
		}
	}

	return unlocked, nil
}

// View renders the wizard
func (m LogSessionModel) View() string {
	if m.cancelled || m.completed {
		return "" // Don't show anything, let TUI handle exit message
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright)).
		MarginBottom(1)

	titleText := "🥋 Log Training Session"
	if m.isEditMode {
		titleText = fmt.Sprintf("🥋 Edit Session #%d", m.editSessionID)
	}
	b.WriteString(titleStyle.Render(titleText))
	b.WriteString("\n\n")

	// Step indicator
	stepLabels := []string{"Duration", "Type", "Date", "Notes", "Save"}
	currentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	doneStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess))
	futureStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))

	for i, label := range stepLabels {
		switch {
		case Step(i) == m.currentStep:
			b.WriteString(currentStyle.Render("▶ " + label))
		case Step(i) < m.currentStep:
			b.WriteString(doneStyle.Render("✓ " + label))
		default:
			b.WriteString(futureStyle.Render("  " + label))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Current field
	switch m.currentStep {
	case StepDuration:
		b.WriteString(m.inputs[0].View())
	case StepType:
		b.WriteString(m.renderTypePicker())
	case StepDate:
		b.WriteString(m.inputs[1].View())
	case StepNotes:
		b.WriteString(m.inputs[2].View())
	case StepSave:
		b.WriteString(m.renderSummary())
	}
	b.WriteString("\n")

	// Validation error
	if m.validationErr != "" {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
		b.WriteString(errStyle.Render("✗ " + m.validationErr))
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: next • esc: back • ctrl+c: cancel"))

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1, 2)

	return cardStyle.Render(b.String())
}

// renderTypePicker renders the session type selection list
func (m LogSessionModel) renderTypePicker() string {
	var b strings.Builder

	selectedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Bold(true)
	normalStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))

	for i, t := range models.SessionTypes {
		if i == m.typeCursor {
			b.WriteString(selectedStyle.Render("▶ " + t))
		} else {
			b.WriteString(normalStyle.Render("  " + t))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// renderSummary renders the pre-save review
func (m LogSessionModel) renderSummary() string {
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))

	date := m.date
	if date == "" {
		date = "today"
	}
	notes := m.notes
	if notes == "" {
		notes = "—"
	}

	lines := []string{
		labelStyle.Render("Duration: ") + valueStyle.Render(m.duration),
		labelStyle.Render("Type:     ") + valueStyle.Render(m.sessionType),
		labelStyle.Render("Date:     ") + valueStyle.Render(date),
		labelStyle.Render("Notes:    ") + valueStyle.Render(notes),
		"",
		valueStyle.Render("Press Enter to save"),
	}
	return strings.Join(lines, "\n")
}
