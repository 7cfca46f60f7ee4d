package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kfutrack/kfu/internal/belt"
	"github.com/kfutrack/kfu/internal/db"
	"github.com/kfutrack/kfu/internal/parser"
	"github.com/kfutrack/kfu/internal/predict"
	"github.com/kfutrack/kfu/internal/stats"
)

// BeltDashboardModel renders the belt ladder with an animated progress bar
// towards the next rank.
type BeltDashboardModel struct {
	width  int
	height int

	ledger  *belt.Ledger
	current belt.Rank
	next    *belt.Rank
	snap    belt.Snapshot
	report  predict.Report

	bar     progress.Model
	percent float64 // target fill ratio towards the next rank

	// Animation state
	animating bool
}

// dashboardTickMsg drives the progress bar animation
type dashboardTickMsg struct{}

// NewBeltDashboardModel loads everything the dashboard shows
func NewBeltDashboardModel() (BeltDashboardModel, error) {
	now := time.Now()

	sessions, err := db.GetSessions()
	if err != nil {
		return BeltDashboardModel{}, err
	}

	ledger, err := belt.DefaultLedger()
	if err != nil {
		return BeltDashboardModel{}, err
	}

	state, err := db.GetBeltState(ledger.Ranks[0].Name)
	if err != nil {
		return BeltDashboardModel{}, err
	}

	agg := stats.Compute(sessions, now)
	snap := belt.NewSnapshot(sessions, agg, now)
	report := predict.Forecast(sessions, agg, ledger, state, now)

	current, _ := ledger.RankByName(state.CurrentBelt)

	m := BeltDashboardModel{
		ledger:  ledger,
		current: current,
		snap:    snap,
		report:  report,
		bar: progress.New(
			progress.WithGradient(ColorAccentMain, ColorAccentBright),
			progress.WithWidth(48),
		),
		animating: true,
	}

	if after := ledger.RanksAfter(state.CurrentBelt); len(after) > 0 {
		m.next = &after[0]
		prev := current.HoursThreshold()
		span := after[0].HoursThreshold() - prev
		if span > 0 {
			m.percent = (snap.TotalHours - prev) / span
		}
		if m.percent < 0 {
			m.percent = 0
		}
		if m.percent > 1 {
			m.percent = 1
		}
	}

	return m, nil
}

// Init starts the animation ticker
func (m BeltDashboardModel) Init() tea.Cmd {
	return tea.Batch(
		m.bar.SetPercent(m.percent),
		tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
			return dashboardTickMsg{}
		}),
	)
}

// Update handles messages
func (m BeltDashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardTickMsg:
		if m.animating {
			return m, tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
				return dashboardTickMsg{}
			})
		}
		return m, nil

	case progress.FrameMsg:
		barModel, cmd := m.bar.Update(msg)
		m.bar = barModel.(progress.Model)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.animating = false
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the dashboard
func (m BeltDashboardModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))

	b.WriteString(titleStyle.Render("🥋 " + m.current.Title))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Total trained: "))
	b.WriteString(valueStyle.Render(parser.FormatHours(m.snap.TotalHours)))
	b.WriteString("\n\n")

	if m.next == nil {
		b.WriteString(valueStyle.Render("Maximum rank achieved. Nothing left to unlock."))
	} else {
		b.WriteString(labelStyle.Render(fmt.Sprintf("Next: %s (%.0fh)", m.next.Title, m.next.HoursThreshold())))
		b.WriteString("\n")
		b.WriteString(m.bar.View())
		b.WriteString("\n\n")
		b.WriteString(m.renderForecast(labelStyle, valueStyle))
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("q/esc: quit"))

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1, 2)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(b.String()))
}

// renderForecast shows the next-rank prediction when one is available
func (m BeltDashboardModel) renderForecast(labelStyle, valueStyle lipgloss.Style) string {
	switch m.report.Status {
	case predict.StatusNoData:
		return labelStyle.Render("Log a few sessions to see a forecast.")
	case predict.StatusInsufficient:
		return labelStyle.Render("Not enough sessions for a forecast yet.")
	case predict.StatusMaxRank, predict.StatusOK:
	}

	if len(m.report.Predictions) == 0 {
		return ""
	}

	p := m.report.Predictions[0]
	if p.ReadyNow {
		return valueStyle.Render("Ready to advance now!")
	}
	return labelStyle.Render("Estimated: ") +
		valueStyle.Render(fmt.Sprintf("%s (%d%% confidence)",
			p.EstimatedDate.Format("January 2006"), p.Confidence))
}
