// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/criusastro/crius-jpl/internal/state"
	"github.com/criusastro/crius-jpl/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewChart ViewMode = iota
	ViewEvents
)

// Msg types for Bubble Tea
type (
	// TickMsg triggers periodic UI updates.
	TickMsg time.Time

	// DataUpdateMsg signals a fresh chart snapshot is available.
	DataUpdateMsg struct {
		Snapshot state.Snapshot
	}

	// ErrorMsg signals a calculation error.
	ErrorMsg struct {
		Error error
	}
)

// Model is the root Bubble Tea model.
type Model struct {
	// Dependencies
	state *state.Manager

	// UI state
	viewMode ViewMode
	width    int
	height   int
	ready    bool

	// Sub-models
	chart  ChartModel
	events EventsModel

	// Data snapshot (updated on DataUpdateMsg)
	snapshot state.Snapshot
}

// New creates a new root UI model.
func New(stateMgr *state.Manager) Model {
	return Model{
		state:  stateMgr,
		chart:  NewChartModel(),
		events: NewEventsModel(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "1", "c":
			m.viewMode = ViewChart
		case "2", "e":
			m.viewMode = ViewEvents

		case "tab":
			m.viewMode = (m.viewMode + 1) % 2

		default:
			cmds = append(cmds, m.updateActiveView(msg))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// Header takes ~4 lines, footer ~2
		contentHeight := msg.Height - 6
		m.chart = m.chart.SetSize(msg.Width, contentHeight)
		m.events = m.events.SetSize(msg.Width, contentHeight)

	case TickMsg:
		cmds = append(cmds, tickCmd())
		m.snapshot = m.state.Snapshot()
		m.chart = m.chart.UpdateData(m.snapshot)
		m.events = m.events.UpdateData(m.snapshot)

	case DataUpdateMsg:
		m.snapshot = msg.Snapshot
		m.chart = m.chart.UpdateData(m.snapshot)
		m.events = m.events.UpdateData(m.snapshot)

	case ErrorMsg:
		m.chart = m.chart.SetError(msg.Error)

	default:
		cmds = append(cmds, m.updateActiveView(msg))
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) updateActiveView(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.viewMode {
	case ViewChart:
		m.chart, cmd = m.chart.Update(msg)
	case ViewEvents:
		m.events, cmd = m.events.Update(msg)
	}
	return cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch m.viewMode {
	case ViewChart:
		content = m.chart.View()
	case ViewEvents:
		content = m.events.View()
	}

	return m.renderHeader() + "\n" + content + "\n" + m.renderFooter()
}

var (
	logoStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8B5CF6"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("60"))
)

func (m Model) renderHeader() string {
	var b strings.Builder
	b.WriteString(logoStyle.Render("  CRIUS"))
	b.WriteString(mutedStyle.Render("  ephemeris chart engine"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  v%s | horizons + analytic", version.Version)))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderFooter() string {
	keys := "  [1]chart [2]events [tab]switch [q]quit"
	if m.snapshot.LastError != nil {
		keys += "  " + errorStyle.Render("! "+m.snapshot.LastError.Error())
	}
	return mutedStyle.Render(keys)
}

// tickCmd schedules the next UI refresh.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
