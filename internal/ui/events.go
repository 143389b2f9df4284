package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/criusastro/crius-jpl/internal/state"
)

var (
	ingressStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46"))

	stationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("226"))
)

// EventsModel lists ingress and station events detected between refreshes.
type EventsModel struct {
	width    int
	height   int
	snapshot state.Snapshot
}

// NewEventsModel creates a new events model.
func NewEventsModel() EventsModel {
	return EventsModel{}
}

// SetSize updates the viewport size.
func (m EventsModel) SetSize(width, height int) EventsModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with new data.
func (m EventsModel) UpdateData(snapshot state.Snapshot) EventsModel {
	m.snapshot = snapshot
	return m
}

// Update handles messages.
func (m EventsModel) Update(msg tea.Msg) (EventsModel, tea.Cmd) {
	return m, nil
}

// View renders the event log, newest last.
func (m EventsModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Chart Events"))
	b.WriteString("\n")

	events := m.snapshot.Events
	if len(events) == 0 {
		b.WriteString("  No events yet\n")
		return b.String()
	}

	maxRows := m.height - 3
	if maxRows < 5 {
		maxRows = 5
	}
	if len(events) > maxRows {
		events = events[len(events)-maxRows:]
	}

	for _, e := range events {
		ts := e.Timestamp.Format("01-02 15:04")
		var line string
		switch e.Type {
		case state.EventIngress:
			line = ingressStyle.Render(fmt.Sprintf("%s  %s enters %s (from %s)", ts, e.Body, e.NewSign, e.OldSign))
		case state.EventRetrograde:
			line = stationStyle.Render(fmt.Sprintf("%s  %s stations retrograde", ts, e.Body))
		case state.EventDirect:
			line = stationStyle.Render(fmt.Sprintf("%s  %s stations direct", ts, e.Body))
		default:
			line = fmt.Sprintf("%s  %s %s", ts, e.Body, e.Type)
		}
		b.WriteString("  " + line + "\n")
	}

	return b.String()
}
