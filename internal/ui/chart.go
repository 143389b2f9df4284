package ui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/criusastro/crius-jpl/internal/astro"
	"github.com/criusastro/crius-jpl/internal/ephem"
	"github.com/criusastro/crius-jpl/internal/state"
)

// Styles for the chart view
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Background(lipgloss.Color("235")).
			Padding(0, 1)

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))

	retroStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// ChartModel is the planet and house table view.
type ChartModel struct {
	width    int
	height   int
	cursor   int
	snapshot state.Snapshot
	lastErr  error
}

// NewChartModel creates a new chart model.
func NewChartModel() ChartModel {
	return ChartModel{}
}

// SetSize updates the viewport size.
func (m ChartModel) SetSize(width, height int) ChartModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with new data.
func (m ChartModel) UpdateData(snapshot state.Snapshot) ChartModel {
	m.snapshot = snapshot
	return m
}

// SetError sets the last error for display.
func (m ChartModel) SetError(err error) ChartModel {
	m.lastErr = err
	return m
}

// Update handles messages.
func (m ChartModel) Update(msg tea.Msg) (ChartModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		rows := 0
		if m.snapshot.Positions != nil {
			rows = len(m.snapshot.Positions.Planets)
		}

		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < rows-1 {
				m.cursor++
			}
		case "home":
			m.cursor = 0
		case "end":
			if rows > 0 {
				m.cursor = rows - 1
			}
		}
	}

	return m, nil
}

// View renders the chart.
func (m ChartModel) View() string {
	var b strings.Builder

	if m.lastErr != nil {
		b.WriteString(errorStyle.Render("Error: " + m.lastErr.Error()))
		b.WriteString("\n\n")
	}

	if m.snapshot.Positions == nil {
		if m.lastErr == nil {
			b.WriteString("Waiting for chart data...\n")
		}
		return b.String()
	}

	b.WriteString(titleStyle.Render("Positions"))
	if !m.snapshot.Instant.IsZero() {
		b.WriteString(mutedStyle.Render("  " + m.snapshot.Instant.Format("2006-01-02 15:04:05 UTC")))
	}
	b.WriteString("\n")
	b.WriteString(m.renderPlanetTable())

	if m.snapshot.Positions.Houses != nil {
		b.WriteString("\n")
		b.WriteString(m.renderHousePanel())
	}

	return b.String()
}

// orderedBodies returns the chart's body names in canonical display order,
// with any non-default bodies sorted at the end.
func orderedBodies(planets map[string]ephem.PlanetPosition) []string {
	var names []string
	seen := make(map[string]bool)
	for _, id := range ephem.DefaultBodies {
		if _, ok := planets[id]; ok {
			names = append(names, id)
			seen[id] = true
		}
	}
	var extra []string
	for name := range planets {
		if !seen[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	return append(names, extra...)
}

func (m ChartModel) renderPlanetTable() string {
	var b strings.Builder

	header := fmt.Sprintf("%-12s %-20s %-12s %-6s", "Body", "Position", "Speed", "Motion")
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	planets := m.snapshot.Positions.Planets
	if len(planets) == 0 {
		b.WriteString("  No bodies resolved\n")
		return b.String()
	}

	names := orderedBodies(planets)
	for i, name := range names {
		pos := planets[name]

		motion := "direct"
		if pos.Retrograde {
			motion = retroStyle.Render("R")
		}

		row := fmt.Sprintf("%-12s %-20s %+10.4f°/d %-6s",
			name,
			astro.FormatZodiac(pos.Lon),
			pos.SpeedLon,
			motion,
		)

		if i == m.cursor {
			b.WriteString(selectedRowStyle.Render(row))
		} else {
			b.WriteString(rowStyle.Render(row))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m ChartModel) renderHousePanel() string {
	var b strings.Builder
	houses := m.snapshot.Positions.Houses

	b.WriteString(titleStyle.Render("Houses"))
	b.WriteString(mutedStyle.Render("  " + houses.System))
	b.WriteString("\n")

	a := houses.Angles
	b.WriteString(rowStyle.Render(fmt.Sprintf("  ASC %-18s MC %-18s",
		astro.FormatZodiac(a.Asc), astro.FormatZodiac(a.MC))))
	b.WriteString("\n")
	b.WriteString(rowStyle.Render(fmt.Sprintf("  DC  %-18s IC %-18s",
		astro.FormatZodiac(a.DC), astro.FormatZodiac(a.IC))))
	b.WriteString("\n")

	if len(houses.Cusps) == 0 {
		b.WriteString(mutedStyle.Render("  cusps unavailable"))
		b.WriteString("\n")
		return b.String()
	}

	// Two columns of six cusps each.
	for i := 1; i <= 6; i++ {
		left := fmt.Sprintf("%2d  %-18s", i, astro.FormatZodiac(houses.Cusps[fmt.Sprint(i)]))
		right := fmt.Sprintf("%2d  %-18s", i+6, astro.FormatZodiac(houses.Cusps[fmt.Sprint(i+6)]))
		b.WriteString(rowStyle.Render("  " + left + "  " + right))
		b.WriteString("\n")
	}

	return b.String()
}
