package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/razmans/devlog/internal/service"
	"github.com/razmans/devlog/internal/tui/ui"
)

// StatsModel is the model for the stats view
type StatsModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	// UI state
	width   int
	height  int
	result  *service.StatsResult
	loading bool
	err     error
	year    string
}

// NewStatsModel creates a new stats view model
func NewStatsModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) StatsModel {
	return StatsModel{
		services: services,
		styles:   styles,
		keys:     keys,
		year:     services.Settings.Get().Year,
	}
}

// statsLoadedMsg is sent when stats are loaded
type statsLoadedMsg struct {
	result *service.StatsResult
	err    error
}

// Init implements tea.Model
func (m StatsModel) Init() tea.Cmd {
	return m.loadStats()
}

// Update implements tea.Model
func (m StatsModel) Update(msg tea.Msg) (StatsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.PrevYear):
			m.cycleYear(-1)
			return m, m.loadStats()
		case key.Matches(msg, m.keys.NextYear):
			m.cycleYear(1)
			return m, m.loadStats()
		case key.Matches(msg, m.keys.Refresh):
			return m, m.loadStats()
		}

	case statsLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.result = msg.result

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	return m, nil
}

// cycleYear moves to the adjacent year in the loaded years list
func (m *StatsModel) cycleYear(delta int) {
	if m.result == nil || len(m.result.Years) == 0 {
		return
	}
	idx := 0
	for i, y := range m.result.Years {
		if y == m.year {
			idx = i
			break
		}
	}
	idx += delta
	if idx < 0 {
		idx = 0
	}
	if idx >= len(m.result.Years) {
		idx = len(m.result.Years) - 1
	}
	m.year = m.result.Years[idx]
}

// View implements tea.Model
func (m StatsModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render(fmt.Sprintf("Statistics for %s", m.year)))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString("Loading...")
		return b.String()
	}

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		return b.String()
	}

	if m.result == nil {
		b.WriteString("No data")
		return b.String()
	}

	maxCount := 0
	for _, cs := range m.result.Categories {
		if cs.Count > maxCount {
			maxCount = cs.Count
		}
	}

	for _, cs := range m.result.Categories {
		label := fmt.Sprintf("%s %s", cs.Category.Icon, cs.Category.Label)
		b.WriteString(m.styles.StatLabel.Render(label))
		b.WriteString(" ")
		b.WriteString(m.styles.StatBar.Render(renderBar(cs.Count, maxCount, 20)))
		b.WriteString(" ")
		b.WriteString(m.styles.StatValue.Render(fmt.Sprintf("%d", cs.Count)))
		if cs.Score != "" {
			b.WriteString("  ")
			b.WriteString(m.styles.StatLabel.Render(cs.Score))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.StatLabel.Render("Total entries:"))
	b.WriteString(" ")
	b.WriteString(m.styles.StatValue.Render(fmt.Sprintf("%d %s", m.result.Total, pluralize("entry", m.result.Total))))
	b.WriteString("\n")

	if len(m.result.Years) > 0 {
		b.WriteString(m.styles.StatLabel.Render("Years with entries:"))
		b.WriteString(" ")
		b.WriteString(m.styles.StatValue.Render(strings.Join(m.result.Years, ", ")))
		b.WriteString("\n")
	}

	return b.String()
}

// renderBar renders a proportional bar of at most width cells
func renderBar(count, maxCount, width int) string {
	if maxCount == 0 || count == 0 {
		return strings.Repeat("·", 1)
	}
	filled := count * width / maxCount
	if filled < 1 {
		filled = 1
	}
	return strings.Repeat("█", filled)
}

// SetSize sets the view dimensions
func (m *StatsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// loadStats creates a command to load stats
func (m StatsModel) loadStats() tea.Cmd {
	year := m.year
	return func() tea.Msg {
		result, err := m.services.Stats.ForYear(year)
		return statsLoadedMsg{result: result, err: err}
	}
}
