package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/razmans/devlog/internal/category"
	"github.com/razmans/devlog/internal/entry"
	"github.com/razmans/devlog/internal/filter"
	"github.com/razmans/devlog/internal/service"
	"github.com/razmans/devlog/internal/tui/ui"
)

// entryMode represents the current mode of the entries view
type entryMode int

const (
	entryModeNormal entryMode = iota
	entryModeAdd
	entryModeDelete
	entryModeSearch
)

// Form field indexes for the add form
const (
	fieldTask = iota
	fieldCategory
	fieldDate
)

// EntriesModel is the model for the entries view
type EntriesModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	// UI state
	width   int
	height  int
	cursor  int
	entries []entry.Entry
	total   int
	loading bool
	err     error

	// Year filter. Empty means all years.
	year      string
	years     []string
	yearIndex int // index into years, -1 = all

	// Add form state
	mode         entryMode
	taskInput    textinput.Model
	dateInput    textinput.Model
	categoryIdx  int // index into category.All()
	focusedField int

	// Search mode state
	searchInput   textinput.Model
	searchResults []entry.Entry
	searchCursor  int
	searched      bool
}

// NewEntriesModel creates a new entries view model
func NewEntriesModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) EntriesModel {
	taskInput := textinput.New()
	taskInput.Placeholder = "What did you do?"
	taskInput.CharLimit = 300
	taskInput.Width = 50

	dateInput := textinput.New()
	dateInput.Placeholder = "YYYY-MM-DD (empty = today)"
	dateInput.CharLimit = 10
	dateInput.Width = 26

	searchInput := textinput.New()
	searchInput.Placeholder = "Search tasks..."
	searchInput.CharLimit = 100
	searchInput.Width = 40

	return EntriesModel{
		services:    services,
		styles:      styles,
		keys:        keys,
		year:        services.Settings.Get().Year,
		taskInput:   taskInput,
		dateInput:   dateInput,
		searchInput: searchInput,
	}
}

// entriesLoadedMsg is sent when entries are loaded
type entriesLoadedMsg struct {
	entries []entry.Entry
	years   []string
	total   int
	err     error
}

// searchResultsMsg is sent when search results are loaded
type searchResultsMsg struct {
	results []entry.Entry
	err     error
}

// Init implements tea.Model
func (m EntriesModel) Init() tea.Cmd {
	return m.loadEntries()
}

// Update implements tea.Model
func (m EntriesModel) Update(msg tea.Msg) (EntriesModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case entryModeAdd:
			return m.handleAddMode(msg)
		case entryModeDelete:
			return m.handleDeleteMode(msg)
		case entryModeSearch:
			return m.handleSearchMode(msg)
		}

		// Normal mode key handling
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
			return m, nil
		case key.Matches(msg, m.keys.PrevYear):
			m.cycleYear(-1)
			return m, m.loadEntries()
		case key.Matches(msg, m.keys.NextYear):
			m.cycleYear(1)
			return m, m.loadEntries()
		case key.Matches(msg, m.keys.AllYears):
			m.year = ""
			m.yearIndex = -1
			return m, m.loadEntries()
		case key.Matches(msg, m.keys.Refresh):
			return m, m.loadEntries()
		case key.Matches(msg, m.keys.New):
			m.mode = entryModeAdd
			m.taskInput.SetValue("")
			m.dateInput.SetValue("")
			m.categoryIdx = 0
			m.focusedField = fieldTask
			m.taskInput.Focus()
			return m, textinput.Blink
		case key.Matches(msg, m.keys.Delete):
			if len(m.entries) > 0 && m.cursor < len(m.entries) {
				m.mode = entryModeDelete
			}
			return m, nil
		case key.Matches(msg, m.keys.Search):
			m.mode = entryModeSearch
			m.searchInput.SetValue("")
			m.searchInput.Focus()
			m.searched = false
			m.searchResults = nil
			m.searchCursor = 0
			return m, textinput.Blink
		}

	case entriesLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.mode = entryModeNormal
		if msg.err == nil {
			m.entries = msg.entries
			m.years = msg.years
			m.total = msg.total
			m.syncYearIndex()
			if m.cursor >= len(m.entries) {
				m.cursor = max(0, len(m.entries)-1)
			}
		}

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil

	case searchResultsMsg:
		m.searched = true
		m.err = msg.err
		if msg.err == nil {
			m.searchResults = msg.results
			m.searchCursor = 0
		}
		return m, nil
	}

	if m.mode == entryModeSearch && m.searchInput.Focused() {
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

// cycleYear moves the year filter through the available years.
// Going past either end selects all years.
func (m *EntriesModel) cycleYear(delta int) {
	if len(m.years) == 0 {
		return
	}
	next := m.yearIndex + delta
	if next < 0 || next >= len(m.years) {
		m.year = ""
		m.yearIndex = -1
		return
	}
	m.yearIndex = next
	m.year = m.years[next]
}

// syncYearIndex realigns yearIndex after the years list is reloaded
func (m *EntriesModel) syncYearIndex() {
	m.yearIndex = -1
	for i, y := range m.years {
		if y == m.year {
			m.yearIndex = i
			return
		}
	}
	if m.yearIndex == -1 {
		m.year = ""
	}
}

// handleAddMode handles key events when the add form is open
func (m EntriesModel) handleAddMode(msg tea.KeyMsg) (EntriesModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select): // Enter
		task := strings.TrimSpace(m.taskInput.Value())
		if task != "" {
			m.taskInput.Blur()
			m.dateInput.Blur()
			cat := category.All()[m.categoryIdx].ID
			date := strings.TrimSpace(m.dateInput.Value())
			return m, m.addEntry(task, cat, date)
		}
		return m, nil
	case key.Matches(msg, m.keys.Back): // Escape
		m.mode = entryModeNormal
		m.taskInput.Blur()
		m.dateInput.Blur()
		return m, nil
	case msg.String() == "tab":
		m.focusedField = (m.focusedField + 1) % 3
		m.focusInput()
		return m, textinput.Blink
	case msg.String() == "shift+tab":
		m.focusedField = (m.focusedField + 2) % 3
		m.focusInput()
		return m, textinput.Blink
	}

	// Category field cycles with arrows instead of typing
	if m.focusedField == fieldCategory {
		switch msg.String() {
		case "left", "up":
			m.categoryIdx = (m.categoryIdx + len(category.All()) - 1) % len(category.All())
		case "right", "down", " ":
			m.categoryIdx = (m.categoryIdx + 1) % len(category.All())
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.focusedField == fieldTask {
		m.taskInput, cmd = m.taskInput.Update(msg)
	} else {
		m.dateInput, cmd = m.dateInput.Update(msg)
	}
	return m, cmd
}

// focusInput moves textinput focus to match the focused field
func (m *EntriesModel) focusInput() {
	m.taskInput.Blur()
	m.dateInput.Blur()
	switch m.focusedField {
	case fieldTask:
		m.taskInput.Focus()
	case fieldDate:
		m.dateInput.Focus()
	}
}

// handleDeleteMode handles key events when in delete confirmation mode
func (m EntriesModel) handleDeleteMode(msg tea.KeyMsg) (EntriesModel, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if m.cursor < len(m.entries) {
			id := m.entries[m.cursor].ID
			m.mode = entryModeNormal
			return m, m.deleteEntry(id)
		}
	case "n", "N", "esc":
		m.mode = entryModeNormal
	}
	return m, nil
}

// handleSearchMode handles key events when in search mode
func (m EntriesModel) handleSearchMode(msg tea.KeyMsg) (EntriesModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select): // Enter
		if m.searchInput.Focused() {
			query := strings.TrimSpace(m.searchInput.Value())
			if query != "" {
				m.searchInput.Blur()
				return m, m.searchEntries(query)
			}
		}
		return m, nil
	case key.Matches(msg, m.keys.Back): // Escape
		m.mode = entryModeNormal
		m.searchInput.Blur()
		m.searched = false
		m.searchResults = nil
		return m, nil
	case key.Matches(msg, m.keys.Up):
		if !m.searchInput.Focused() && m.searchCursor > 0 {
			m.searchCursor--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if !m.searchInput.Focused() && m.searchCursor < len(m.searchResults)-1 {
			m.searchCursor++
		}
		return m, nil
	case msg.String() == "/":
		m.searchInput.Focus()
		return m, textinput.Blink
	}

	if m.searchInput.Focused() {
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model
func (m EntriesModel) View() string {
	var b strings.Builder

	switch m.mode {
	case entryModeAdd:
		return m.renderAddForm()
	case entryModeDelete:
		return m.renderDeleteConfirm()
	case entryModeSearch:
		return m.renderSearchView()
	}

	title := "Entries"
	if m.year != "" {
		title = fmt.Sprintf("Entries for %s", m.year)
	}
	b.WriteString(m.styles.ViewTitle.Render(title))
	b.WriteString("\n")

	if m.loading {
		b.WriteString("Loading...")
		return b.String()
	}

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		return b.String()
	}

	if len(m.entries) == 0 {
		b.WriteString(m.styles.StatLabel.Render("No entries found"))
		b.WriteString("\n\n")
		b.WriteString(m.styles.StatLabel.Render("Press 'n' to log a new entry"))
		return b.String()
	}

	b.WriteString(RenderEntryList(m.entries, m.styles, EntryRenderOptions{
		Width:  m.width,
		Cursor: m.cursor,
	}))

	b.WriteString(strings.Repeat("─", min(50, m.width)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%d %s shown (%d total)",
		len(m.entries),
		pluralize("entry", len(m.entries)),
		m.total))

	return b.String()
}

// renderAddForm renders the new-entry form
func (m EntriesModel) renderAddForm() string {
	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render("New Entry"))
	b.WriteString("\n\n")

	taskLabel := "Task:"
	if m.focusedField == fieldTask {
		taskLabel = "▸ Task:"
	}
	b.WriteString(m.styles.StatLabel.Render(taskLabel))
	b.WriteString("\n")
	b.WriteString(m.taskInput.View())
	b.WriteString("\n\n")

	catLabel := "Category:"
	if m.focusedField == fieldCategory {
		catLabel = "▸ Category:"
	}
	b.WriteString(m.styles.StatLabel.Render(catLabel))
	b.WriteString("\n")
	b.WriteString(m.renderCategoryPicker())
	b.WriteString("\n\n")

	dateLabel := "Date:"
	if m.focusedField == fieldDate {
		dateLabel = "▸ Date:"
	}
	b.WriteString(m.styles.StatLabel.Render(dateLabel))
	b.WriteString("\n")
	b.WriteString(m.dateInput.View())
	b.WriteString("\n\n")

	b.WriteString(m.styles.StatLabel.Render("Tab to switch fields, Enter to save, Esc to cancel"))
	return b.String()
}

// renderCategoryPicker renders the horizontal category selector
func (m EntriesModel) renderCategoryPicker() string {
	var parts []string
	for i, c := range category.All() {
		label := fmt.Sprintf("%s %s", c.Icon, c.Short)
		if i == m.categoryIdx {
			parts = append(parts, m.styles.EntrySelected.Render(" "+label+" "))
		} else {
			parts = append(parts, m.styles.StatLabel.Render(" "+label+" "))
		}
	}
	return strings.Join(parts, " ")
}

// renderDeleteConfirm renders the delete confirmation dialog
func (m EntriesModel) renderDeleteConfirm() string {
	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render("Delete Entry"))
	b.WriteString("\n\n")

	if m.cursor < len(m.entries) {
		e := m.entries[m.cursor]
		c := category.Of(e.Category)
		b.WriteString(m.styles.Warning.Render("Are you sure you want to delete this entry?"))
		b.WriteString("\n\n")
		b.WriteString(m.styles.StatLabel.Render("Task: "))
		b.WriteString(m.styles.StatValue.Render(e.Task))
		b.WriteString("\n")
		b.WriteString(m.styles.StatLabel.Render("Category: "))
		b.WriteString(m.styles.StatValue.Render(fmt.Sprintf("%s %s", c.Icon, c.Label)))
		b.WriteString("\n")
		b.WriteString(m.styles.StatLabel.Render("Date: "))
		b.WriteString(m.styles.StatValue.Render(e.Date))
		b.WriteString("\n\n")
	}

	b.WriteString(m.styles.StatLabel.Render("Press Y to confirm, N or Esc to cancel"))
	return b.String()
}

// renderSearchView renders the search interface
func (m EntriesModel) renderSearchView() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Search Entries"))
	b.WriteString("\n\n")
	b.WriteString(m.searchInput.View())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}

	if !m.searched {
		b.WriteString(m.styles.StatLabel.Render("Enter a search term and press Enter"))
		b.WriteString("\n\n")
		b.WriteString(m.styles.StatLabel.Render("Press Esc to return to entries"))
		return b.String()
	}

	if len(m.searchResults) == 0 {
		b.WriteString(m.styles.StatLabel.Render("No results found"))
		b.WriteString("\n\n")
		b.WriteString(m.styles.StatLabel.Render("Press / to search again, Esc to return"))
		return b.String()
	}

	b.WriteString(fmt.Sprintf("Found %d %s:\n\n", len(m.searchResults), pluralize("result", len(m.searchResults))))
	b.WriteString(RenderEntryList(m.searchResults, m.styles, EntryRenderOptions{
		Width:  m.width,
		Cursor: m.searchCursor,
	}))

	b.WriteString("\n")
	b.WriteString(m.styles.StatLabel.Render("j/k navigate  / search again  Esc return"))

	return b.String()
}

// SetSize sets the view dimensions
func (m *EntriesModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Year returns the active year filter for testing
func (m EntriesModel) Year() string {
	return m.year
}

// loadEntries creates a command to load entries
func (m EntriesModel) loadEntries() tea.Cmd {
	year := m.year
	return func() tea.Msg {
		result, err := m.services.Entry.List(filter.NewFilter("", "", year))
		if err != nil {
			return entriesLoadedMsg{err: err}
		}
		years, err := m.services.Entry.Years()
		if err != nil {
			return entriesLoadedMsg{err: err}
		}
		return entriesLoadedMsg{
			entries: result.Entries,
			years:   years,
			total:   result.Total,
		}
	}
}

// addEntry creates a command to add a new entry
func (m EntriesModel) addEntry(task, categoryID, date string) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.services.Entry.Create(task, categoryID, date); err != nil {
			return entriesLoadedMsg{err: err}
		}
		return m.loadEntries()()
	}
}

// deleteEntry creates a command to delete an entry
func (m EntriesModel) deleteEntry(id string) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.services.Entry.Delete(id); err != nil {
			return entriesLoadedMsg{err: err}
		}
		return m.loadEntries()()
	}
}

// searchEntries creates a command to search entries
func (m EntriesModel) searchEntries(query string) tea.Cmd {
	return func() tea.Msg {
		result, err := m.services.Search.Search(query)
		if err != nil {
			return searchResultsMsg{err: err}
		}
		return searchResultsMsg{results: result.Entries}
	}
}

// IsInputMode returns true when the view is capturing keyboard input
func (m EntriesModel) IsInputMode() bool {
	return m.mode == entryModeAdd || m.mode == entryModeSearch
}
