package ui

import (
	"github.com/charmbracelet/lipgloss"
	tint "github.com/lrstanley/bubbletint"
)

// Styles contains all the styles used in the TUI
type Styles struct {
	// Base styles
	App lipgloss.Style

	// Tab bar
	TabBar      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	// Content area
	Content   lipgloss.Style
	ViewTitle lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusKey  lipgloss.Style
	StatusHelp lipgloss.Style

	// Entry list
	EntrySelected lipgloss.Style
	EntryNormal   lipgloss.Style
	EntryDate     lipgloss.Style
	EntryCategory lipgloss.Style
	EntryTask     lipgloss.Style

	// Stats
	StatLabel lipgloss.Style
	StatValue lipgloss.Style
	StatBar   lipgloss.Style

	// Input
	Input        lipgloss.Style
	InputFocused lipgloss.Style

	// Dialog
	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style

	// Errors and warnings
	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
}

// DefaultStyles returns the default TUI styles
func DefaultStyles() Styles {
	primary := lipgloss.Color("99")
	secondary := lipgloss.Color("39")
	accent := lipgloss.Color("212")
	muted := lipgloss.Color("240")
	success := lipgloss.Color("82")
	warning := lipgloss.Color("214")
	errorColor := lipgloss.Color("196")
	fg := lipgloss.Color("252")
	bg := lipgloss.Color("236")

	return buildStyles(primary, secondary, accent, muted, success, warning, errorColor, fg, bg)
}

// NewStylesFromRegistry creates a Styles struct using colors from a
// bubbletint registry. Theme colors map to semantic elements:
// Purple for tabs and titles, Cyan for dates and keys, BrightPurple for
// category accents, BrightBlack for muted text.
func NewStylesFromRegistry(r *tint.Registry) Styles {
	return buildStyles(
		r.Purple(),
		r.Cyan(),
		r.BrightPurple(),
		r.BrightBlack(),
		r.Green(),
		r.Yellow(),
		r.Red(),
		r.Fg(),
		r.Bg(),
	)
}

func buildStyles(primary, secondary, accent, muted, success, warning, errorColor, fg, bg lipgloss.TerminalColor) Styles {
	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),

		TabBar: lipgloss.NewStyle().
			MarginBottom(1).
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(muted),
		TabActive: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			Padding(0, 2),
		TabInactive: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 2),

		Content: lipgloss.NewStyle().
			Padding(0, 1),
		ViewTitle: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginBottom(1),

		StatusBar: lipgloss.NewStyle().
			Foreground(fg).
			Background(bg).
			Padding(0, 1),
		StatusKey: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),
		StatusHelp: lipgloss.NewStyle().
			Foreground(muted),

		EntrySelected: lipgloss.NewStyle().
			Background(muted).
			Bold(true),
		EntryNormal: lipgloss.NewStyle(),
		EntryDate: lipgloss.NewStyle().
			Foreground(secondary).
			Width(12),
		EntryCategory: lipgloss.NewStyle().
			Foreground(accent).
			Width(18),
		EntryTask: lipgloss.NewStyle().
			Foreground(fg),

		StatLabel: lipgloss.NewStyle().
			Foreground(muted).
			Width(22),
		StatValue: lipgloss.NewStyle().
			Foreground(fg).
			Bold(true),
		StatBar: lipgloss.NewStyle().
			Foreground(accent),

		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(muted).
			Padding(0, 1),
		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(primary).
			Padding(0, 1),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(1, 2).
			Width(50),
		DialogTitle: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginBottom(1),

		Error: lipgloss.NewStyle().
			Foreground(errorColor),
		Warning: lipgloss.NewStyle().
			Foreground(warning),
		Success: lipgloss.NewStyle().
			Foreground(success),
	}
}
