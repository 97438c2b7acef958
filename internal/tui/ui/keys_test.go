package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func runeMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestDefaultKeyMap_VimBindings(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		msg     tea.KeyMsg
	}{
		{"k moves up", keys.Up, runeMsg('k')},
		{"j moves down", keys.Down, runeMsg('j')},
		{"h cycles to previous year", keys.PrevYear, runeMsg('h')},
		{"l cycles to next year", keys.NextYear, runeMsg('l')},
		{"a shows all years", keys.AllYears, runeMsg('a')},
		{"n opens the add form", keys.New, runeMsg('n')},
		{"slash searches", keys.Search, runeMsg('/')},
		{"q quits", keys.Quit, runeMsg('q')},
		{"t changes theme", keys.Theme, runeMsg('t')},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !key.Matches(tt.msg, tt.binding) {
				t.Errorf("expected %q to match", tt.msg.String())
			}
		})
	}
}

func TestDefaultKeyMap_ControlKeys(t *testing.T) {
	keys := DefaultKeyMap()

	if !key.Matches(tea.KeyMsg{Type: tea.KeyEnter}, keys.Select) {
		t.Error("expected enter to match Select")
	}
	if !key.Matches(tea.KeyMsg{Type: tea.KeyEsc}, keys.Back) {
		t.Error("expected esc to match Back")
	}
	if !key.Matches(tea.KeyMsg{Type: tea.KeyCtrlC}, keys.Quit) {
		t.Error("expected ctrl+c to match Quit")
	}
}
