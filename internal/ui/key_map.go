package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	toggle  key.Binding
	reset   key.Binding
	longer  key.Binding
	shorter key.Binding
	enter   key.Binding
	save    key.Binding
	skip    key.Binding
	restart key.Binding
	quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		toggle:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "start/pause")),
		reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		longer:  key.NewBinding(key.WithKeys("+", "=", "up"), key.WithHelp("+/↑", "longer")),
		shorter: key.NewBinding(key.WithKeys("-", "down"), key.WithHelp("-/↓", "shorter")),
		enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		save:    key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "save")),
		skip:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "skip")),
		restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "again")),
		quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.toggle, k.reset},
		{k.longer, k.shorter},
		{k.save, k.skip, k.quit},
	}
}
