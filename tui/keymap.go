package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines keyboard shortcuts for the calculator
type KeyMap struct {
	Quit         key.Binding
	NextTab      key.Binding
	PrevTab      key.Binding
	NextField    key.Binding
	PrevField    key.Binding
	Calculate    key.Binding
	Reset        key.Binding
	ToggleUnit   key.Binding
	ToggleBasis  key.Binding
	ClearHistory key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("ctrl+n", "f2"),
			key.WithHelp("ctrl+n", "next calculator"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("ctrl+p", "f1"),
			key.WithHelp("ctrl+p", "prev calculator"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Calculate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "calculate"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reset"),
		),
		ToggleUnit: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "annual/monthly"),
		),
		ToggleBasis: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("ctrl+b", "per 100/percent"),
		),
		ClearHistory: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "clear history"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Calculate, k.Reset, k.NextTab, k.NextField, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Calculate, k.Reset, k.ClearHistory},
		{k.NextTab, k.PrevTab, k.NextField, k.PrevField},
		{k.ToggleUnit, k.ToggleBasis, k.Quit},
	}
}
