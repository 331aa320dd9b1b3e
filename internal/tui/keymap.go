// Package tui provides the terminal user interface of the dropdown demo.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/hy4ri/dropdown/internal/tui/components"
)

// KeyMap contains the demo's own bindings plus those of its selects.
type KeyMap struct {
	Select components.SelectKeyMap

	NextSelect key.Binding
	PrevSelect key.Binding
	Copy       key.Binding
	Help       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

// DefaultKeymap returns the default key bindings.
func DefaultKeymap(vim bool) KeyMap {
	return KeyMap{
		Select: components.DefaultSelectKeyMap(vim),

		NextSelect: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next select"),
		),
		PrevSelect: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous select"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy selection"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select.Toggle, k.Select.Down, k.NextSelect, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Select.Toggle, k.Select.Down, k.Select.Up, k.Select.Close},
		{k.NextSelect, k.PrevSelect, k.Copy},
		{k.Help, k.Quit},
	}
}
