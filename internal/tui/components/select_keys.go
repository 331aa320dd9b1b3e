package components

import "github.com/charmbracelet/bubbles/key"

// SelectKeyMap holds the bindings a focused select reacts to.
type SelectKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Close  key.Binding
}

// DefaultSelectKeyMap returns the arrow-key bindings, plus j/k when vim is set.
func DefaultSelectKeyMap(vim bool) SelectKeyMap {
	up := []string{"up"}
	down := []string{"down"}
	upHelp, downHelp := "↑", "↓"
	if vim {
		up = append(up, "k")
		down = append(down, "j")
		upHelp, downHelp = "↑/k", "↓/j"
	}

	return SelectKeyMap{
		Up: key.NewBinding(
			key.WithKeys(up...),
			key.WithHelp(upHelp, "open / previous"),
		),
		Down: key.NewBinding(
			key.WithKeys(down...),
			key.WithHelp(downHelp, "open / next"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " ", "space"),
			key.WithHelp("enter/space", "toggle / pick"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
	}
}
