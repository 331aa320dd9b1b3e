// Package components provides the reusable widgets of the dropdown demo.
package components

import tea "github.com/charmbracelet/bubbletea"

// Component is a sub-model owned by a host model. The host forwards
// messages to it and embeds its View in its own.
type Component interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Component, tea.Cmd)
	View() string

	// SetSize updates the space the component may render into.
	SetSize(width, height int)
}

// Focusable is a component that only reacts to the keyboard while focused.
type Focusable interface {
	Component
	Focus()
	// Blur removes focus. Widgets with transient state (an open list)
	// discard it here.
	Blur()
	Focused() bool
}
