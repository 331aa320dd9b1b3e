// Package styles provides Lip Gloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Highlight is the accent color for focused and selected items
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}

	// Special colors
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}

	highlightBackground = lipgloss.AdaptiveColor{Light: "#EEEEEE", Dark: "#333333"}
	badgeBorder         = lipgloss.AdaptiveColor{Light: "#BBBBBB", Dark: "#555555"}
)

// Base styles
var (
	// App is the base style for the entire application
	App = lipgloss.NewStyle().
		Padding(1, 2)

	// Title is the style for section titles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// Rule separates the demo sections.
	Rule = lipgloss.NewStyle().
		Foreground(Subtle).
		Faint(true)
)

// Select container. The border is one cell on each side and the padding is
// one cell horizontally; components rely on that for hit testing.
var (
	Container = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Subtle).
			Padding(0, 1)

	ContainerFocused = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(Highlight).
				Padding(0, 1)

	// Value is the single-mode value label.
	Value = lipgloss.NewStyle()

	// Placeholder is shown when nothing is selected.
	Placeholder = lipgloss.NewStyle().
			Foreground(Subtle).
			Faint(true)

	// Badge is one selected option in multi mode.
	Badge = lipgloss.NewStyle().
		Foreground(Highlight)

	// BadgeBracket wraps a badge.
	BadgeBracket = lipgloss.NewStyle().
			Foreground(badgeBorder)

	// ClearButton is the control that empties the selection.
	ClearButton = lipgloss.NewStyle().
			Foreground(Subtle)

	// Divider sits between the clear control and the caret.
	Divider = lipgloss.NewStyle().
		Foreground(badgeBorder)

	// Caret points at the option list.
	Caret = lipgloss.NewStyle().
		Foreground(Subtle)
)

// Option list. Like the container, the list border is one cell wide and the
// entries have no horizontal padding.
var (
	// List is only rendered while the select is open.
	List = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Highlight)

	ListItem = lipgloss.NewStyle()

	ListItemSelected = lipgloss.NewStyle().
				Bold(true).
				Foreground(Highlight)

	ListItemHighlighted = lipgloss.NewStyle().
				Background(highlightBackground)

	ListItemSelectedHighlighted = ListItemHighlighted.
					Inherit(ListItemSelected)
)

// ListItemStyle returns the entry style for the given flags.
func ListItemStyle(selected, highlighted bool) lipgloss.Style {
	switch {
	case selected && highlighted:
		return ListItemSelectedHighlighted
	case selected:
		return ListItemSelected
	case highlighted:
		return ListItemHighlighted
	default:
		return ListItem
	}
}

// Status and help
var (
	StatusMessage = lipgloss.NewStyle().
			Foreground(SuccessColor)

	StatusError = lipgloss.NewStyle().
			Foreground(ErrorColor)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Subtle)
)
