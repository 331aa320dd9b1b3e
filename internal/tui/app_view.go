package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/dropdown/internal/tui/styles"
)

// Offsets added by styles.App's padding.
const (
	appPadTop  = 1
	appPadLeft = 2
)

var headings = map[string]string{
	MultiSelectID:  "Multi Select Dropdown",
	SingleSelectID: "Single Select Dropdown",
}

// View implements tea.Model. It records where each select was drawn so the
// next mouse event can be routed.
func (a *App) View() string {
	var (
		blocks []string
		y      int
	)
	add := func(block string) {
		blocks = append(blocks, block)
		y += lipgloss.Height(block)
	}

	a.frames = a.frames[:0]
	for i, s := range a.selects {
		if i > 0 {
			add(styles.Rule.Render(strings.Repeat("─", s.Width())))
		}
		add(styles.Title.Render(headings[s.ID()]))

		view := s.View()
		a.frames = append(a.frames, frame{
			x:      appPadLeft,
			y:      appPadTop + y,
			width:  s.Width(),
			height: lipgloss.Height(view),
		})
		add(view)
	}

	add("")
	add(a.renderStatus())
	add(a.help.View(a.keymap))

	return styles.App.Render(strings.Join(blocks, "\n"))
}

func (a *App) renderStatus() string {
	if a.statusMsg == "" {
		return ""
	}
	if a.statusErr {
		return styles.StatusError.Render(a.statusMsg)
	}
	return styles.StatusMessage.Render(a.statusMsg)
}
