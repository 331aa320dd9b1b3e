package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/dropdown/internal/option"
	"github.com/hy4ri/dropdown/internal/tui/components"
)

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.handleWindowSizeMsg(msg)
		return a, nil

	case tea.KeyMsg:
		return a, a.handleKeyMsg(msg)

	case tea.MouseMsg:
		return a, a.handleMouseMsg(msg)

	case tea.BlurMsg:
		// The terminal lost focus: close lists but remember which select
		// to focus again.
		if s := a.Focused(); s != nil {
			s.Blur()
		}
		return a, nil

	case tea.FocusMsg:
		if s := a.Focused(); s != nil {
			s.Focus()
		}
		return a, nil

	case components.SelectChangedMsg:
		a.handleSelectChanged(msg)
		return a, nil
	}

	return a, nil
}

func (a *App) handleWindowSizeMsg(msg tea.WindowSizeMsg) {
	a.width = msg.Width
	a.height = msg.Height
	a.help.Width = msg.Width

	width := a.config.UI.Width
	if avail := msg.Width - 4; avail > 0 && (width <= 0 || width > avail) {
		width = avail
	}
	for _, s := range a.selects {
		s.SetSize(width, msg.Height)
	}
}

// handleKeyMsg routes a key press. An open list gets every key except
// ctrl+c and focus changes, so type-ahead can use letters like q and y.
func (a *App) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, a.keymap.ForceQuit) {
		return tea.Quit
	}

	switch {
	case key.Matches(msg, a.keymap.NextSelect):
		a.cycleFocus(1)
		return nil
	case key.Matches(msg, a.keymap.PrevSelect):
		a.cycleFocus(-1)
		return nil
	}

	focused := a.Focused()
	if focused == nil || !focused.IsOpen() {
		switch {
		case key.Matches(msg, a.keymap.Quit):
			return tea.Quit
		case key.Matches(msg, a.keymap.Copy):
			a.copySelection()
			return nil
		case key.Matches(msg, a.keymap.Help):
			a.help.ShowAll = !a.help.ShowAll
			return nil
		}
	}

	if focused == nil {
		return nil
	}
	_, cmd := focused.Update(msg)
	return cmd
}

// handleMouseMsg forwards mouse events to the select under the pointer in
// its own coordinates. Pressing a select focuses it; pressing anywhere else
// takes focus away from all of them.
func (a *App) handleMouseMsg(msg tea.MouseMsg) tea.Cmd {
	press := msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft

	for i, f := range a.frames {
		if i >= len(a.selects) || !f.contains(msg.X, msg.Y) {
			continue
		}
		if press && a.focus != i {
			a.setFocus(i)
		}
		local := msg
		local.X -= f.x
		local.Y -= f.y
		_, cmd := a.selects[i].Update(local)
		return cmd
	}

	if press && a.focus != noFocus {
		a.setFocus(noFocus)
	}
	return nil
}

// handleSelectChanged accepts a proposed selection and renders it.
func (a *App) handleSelectChanged(msg components.SelectChangedMsg) {
	switch msg.ID {
	case MultiSelectID:
		a.multi = msg.Values
		a.logger.Debug("selection changed", "select", msg.ID, "value", option.Labels(a.multi))
	case SingleSelectID:
		a.single = msg.Value
		label := ""
		if a.single != nil {
			label = a.single.Label
		}
		a.logger.Debug("selection changed", "select", msg.ID, "value", label)
	default:
		a.logger.Warn("change for unknown select", "select", msg.ID)
		return
	}
	a.render()
}

// copySelection puts the focused select's labels on the clipboard.
func (a *App) copySelection() {
	s := a.Focused()
	if s == nil {
		a.setStatus("Nothing focused", false)
		return
	}

	if len(s.Options()) == 0 {
		a.setStatus("No options", false)
		return
	}

	selected := s.Selected()
	if len(selected) == 0 {
		a.setStatus("Nothing selected", false)
		return
	}

	text := strings.Join(option.Labels(selected), ", ")
	if err := a.writeClipboard(text); err != nil {
		a.logger.Warn("clipboard write failed", "err", err)
		a.setStatus("Copy failed: "+err.Error(), true)
		return
	}
	a.setStatus("Copied: "+text, false)
}

func (a *App) setStatus(msg string, isErr bool) {
	a.statusMsg = msg
	a.statusErr = isErr
}
