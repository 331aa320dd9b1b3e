package tui

import (
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/dropdown/internal/config"
	"github.com/hy4ri/dropdown/internal/option"
	"github.com/hy4ri/dropdown/internal/tui/components"
	"github.com/hy4ri/dropdown/internal/tui/styles"
)

// Select IDs, also their position on screen.
const (
	MultiSelectID  = "multi"
	SingleSelectID = "single"
)

const noFocus = -1

// frame is where a select was drawn by the last View.
type frame struct {
	x, y, width, height int
}

func (f frame) contains(x, y int) bool {
	return x >= f.x && x < f.x+f.width && y >= f.y && y < f.y+f.height
}

// App is the main Bubble Tea model for the application.
//
// It owns the selection of both selects. A select only proposes changes;
// App stores them and hands them back before the next render.
type App struct {
	// Dependencies
	config  *config.Config
	logger  *slog.Logger
	options []*option.Option

	// Selection state
	single *option.Option
	multi  []*option.Option

	// Components
	selects []*components.SelectModel
	focus   int
	keymap  KeyMap
	help    help.Model

	// UI state
	statusMsg string
	statusErr bool
	width     int
	height    int
	frames    []frame

	// writeClipboard is clipboard.WriteAll outside tests.
	writeClipboard func(string) error
}

// NewApp creates the demo with options offered by both selects. The single
// select starts on the first option and the multi select with it alone.
func NewApp(cfg *config.Config, options []*option.Option, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}

	a := &App{
		config:         cfg,
		logger:         logger,
		options:        options,
		multi:          []*option.Option{},
		focus:          noFocus,
		keymap:         DefaultKeymap(cfg.UI.VimMode),
		help:           help.New(),
		writeClipboard: clipboard.WriteAll,
	}

	if len(options) > 0 {
		a.single = options[0]
		a.multi = []*option.Option{options[0]}
	}

	multi := components.NewMultiSelect(MultiSelectID, options)
	single := components.NewSelect(SingleSelectID, options)
	a.selects = []*components.SelectModel{multi, single}

	a.help.Styles.ShortDesc = styles.HelpDesc
	a.help.Styles.FullDesc = styles.HelpDesc

	for _, s := range a.selects {
		s.SetKeyMap(a.keymap.Select)
		s.SetTypeAhead(cfg.UI.TypeAhead)
		if cfg.UI.Width > 0 {
			s.SetSize(cfg.UI.Width, 0)
		}
	}
	a.render()
	a.setFocus(0)

	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return nil
}

// Single returns the single select's current value.
func (a *App) Single() *option.Option {
	return a.single
}

// Multi returns the multi select's current value.
func (a *App) Multi() []*option.Option {
	return a.multi
}

// Focused returns the focused select, or nil.
func (a *App) Focused() *components.SelectModel {
	if a.focus == noFocus {
		return nil
	}
	return a.selects[a.focus]
}

// render pushes the owned selection down into the selects.
func (a *App) render() {
	for _, s := range a.selects {
		switch s.ID() {
		case MultiSelectID:
			s.SetValues(a.multi)
		case SingleSelectID:
			s.SetValue(a.single)
		}
	}
}

// setFocus focuses the select at index i and blurs every other one.
// noFocus blurs them all.
func (a *App) setFocus(i int) {
	for j, s := range a.selects {
		if j != i {
			s.Blur()
		}
	}
	a.focus = i
	if i != noFocus {
		a.selects[i].Focus()
	}
}

// cycleFocus moves focus by delta, wrapping around.
func (a *App) cycleFocus(delta int) {
	n := len(a.selects)
	if n == 0 {
		return
	}
	next := 0
	if a.focus != noFocus {
		next = ((a.focus+delta)%n + n) % n
	} else if delta < 0 {
		next = n - 1
	}
	a.setFocus(next)
}
