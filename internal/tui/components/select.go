package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/dropdown/internal/option"
	"github.com/hy4ri/dropdown/internal/tui/mouse"
	"github.com/hy4ri/dropdown/internal/tui/styles"
	"github.com/mattn/go-runewidth"
	"github.com/sahilm/fuzzy"
)

const (
	// DefaultSelectWidth is the outer width of a select before SetSize.
	DefaultSelectWidth = 40

	// Border plus horizontal padding of styles.Container.
	containerChrome = 4
	// " × │ ▾"
	controlsWidth = 6
	minValueWidth = 8

	minSelectWidth = containerChrome + controlsWidth + minValueWidth

	placeholderText = "Select…"
)

// Hit map region IDs.
const (
	regionContainer = "container"
	regionBadge     = "badge"
	regionClear     = "clear"
	regionItem      = "item"
)

var _ Focusable = (*SelectModel)(nil)

// SelectModel is a single or multi select dropdown.
//
// The selected value belongs to the owner: the select renders whatever was
// last passed to SetValue or SetValues and proposes changes with a
// SelectChangedMsg. Only the open flag, the highlighted entry and the
// type-ahead query are the select's own.
type SelectModel struct {
	id       string
	options  []*option.Option
	multiple bool

	value  *option.Option
	values []*option.Option

	open        bool
	highlighted int
	query       string

	focused   bool
	typeAhead bool
	keys      SelectKeyMap
	width     int

	hits *mouse.HitMap
}

// NewSelect creates a single-mode select over options.
func NewSelect(id string, options []*option.Option) *SelectModel {
	return newSelect(id, options, false)
}

// NewMultiSelect creates a multi-mode select over options.
func NewMultiSelect(id string, options []*option.Option) *SelectModel {
	return newSelect(id, options, true)
}

func newSelect(id string, options []*option.Option, multiple bool) *SelectModel {
	return &SelectModel{
		id:       id,
		options:  options,
		multiple: multiple,
		values:   []*option.Option{},
		keys:     DefaultSelectKeyMap(false),
		width:    DefaultSelectWidth,
		hits:     mouse.NewHitMap(),
	}
}

// ID returns the identifier carried by this select's messages.
func (s *SelectModel) ID() string {
	return s.id
}

// Options returns the candidate options.
func (s *SelectModel) Options() []*option.Option {
	return s.options
}

// SetValue sets the single-mode value to render.
func (s *SelectModel) SetValue(o *option.Option) {
	s.value = o
}

// SetValues sets the multi-mode value to render.
func (s *SelectModel) SetValues(values []*option.Option) {
	if values == nil {
		values = []*option.Option{}
	}
	s.values = values
}

// Value returns the single-mode value last set by the owner.
func (s *SelectModel) Value() *option.Option {
	return s.value
}

// Values returns the multi-mode value last set by the owner.
func (s *SelectModel) Values() []*option.Option {
	return s.values
}

// Selected returns the current selection as a list in either mode.
func (s *SelectModel) Selected() []*option.Option {
	if s.multiple {
		return s.values
	}
	if s.value == nil {
		return nil
	}
	return []*option.Option{s.value}
}

// SetKeyMap replaces the key bindings.
func (s *SelectModel) SetKeyMap(km SelectKeyMap) {
	s.keys = km
}

// SetTypeAhead enables jumping to options by typing while the list is open.
func (s *SelectModel) SetTypeAhead(enabled bool) {
	s.typeAhead = enabled
}

// IsOpen reports whether the option list is shown.
func (s *SelectModel) IsOpen() bool {
	return s.open
}

// Highlighted returns the index of the highlighted option.
// It is meaningless while the list is closed.
func (s *SelectModel) Highlighted() int {
	return s.highlighted
}

// Query returns the pending type-ahead query.
func (s *SelectModel) Query() string {
	return s.query
}

// Init implements Component.
func (s *SelectModel) Init() tea.Cmd {
	return nil
}

// Update implements Component.
func (s *SelectModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !s.focused {
			return s, nil
		}
		return s, s.handleKeyMsg(msg)
	case tea.MouseMsg:
		return s, s.handleMouseMsg(msg)
	}
	return s, nil
}

// handleKeyMsg processes keyboard input while focused.
func (s *SelectModel) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, s.keys.Toggle):
		wasOpen := s.open
		s.setOpen(!wasOpen)
		if wasOpen {
			if o := s.highlightedOption(); o != nil {
				return s.pick(o, true)
			}
		}
	case key.Matches(msg, s.keys.Down):
		s.navigate(1)
	case key.Matches(msg, s.keys.Up):
		s.navigate(-1)
	case key.Matches(msg, s.keys.Close):
		s.setOpen(false)
	case s.open && s.typeAhead && msg.Type == tea.KeyBackspace:
		if s.query != "" {
			runes := []rune(s.query)
			s.query = string(runes[:len(runes)-1])
			s.jumpTo(s.query)
		}
	case s.open && s.typeAhead && msg.Type == tea.KeyRunes && !msg.Alt:
		s.query += string(msg.Runes)
		s.jumpTo(s.query)
	}
	return nil
}

// handleMouseMsg resolves a mouse event against the last rendered view.
// Coordinates are relative to the select's top-left cell.
func (s *SelectModel) handleMouseMsg(msg tea.MouseMsg) tea.Cmd {
	region := s.hits.Test(msg.X, msg.Y)
	if region == nil {
		return nil
	}

	if msg.Action == tea.MouseActionMotion {
		if region.ID == regionItem {
			s.highlighted = region.Data.(int)
		}
		return nil
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	switch region.ID {
	case regionItem:
		cmd := s.pick(s.options[region.Data.(int)], false)
		s.setOpen(false)
		return cmd
	case regionBadge:
		// The owner may have replaced the value since the last render.
		if i := region.Data.(int); i < len(s.values) {
			return s.pick(s.values[i], true)
		}
	case regionClear:
		return s.Clear()
	case regionContainer:
		s.setOpen(!s.open)
	}
	return nil
}

// setOpen switches the list; opening always starts at the first entry.
func (s *SelectModel) setOpen(open bool) {
	if open == s.open {
		return
	}
	if open {
		s.highlighted = 0
	}
	s.query = ""
	s.open = open
}

// navigate opens a closed list, or moves the highlight by delta.
// Moves that would leave the list are dropped.
func (s *SelectModel) navigate(delta int) {
	if !s.open {
		s.setOpen(true)
		return
	}
	next := s.highlighted + delta
	if next >= 0 && next < len(s.options) {
		s.highlighted = next
	}
}

// jumpTo highlights the best fuzzy match for query among the labels.
func (s *SelectModel) jumpTo(query string) {
	if query == "" {
		return
	}
	matches := fuzzy.Find(query, option.Labels(s.options))
	if len(matches) > 0 {
		s.highlighted = matches[0].Index
	}
}

func (s *SelectModel) highlightedOption() *option.Option {
	if s.highlighted >= 0 && s.highlighted < len(s.options) {
		return s.options[s.highlighted]
	}
	return nil
}

// pick proposes the value that results from choosing o. remove lets a multi
// select drop an option that is already selected.
func (s *SelectModel) pick(o *option.Option, remove bool) tea.Cmd {
	if s.multiple {
		next, changed := NextMulti(s.values, o, remove)
		if !changed {
			return nil
		}
		return s.propose(nil, next)
	}

	next, changed := NextSingle(s.value, o)
	if !changed {
		return nil
	}
	return s.propose(next, nil)
}

// Clear proposes an empty selection. The open state is left alone.
func (s *SelectModel) Clear() tea.Cmd {
	return s.propose(nil, []*option.Option{})
}

func (s *SelectModel) propose(value *option.Option, values []*option.Option) tea.Cmd {
	msg := SelectChangedMsg{ID: s.id, Multiple: s.multiple}
	if s.multiple {
		if values == nil {
			values = []*option.Option{}
		}
		msg.Values = values
	} else {
		msg.Value = value
	}
	return func() tea.Msg {
		return msg
	}
}

func (s *SelectModel) isSelected(o *option.Option) bool {
	if s.multiple {
		return option.Contains(s.values, o)
	}
	return o == s.value
}

// badgeSpan locates a rendered badge inside the value area.
type badgeSpan struct {
	line, x, width, index int
}

// valueLines renders the value area as lines exactly width cells wide.
// Badges wrap onto further lines when they do not fit.
func (s *SelectModel) valueLines(width int) ([]string, []badgeSpan) {
	if len(s.Selected()) == 0 {
		label := runewidth.Truncate(placeholderText, width, "…")
		pad := strings.Repeat(" ", width-runewidth.StringWidth(label))
		return []string{styles.Placeholder.Render(label) + pad}, nil
	}

	if !s.multiple {
		label := runewidth.Truncate(s.value.Label, width, "…")
		pad := strings.Repeat(" ", width-runewidth.StringWidth(label))
		return []string{styles.Value.Render(label) + pad}, nil
	}

	var (
		lines []string
		spans []badgeSpan
		cur   strings.Builder
		x     int
	)
	flush := func() {
		lines = append(lines, cur.String()+strings.Repeat(" ", width-x))
		cur.Reset()
		x = 0
	}

	for i, v := range s.values {
		// "[" + label + " ×]"
		label := runewidth.Truncate(v.Label, width-4, "…")
		w := runewidth.StringWidth(label) + 4

		if x > 0 && x+1+w > width {
			flush()
		}
		if x > 0 {
			cur.WriteString(" ")
			x++
		}

		spans = append(spans, badgeSpan{line: len(lines), x: x, width: w, index: i})
		cur.WriteString(styles.BadgeBracket.Render("["))
		cur.WriteString(styles.Badge.Render(label))
		cur.WriteString(" ")
		cur.WriteString(styles.ClearButton.Render("×"))
		cur.WriteString(styles.BadgeBracket.Render("]"))
		x += w
	}
	flush()

	return lines, spans
}

// View implements Component. It also records the clickable regions used by
// the next mouse event.
func (s *SelectModel) View() string {
	width := s.width
	inner := width - containerChrome
	valueWidth := inner - controlsWidth

	lines, spans := s.valueLines(valueWidth)

	caret := "▾"
	if s.open {
		caret = "▴"
	}
	controls := " " + styles.ClearButton.Render("×") +
		" " + styles.Divider.Render("│") +
		" " + styles.Caret.Render(caret)
	blank := strings.Repeat(" ", controlsWidth)

	for i := range lines {
		if i == 0 {
			lines[i] += controls
		} else {
			lines[i] += blank
		}
	}

	containerStyle := styles.Container
	if s.focused {
		containerStyle = styles.ContainerFocused
	}
	box := containerStyle.Render(strings.Join(lines, "\n"))
	boxHeight := lipgloss.Height(box)

	view := box
	if s.open {
		view = lipgloss.JoinVertical(lipgloss.Left, box, s.renderList(width))
	}

	s.hits.Clear()
	s.hits.AddRect(regionContainer, 0, 0, width, lipgloss.Height(view), nil)
	for _, sp := range spans {
		s.hits.AddRect(regionBadge, 2+sp.x, 1+sp.line, sp.width, 1, sp.index)
	}
	s.hits.AddRect(regionClear, 2+valueWidth+1, 1, 1, 1, nil)
	if s.open {
		for i := range s.options {
			s.hits.AddRect(regionItem, 1, boxHeight+1+i, width-2, 1, i)
		}
	}

	return view
}

// renderList renders every option; there is no windowing.
func (s *SelectModel) renderList(width int) string {
	inner := width - 2
	rows := make([]string, len(s.options))
	for i, o := range s.options {
		highlighted := i == s.highlighted
		marker := "  "
		if highlighted {
			marker = "› "
		}
		label := runewidth.Truncate(o.Label, inner-2, "…")
		label = runewidth.FillRight(marker+label, inner)
		rows[i] = styles.ListItemStyle(s.isSelected(o), highlighted).Render(label)
	}
	return styles.List.Render(strings.Join(rows, "\n"))
}

// SetSize implements Component. Only the width is used.
func (s *SelectModel) SetSize(width, height int) {
	if width < minSelectWidth {
		width = minSelectWidth
	}
	s.width = width
}

// Width returns the outer width of the select.
func (s *SelectModel) Width() int {
	return s.width
}

// Focus implements Focusable.
func (s *SelectModel) Focus() {
	s.focused = true
}

// Blur implements Focusable. Losing focus closes the list.
func (s *SelectModel) Blur() {
	s.focused = false
	s.setOpen(false)
}

// Focused implements Focusable.
func (s *SelectModel) Focused() bool {
	return s.focused
}
