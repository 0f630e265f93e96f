package tuikit

import (
	tea "github.com/charmbracelet/bubbletea"

	"formflow"
)

// keyHandler is implemented by widgets that consume key messages.
type keyHandler interface {
	HandleKey(tea.KeyMsg) bool
}

// Model adapts a committed form to the bubbletea runtime: it resizes the
// container on window changes, routes key messages to the focused
// widget, cycles focus on Tab, and scrolls the viewport.
type Model struct {
	builder *formflow.Builder
	view    *ScrollView
	theme   Theme
}

// NewModel wraps a committed builder and its scroll view. Every attached
// field's edit signal is wired to the builder's Relayout so geometry
// follows text changes.
func NewModel(b *formflow.Builder, view *ScrollView, theme Theme) Model {
	for _, child := range view.Children() {
		if f, ok := child.(*Field); ok {
			f.OnEdit(b.Relayout)
		}
	}
	return Model{builder: b, view: view, theme: theme}
}

// FocusFirst gives focus to the first focusable widget.
func (m Model) FocusFirst() {
	for _, child := range m.view.Children() {
		if f, ok := child.(formflow.Focuser); ok {
			f.Focus()
			return
		}
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.view.SetSize(msg.Width, msg.Height-1) // one line reserved for the hint bar
		mt := m.builder.Metrics()
		mt.RowWidth = msg.Width
		m.builder.SetMetrics(mt)
		m.builder.Relayout()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.cycleFocus(1)
			return m, nil
		case "shift+tab":
			m.cycleFocus(-1)
			return m, nil
		case "pgdown":
			m.view.ScrollBy(m.view.Bounds().H / 2)
			return m, nil
		case "pgup":
			m.view.ScrollBy(-m.view.Bounds().H / 2)
			return m, nil
		}

		for _, child := range m.view.Children() {
			if h, ok := child.(keyHandler); ok && h.HandleKey(msg) {
				m.scrollToFocus()
				return m, nil
			}
		}

		switch msg.Type {
		case tea.KeyDown:
			m.view.ScrollBy(1)
		case tea.KeyUp:
			m.view.ScrollBy(-1)
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	return m.view.View() + "\n" + m.hintBar()
}

// AccessibilityNarration renders the merged reading order, one spoken
// element per line.
func (m Model) AccessibilityNarration() string {
	return formflow.Narrate(m.builder.AccessibleElements())
}

// hintBar shows what the return key means for the focused field.
func (m Model) hintBar() string {
	cur := m.view.Scope().Current()
	if f, ok := cur.(*Field); ok {
		if f.SubmitAction() == formflow.SubmitFinish {
			return m.theme.Hint.Render("↵ done · tab next · esc quit")
		}
		return m.theme.Hint.Render("↵ next · tab next · esc quit")
	}
	if _, ok := cur.(*Button); ok {
		return m.theme.Hint.Render("↵ press · tab next · esc quit")
	}
	return m.theme.Hint.Render("tab focus · esc quit")
}

// cycleFocus moves focus across fields and buttons in reading order.
func (m Model) cycleFocus(delta int) {
	var focusables []focusable
	for _, child := range m.view.Children() {
		if f, ok := child.(focusable); ok {
			focusables = append(focusables, f)
		}
	}
	if len(focusables) == 0 {
		return
	}
	cur := -1
	for i, f := range focusables {
		if f.Focused() {
			cur = i
			break
		}
	}
	next := (cur + delta + len(focusables)) % len(focusables)
	if cur < 0 && delta < 0 {
		next = len(focusables) - 1
	}
	if f, ok := focusables[next].(formflow.Focuser); ok {
		f.Focus()
	}
	m.scrollToFocus()
}

// scrollToFocus keeps the focused widget inside the viewport.
func (m Model) scrollToFocus() {
	cur := m.view.Scope().Current()
	f, ok := cur.(framed)
	if !ok {
		return
	}
	r := f.Frame()
	if r.Y < m.view.Offset() {
		m.view.ScrollTo(r.Y)
	} else if r.Bottom() > m.view.Offset()+m.view.Bounds().H {
		m.view.ScrollTo(r.Bottom() - m.view.Bounds().H)
	}
}
