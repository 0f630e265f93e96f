package tuikit

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"formflow"
)

// Button is a tappable control. It implements the engine's ButtonHandle,
// Focuser, Sizer, Framer, and ButtonEventSource capabilities; Enter or
// Space presses it while focused.
type Button struct {
	label   string
	frame   formflow.Rect
	focused bool
	theme   Theme
	scope   *FocusScope
	press   func()
}

// NewButton creates a button with the given label.
func NewButton(theme Theme, label string) *Button {
	return &Button{label: label, theme: theme}
}

// Label implements formflow.ButtonHandle.
func (b *Button) Label() string { return b.label }

// PreferredWidth implements formflow.Sizer: the bracketed label plus its
// padding.
func (b *Button) PreferredWidth() int {
	return runewidth.StringWidth(b.label) + 4 // "[ label ]"
}

// SetFrame implements formflow.Framer.
func (b *Button) SetFrame(r formflow.Rect) { b.frame = r }

// Frame returns the rectangle the last layout pass placed the button at.
func (b *Button) Frame() formflow.Rect { return b.frame }

// BindPress implements formflow.ButtonEventSource.
func (b *Button) BindPress(fn func()) { b.press = fn }

// Press fires the bound press routing. No focus or validation effects.
func (b *Button) Press() {
	if b.press != nil {
		b.press()
	}
}

// Focus implements formflow.Focuser.
func (b *Button) Focus() {
	if b.scope != nil {
		b.scope.transfer(b)
		return
	}
	b.enterFocus()
}

// Blur implements formflow.Focuser.
func (b *Button) Blur() {
	if b.scope != nil {
		b.scope.release(b)
		return
	}
	b.exitFocus()
}

// Focused reports whether the button holds keyboard focus.
func (b *Button) Focused() bool { return b.focused }

func (b *Button) setScope(s *FocusScope) { b.scope = s }
func (b *Button) enterFocus()            { b.focused = true }
func (b *Button) exitFocus()             { b.focused = false }

// HandleKey presses the button on Enter or Space while focused.
func (b *Button) HandleKey(msg tea.KeyMsg) bool {
	if !b.focused {
		return false
	}
	switch msg.Type {
	case tea.KeyEnter, tea.KeySpace:
		b.Press()
		return true
	}
	return false
}

// View renders the bracketed button at its placed width.
func (b *Button) View() string {
	style := b.theme.Button
	if b.focused {
		style = b.theme.ButtonFocus
	}
	return style.Render(padTo("[ "+b.label+" ]", b.frame.W))
}
