package tuikit

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"formflow"
)

// Field is a single-line editable text input. It implements the engine's
// FieldHandle, Focuser, AppearanceSetter, SubmitConfigurer, Sizer,
// Framer, and FieldEventSource capabilities, and edits its value from
// bubbletea key messages routed in by the Model.
type Field struct {
	value       []rune
	cursor      int
	placeholder string
	width       int
	frame       formflow.Rect
	focused     bool
	appearance  formflow.Appearance
	action      formflow.SubmitAction
	theme       Theme
	scope       *FocusScope

	focusBegan func()
	focusEnded func()
	submit     func()
	onEdit     func() // needs-layout signal, fired on every text change
}

// NewField creates a field rendering with the given theme.
func NewField(theme Theme) *Field {
	return &Field{width: 20, theme: theme}
}

// Placeholder sets the text shown while the field is empty and unfocused.
func (f *Field) Placeholder(p string) *Field {
	f.placeholder = p
	return f
}

// Width sets the field's placed width in cells.
func (f *Field) Width(w int) *Field {
	f.width = w
	return f
}

// SetValue replaces the field content and moves the cursor to the end.
func (f *Field) SetValue(v string) {
	f.value = []rune(v)
	f.cursor = len(f.value)
	f.edited()
}

// Text implements formflow.FieldHandle.
func (f *Field) Text() string { return string(f.value) }

// PreferredWidth implements formflow.Sizer.
func (f *Field) PreferredWidth() int { return f.width }

// SetFrame implements formflow.Framer.
func (f *Field) SetFrame(r formflow.Rect) { f.frame = r }

// Frame returns the rectangle the last layout pass placed the field at.
func (f *Field) Frame() formflow.Rect { return f.frame }

// SetAppearance implements formflow.AppearanceSetter.
func (f *Field) SetAppearance(a formflow.Appearance) { f.appearance = a }

// Appearance returns the current validation state.
func (f *Field) Appearance() formflow.Appearance { return f.appearance }

// SetSubmitAction implements formflow.SubmitConfigurer.
func (f *Field) SetSubmitAction(a formflow.SubmitAction) { f.action = a }

// SubmitAction returns what the return key currently means.
func (f *Field) SubmitAction() formflow.SubmitAction { return f.action }

// BindFocus implements formflow.FieldEventSource.
func (f *Field) BindFocus(began, ended func()) {
	f.focusBegan = began
	f.focusEnded = ended
}

// BindSubmit implements formflow.FieldEventSource.
func (f *Field) BindSubmit(fn func()) { f.submit = fn }

// OnEdit sets the needs-layout signal fired on every text change.
func (f *Field) OnEdit(fn func()) { f.onEdit = fn }

// Focus implements formflow.Focuser: take keyboard focus, blurring
// whichever widget holds it in this view's scope.
func (f *Field) Focus() {
	if f.scope != nil {
		f.scope.transfer(f)
		return
	}
	f.enterFocus()
}

// Blur implements formflow.Focuser.
func (f *Field) Blur() {
	if f.scope != nil {
		f.scope.release(f)
		return
	}
	f.exitFocus()
}

// Focused reports whether the field holds keyboard focus.
func (f *Field) Focused() bool { return f.focused }

func (f *Field) setScope(s *FocusScope) { f.scope = s }

func (f *Field) enterFocus() {
	if f.focused {
		return
	}
	f.focused = true
	if f.focusBegan != nil {
		f.focusBegan()
	}
}

func (f *Field) exitFocus() {
	if !f.focused {
		return
	}
	f.focused = false
	if f.focusEnded != nil {
		f.focusEnded()
	}
}

func (f *Field) edited() {
	if f.onEdit != nil {
		f.onEdit()
	}
}

// HandleKey edits the value from a key message. Returns true when the key
// was consumed. Only a focused field consumes keys.
func (f *Field) HandleKey(msg tea.KeyMsg) bool {
	if !f.focused {
		return false
	}
	switch msg.Type {
	case tea.KeyEnter:
		if f.submit != nil {
			f.submit()
		}
		return true
	case tea.KeyBackspace:
		if f.cursor > 0 {
			f.value = append(f.value[:f.cursor-1], f.value[f.cursor:]...)
			f.cursor--
			f.edited()
		}
		return true
	case tea.KeyDelete:
		if f.cursor < len(f.value) {
			f.value = append(f.value[:f.cursor], f.value[f.cursor+1:]...)
			f.edited()
		}
		return true
	case tea.KeyLeft:
		if f.cursor > 0 {
			f.cursor--
		}
		return true
	case tea.KeyRight:
		if f.cursor < len(f.value) {
			f.cursor++
		}
		return true
	case tea.KeyHome:
		f.cursor = 0
		return true
	case tea.KeyEnd:
		f.cursor = len(f.value)
		return true
	case tea.KeyCtrlU:
		f.value = f.value[:0]
		f.cursor = 0
		f.edited()
		return true
	case tea.KeySpace:
		f.insert(' ')
		return true
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			f.insert(r)
		}
		return true
	}
	return false
}

func (f *Field) insert(r rune) {
	f.value = append(f.value[:f.cursor], append([]rune{r}, f.value[f.cursor:]...)...)
	f.cursor++
	f.edited()
}

// AccessibilityLabel implements formflow.AccessibilityLabeled: a field
// speaks its content, or its placeholder while empty.
func (f *Field) AccessibilityLabel() string {
	if len(f.value) > 0 {
		return string(f.value)
	}
	return f.placeholder
}

// View renders the field at its placed width.
func (f *Field) View() string {
	if len(f.value) == 0 && !f.focused && f.placeholder != "" {
		return f.theme.Placeholder.Render(padTo(f.placeholder, f.width))
	}

	style := f.theme.fieldStyle(f.appearance, f.focused)
	if !f.focused {
		return style.Render(padTo(string(f.value), f.width))
	}

	// keep the cursor inside the visible window
	start := 0
	if f.cursor >= f.width {
		start = f.cursor - f.width + 1
	}
	visible := f.value[start:]
	if len(visible) > f.width {
		visible = visible[:f.width]
	}
	c := f.cursor - start

	left := string(visible[:c])
	at := " "
	rest := ""
	if c < len(visible) {
		at = string(visible[c])
		rest = string(visible[c+1:])
	}
	rest = padTo(rest, f.width-runewidth.StringWidth(left)-runewidth.StringWidth(at))

	cursor := style.Reverse(true)
	return style.Render(left) + cursor.Render(at) + style.Render(rest)
}

// padTo pads or truncates s to exactly w cells.
func padTo(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) > w {
		return runewidth.Truncate(s, w, "")
	}
	return runewidth.FillRight(s, w)
}
