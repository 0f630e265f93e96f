// Package formflow arranges a mixed sequence of text inputs, static
// labels, and buttons into wrapped rows inside a scrollable container,
// drives keyboard-based sequential navigation with per-field validation,
// and produces a merged accessibility reading order.
//
// The package is toolkit-agnostic: visual controls are opaque handles
// produced by injected factories, and everything the engine needs from a
// handle beyond identity is expressed as an optional capability
// interface. A terminal toolkit that implements every capability on top
// of bubbletea and lipgloss lives in the tuikit subpackage.
package formflow

// FieldHandle is a user-editable input control.
type FieldHandle interface {
	// Text returns the field's current content.
	Text() string
}

// LabelHandle is a static, non-interactive text fragment.
type LabelHandle interface {
	// Text returns the display string.
	Text() string
	// SizeThatFits returns the intrinsic fitted size of the text,
	// constrained to at most max.
	SizeThatFits(max Size) Size
}

// ButtonHandle is a tappable control.
type ButtonHandle interface {
	// Label returns the button's display label.
	Label() string
}

// FieldFactory produces an editable input handle.
type FieldFactory func() FieldHandle

// LabelFactory produces a static text handle for the given string.
type LabelFactory func(text string) LabelHandle

// ButtonFactory produces a tappable handle.
type ButtonFactory func() ButtonHandle

// Appearance is the visual validation state attached to a field.
type Appearance uint8

const (
	// AppearanceReady marks an untouched or empty field.
	AppearanceReady Appearance = iota
	// AppearanceInvalid marks a field whose validator rejected its content.
	AppearanceInvalid
	// AppearanceValid marks a field whose validator accepted its content.
	AppearanceValid
)

// String implements fmt.Stringer.
func (a Appearance) String() string {
	switch a {
	case AppearanceReady:
		return "ready"
	case AppearanceInvalid:
		return "invalid"
	case AppearanceValid:
		return "valid"
	}
	return "unknown"
}

// SubmitAction is what a field's submit affordance (return/done key)
// should mean while the field is focused.
type SubmitAction uint8

const (
	// SubmitAdvance moves focus to the next field on submit.
	SubmitAdvance SubmitAction = iota
	// SubmitFinish signals form completion on submit.
	SubmitFinish
)

// String implements fmt.Stringer.
func (s SubmitAction) String() string {
	if s == SubmitFinish {
		return "finish"
	}
	return "advance"
}

// Optional per-handle capabilities. The engine queries these with type
// assertions and treats their absence as a no-op, never an error.

// AppearanceSetter is implemented by handles that can display a
// validation state.
type AppearanceSetter interface {
	SetAppearance(Appearance)
}

// SubmitConfigurer is implemented by handles whose submit affordance can
// be switched between advance and finish.
type SubmitConfigurer interface {
	SetSubmitAction(SubmitAction)
}

// Focuser is implemented by handles that can take and release keyboard
// focus. Focus is owned by the toolkit; the engine only requests it.
type Focuser interface {
	Focus()
	Blur()
}

// Sizer is implemented by handles that know their own placed width,
// overriding the Metrics default.
type Sizer interface {
	PreferredWidth() int
}

// Framer is implemented by handles that accept their placed rectangle.
type Framer interface {
	SetFrame(Rect)
}

// FieldEventSource is implemented by field handles that emit focus and
// submit events. The builder wires these into the Controller at commit.
type FieldEventSource interface {
	BindFocus(began, ended func())
	BindSubmit(fn func())
}

// ButtonEventSource is implemented by button handles that emit press
// events.
type ButtonEventSource interface {
	BindPress(fn func())
}

// Delegate receives form-level notifications from the Controller.
type Delegate interface {
	// ValidationChanged reports whether every field currently passes
	// its validator. Fired after any field loses focus.
	ValidationChanged(allValid bool)
	// DoneRequested is asked when the last field is submitted with
	// valid content. Returning true ends the editing session.
	DoneRequested(allValid bool) bool
}

// Container is the scrollable surface a form is committed into.
type Container interface {
	// Bounds returns the container's visible bounds.
	Bounds() Rect
	// ClearChildren detaches all previously attached handles.
	ClearChildren()
	// Attach adds a handle as a visual child. Called in reading order.
	Attach(handle any)
	// SetContentSize sets the scrollable content extent.
	SetContentSize(Size)
}
