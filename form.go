package formflow

// Controller drives keyboard navigation and validation across a form's
// fields. It reacts to focus and submit events routed in by the toolkit,
// pushes Appearance updates back through the handles' capabilities, and
// reports form-level validity to the Delegate.
//
// The Controller never holds focus itself: focus is owned by the
// toolkit, queried through the List and requested through the Focuser
// capability. There is no terminal state — a form stays interactively
// re-enterable after completion is signalled.
type Controller struct {
	list     *List
	delegate Delegate
}

// NewController creates a controller over the form's item sequence.
// The delegate may be nil, in which case completion is signalled to
// nobody and submitting the last field always ends editing.
func NewController(l *List, d Delegate) *Controller {
	return &Controller{list: l, delegate: d}
}

// FocusBegan configures the submit affordance of the field that just
// received focus: advance while a later field exists, finish otherwise.
// A pure query — no validation runs and no state changes.
func (c *Controller) FocusBegan(h any) {
	it, ok := c.list.ItemFor(h)
	if !ok || it.kind != KindField {
		return
	}
	action := SubmitFinish
	if _, ok := c.list.NextField(h); ok {
		action = SubmitAdvance
	}
	if sc, ok := it.handle.(SubmitConfigurer); ok {
		sc.SetSubmitAction(action)
	}
}

// FocusEnded revalidates the whole form after any field loses focus and
// reports the result to the delegate.
func (c *Controller) FocusEnded(h any) {
	invalid := c.ValidateAll()
	if c.delegate != nil {
		c.delegate.ValidationChanged(invalid == 0)
	}
}

// Submit handles the return/done affordance of the focused field.
//
// A valid field turns AppearanceValid and hands focus to the next field
// without validating it — fields the user has not visited yet are never
// speculatively validated. When no field follows, the whole form is
// validated and the delegate decides whether editing ends. An invalid
// field turns AppearanceInvalid and releases focus so the user sees the
// failure before moving on.
func (c *Controller) Submit(h any) {
	it, ok := c.list.ItemFor(h)
	if !ok || it.kind != KindField {
		return
	}
	field := it.handle.(FieldHandle)

	if it.validate == nil || it.validate(field) {
		setAppearance(it.handle, AppearanceValid)
		if next, ok := c.list.NextField(h); ok {
			if f, ok := next.handle.(Focuser); ok {
				f.Focus()
			}
			return
		}
		invalid := c.ValidateAll()
		dismiss := true
		if c.delegate != nil {
			dismiss = c.delegate.DoneRequested(invalid == 0)
		}
		if dismiss {
			blur(it.handle)
		}
		return
	}

	setAppearance(it.handle, AppearanceInvalid)
	blur(it.handle)
}

// Press invokes the action of the button wrapping h. Buttons are outside
// the navigation state machine: no focus or validation changes.
func (c *Controller) Press(h any) {
	it, ok := c.list.ItemFor(h)
	if !ok || it.kind != KindButton {
		return
	}
	if it.onPress != nil {
		it.onPress()
	}
}

// ValidateAll runs every field's validator in order and sets each
// appearance: Valid when the validator accepts, Invalid when it rejects
// non-empty content, Ready when it rejects empty content. Returns the
// number of fields whose validator rejected, counting empty Ready fields
// too.
func (c *Controller) ValidateAll() int {
	invalid := 0
	for _, it := range c.list.items {
		if it.kind != KindField {
			continue
		}
		field := it.handle.(FieldHandle)
		if it.validate == nil || it.validate(field) {
			setAppearance(it.handle, AppearanceValid)
			continue
		}
		invalid++
		if field.Text() == "" {
			setAppearance(it.handle, AppearanceReady)
		} else {
			setAppearance(it.handle, AppearanceInvalid)
		}
	}
	return invalid
}

func setAppearance(h any, a Appearance) {
	if as, ok := h.(AppearanceSetter); ok {
		as.SetAppearance(a)
	}
}

func blur(h any) {
	if f, ok := h.(Focuser); ok {
		f.Blur()
	}
}
