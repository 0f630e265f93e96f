package tuikit

// focusable is implemented by widgets that can receive keyboard focus.
type focusable interface {
	Focused() bool
	// enterFocus/exitFocus flip visual state and fire the widget's
	// bound focus callbacks.
	enterFocus()
	exitFocus()
}

// scoped is implemented by widgets that participate in a view's focus
// scope. The ScrollView hands its scope to widgets on Attach.
type scoped interface {
	setScope(*FocusScope)
}

// FocusScope enforces single-focus among the widgets of one view:
// focusing a widget blurs whichever widget held focus before, the way a
// toolkit's first responder works. The engine requests focus through the
// Focuser capability; the scope makes those requests exclusive.
type FocusScope struct {
	current focusable
}

// transfer moves focus to f, blurring the previous holder.
func (s *FocusScope) transfer(f focusable) {
	if s.current == f {
		return
	}
	prev := s.current
	s.current = f
	if prev != nil {
		prev.exitFocus()
	}
	f.enterFocus()
}

// release drops focus from f if it is the current holder.
func (s *FocusScope) release(f focusable) {
	if s.current != f {
		return
	}
	s.current = nil
	f.exitFocus()
}

// Current returns the widget holding focus, or nil.
func (s *FocusScope) Current() any {
	if s.current == nil {
		return nil
	}
	return s.current
}
