package formflow_test

import "formflow"

// fakeField implements FieldHandle plus every optional capability,
// recording what the engine pushes through them.
type fakeField struct {
	text       string
	width      int
	appearance formflow.Appearance
	action     formflow.SubmitAction
	focused    bool
	focusCount int
	blurCount  int
	frame      formflow.Rect

	began  func()
	ended  func()
	submit func()
}

func (f *fakeField) Text() string { return f.text }

func (f *fakeField) SetAppearance(a formflow.Appearance) { f.appearance = a }

func (f *fakeField) SetSubmitAction(a formflow.SubmitAction) { f.action = a }

func (f *fakeField) PreferredWidth() int { return f.width }

func (f *fakeField) SetFrame(r formflow.Rect) { f.frame = r }

func (f *fakeField) Focus() {
	f.focused = true
	f.focusCount++
	if f.began != nil {
		f.began()
	}
}

func (f *fakeField) Blur() {
	f.focused = false
	f.blurCount++
	if f.ended != nil {
		f.ended()
	}
}

func (f *fakeField) BindFocus(began, ended func()) { f.began, f.ended = began, ended }

func (f *fakeField) BindSubmit(fn func()) { f.submit = fn }

// bareField implements FieldHandle and nothing else, for capability
// absence tests.
type bareField struct {
	text string
}

func (f *bareField) Text() string { return f.text }

// fakeLabel measures to a fixed intrinsic size.
type fakeLabel struct {
	text  string
	w, h  int
	frame formflow.Rect
}

func (l *fakeLabel) Text() string { return l.text }

func (l *fakeLabel) SizeThatFits(max formflow.Size) formflow.Size {
	w, h := l.w, l.h
	if h == 0 {
		h = 1
	}
	if w > max.W {
		w = max.W
	}
	return formflow.Size{W: w, H: h}
}

func (l *fakeLabel) SetFrame(r formflow.Rect) { l.frame = r }

// fakeButton records presses routed through its binding.
type fakeButton struct {
	label string
	width int
	press func()
	frame formflow.Rect
}

func (b *fakeButton) Label() string { return b.label }

func (b *fakeButton) PreferredWidth() int { return b.width }

func (b *fakeButton) SetFrame(r formflow.Rect) { b.frame = r }

func (b *fakeButton) BindPress(fn func()) { b.press = fn }

// recordingDelegate captures every notification.
type recordingDelegate struct {
	validation []bool
	done       []bool
	dismiss    bool
}

func (d *recordingDelegate) ValidationChanged(allValid bool) {
	d.validation = append(d.validation, allValid)
}

func (d *recordingDelegate) DoneRequested(allValid bool) bool {
	d.done = append(d.done, allValid)
	return d.dismiss
}

// fakeContainer implements Container.
type fakeContainer struct {
	bounds   formflow.Rect
	attached []any
	cleared  int
	content  formflow.Size
}

func (c *fakeContainer) Bounds() formflow.Rect { return c.bounds }

func (c *fakeContainer) ClearChildren() {
	c.cleared++
	c.attached = nil
}

func (c *fakeContainer) Attach(h any) { c.attached = append(c.attached, h) }

func (c *fakeContainer) SetContentSize(s formflow.Size) { c.content = s }

// nonEmpty accepts any field with content.
func nonEmpty(h formflow.FieldHandle) bool { return h.Text() != "" }

// testMetrics is the geometry most tests lay out with.
func testMetrics() formflow.Metrics {
	return formflow.Metrics{RowWidth: 40, RowHeight: 3, FieldWidth: 10, ButtonWidth: 8}
}

// rectsOf collects placed geometry keyed by placement order, for go-cmp
// diffs.
func rectsOf(p *formflow.Placement) map[int]formflow.Rect {
	out := make(map[int]formflow.Rect)
	for i, h := range p.Handles() {
		r, ok := p.Rect(h)
		if !ok {
			continue
		}
		out[i] = r
	}
	return out
}
