package tuikit

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"formflow"
)

// viewer is implemented by widgets that render themselves.
type viewer interface {
	View() string
}

// framed is implemented by widgets that expose their placed rectangle.
type framed interface {
	Frame() formflow.Rect
}

// ScrollView is the scrollable Container a form is committed into. It
// keeps attached children in reading order, composes their views
// row-by-row at their placed frames, and exposes a clamped vertical
// scroll offset over the content.
type ScrollView struct {
	bounds   formflow.Rect
	content  formflow.Size
	offset   int
	children []any
	scope    FocusScope
}

// NewScrollView creates a scroll view with the given visible bounds.
func NewScrollView(width, height int) *ScrollView {
	return &ScrollView{bounds: formflow.Rect{W: width, H: height}}
}

// Bounds implements formflow.Container.
func (v *ScrollView) Bounds() formflow.Rect { return v.bounds }

// SetSize resizes the visible bounds, clamping the scroll offset.
func (v *ScrollView) SetSize(width, height int) {
	v.bounds.W = width
	v.bounds.H = height
	v.clamp()
}

// ClearChildren implements formflow.Container.
func (v *ScrollView) ClearChildren() {
	v.children = v.children[:0]
}

// Attach implements formflow.Container: adds a visual child and enrolls
// it in this view's focus scope.
func (v *ScrollView) Attach(h any) {
	v.children = append(v.children, h)
	if s, ok := h.(scoped); ok {
		s.setScope(&v.scope)
	}
}

// Children returns the attached handles in reading order.
func (v *ScrollView) Children() []any {
	out := make([]any, len(v.children))
	copy(out, v.children)
	return out
}

// Scope returns the view's focus scope.
func (v *ScrollView) Scope() *FocusScope { return &v.scope }

// SetContentSize implements formflow.Container.
func (v *ScrollView) SetContentSize(s formflow.Size) {
	v.content = s
	v.clamp()
}

// ContentSize returns the scrollable extent.
func (v *ScrollView) ContentSize() formflow.Size { return v.content }

// Offset returns the vertical scroll offset.
func (v *ScrollView) Offset() int { return v.offset }

// ScrollBy moves the viewport by dy rows, clamped to the content.
func (v *ScrollView) ScrollBy(dy int) { v.ScrollTo(v.offset + dy) }

// ScrollTo moves the viewport to row y, clamped to the content.
func (v *ScrollView) ScrollTo(y int) {
	v.offset = y
	v.clamp()
}

func (v *ScrollView) maxOffset() int {
	m := v.content.H - v.bounds.H
	if m < 0 {
		m = 0
	}
	return m
}

func (v *ScrollView) clamp() {
	if v.offset > v.maxOffset() {
		v.offset = v.maxOffset()
	}
	if v.offset < 0 {
		v.offset = 0
	}
}

// View composes the children at their placed frames and returns the
// visible viewport. Children sharing a row origin are joined
// horizontally, rows are stacked in order; the flow layout guarantees
// rows never overlap.
func (v *ScrollView) View() string {
	lines := v.contentLines()

	// pad to the scrollable extent so the viewport below is stable
	for len(lines) < v.content.H {
		lines = append(lines, "")
	}

	end := v.offset + v.bounds.H
	if end > len(lines) {
		end = len(lines)
	}
	start := v.offset
	if start > end {
		start = end
	}
	visible := lines[start:end]

	out := make([]string, v.bounds.H)
	copy(out, visible)
	return strings.Join(out, "\n")
}

// contentLines renders every row of children into content-space lines.
func (v *ScrollView) contentLines() []string {
	var lines []string
	var segs []string
	rowY, rowX := 0, 0
	open := false

	flush := func() {
		if !open {
			return
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, segs...)
		for len(lines) < rowY {
			lines = append(lines, "")
		}
		lines = append(lines, strings.Split(row, "\n")...)
		segs = segs[:0]
		open = false
	}

	for _, child := range v.children {
		fr, ok := child.(framed)
		if !ok {
			continue
		}
		vw, ok := child.(viewer)
		if !ok {
			continue
		}
		r := fr.Frame()
		if !open || r.Y != rowY {
			flush()
			rowY = r.Y
			rowX = r.X // row starts at the layout origin
			open = true
		}
		if pad := r.X - rowX; pad > 0 {
			segs = append(segs, strings.Repeat(" ", pad))
		}
		segs = append(segs, vw.View())
		rowX = r.Right()
	}
	flush()
	return lines
}
