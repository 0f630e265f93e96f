package formflow

// Metrics fixes the geometry inputs of a layout pass.
type Metrics struct {
	// Origin is the top-left corner the first row starts at.
	Origin Point
	// RowWidth is the fixed content width rows are packed into.
	RowWidth int
	// RowHeight is the placed height of fields and buttons. Labels use
	// their intrinsic fitted height instead.
	RowHeight int
	// FieldWidth is the placed width of a field, unless the handle
	// implements Sizer.
	FieldWidth int
	// ButtonWidth is the placed width of a button, unless the handle
	// implements Sizer. Zero falls back to FieldWidth.
	ButtonWidth int
}

// Placement is the output of a layout pass: a rectangle per item plus the
// handles in placement order. Recomputed wholesale on every pass.
type Placement struct {
	rects  map[any]Rect
	order  []any
	height int
}

// Rect returns the placed rectangle for a handle.
func (p *Placement) Rect(h any) (Rect, bool) {
	r, ok := p.rects[h]
	return r, ok
}

// Handles returns the visual handles in placement order, which is always
// the item order: layout wraps items, it never reorders them.
func (p *Placement) Handles() []any {
	out := make([]any, len(p.order))
	copy(out, p.order)
	return out
}

// Height returns the total vertical extent consumed below the origin.
func (p *Placement) Height() int { return p.height }

// Len returns the number of placed items.
func (p *Placement) Len() int { return len(p.order) }

// Flow runs a single greedy left-to-right, top-to-bottom layout pass over
// the item sequence. Items wrap to a new row when they do not fit the
// current row's remaining width; a new row starts at the maximum bottom
// edge of the row above it, so label-only rows may be shorter than
// RowHeight. Flow never fails: a zero-item list yields an empty
// placement, and an item wider than RowWidth is clamped to the full row
// width so its content overflows visually instead of breaking the pack.
func Flow(l *List, m Metrics) *Placement {
	p := &Placement{rects: make(map[any]Rect, l.Len())}

	x := m.Origin.X
	y := m.Origin.Y
	remaining := m.RowWidth
	rowBottom := y

	for _, it := range l.items {
		w, h := itemSize(it, m)

		// wrap when the item does not fit, unless the row is untouched
		// (a fresh row would be no wider).
		if w > remaining && remaining < m.RowWidth {
			y = rowBottom
			x = m.Origin.X
			remaining = m.RowWidth
		}
		if w > remaining {
			w = remaining
		}

		r := Rect{X: x, Y: y, W: w, H: h}
		p.rects[it.handle] = r
		p.order = append(p.order, it.handle)

		x += w
		remaining -= w
		if r.Bottom() > rowBottom {
			rowBottom = r.Bottom()
		}
	}

	p.height = rowBottom - m.Origin.Y
	return p
}

// itemSize resolves the pre-wrap size of an item: fields and buttons are
// configuration-sized, labels are measured by the toolkit.
func itemSize(it Item, m Metrics) (w, h int) {
	switch it.kind {
	case KindLabel:
		s := it.handle.(LabelHandle).SizeThatFits(Size{W: m.RowWidth, H: m.RowHeight})
		return s.W, s.H
	case KindButton:
		w = m.ButtonWidth
		if w == 0 {
			w = m.FieldWidth
		}
	case KindField:
		w = m.FieldWidth
	}
	if s, ok := it.handle.(Sizer); ok {
		if pw := s.PreferredWidth(); pw > 0 {
			w = pw
		}
	}
	return w, m.RowHeight
}
