package formflow

import "strings"

// contentMargin is the extra scrollable space, in rows, added below the
// container's visible bounds at commit.
const contentMargin = 2

// Builder assembles a form's ordered item sequence through a fluent,
// order-sensitive surface and commits it into a Container. Each Add call
// appends to the reading order and returns the builder.
//
//	form := NewBuilder(view, metrics, delegate).
//		AddLabel(labels, "Tell us about yourself").
//		AddField(fields, formflow.Check(formflow.VRequired)).
//		AddButton(buttons, submit)
//	form.Commit()
type Builder struct {
	container Container
	metrics   Metrics
	delegate  Delegate

	list      *List
	ctrl      *Controller
	placement *Placement
	elements  []Element
}

// NewBuilder creates a builder committing into the given container.
func NewBuilder(c Container, m Metrics, d Delegate) *Builder {
	list := &List{}
	return &Builder{
		container: c,
		metrics:   m,
		delegate:  d,
		list:      list,
		ctrl:      NewController(list, d),
	}
}

// AddField appends an editable input produced by the factory, validated
// by validate on submit and whole-form passes.
func (b *Builder) AddField(factory FieldFactory, validate Validator) *Builder {
	b.list.Append(FieldItem(factory(), validate))
	return b
}

// AddLabel splits text on whitespace and appends one Label item per
// word, so the layout engine wraps label text with per-word granularity.
func (b *Builder) AddLabel(factory LabelFactory, text string) *Builder {
	for _, word := range strings.Fields(text) {
		b.list.Append(LabelItem(factory(word)))
	}
	return b
}

// AddButton appends a tappable control produced by the factory; onPressed
// runs with no arguments when it is pressed.
func (b *Builder) AddButton(factory ButtonFactory, onPressed func()) *Builder {
	b.list.Append(ButtonItem(factory(), onPressed))
	return b
}

// Commit clears the container's previous children, runs the row-flow
// layout, attaches the resulting handles in reading order, wires
// focus/submit/press routing into the Controller, builds the accessible
// element sequence, and sets the scrollable content size to at least the
// container's visible bounds height plus a fixed margin.
func (b *Builder) Commit() {
	b.container.ClearChildren()
	b.layout()

	for _, h := range b.placement.order {
		b.container.Attach(h)
	}
	b.wire()
}

// Relayout re-runs the layout and accessibility passes over the unchanged
// item sequence — the external "needs layout" signal, typically fired on
// every text edit. Synchronous and idempotent: without an intervening
// data change the geometry comes out identical.
func (b *Builder) Relayout() {
	b.layout()
}

func (b *Builder) layout() {
	b.placement = Flow(b.list, b.metrics)

	for h, r := range b.placement.rects {
		if f, ok := h.(Framer); ok {
			f.SetFrame(r)
		}
	}

	b.elements = AccessibleElements(b.list, b.placement)

	height := b.placement.Height()
	if min := b.container.Bounds().H + contentMargin; height < min {
		height = min
	}
	b.container.SetContentSize(Size{W: b.metrics.RowWidth, H: height})
}

// wire binds each handle's event sources to the Controller. Handles
// lacking an event capability simply stay unrouted.
func (b *Builder) wire() {
	for _, it := range b.list.items {
		h := it.handle
		switch it.kind {
		case KindField:
			if es, ok := h.(FieldEventSource); ok {
				es.BindFocus(
					func() { b.ctrl.FocusBegan(h) },
					func() { b.ctrl.FocusEnded(h) },
				)
				es.BindSubmit(func() { b.ctrl.Submit(h) })
			}
		case KindButton:
			if es, ok := h.(ButtonEventSource); ok {
				es.BindPress(func() { b.ctrl.Press(h) })
			}
		}
	}
}

// Metrics returns the current layout metrics.
func (b *Builder) Metrics() Metrics { return b.metrics }

// SetMetrics replaces the layout metrics. Takes effect on the next
// Relayout or Commit.
func (b *Builder) SetMetrics(m Metrics) { b.metrics = m }

// List returns the ordered item sequence.
func (b *Builder) List() *List { return b.list }

// Controller returns the navigation/validation state machine.
func (b *Builder) Controller() *Controller { return b.ctrl }

// Placement returns the geometry of the last layout pass, or nil before
// the first Commit.
func (b *Builder) Placement() *Placement { return b.placement }

// AccessibleElements returns the merged reading order of the last layout
// pass.
func (b *Builder) AccessibleElements() []Element { return b.elements }
