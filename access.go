package formflow

import "strings"

// Element is one entry in the accessible reading order: a bounding
// rectangle and the string a screen reader speaks for it. Handle is the
// wrapped control for fields and buttons, and nil for merged label runs.
type Element struct {
	Frame  Rect
	Label  string
	Handle any
}

// AccessibilityLabeled is an optional capability: handles that provide a
// spoken label distinct from their display content.
type AccessibilityLabeled interface {
	AccessibilityLabel() string
}

// AccessibleElements walks the item sequence in order and builds the
// merged reading order: fields and buttons become standalone elements,
// while consecutive labels that layout placed on the same visual row
// collapse into one element whose text is their space-joined
// concatenation and whose frame is the union of their widths. A screen
// reader then reads each wrapped row of label text as a single phrase
// instead of N one-word announcements, while interactive controls stay
// individually addressable.
//
// Items without a placed rectangle (not part of the placement) are
// skipped.
func AccessibleElements(l *List, p *Placement) []Element {
	var out []Element
	var span *labelSpan

	flush := func() {
		if span != nil {
			out = append(out, span.element())
			span = nil
		}
	}

	for _, it := range l.items {
		r, ok := p.Rect(it.handle)
		if !ok {
			continue
		}
		switch it.kind {
		case KindLabel:
			text := it.handle.(LabelHandle).Text()
			if span != nil && span.frame.Y == r.Y {
				span.extend(r, text)
				continue
			}
			flush()
			span = &labelSpan{frame: r, text: text}
		case KindField, KindButton:
			flush()
			out = append(out, Element{Frame: r, Label: spokenLabel(it), Handle: it.handle})
		}
	}
	flush()
	return out
}

// labelSpan accumulates consecutive same-row label fragments during a
// single builder pass. Local to the pass, discarded once flushed.
type labelSpan struct {
	frame Rect
	text  string
}

func (s *labelSpan) extend(r Rect, text string) {
	s.frame.W += r.W
	if r.H > s.frame.H {
		s.frame.H = r.H
	}
	s.text += " " + text
}

func (s *labelSpan) element() Element {
	return Element{Frame: s.frame, Label: s.text}
}

// spokenLabel resolves what a standalone element announces.
func spokenLabel(it Item) string {
	if al, ok := it.handle.(AccessibilityLabeled); ok {
		return al.AccessibilityLabel()
	}
	switch it.kind {
	case KindButton:
		return it.handle.(ButtonHandle).Label()
	case KindField:
		return it.handle.(FieldHandle).Text()
	}
	return ""
}

// Narrate renders the reading order as one spoken line per element,
// useful for tests and for piping the form to assistive output.
func Narrate(elements []Element) string {
	var b strings.Builder
	for i, el := range elements {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(el.Label)
	}
	return b.String()
}
