package formflow

// Kind tags the variant of an Item. The set is closed: switches over
// Kind should be exhaustive.
type Kind uint8

const (
	// KindField is a user-editable input with a validator.
	KindField Kind = iota
	// KindLabel is a static text fragment.
	KindLabel
	// KindButton is a tappable control with a press action.
	KindButton
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindField:
		return "field"
	case KindLabel:
		return "label"
	case KindButton:
		return "button"
	}
	return "unknown"
}

// Validator reports whether a field's current content is acceptable.
type Validator func(h FieldHandle) bool

// Item is one entry in a form's reading order: a handle tagged with its
// kind and the behavior fixed at append time. Items are immutable values.
type Item struct {
	kind     Kind
	handle   any
	validate Validator // KindField only
	onPress  func()    // KindButton only
}

// FieldItem wraps an editable input handle with its validator.
func FieldItem(h FieldHandle, validate Validator) Item {
	return Item{kind: KindField, handle: h, validate: validate}
}

// LabelItem wraps a static text handle.
func LabelItem(h LabelHandle) Item {
	return Item{kind: KindLabel, handle: h}
}

// ButtonItem wraps a tappable handle with its press action.
func ButtonItem(h ButtonHandle, onPress func()) Item {
	return Item{kind: KindButton, handle: h, onPress: onPress}
}

// Kind returns the item's variant tag.
func (it Item) Kind() Kind { return it.kind }

// Handle returns the wrapped visual handle. Identity is stable for the
// item's lifetime and used for equality lookups.
func (it Item) Handle() any { return it.handle }

// List owns the full ordered sequence of a form's items. It is
// append-only: insertion order is the canonical reading and navigation
// order and is never reordered. Rebuilding a form replaces the List
// wholesale.
type List struct {
	items []Item
}

// Append adds items to the end of the sequence, preserving order.
// Appending a handle that is already present is host misuse and panics.
func (l *List) Append(items ...Item) {
	for _, it := range items {
		if _, ok := l.ItemFor(it.handle); ok {
			panic("formflow: duplicate handle appended to List")
		}
		l.items = append(l.items, it)
	}
}

// Len returns the number of items.
func (l *List) Len() int { return len(l.items) }

// At returns the item at position i.
func (l *List) At(i int) Item { return l.items[i] }

// Items returns a copy of the ordered item sequence.
func (l *List) Items() []Item {
	out := make([]Item, len(l.items))
	copy(out, l.items)
	return out
}

// ItemFor returns the first item (in append order) whose handle matches,
// or false if the handle is unknown. Linear scan: forms are small.
func (l *List) ItemFor(h any) (Item, bool) {
	for _, it := range l.items {
		if it.handle == h {
			return it, true
		}
	}
	return Item{}, false
}

// NextField returns the first Field item strictly after the item wrapping
// h, skipping labels and buttons, or false if h is unknown or no field
// follows it.
func (l *List) NextField(h any) (Item, bool) {
	idx := -1
	for i, it := range l.items {
		if it.handle == h {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Item{}, false
	}
	for _, it := range l.items[idx+1:] {
		if it.kind == KindField {
			return it, true
		}
	}
	return Item{}, false
}
