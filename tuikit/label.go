package tuikit

import (
	"github.com/mattn/go-runewidth"

	"formflow"
)

// Label is a static text fragment, one word in a wrapped run. Its placed
// width includes one trailing space so adjacent words on a row stay
// separated.
type Label struct {
	text  string
	frame formflow.Rect
	theme Theme
}

// NewLabel creates a label for the given word.
func NewLabel(theme Theme, text string) *Label {
	return &Label{text: text, theme: theme}
}

// Labels returns a LabelFactory producing theme-styled labels.
func Labels(theme Theme) formflow.LabelFactory {
	return func(text string) formflow.LabelHandle {
		return NewLabel(theme, text)
	}
}

// Text implements formflow.LabelHandle.
func (l *Label) Text() string { return l.text }

// SizeThatFits implements formflow.LabelHandle: the intrinsic fitted
// size of the word plus its trailing space, clamped to max.
func (l *Label) SizeThatFits(max formflow.Size) formflow.Size {
	w := runewidth.StringWidth(l.text) + 1
	if w > max.W {
		w = max.W
	}
	return formflow.Size{W: w, H: 1}
}

// SetFrame implements formflow.Framer.
func (l *Label) SetFrame(r formflow.Rect) { l.frame = r }

// Frame returns the rectangle the last layout pass placed the label at.
func (l *Label) Frame() formflow.Rect { return l.frame }

// View renders the word at its placed width.
func (l *Label) View() string {
	return l.theme.Label.Render(padTo(l.text, l.frame.W))
}
