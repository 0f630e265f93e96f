package tuikit

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"formflow"
)

// buildForm commits a two-field, one-button form into a scroll view and
// returns the wrapped model plus the concrete widgets.
func buildForm(t *testing.T) (Model, *ScrollView, []*Field, *Button) {
	t.Helper()

	view := NewScrollView(40, 5)
	b := formflow.NewBuilder(view, formflow.Metrics{
		RowWidth:   40,
		RowHeight:  1,
		FieldWidth: 10,
	}, nil)

	var fields []*Field
	field := func() formflow.FieldHandle {
		f := NewField(Theme{}).Width(10)
		fields = append(fields, f)
		return f
	}
	btn := NewButton(Theme{}, "Clear")

	b.AddLabel(Labels(Theme{}), "Your name").
		AddField(field, formflow.Check(formflow.VRequired)).
		AddField(field, formflow.Check(formflow.VRequired)).
		AddButton(func() formflow.ButtonHandle { return btn }, func() {
			for _, f := range fields {
				f.SetValue("")
			}
		})
	b.Commit()

	return NewModel(b, view, Theme{}), view, fields, btn
}

func TestModelTabCyclesFocus(t *testing.T) {
	m, _, fields, btn := buildForm(t)
	m.FocusFirst()
	if !fields[0].Focused() {
		t.Fatal("FocusFirst did not land on the first field")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !fields[1].Focused() || fields[0].Focused() {
		t.Fatal("tab did not move focus to the second field")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !btn.Focused() {
		t.Fatal("tab did not reach the button")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !fields[0].Focused() {
		t.Fatal("tab did not wrap back to the first field")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if !btn.Focused() {
		t.Fatal("shift+tab did not cycle backwards")
	}
}

func TestModelRoutesKeysToFocusedField(t *testing.T) {
	m, _, fields, _ := buildForm(t)
	m.FocusFirst()

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Ada")})
	if fields[0].Text() != "Ada" {
		t.Fatalf("focused field text = %q, want %q", fields[0].Text(), "Ada")
	}
	if fields[1].Text() != "" {
		t.Fatal("keystrokes leaked into an unfocused field")
	}
}

func TestModelEnterAdvancesThroughForm(t *testing.T) {
	m, _, fields, _ := buildForm(t)
	m.FocusFirst()

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Ada")})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if !fields[1].Focused() {
		t.Fatal("enter on a valid field did not advance focus")
	}
	if fields[0].Appearance() != formflow.AppearanceValid {
		t.Fatalf("first field appearance = %v, want Valid", fields[0].Appearance())
	}
	if fields[1].SubmitAction() != formflow.SubmitFinish {
		t.Fatalf("last field action = %v, want Finish", fields[1].SubmitAction())
	}
}

func TestModelEditTriggersRelayout(t *testing.T) {
	m, _, fields, _ := buildForm(t)
	m.FocusFirst()

	before := fields[1].Frame()
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	after := fields[1].Frame()
	if before != after {
		t.Fatalf("fixed-width fields moved on edit: %+v -> %+v", before, after)
	}
}

func TestModelWindowSizeRewraps(t *testing.T) {
	m, view, fields, _ := buildForm(t)

	if fields[1].Frame().Y != fields[0].Frame().Y {
		t.Fatal("fields should share a row at width 40")
	}

	m.Update(tea.WindowSizeMsg{Width: 12, Height: 6})
	if view.Bounds().W != 12 || view.Bounds().H != 5 {
		t.Fatalf("bounds = %+v, want 12x5 with one hint line reserved", view.Bounds())
	}
	if fields[1].Frame().Y == fields[0].Frame().Y {
		t.Fatal("narrow window did not rewrap the fields onto separate rows")
	}
}

func TestModelButtonPressClearsFields(t *testing.T) {
	m, _, fields, btn := buildForm(t)
	m.FocusFirst()
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("...")})

	btn.Focus()
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if fields[0].Text() != "" {
		t.Fatalf("button action did not run: field text = %q", fields[0].Text())
	}
}

func TestModelQuitKeys(t *testing.T) {
	m, _, _, _ := buildForm(t)
	for _, k := range []tea.KeyMsg{{Type: tea.KeyCtrlC}, {Type: tea.KeyEsc}} {
		_, cmd := m.Update(k)
		if cmd == nil {
			t.Fatalf("%v did not quit", k)
		}
	}
}

func TestModelHintBarFollowsSubmitAction(t *testing.T) {
	m, _, fields, _ := buildForm(t)
	m.FocusFirst()

	if !strings.Contains(m.View(), "↵ next") {
		t.Fatal("hint bar missing advance affordance for a mid-form field")
	}

	fields[1].Focus()
	if !strings.Contains(m.View(), "↵ done") {
		t.Fatal("hint bar missing finish affordance for the last field")
	}
}

func TestModelAccessibilityNarration(t *testing.T) {
	m, _, fields, _ := buildForm(t)
	fields[0].SetValue("Ada")

	got := m.AccessibilityNarration()
	lines := strings.Split(got, "\n")
	if len(lines) != 4 {
		t.Fatalf("narration = %q, want 4 elements", got)
	}
	if lines[0] != "Your name" {
		t.Fatalf("merged label line = %q, want %q", lines[0], "Your name")
	}
	if lines[1] != "Ada" {
		t.Fatalf("field line = %q, want %q", lines[1], "Ada")
	}
	if lines[3] != "Clear" {
		t.Fatalf("button line = %q, want %q", lines[3], "Clear")
	}
}
