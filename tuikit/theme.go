// Package tuikit is a terminal toolkit for formflow: concrete widgets
// implementing every capability the engine consumes, a scrollable
// container, and a bubbletea adapter that routes key events into the
// navigation state machine. Widgets render with lipgloss and measure
// with go-runewidth.
package tuikit

import (
	"github.com/charmbracelet/lipgloss"

	"formflow"
)

// Theme provides a set of styles for consistent widget appearance.
type Theme struct {
	Label        lipgloss.Style // static label text
	Field        lipgloss.Style // untouched/empty field
	FieldValid   lipgloss.Style
	FieldInvalid lipgloss.Style
	FieldFocused lipgloss.Style
	Placeholder  lipgloss.Style
	Button       lipgloss.Style
	ButtonFocus  lipgloss.Style
	Hint         lipgloss.Style // return-key affordance hint
}

// Pre-defined themes

// ThemeDark is a dark theme with light text on dark background.
var ThemeDark = Theme{
	Label:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	Field:        lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("236")),
	FieldValid:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Background(lipgloss.Color("236")),
	FieldInvalid: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Background(lipgloss.Color("236")),
	FieldFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	Placeholder:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Background(lipgloss.Color("236")),
	Button:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("238")),
	ButtonFocus:  lipgloss.NewStyle().Foreground(lipgloss.Color("236")).Background(lipgloss.Color("81")).Bold(true),
	Hint:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
}

// ThemeLight is a light theme with dark text on light background.
var ThemeLight = Theme{
	Label:        lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
	Field:        lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("254")),
	FieldValid:   lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Background(lipgloss.Color("254")),
	FieldInvalid: lipgloss.NewStyle().Foreground(lipgloss.Color("124")).Background(lipgloss.Color("254")),
	FieldFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("255")).Bold(true),
	Placeholder:  lipgloss.NewStyle().Foreground(lipgloss.Color("247")).Background(lipgloss.Color("254")),
	Button:       lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("252")),
	ButtonFocus:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("25")).Bold(true),
	Hint:         lipgloss.NewStyle().Foreground(lipgloss.Color("247")),
}

// ThemeMonochrome is a minimal theme using only attributes.
var ThemeMonochrome = Theme{
	Label:        lipgloss.NewStyle(),
	Field:        lipgloss.NewStyle().Underline(true),
	FieldValid:   lipgloss.NewStyle().Underline(true).Bold(true),
	FieldInvalid: lipgloss.NewStyle().Underline(true).Reverse(true),
	FieldFocused: lipgloss.NewStyle().Underline(true).Bold(true),
	Placeholder:  lipgloss.NewStyle().Faint(true),
	Button:       lipgloss.NewStyle().Reverse(true),
	ButtonFocus:  lipgloss.NewStyle().Reverse(true).Bold(true),
	Hint:         lipgloss.NewStyle().Faint(true),
}

// ThemeByName resolves a configured theme name, defaulting to dark.
func ThemeByName(name string) Theme {
	switch name {
	case "light":
		return ThemeLight
	case "mono", "monochrome":
		return ThemeMonochrome
	default:
		return ThemeDark
	}
}

// fieldStyle resolves the style a field renders with for the given
// validation state and focus.
func (t Theme) fieldStyle(a formflow.Appearance, focused bool) lipgloss.Style {
	if focused {
		return t.FieldFocused
	}
	switch a {
	case formflow.AppearanceValid:
		return t.FieldValid
	case formflow.AppearanceInvalid:
		return t.FieldInvalid
	}
	return t.Field
}
