// Package render draws navigation trees and replay reports for terminals.
package render

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Theme holds the colours used for node labels.
type Theme struct {
	Focused color.Color // the deepest focused node
	Path    color.Color // ancestors of the focused node
	Idle    color.Color // everything else
}

// DefaultTheme returns the built-in colours.
func DefaultTheme() Theme {
	return Theme{
		Focused: lipgloss.Color("114"),
		Path:    lipgloss.Color("81"),
		Idle:    lipgloss.Color("246"),
	}
}

// ThemeFromColors builds a theme from colour strings ("81", "#ff8800").
// Empty values keep the default.
func ThemeFromColors(focused, path, idle string) Theme {
	t := DefaultTheme()
	if focused != "" {
		t.Focused = lipgloss.Color(focused)
	}
	if path != "" {
		t.Path = lipgloss.Color(path)
	}
	if idle != "" {
		t.Idle = lipgloss.Color(idle)
	}
	return t
}

func (t Theme) style(state nodeState) lipgloss.Style {
	switch state {
	case stateFocused:
		return lipgloss.NewStyle().Foreground(t.Focused).Bold(true)
	case statePath:
		return lipgloss.NewStyle().Foreground(t.Path)
	}
	return lipgloss.NewStyle().Foreground(t.Idle)
}
