package tui

import (
	"github.com/karthago1/tchart/terminal"
)

// Style bundles foreground, background, and attributes for rendering
// The zero value is "unstyled": terminal default colors, no attributes
type Style struct {
	Fg   terminal.RGB
	Bg   terminal.RGB
	Attr terminal.Attr
}

// DefaultStyle returns style with only a foreground set (transparent bg)
func DefaultStyle(fg terminal.RGB) Style {
	return Style{Fg: fg}
}

// IsZero returns true if style has no colors or attributes set
func (s Style) IsZero() bool {
	return s.Fg == (terminal.RGB{}) && s.Bg == (terminal.RGB{}) && s.Attr == terminal.AttrNone
}

// StyleAt returns styles[i], or the zero style when i is out of range
// Charts use this for per-series lookups so short style slices degrade
// to unstyled output instead of failing
func StyleAt(styles []Style, i int) Style {
	if i < 0 || i >= len(styles) {
		return Style{}
	}
	return styles[i]
}
