package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/karthago1/tchart/terminal"
)

// StringWidth returns the display width of s in terminal columns
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate truncates string with … suffix if it exceeds maxW columns
func Truncate(s string, maxW int) string {
	if maxW <= 0 {
		return ""
	}
	return runewidth.Truncate(s, maxW, "…")
}

// PadRight pads string with spaces to width columns
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// PadLeft left-pads string with spaces to width columns
func PadLeft(s string, width int) string {
	return runewidth.FillLeft(s, width)
}

// PadCenter centers string within width columns
func PadCenter(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

// TextN renders at most maxW columns of s at (x, y), clipped at region
// edges. Wide runes advance by their display width; the shadowed cell is
// left untouched for the flusher to resolve
func (r Region) TextN(x, y int, s string, maxW int, st Style) {
	if y < 0 || y >= r.H || maxW <= 0 {
		return
	}
	col := 0
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if col+w > maxW || x+col >= r.W {
			break
		}
		if x+col >= 0 {
			r.Cell(x+col, y, ch, st.Fg, st.Bg, st.Attr)
		}
		col += w
	}
}

// TextStyled renders text at position using a Style, truncates at region edge
func (r Region) TextStyled(x, y int, s string, st Style) {
	r.TextN(x, y, s, r.W, st)
}

// Text renders text at position, truncates at region edge
func (r Region) Text(x, y int, s string, fg, bg terminal.RGB, attr terminal.Attr) {
	r.TextN(x, y, s, r.W, Style{Fg: fg, Bg: bg, Attr: attr})
}

// TextRight renders text right-aligned on row
func (r Region) TextRight(y int, s string, fg, bg terminal.RGB, attr terminal.Attr) {
	x := r.W - StringWidth(s)
	r.Text(x, y, s, fg, bg, attr)
}

// TextCenter renders text centered on row
func (r Region) TextCenter(y int, s string, fg, bg terminal.RGB, attr terminal.Attr) {
	x := (r.W - StringWidth(s)) / 2
	r.Text(x, y, s, fg, bg, attr)
}
