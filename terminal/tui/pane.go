package tui

import (
	"github.com/karthago1/tchart/terminal"
)

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
	LineNone                    // spaces (invisible border with padding)
)

// Box drawing character sets indexed by LineType
var boxChars = [...][6]rune{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	LineHeavy:   {'┏', '━', '┓', '┃', '┗', '┛'},
	LineNone:    {' ', ' ', ' ', ' ', ' ', ' '},
}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

// Box draws border around region edge
func (r Region) Box(line LineType, fg terminal.RGB) {
	if r.W < 2 || r.H < 2 {
		return
	}
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}

	chars := boxChars[line]
	bg := terminal.RGB{} // Transparent (use existing bg)

	// Corners
	r.Cell(0, 0, chars[boxTL], fg, bg, terminal.AttrNone)
	r.Cell(r.W-1, 0, chars[boxTR], fg, bg, terminal.AttrNone)
	r.Cell(0, r.H-1, chars[boxBL], fg, bg, terminal.AttrNone)
	r.Cell(r.W-1, r.H-1, chars[boxBR], fg, bg, terminal.AttrNone)

	// Horizontal edges
	for x := 1; x < r.W-1; x++ {
		r.Cell(x, 0, chars[boxH], fg, bg, terminal.AttrNone)
		r.Cell(x, r.H-1, chars[boxH], fg, bg, terminal.AttrNone)
	}

	// Vertical edges
	for y := 1; y < r.H-1; y++ {
		r.Cell(0, y, chars[boxV], fg, bg, terminal.AttrNone)
		r.Cell(r.W-1, y, chars[boxV], fg, bg, terminal.AttrNone)
	}
}

// PaneOpts configures the bordered wrapper around a chart
type PaneOpts struct {
	Title    string
	Border   LineType
	BorderFg terminal.RGB
	TitleFg  terminal.RGB
	Bg       terminal.RGB
}

// MinSize returns the smallest area in which the pane can draw its border
// and title
func (o PaneOpts) MinSize() (w, h int) {
	w, h = 2, 2
	if o.Title != "" {
		h = 3
		if tw := StringWidth(o.Title) + 4; tw > w {
			w = tw
		}
	}
	return w, h
}

// Pane draws bordered pane with optional title, returns content region
// The title sits on the top border row
func (r Region) Pane(opts PaneOpts) Region {
	if r.W < 3 || r.H < 3 {
		return r.Sub(1, 1, 0, 0)
	}

	// Fill background
	r.Fill(opts.Bg)

	// Draw border
	r.Box(opts.Border, opts.BorderFg)

	// Title on top edge
	if opts.Title != "" {
		title := " " + opts.Title + " "
		if StringWidth(title) > r.W-4 {
			title = Truncate(title, r.W-4)
		}
		r.TextN(2, 0, title, r.W-3, Style{Fg: opts.TitleFg, Bg: opts.Bg, Attr: terminal.AttrBold})
	}

	// Return content region inside border
	return r.Sub(1, 1, r.W-2, r.H-2)
}

// Card draws a pane with a title and transparent background, returns content region
func (r Region) Card(title string, line LineType, fg terminal.RGB) Region {
	return r.Pane(PaneOpts{Title: title, Border: line, BorderFg: fg, TitleFg: fg})
}
