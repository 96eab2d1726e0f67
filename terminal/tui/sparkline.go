package tui

import "github.com/karthago1/tchart/terminal"

// SparklineChars provides 8-level vertical resolution
var SparklineChars = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// SparklineOpts configures sparkline rendering
type SparklineOpts struct {
	Min, Max float64 // Range bounds, auto-scale if both 0
	Style    Style
}

// Sparkline renders an inline graph of values, values are mapped to 8-level block characters
func (r Region) Sparkline(x, y, width int, values []float64, opts SparklineOpts) {
	if y < 0 || y >= r.H || width <= 0 || len(values) == 0 {
		return
	}

	min, max := sparkRange(values, opts)

	rangeV := max - min
	if rangeV == 0 {
		rangeV = 1
	}

	// Use last N values if more than width
	sampled := values
	if len(values) > width {
		sampled = values[len(values)-width:]
	}

	for i, v := range sampled {
		if x+i >= r.W {
			break
		}
		r.CellStyled(x+i, y, SparklineChars[sparkLevel(v, min, rangeV)], opts.Style)
	}

	// Pad remaining width with lowest char if values shorter than width
	for i := len(sampled); i < width && x+i < r.W; i++ {
		r.Cell(x+i, y, SparklineChars[0], opts.Style.Fg, opts.Style.Bg, terminal.AttrDim)
	}
}

// SparklineV renders vertical sparkline (bottom to top)
func (r Region) SparklineV(x, y, height int, values []float64, opts SparklineOpts) {
	if x < 0 || x >= r.W || height <= 0 || len(values) == 0 {
		return
	}

	min, max := sparkRange(values, opts)

	rangeV := max - min
	if rangeV == 0 {
		rangeV = 1
	}

	sampled := values
	if len(values) > height {
		sampled = values[len(values)-height:]
	}

	// Render bottom-up
	for i, v := range sampled {
		yPos := y + height - 1 - i
		if yPos < y || yPos >= r.H {
			continue
		}
		r.CellStyled(x, yPos, SparklineChars[sparkLevel(v, min, rangeV)], opts.Style)
	}
}

func sparkRange(values []float64, opts SparklineOpts) (min, max float64) {
	min, max = opts.Min, opts.Max
	if min == 0 && max == 0 {
		min, max = values[0], values[0]
		for _, v := range values {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	return min, max
}

// sparkLevel maps a value to a character index (0-7)
func sparkLevel(v, min, rangeV float64) int {
	norm := (v - min) / rangeV
	if norm < 0 {
		norm = 0
	}
	if norm > 1 {
		norm = 1
	}
	idx := int(norm * 7.99)
	if idx > 7 {
		idx = 7
	}
	return idx
}
