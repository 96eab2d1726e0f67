package tui

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/karthago1/tchart/terminal"
)

// SeriesPalette returns n visually distinct foreground styles for
// multi-series charts. Hues are evenly spaced around the wheel and the
// result is deterministic for a given n
func SeriesPalette(n int) []Style {
	if n <= 0 {
		return nil
	}
	styles := make([]Style, n)
	for i := range styles {
		hue := float64(i) * 360.0 / float64(n)
		styles[i] = Style{Fg: rgbOf(colorful.Hsv(hue, 0.6, 0.9))}
	}
	return styles
}

// Ramp returns n colors blended from lo to hi in Lab space, for hosts
// mapping value magnitude onto color
func Ramp(lo, hi terminal.RGB, n int) []terminal.RGB {
	if n <= 0 {
		return nil
	}

	from := colorfulOf(lo)
	to := colorfulOf(hi)

	out := make([]terminal.RGB, n)
	for i := range out {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		out[i] = rgbOf(from.BlendLab(to, t).Clamped())
	}
	return out
}

func colorfulOf(c terminal.RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

func rgbOf(c colorful.Color) terminal.RGB {
	r, g, b := c.Clamped().RGB255()
	return terminal.RGB{R: r, G: g, B: b}
}
