// Package tui provides immediate-mode chart and drawing primitives for the
// terminal package.
//
// Core abstraction is Region, representing a rectangular area within a cell
// buffer. All drawing operations are relative to region bounds with automatic
// clipping.
//
// Design principles:
//   - Immediate mode: no retained widget state, app owns render loop
//   - Deterministic: a render is a pure function of configuration and area
//   - Composable: regions nest via Sub(), layout helpers split regions
//   - Best effort: degenerate areas render nothing instead of failing
//
// Usage pattern:
//
//	cells := make([]terminal.Cell, w*h)
//	root := tui.NewRegion(cells, w, 0, 0, w, h)
//
//	chart := tui.NewBarChart().
//	    AddSeries([]uint64{9, 12, 5, 8}).
//	    AddSeries([]uint64{6, 11, 4, 5}).
//	    BarWidth(5).
//	    BarStyles(tui.SeriesPalette(2)).
//	    Labels([]string{"30°C", "50°C", "60°C", "80°C"})
//	chart.Render(root)
//
//	term.Flush(cells, w, h)
package tui
