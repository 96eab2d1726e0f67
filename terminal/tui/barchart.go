package tui

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrSeriesLength reports an AddSeries call whose value count does not match
// the group count established by the first call
var ErrSeriesLength = errors.New("tui: series length does not match group count")

// ValueFormatter maps a raw series value to its displayed label text
type ValueFormatter func(v uint64) string

// FormatDecimal is the default ValueFormatter
func FormatDecimal(v uint64) string {
	return strconv.FormatUint(v, 10)
}

// BarChart renders one or more numeric series as groups of vertical bars.
// Bar heights use sub-cell resolution: values are scaled to eighths of a
// cell and painted with a nine-level glyph set, so a bar's top row shows
// the fractional glyph matching its remainder.
//
// Configuration is fluent; a chart is rebuilt (or its data mutated) between
// frames and holds no state across renders:
//
//	chart := tui.NewBarChart().
//	    Pane(tui.PaneOpts{Title: "Data1", Border: tui.LineSingle}).
//	    AddSeries([]uint64{9, 12, 5, 8}).
//	    AddSeries([]uint64{6, 11, 4, 5}).
//	    BarWidth(5).
//	    GroupGap(3).
//	    BarStyles(tui.SeriesPalette(2))
//	info, err := chart.Render(region)
type BarChart struct {
	pane     *PaneOpts
	barWidth int
	barGap   int
	groupGap int
	glyphs   BarGlyphs

	barStyles   []Style
	valueStyles []Style
	labelStyle  Style
	style       Style

	// groups[g][s] is the value of series s in group g
	groups [][]uint64
	labels []string

	max    uint64
	hasMax bool
	format ValueFormatter

	err error
}

// NewBarChart returns a chart with defaults: bar width 1, bar gap 1,
// group gap 1, nine-level glyphs, auto-scaled max, decimal value labels
func NewBarChart() *BarChart {
	return &BarChart{
		barWidth: 1,
		barGap:   1,
		groupGap: 1,
		glyphs:   NineLevels,
		format:   FormatDecimal,
	}
}

// AddSeries appends one value to every group in order. The first call
// defines the group count, one group per value; every later call must
// supply exactly that many values. A mismatch records ErrSeriesLength,
// which Render surfaces instead of truncating pairwise
func (b *BarChart) AddSeries(values []uint64) *BarChart {
	if len(b.groups) == 0 {
		b.groups = make([][]uint64, len(values))
		for i, v := range values {
			b.groups[i] = []uint64{v}
		}
		return b
	}

	if len(values) != len(b.groups) {
		if b.err == nil {
			b.err = fmt.Errorf("%w: got %d values, have %d groups", ErrSeriesLength, len(values), len(b.groups))
		}
		return b
	}

	for i, v := range values {
		b.groups[i] = append(b.groups[i], v)
	}
	return b
}

// Series replaces all data at once, zipping the given series into
// per-group tuples. Ragged input records ErrSeriesLength
func (b *BarChart) Series(series ...[]uint64) *BarChart {
	b.groups = nil
	b.err = nil
	for _, s := range series {
		b.AddSeries(s)
	}
	return b
}

// Err returns the configuration error recorded during accumulation, if any
func (b *BarChart) Err() error {
	return b.err
}

// Labels sets category labels, associated positionally with groups.
// Trailing groups without a label render unlabeled
func (b *BarChart) Labels(labels []string) *BarChart {
	b.labels = labels
	return b
}

// BarStyles sets per-series bar glyph styles, indexed by series position.
// Series beyond the slice fall back to the unstyled default
func (b *BarChart) BarStyles(styles []Style) *BarChart {
	b.barStyles = styles
	return b
}

// ValueStyles sets per-series value label styles, indexed by series position
func (b *BarChart) ValueStyles(styles []Style) *BarChart {
	b.valueStyles = styles
	return b
}

// LabelStyle sets the category label style
func (b *BarChart) LabelStyle(st Style) *BarChart {
	b.labelStyle = st
	return b
}

// Style sets the base style painted across the whole area before the bars
func (b *BarChart) Style(st Style) *BarChart {
	b.style = st
	return b
}

// BarWidth sets the width of each bar in columns
func (b *BarChart) BarWidth(w int) *BarChart {
	b.barWidth = w
	return b
}

// BarGap sets the gap between bars within a group
func (b *BarChart) BarGap(gap int) *BarChart {
	b.barGap = gap
	return b
}

// GroupGap sets the gap between groups
func (b *BarChart) GroupGap(gap int) *BarChart {
	b.groupGap = gap
	return b
}

// Glyphs sets the nine-level glyph set used to paint bars
func (b *BarChart) Glyphs(g BarGlyphs) *BarChart {
	b.glyphs = g
	return b
}

// ValueFormat sets the value label formatter
func (b *BarChart) ValueFormat(f ValueFormatter) *BarChart {
	b.format = f
	return b
}

// Max fixes the value a bar needs to reach full height. Without it the
// maximum over all groups and series is used
func (b *BarChart) Max(max uint64) *BarChart {
	b.max = max
	b.hasMax = true
	return b
}

// Pane wraps the chart in a bordered pane; bars render in its content area
func (b *BarChart) Pane(opts PaneOpts) *BarChart {
	b.pane = &opts
	return b
}

// RenderInfo reports what a Render call drew
type RenderInfo struct {
	VisibleGroups int
	Drawn         bool
}

// SizeHint reports the minimum usable area for a proposed area. A wrapped
// chart needs the pane minimum plus one row for the chart body; an
// unwrapped chart accepts any proposal. Advisory only: Render re-derives
// actual fit from the area it receives
func (b *BarChart) SizeHint(w, h int) (int, int) {
	if b.pane == nil {
		return w, h
	}
	pw, ph := b.pane.MinSize()
	if pw > w {
		w = pw
	}
	if ph+1 > h {
		h = ph + 1
	}
	return w, h
}

// HeightEighths returns the bar height for value in eighths of a cell,
// given the chart body height in rows. The bottom row is reserved for
// labels; integer division truncates toward zero. A zero max is floored
// to 1 so empty data scales to empty bars
func HeightEighths(value, max uint64, rows int) uint64 {
	if rows < 2 {
		return 0
	}
	if max < 1 {
		max = 1
	}
	return value * uint64(rows-1) * 8 / max
}

// VisibleGroups returns how many whole groups fit in width columns given
// the geometry. The gap before the first group and after the last bar is
// amortized across the division; a group that would only partially fit is
// dropped entirely, never clipped
func VisibleGroups(width, barWidth, barGap, groupGap, seriesPerGroup, groups int) int {
	if groups <= 0 || seriesPerGroup <= 0 {
		return 0
	}
	perGroup := (barWidth+barGap)*seriesPerGroup + groupGap
	if perGroup <= 0 {
		return 0
	}
	n := (width + groupGap + barGap) / perGroup
	if n < 0 {
		n = 0
	}
	if n > groups {
		n = groups
	}
	return n
}

// Render paints the chart into r and reports what was drawn. It returns
// the configuration error recorded during accumulation, if any; a
// degenerate target (area too small, no data) is a no-op with Drawn false,
// not an error
func (b *BarChart) Render(r Region) (RenderInfo, error) {
	if b.err != nil {
		return RenderInfo{}, b.err
	}

	if !b.style.IsZero() {
		r.FillStyled(b.style)
	}

	area := r
	if b.pane != nil {
		area = r.Pane(*b.pane)
	}

	// The bottom row is reserved for text, so two rows is the floor
	if area.H < 2 || len(b.groups) == 0 {
		return RenderInfo{}, nil
	}

	max := b.max
	if !b.hasMax {
		max = dataMax(b.groups)
	}

	seriesPerGroup := len(b.groups[0])
	visible := VisibleGroups(area.W, b.barWidth, b.barGap, b.groupGap, seriesPerGroup, len(b.groups))
	if visible == 0 {
		return RenderInfo{}, nil
	}

	heights := make([][]uint64, visible)
	for g := 0; g < visible; g++ {
		heights[g] = make([]uint64, len(b.groups[g]))
		for s, v := range b.groups[g] {
			heights[g][s] = HeightEighths(v, max, area.H)
		}
	}

	b.paintBars(area, heights)
	b.paintValues(area, visible, seriesPerGroup)
	b.paintLabels(area, visible, seriesPerGroup)

	return RenderInfo{VisibleGroups: visible, Drawn: true}, nil
}

// paintBars walks the body bottom-up. Each pass paints one glyph per bar
// and consumes 8 eighths of its remaining height, so bars build from
// full-block rows with at most one fractional glyph on top
func (b *BarChart) paintBars(area Region, heights [][]uint64) {
	for row := area.H - 2; row >= 0; row-- {
		bar := 0
		xOff := 0
		for g := range heights {
			for s := range heights[g] {
				lvl := heights[g][s]
				if lvl > 8 {
					lvl = 8
				}
				glyph := b.glyphs[lvl]
				st := StyleAt(b.barStyles, s)

				x := bar*(b.barWidth+b.barGap) + xOff
				for i := 0; i < b.barWidth; i++ {
					area.CellStyled(x+i, row, glyph, st)
				}

				bar++
				if heights[g][s] > 8 {
					heights[g][s] -= 8
				} else {
					heights[g][s] = 0
				}
			}
			xOff += b.groupGap
		}
	}
}

// paintValues overlays formatted values at the bars' base, one text row
// per series index so overlapping series don't collide. Groups are walked
// right to left to unwind the accumulated gap offset. Zero values carry
// no label
func (b *BarChart) paintValues(area Region, visible, seriesPerGroup int) {
	format := b.format
	if format == nil {
		format = FormatDecimal
	}

	bar := visible * seriesPerGroup
	xOff := b.groupGap * visible

	for g := visible - 1; g >= 0; g-- {
		xOff -= b.groupGap
		for s := seriesPerGroup - 1; s >= 0; s-- {
			bar--
			v := b.groups[g][s]
			if v == 0 {
				continue
			}

			label := format(v)
			st := StyleAt(b.valueStyles, s)

			x := bar*(b.barWidth+b.barGap) + xOff
			if w := StringWidth(label); b.barWidth > w {
				x += (b.barWidth - w) / 2
			}
			area.TextStyled(x, area.H-2-s, label, st)
		}
	}
}

// paintLabels centers each category label within its group's full width on
// the bottom row. Labels beyond the visible groups are dropped silently
func (b *BarChart) paintLabels(area Region, visible, seriesPerGroup int) {
	groupW := seriesPerGroup*b.barWidth + (seriesPerGroup-1)*b.barGap

	for i, label := range b.labels {
		if i >= visible {
			break
		}
		x := i*seriesPerGroup*(b.barWidth+b.barGap) + i*b.groupGap
		if w := StringWidth(label); groupW > w {
			x += (groupW - w) / 2
		}
		area.TextN(x, area.H-1, label, groupW, b.labelStyle)
	}
}

func dataMax(groups [][]uint64) uint64 {
	var max uint64
	for _, g := range groups {
		for _, v := range g {
			if v > max {
				max = v
			}
		}
	}
	return max
}
