package tui

// BarGlyphs is a nine-level glyph set for sub-cell bar heights, indexed by
// eighths of a cell: 0 is empty, 8 is a full block
type BarGlyphs [9]rune

// NineLevels is the default bar glyph set (block elements)
var NineLevels = BarGlyphs{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// ThreeLevels is a coarse variant for terminals with poor block-element
// coverage: empty, half, full
var ThreeLevels = BarGlyphs{' ', ' ', ' ', '▄', '▄', '▄', '█', '█', '█'}
