package tui

import "testing"

func TestSplitHCoversWidth(t *testing.T) {
	r, _ := testRegion(31, 5)
	cols := SplitH(r, 0.33, 0.34, 0.33)

	total := 0
	for _, c := range cols {
		if c.H != 5 {
			t.Errorf("column height = %d, want 5", c.H)
		}
		total += c.W
	}
	if total != 31 {
		t.Errorf("column widths sum to %d, want 31", total)
	}
}

func TestSplitVFixed(t *testing.T) {
	r, _ := testRegion(10, 8)
	top, bottom := SplitVFixed(r, 1)
	if top.H != 1 || bottom.H != 7 || bottom.Y != 1 {
		t.Errorf("SplitVFixed = top %dx%d, bottom %dx%d at y=%d", top.W, top.H, bottom.W, bottom.H, bottom.Y)
	}

	// Oversized request clamps
	top, bottom = SplitVFixed(r, 20)
	if top.H != 8 || bottom.H != 0 {
		t.Errorf("clamped SplitVFixed = %d/%d", top.H, bottom.H)
	}
}

func TestCenter(t *testing.T) {
	r, _ := testRegion(20, 10)
	c := Center(r, 10, 4)
	if c.X != 5 || c.Y != 3 || c.W != 10 || c.H != 4 {
		t.Errorf("Center = (%d,%d %dx%d)", c.X, c.Y, c.W, c.H)
	}
}

func TestBreakpointH(t *testing.T) {
	tests := []struct {
		name string
		w    int
		want int
	}{
		{"Wide", 150, 0},
		{"Medium", 90, 1},
		{"Narrow", 40, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BreakpointH(tt.w, 120, 80); got != tt.want {
				t.Errorf("BreakpointH(%d) = %d, want %d", tt.w, got, tt.want)
			}
		})
	}
}
