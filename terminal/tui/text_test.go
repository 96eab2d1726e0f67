package tui

import (
	"testing"

	"github.com/karthago1/tchart/terminal"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		s    string
		maxW int
		want string
	}{
		{"Fits", "abc", 5, "abc"},
		{"Exact", "abc", 3, "abc"},
		{"Truncated", "abcdef", 4, "abc…"},
		{"Zero width", "abc", 0, ""},
		{"Wide runes", "日本語", 4, "日…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.s, tt.maxW); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.s, tt.maxW, got, tt.want)
			}
		})
	}
}

func TestStringWidth(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want int
	}{
		{"ASCII", "abc", 3},
		{"Empty", "", 0},
		{"Degree sign", "30°C", 4},
		{"CJK doubles", "温度", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StringWidth(tt.s); got != tt.want {
				t.Errorf("StringWidth(%q) = %d, want %d", tt.s, got, tt.want)
			}
		})
	}
}

func TestPad(t *testing.T) {
	if got := PadRight("ab", 5); got != "ab   " {
		t.Errorf("PadRight = %q", got)
	}
	if got := PadLeft("ab", 5); got != "   ab" {
		t.Errorf("PadLeft = %q", got)
	}
	if got := PadCenter("ab", 6); got != "  ab  " {
		t.Errorf("PadCenter = %q", got)
	}
	if got := PadCenter("abcdef", 3); got != "abcdef" {
		t.Errorf("PadCenter on overflow = %q, want input unchanged", got)
	}
}

func TestTextN(t *testing.T) {
	r, cells := testRegion(8, 2)

	r.TextN(1, 0, "hello", 3, Style{})
	if got := rowString(cells, 8, 0); got != " hel    " {
		t.Errorf("row = %q, want %q", got, " hel    ")
	}

	// Clipped at region edge regardless of maxW
	r.TextN(6, 1, "world", 10, Style{})
	if got := rowString(cells, 8, 1); got != "      wo" {
		t.Errorf("row = %q, want %q", got, "      wo")
	}
}

func TestTextAlignment(t *testing.T) {
	r, cells := testRegion(10, 2)

	r.TextCenter(0, "abcd", terminal.RGB{}, terminal.RGB{}, terminal.AttrNone)
	if got := rowString(cells, 10, 0); got != "   abcd   " {
		t.Errorf("centered row = %q", got)
	}

	r.TextRight(1, "end", terminal.RGB{}, terminal.RGB{}, terminal.AttrNone)
	if got := rowString(cells, 10, 1); got != "       end" {
		t.Errorf("right row = %q", got)
	}
}

func TestTextOffRow(t *testing.T) {
	r, cells := testRegion(4, 2)
	r.Text(0, -1, "x", terminal.RGB{}, terminal.RGB{}, terminal.AttrNone)
	r.Text(0, 2, "x", terminal.RGB{}, terminal.RGB{}, terminal.AttrNone)
	for i, c := range cells {
		if c.Rune != 0 {
			t.Fatalf("off-row write landed at %d", i)
		}
	}
}
