package terminal

// RGB represents a 24-bit color
// The zero value is treated as "unset" and renders as the terminal default
type RGB struct {
	R, G, B uint8
}

// Equal returns true if colors match
func (c RGB) Equal(other RGB) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// IsZero returns true for the unset color
func (c RGB) IsZero() bool {
	return c == RGB{}
}
