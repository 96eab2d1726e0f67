// Package terminal provides the cell model and a tcell-backed screen driver.
//
// Rendering is immediate mode with a caller-owned buffer: the application
// builds a row-major []Cell slice each frame and hands it to Screen.Flush.
// The zero RGB value renders as the terminal default color, so unstyled
// cells inherit the user's color scheme.
package terminal
