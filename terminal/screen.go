package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Screen drives a real terminal through tcell: raw mode, alternate screen
// buffer, cell-slice flushing, and blocking event polls
type Screen struct {
	impl        tcell.Screen
	initialized bool
}

// New creates an uninitialized Screen
func New() *Screen {
	return &Screen{}
}

// Init enters raw mode and the alternate screen buffer, hides the cursor
func (s *Screen) Init() error {
	if s.initialized {
		return nil
	}

	impl, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	if err := impl.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}

	impl.HideCursor()
	impl.Clear()

	s.impl = impl
	s.initialized = true
	return nil
}

// Fini restores terminal state. Safe to call multiple times
func (s *Screen) Fini() {
	if !s.initialized {
		return
	}
	s.impl.Fini()
	s.initialized = false
}

// Size returns current terminal dimensions
func (s *Screen) Size() (width, height int) {
	return s.impl.Size()
}

// Flush writes a cell buffer to the terminal
// Cells are row-major: cells[y*width + x]
func (s *Screen) Flush(cells []Cell, width, height int) {
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := cells[y*width+x]
			ch := c.Rune
			if ch == 0 {
				ch = ' '
			}
			s.impl.SetContent(x, y, ch, nil, styleFor(c))
		}
	}
	s.impl.Show()
}

// Sync forces a full redraw
func (s *Screen) Sync() {
	s.impl.Sync()
}

// PollEvent blocks until the next input, resize, or lifecycle event
// Mouse, paste, and focus events are skipped
func (s *Screen) PollEvent() Event {
	for {
		switch ev := s.impl.PollEvent().(type) {
		case *tcell.EventKey:
			return keyEvent(ev)
		case *tcell.EventResize:
			w, h := ev.Size()
			return Event{Type: EventResize, Width: w, Height: h}
		case *tcell.EventError:
			return Event{Type: EventError, Err: ev}
		case nil:
			return Event{Type: EventClosed}
		}
	}
}

// styleFor converts cell colors and attributes to a tcell style
// Unset RGB values keep the terminal default color
func styleFor(c Cell) tcell.Style {
	st := tcell.StyleDefault
	if !c.Fg.IsZero() {
		st = st.Foreground(tcellColor(c.Fg))
	}
	if !c.Bg.IsZero() {
		st = st.Background(tcellColor(c.Bg))
	}
	if c.Attrs&AttrBold != 0 {
		st = st.Bold(true)
	}
	if c.Attrs&AttrDim != 0 {
		st = st.Dim(true)
	}
	if c.Attrs&AttrItalic != 0 {
		st = st.Italic(true)
	}
	if c.Attrs&AttrUnderline != 0 {
		st = st.Underline(true)
	}
	if c.Attrs&AttrBlink != 0 {
		st = st.Blink(true)
	}
	if c.Attrs&AttrReverse != 0 {
		st = st.Reverse(true)
	}
	return st
}

func tcellColor(c RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// keyEvent maps a tcell key event to the package Event type
func keyEvent(ev *tcell.EventKey) Event {
	e := Event{Type: EventKey}

	switch ev.Key() {
	case tcell.KeyRune:
		e.Key = KeyRune
		e.Rune = ev.Rune()
	case tcell.KeyEscape:
		e.Key = KeyEscape
	case tcell.KeyEnter:
		e.Key = KeyEnter
	case tcell.KeyTab:
		e.Key = KeyTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		e.Key = KeyBackspace
	case tcell.KeyDelete:
		e.Key = KeyDelete
	case tcell.KeyUp:
		e.Key = KeyUp
	case tcell.KeyDown:
		e.Key = KeyDown
	case tcell.KeyLeft:
		e.Key = KeyLeft
	case tcell.KeyRight:
		e.Key = KeyRight
	case tcell.KeyHome:
		e.Key = KeyHome
	case tcell.KeyEnd:
		e.Key = KeyEnd
	case tcell.KeyPgUp:
		e.Key = KeyPageUp
	case tcell.KeyPgDn:
		e.Key = KeyPageDown
	case tcell.KeyCtrlC:
		e.Key = KeyCtrlC
	case tcell.KeyCtrlD:
		e.Key = KeyCtrlD
	case tcell.KeyCtrlL:
		e.Key = KeyCtrlL
	default:
		e.Key = KeyNone
	}

	return e
}
