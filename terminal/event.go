package terminal

// EventType discriminates Event variants
type EventType uint8

const (
	EventNone EventType = iota
	EventKey
	EventResize
	EventClosed
	EventError
)

// Key represents a parsed input key
type Key uint16

const (
	KeyNone Key = iota
	KeyRune // Printable character (check Event.Rune)

	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete

	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyCtrlC
	KeyCtrlD
	KeyCtrlL
)

// Event is a single input or lifecycle event
type Event struct {
	Type   EventType
	Key    Key
	Rune   rune
	Width  int // EventResize
	Height int // EventResize
	Err    error
}
