package terminal

// EventType distinguishes event payloads
type EventType uint8

const (
	EventKey EventType = iota
	EventResize
	EventClosed
	EventError
)

// Event is a terminal input event
type Event struct {
	Type      EventType
	Key       Key
	Rune      rune // Valid when Key == KeyRune
	Modifiers Modifier
	Width     int // Valid for EventResize
	Height    int
	Err       error // Valid for EventError
}

// KeyEvent builds a key event for a special key
func KeyEvent(k Key) Event {
	return Event{Type: EventKey, Key: k}
}

// RuneEvent builds a key event for a printable character
func RuneEvent(r rune) Event {
	return Event{Type: EventKey, Key: KeyRune, Rune: r}
}
