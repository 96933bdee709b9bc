package terminal

import (
	"errors"
	"time"
)

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrItalic    Attr = 1 << 2
	AttrUnderline Attr = 1 << 3
	AttrReverse   Attr = 1 << 4
)

// Cell represents a single terminal cell
// Zero Fg/Bg render as the terminal default colors
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs Attr
}

// ErrClosed is returned once the event source has shut down
var ErrClosed = errors.New("terminal: closed")

// Terminal provides the primitives the application loop needs
type Terminal interface {
	// Init enters raw mode, alternate screen buffer, hides cursor
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions
	Size() (width, height int)

	// Flush writes a complete frame to the terminal
	// Cells are row-major: cells[y*width + x]
	Flush(cells []Cell, width, height int) error

	// PollEvent waits up to timeout for the next input event
	// Returns ok=false on timeout; a zero timeout never blocks
	PollEvent(timeout time.Duration) (ev Event, ok bool, err error)

	// PostEvent injects a synthetic event
	PostEvent(Event)
}
