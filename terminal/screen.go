package terminal

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// screenTerm implements Terminal on top of a tcell.Screen
type screenTerm struct {
	screen tcell.Screen

	events chan Event
	stopCh chan struct{}
	doneCh chan struct{}

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// stopSignal unblocks the reader goroutine during Fini
type stopSignal struct{}

// New creates a Terminal backed by the process tty
func New() (Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewWithScreen(s), nil
}

// NewWithScreen wraps an existing screen, e.g. tcell.NewSimulationScreen
func NewWithScreen(s tcell.Screen) Terminal {
	return &screenTerm{
		screen: s,
		events: make(chan Event, 256),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

// Init enters raw mode and starts the reader goroutine
func (t *screenTerm) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}

	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	t.screen.SetStyle(tcell.StyleDefault)
	t.screen.HideCursor()
	t.screen.Clear()

	go t.readLoop()

	t.initialized = true
	return nil
}

// readLoop forwards tcell events until stop; closes events on exit
func (t *screenTerm) readLoop() {
	defer close(t.doneCh)
	defer close(t.events)

	for {
		raw := t.screen.PollEvent()

		select {
		case <-t.stopCh:
			return
		default:
		}

		if raw == nil {
			// Screen finalized underneath us
			return
		}

		ev, ok := translate(raw)
		if !ok {
			continue
		}

		select {
		case t.events <- ev:
		case <-t.stopCh:
			return
		}
	}
}

// translate converts a tcell event, ok=false for events the app ignores
func translate(raw tcell.Event) (Event, bool) {
	switch e := raw.(type) {
	case *tcell.EventKey:
		return keyEvent(e), true
	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}, true
	case *tcell.EventInterrupt:
		if posted, ok := e.Data().(Event); ok {
			return posted, true
		}
	case *tcell.EventError:
		return Event{Type: EventError, Err: e}, true
	}
	return Event{}, false
}

// Fini stops the reader and restores the terminal
func (t *screenTerm) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	close(t.stopCh)
	// Wake PollEvent so the reader observes stopCh
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(stopSignal{}))
	<-t.doneCh

	t.screen.Fini()
	t.finalized = true
}

// Size returns current terminal dimensions
func (t *screenTerm) Size() (int, int) {
	return t.screen.Size()
}

// Flush draws the cell buffer and shows it
// Frames sized for a stale terminal size are dropped
func (t *screenTerm) Flush(cells []Cell, width, height int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return ErrClosed
	}
	if len(cells) < width*height {
		return fmt.Errorf("flush: %d cells for %dx%d frame", len(cells), width, height)
	}

	currW, currH := t.screen.Size()
	if currW != width || currH != height {
		return nil
	}

	for y := 0; y < height; y++ {
		row := cells[y*width : (y+1)*width]
		for x, c := range row {
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			t.screen.SetContent(x, y, r, nil, c.Style())
		}
	}
	t.screen.Show()
	return nil
}

// PollEvent waits on the event channel for at most timeout
func (t *screenTerm) PollEvent(timeout time.Duration) (Event, bool, error) {
	if timeout <= 0 {
		select {
		case ev, open := <-t.events:
			return received(ev, open)
		default:
			return Event{}, false, nil
		}
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev, open := <-t.events:
		return received(ev, open)
	case <-timer.C:
		return Event{}, false, nil
	}
}

func received(ev Event, open bool) (Event, bool, error) {
	if !open || ev.Type == EventClosed {
		return Event{}, false, ErrClosed
	}
	if ev.Type == EventError {
		return Event{}, false, fmt.Errorf("terminal event: %w", ev.Err)
	}
	return ev, true, nil
}

// PostEvent injects a synthetic event through the screen's queue
func (t *screenTerm) PostEvent(ev Event) {
	// Queue full drops the event
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(ev))
}
