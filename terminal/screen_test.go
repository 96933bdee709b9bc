package terminal

import (
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func newSimTerminal(t *testing.T, w, h int) (Terminal, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	term := NewWithScreen(sim)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	sim.SetSize(w, h)
	t.Cleanup(term.Fini)
	return term, sim
}

// nextKey skips resize events emitted by the simulation screen
func nextKey(t *testing.T, term Terminal) Event {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		ev, ok, err := term.PollEvent(100 * time.Millisecond)
		if err != nil {
			t.Fatalf("PollEvent error: %v", err)
		}
		if ok && ev.Type == EventKey {
			return ev
		}
	}
	t.Fatal("no key event received")
	return Event{}
}

func TestPollEventRune(t *testing.T) {
	term, sim := newSimTerminal(t, 20, 5)

	sim.InjectKey(tcell.KeyRune, 'j', tcell.ModNone)

	ev := nextKey(t, term)
	if ev.Key != KeyRune || ev.Rune != 'j' {
		t.Errorf("Expected rune 'j', got key=%d rune=%q", ev.Key, ev.Rune)
	}
}

func TestPollEventSpecialKeys(t *testing.T) {
	term, sim := newSimTerminal(t, 20, 5)

	tests := []struct {
		in   tcell.Key
		want Key
	}{
		{tcell.KeyUp, KeyUp},
		{tcell.KeyDown, KeyDown},
		{tcell.KeyLeft, KeyLeft},
		{tcell.KeyRight, KeyRight},
		{tcell.KeyEscape, KeyEscape},
		{tcell.KeyCtrlC, KeyCtrlC},
	}

	for _, tt := range tests {
		sim.InjectKey(tt.in, 0, tcell.ModNone)
		ev := nextKey(t, term)
		if ev.Key != tt.want {
			t.Errorf("tcell key %v: expected %d, got %d", tt.in, tt.want, ev.Key)
		}
	}
}

func TestPollEventTimeout(t *testing.T) {
	term, _ := newSimTerminal(t, 20, 5)

	// Drain startup resize events
	for {
		_, ok, err := term.PollEvent(20 * time.Millisecond)
		if err != nil {
			t.Fatalf("PollEvent error: %v", err)
		}
		if !ok {
			break
		}
	}

	start := time.Now()
	_, ok, err := term.PollEvent(30 * time.Millisecond)
	if err != nil {
		t.Fatalf("PollEvent error: %v", err)
	}
	if ok {
		t.Error("Expected timeout with no pending input")
	}
	if elapsed := time.Since(start); elapsed < 25*time.Millisecond {
		t.Errorf("PollEvent returned after %v, expected to wait for the timeout", elapsed)
	}

	// Zero timeout never blocks
	_, ok, err = term.PollEvent(0)
	if err != nil || ok {
		t.Errorf("Zero timeout: expected (false, nil), got (%v, %v)", ok, err)
	}
}

func TestPostEvent(t *testing.T) {
	term, _ := newSimTerminal(t, 20, 5)

	term.PostEvent(RuneEvent('q'))

	ev := nextKey(t, term)
	if ev.Rune != 'q' {
		t.Errorf("Expected posted 'q', got %q", ev.Rune)
	}
}

func TestFlushWritesCells(t *testing.T) {
	term, sim := newSimTerminal(t, 4, 2)

	cells := make([]Cell, 4*2)
	cells[0] = Cell{Rune: 'A', Fg: RGBYellow}
	cells[5] = Cell{Rune: 'B', Fg: RGBWhite, Attrs: AttrBold}

	if err := term.Flush(cells, 4, 2); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	contents, w, _ := sim.GetContents()
	if w != 4 {
		t.Fatalf("Expected width 4, got %d", w)
	}
	if got := contents[0].Runes; len(got) == 0 || got[0] != 'A' {
		t.Errorf("Cell (0,0): expected 'A', got %q", got)
	}
	if got := contents[5].Runes; len(got) == 0 || got[0] != 'B' {
		t.Errorf("Cell (1,1): expected 'B', got %q", got)
	}
	// Empty cells render as spaces
	if got := contents[1].Runes; len(got) == 0 || got[0] != ' ' {
		t.Errorf("Cell (1,0): expected space, got %q", got)
	}
}

func TestFlushDropsStaleFrame(t *testing.T) {
	term, sim := newSimTerminal(t, 4, 2)

	cells := make([]Cell, 3*2)
	cells[0] = Cell{Rune: 'X'}
	if err := term.Flush(cells, 3, 2); err != nil {
		t.Fatalf("Stale frame should be dropped silently, got %v", err)
	}

	contents, _, _ := sim.GetContents()
	if got := contents[0].Runes; len(got) > 0 && got[0] == 'X' {
		t.Error("Stale frame was drawn")
	}
}

func TestFlushShortBuffer(t *testing.T) {
	term, _ := newSimTerminal(t, 4, 2)

	if err := term.Flush(make([]Cell, 3), 4, 2); err == nil {
		t.Error("Expected error for undersized buffer")
	}
}

func TestFiniClosesEvents(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	term := NewWithScreen(sim)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	term.Fini()
	term.Fini() // Idempotent

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		_, _, err := term.PollEvent(50 * time.Millisecond)
		if errors.Is(err, ErrClosed) {
			return
		}
	}
	t.Error("Expected ErrClosed after Fini")
}

func TestFlushAfterFini(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	term := NewWithScreen(sim)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	term.Fini()

	if err := term.Flush(make([]Cell, 1), 1, 1); !errors.Is(err, ErrClosed) {
		t.Errorf("Expected ErrClosed, got %v", err)
	}
}

func TestKeyByName(t *testing.T) {
	tests := []struct {
		name string
		want Key
	}{
		{"up", KeyUp},
		{"down", KeyDown},
		{"left", KeyLeft},
		{"right", KeyRight},
		{"esc", KeyEscape},
		{"ctrl_c", KeyCtrlC},
		{"page_down", KeyPageDown},
	}
	for _, tt := range tests {
		got, ok := KeyByName(tt.name)
		if !ok || got != tt.want {
			t.Errorf("KeyByName(%q) = %d, %v; want %d", tt.name, got, ok, tt.want)
		}
	}

	if _, ok := KeyByName("hyper"); ok {
		t.Error("Expected unknown name to fail")
	}
	if KeyName(KeyUp) != "up" {
		t.Errorf("KeyName(KeyUp) = %q", KeyName(KeyUp))
	}
}
