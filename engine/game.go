// Package engine runs the fixed-rate application loop.
//
// One iteration renders a frame, waits for input no longer than the time left
// in the current tick, dispatches at most one event, then ticks the pet if the
// interval has elapsed. Rendering and input never wait on each other beyond
// that single timed poll.
package engine

import (
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/tamagotchi/input"
	"github.com/lixenwraith/tamagotchi/pet"
	"github.com/lixenwraith/tamagotchi/render"
	"github.com/lixenwraith/tamagotchi/terminal"
)

// DefaultTickInterval is the simulation step
const DefaultTickInterval = 16 * time.Millisecond

// TickListener reacts to per-tick events (audio cues)
type TickListener interface {
	HandleTick(pet.TickEvents)
}

// GameConfig wires the loop's collaborators; zero fields take defaults
type GameConfig struct {
	TickInterval time.Duration
	Keymap       *input.Keymap
	Render       render.Options
	Clock        Clock
	Listener     TickListener // Optional
}

// Game owns the state and drives it from terminal input and the clock
type Game struct {
	state    *pet.State
	term     terminal.Terminal
	keymap   *input.Keymap
	renderer *render.Renderer
	frame    *render.Frame
	gauges   *render.MoodGauges
	clock    Clock
	listener TickListener
	tick     time.Duration

	lastTick  time.Time
	lastFrame time.Time
	frames    uint64
}

// NewGame creates a game around an initialized terminal
func NewGame(term terminal.Terminal, state *pet.State, cfg GameConfig) *Game {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = DefaultTickInterval
	}
	if cfg.Keymap == nil {
		cfg.Keymap = input.DefaultKeymap()
	}
	if cfg.Clock == nil {
		cfg.Clock = SystemClock{}
	}

	w, h := term.Size()
	now := cfg.Clock.Now()
	return &Game{
		state:     state,
		term:      term,
		keymap:    cfg.Keymap,
		renderer:  render.NewRenderer(cfg.Render),
		frame:     render.NewFrame(w, h),
		gauges:    render.NewMoodGauges(state),
		clock:     cfg.Clock,
		listener:  cfg.Listener,
		tick:      cfg.TickInterval,
		lastTick:  now,
		lastFrame: now,
	}
}

// State returns the live pet state
func (g *Game) State() *pet.State {
	return g.state
}

// Frames returns the number of frames drawn
func (g *Game) Frames() uint64 {
	return g.frames
}

// Run loops until a quit action (nil) or a terminal failure (wrapped error)
func (g *Game) Run() error {
	log.Printf("game: started, tick=%v", g.tick)
	for {
		quit, err := g.Step()
		if err != nil {
			log.Printf("game: stopped on error after %d ticks: %v", g.state.Ticks, err)
			return err
		}
		if quit {
			log.Printf("game: quit after %d ticks", g.state.Ticks)
			return nil
		}
	}
}

// Step runs one loop iteration
func (g *Game) Step() (quit bool, err error) {
	if err := g.draw(); err != nil {
		return false, fmt.Errorf("render: %w", err)
	}

	timeout := g.tick - g.clock.Now().Sub(g.lastTick)
	if timeout < 0 {
		timeout = 0
	}

	ev, ok, err := g.term.PollEvent(timeout)
	if err != nil {
		return false, fmt.Errorf("poll input: %w", err)
	}
	if ok && g.handleEvent(ev) {
		return true, nil
	}

	if g.clock.Now().Sub(g.lastTick) >= g.tick {
		g.advance()
		g.lastTick = g.clock.Now()
	}
	return false, nil
}

// draw renders the current state into the frame and flushes it
func (g *Game) draw() error {
	now := g.clock.Now()
	dt := float32(now.Sub(g.lastFrame).Seconds())
	g.lastFrame = now
	g.gauges.Update(g.state, dt)

	w, h := g.term.Size()
	if fw, fh := g.frame.Size(); fw != w || fh != h {
		g.frame.Resize(w, h)
	}

	g.renderer.Draw(g.frame, g.state, g.gauges)
	g.frames++
	return g.frame.Flush(g.term)
}

// handleEvent dispatches one event, reporting whether the loop must end
func (g *Game) handleEvent(ev terminal.Event) bool {
	switch ev.Type {
	case terminal.EventKey:
		return g.state.Apply(g.keymap.Resolve(ev))
	case terminal.EventResize:
		g.frame.Resize(ev.Width, ev.Height)
	}
	return false
}

// advance runs one pet tick and forwards its events
func (g *Game) advance() {
	ev := g.state.Tick()
	if ev == 0 {
		return
	}

	if ev.Has(pet.HungerRose) {
		log.Printf("game: tick %d hunger=%d", g.state.Ticks, g.state.Hunger)
	}
	if ev.Has(pet.HappinessFell) {
		log.Printf("game: tick %d happiness=%d", g.state.Ticks, g.state.Happiness)
	}
	if ev.Has(pet.MarkerChanged) {
		log.Printf("game: tick %d marker=%s", g.state.Ticks, g.state.Marker)
	}

	if g.listener != nil {
		g.listener.HandleTick(ev)
	}
}
