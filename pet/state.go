// Package pet holds the simulated pet's state and the two functions that mutate it:
// Apply for discrete input actions and Tick for the passage of simulated time.
//
// Both are deterministic; nothing here reads the clock or the terminal.
package pet

import (
	"math"

	"github.com/lixenwraith/tamagotchi/canvas"
)

const (
	// PetMargin reserves room for the pet's rendered radius at the far edges
	PetMargin = 5

	// PetRadius is the rendered circle radius in world units
	PetRadius = 5.0

	MaxStat = 100
	MinStat = 0

	// Tick periods for the periodic effects
	HungerPeriod    = 60
	HappinessPeriod = 120
	MarkerPeriod    = 180
)

// Drift is the per-tick movement vector
var Drift = Vec2{X: 1.0, Y: -0.5}

// Vec2 is a world-space position
type Vec2 struct {
	X, Y float64
}

// Rect is an integer rectangle in world units
type Rect struct {
	X, Y          int
	Width, Height int
}

func (r Rect) Left() int   { return r.X }
func (r Rect) Right() int  { return r.X + r.Width }
func (r Rect) Top() int    { return r.Y }
func (r Rect) Bottom() int { return r.Y + r.Height }

// State is the single mutable application state
type State struct {
	Position   Vec2
	Playground Rect
	Hunger     int
	Happiness  int
	Ticks      uint64
	Marker     canvas.Marker
}

// DefaultPlayground is the fixed play area
var DefaultPlayground = Rect{X: 10, Y: 10, Width: 200, Height: 100}

// NewState returns the startup state: pet in the middle, fed and happy
func NewState() *State {
	return &State{
		Position:   Vec2{X: 100, Y: 50},
		Playground: DefaultPlayground,
		Hunger:     MinStat,
		Happiness:  MaxStat,
		Ticks:      0,
		Marker:     canvas.MarkerDot,
	}
}

// XRange returns the inclusive range the pet's x may occupy
func (s *State) XRange() (lo, hi float64) {
	return float64(s.Playground.Left()), float64(s.Playground.Right() - PetMargin)
}

// YRange returns the inclusive range the pet's y may occupy
func (s *State) YRange() (lo, hi float64) {
	return float64(s.Playground.Top()), float64(s.Playground.Bottom() - PetMargin)
}

// InBounds reports whether the position invariant holds
func (s *State) InBounds() bool {
	xlo, xhi := s.XRange()
	ylo, yhi := s.YRange()
	return s.Position.X >= xlo && s.Position.X <= xhi &&
		s.Position.Y >= ylo && s.Position.Y <= yhi
}

// moveBy applies a delta and clamps both axes into the pet bounds
func (s *State) moveBy(dx, dy float64) {
	xlo, xhi := s.XRange()
	ylo, yhi := s.YRange()
	s.Position.X = clamp(s.Position.X+dx, xlo, xhi)
	s.Position.Y = clamp(s.Position.Y+dy, ylo, yhi)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
