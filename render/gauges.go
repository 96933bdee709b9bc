package render

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/lixenwraith/tamagotchi/pet"
)

// GaugeEaseSeconds is how long a gauge takes to settle on a new value
const GaugeEaseSeconds = 0.5

// easedValue chases a target with a fresh tween whenever the target moves
type easedValue struct {
	current float32
	target  float32
	tween   *gween.Tween
}

func newEasedValue(v float32) easedValue {
	return easedValue{current: v, target: v}
}

func (e *easedValue) update(target, dt float32) {
	if target != e.target {
		e.target = target
		e.tween = gween.New(e.current, target, GaugeEaseSeconds, ease.OutQuad)
	}
	if e.tween == nil {
		return
	}
	val, done := e.tween.Update(dt)
	e.current = val
	if done {
		e.current = e.target
		e.tween = nil
	}
}

// MoodGauges holds the eased display values for the status bars
// Text lines always show exact state; only the bars animate
type MoodGauges struct {
	hunger    easedValue
	happiness easedValue
}

// NewMoodGauges starts the gauges settled on the state's current values
func NewMoodGauges(s *pet.State) *MoodGauges {
	return &MoodGauges{
		hunger:    newEasedValue(float32(s.Hunger)),
		happiness: newEasedValue(float32(s.Happiness)),
	}
}

// Update advances the easing by dt seconds toward the state's values
func (g *MoodGauges) Update(s *pet.State, dt float32) {
	g.hunger.update(float32(s.Hunger), dt)
	g.happiness.update(float32(s.Happiness), dt)
}

// Settled reports whether both bars have reached their targets
func (g *MoodGauges) Settled() bool {
	return g.hunger.tween == nil && g.happiness.tween == nil
}

// Hunger returns the displayed hunger fraction (0.0-1.0)
func (g *MoodGauges) Hunger() float64 {
	return float64(g.hunger.current) / pet.MaxStat
}

// Happiness returns the displayed happiness fraction (0.0-1.0)
func (g *MoodGauges) Happiness() float64 {
	return float64(g.happiness.current) / pet.MaxStat
}
