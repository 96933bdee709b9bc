package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Cue identifies a short sound tied to a pet event
type Cue int

const (
	CueHunger Cue = iota // Rising chirp
	CueSad               // Falling low tone
	CueMarker            // Short blip

	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueHunger:
		return "hunger"
	case CueSad:
		return "sad"
	case CueMarker:
		return "marker"
	default:
		return "unknown"
	}
}

// toneShape describes a linear frequency sweep
type toneShape struct {
	startHz  float64
	endHz    float64
	duration time.Duration
	gain     float64
}

var cueTones = map[Cue]toneShape{
	CueHunger: {startHz: 660, endHz: 990, duration: 120 * time.Millisecond, gain: 0.25},
	CueSad:    {startHz: 220, endHz: 150, duration: 250 * time.Millisecond, gain: 0.3},
	CueMarker: {startHz: 1200, endHz: 1200, duration: 40 * time.Millisecond, gain: 0.15},
}

// ToneGenerator emits a finite sine sweep with a short attack/release envelope
type ToneGenerator struct {
	sr      beep.SampleRate
	shape   toneShape
	pos     int
	samples int
	phase   float64
}

// NewToneGenerator creates a generator for the given cue
func NewToneGenerator(sr beep.SampleRate, cue Cue) *ToneGenerator {
	shape, ok := cueTones[cue]
	if !ok {
		shape = cueTones[CueMarker]
	}
	return &ToneGenerator{
		sr:      sr,
		shape:   shape,
		samples: sr.N(shape.duration),
	}
}

// Len returns the total sample count
func (g *ToneGenerator) Len() int {
	return g.samples
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}

	fade := g.sr.N(5 * time.Millisecond)
	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}

		progress := float64(g.pos) / float64(g.samples)
		freq := g.shape.startHz + (g.shape.endHz-g.shape.startHz)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		env := 1.0
		if g.pos < fade {
			env = float64(g.pos) / float64(fade)
		} else if rem := g.samples - g.pos; rem < fade {
			env = float64(rem) / float64(fade)
		}

		sample := g.shape.gain * env * math.Sin(g.phase)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// withVolume scales a streamer linearly; zero or below is silent
// math.Log2(0) is -Inf so silence is handled separately
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
