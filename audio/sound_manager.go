// Package audio plays short synthesized cues for pet events.
// Every method is a no-op until Initialize succeeds, so the game runs without a sound device.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/tamagotchi/pet"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager mixes cue sounds into a single speaker stream
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	plays       [cueCount]int
}

// NewSoundManager creates a new sound manager at the given volume (0.0-1.0)
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: min(max(volume, 0), 1),
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup drops all queued sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker close; clearing the mixer silences output
	sm.initialized = false
}

// Enabled reports whether the speaker is live
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// SetVolume adjusts volume for subsequent cues
func (sm *SoundManager) SetVolume(v float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.volume = min(max(v, 0), 1)
}

// Play queues a cue
func (sm *SoundManager) Play(cue Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	if cue >= 0 && cue < cueCount {
		sm.plays[cue]++
	}
	streamer := withVolume(NewToneGenerator(sampleRate, cue), sm.volume)

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// Plays returns how many times cue has been queued since creation
func (sm *SoundManager) Plays(cue Cue) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if cue < 0 || cue >= cueCount {
		return 0
	}
	return sm.plays[cue]
}

// PlayHunger plays the hunger chirp
func (sm *SoundManager) PlayHunger() { sm.Play(CueHunger) }

// PlaySad plays the low unhappy tone
func (sm *SoundManager) PlaySad() { sm.Play(CueSad) }

// PlayMarker plays the marker-change blip
func (sm *SoundManager) PlayMarker() { sm.Play(CueMarker) }

// HandleTick plays cues for the events reported by a single pet tick
func (sm *SoundManager) HandleTick(ev pet.TickEvents) {
	for _, c := range CuesFor(ev) {
		sm.Play(c)
	}
}

// CuesFor maps tick events to cues in a stable order
func CuesFor(ev pet.TickEvents) []Cue {
	var cues []Cue
	if ev.Has(pet.HungerRose) {
		cues = append(cues, CueHunger)
	}
	if ev.Has(pet.HappinessFell) {
		cues = append(cues, CueSad)
	}
	if ev.Has(pet.MarkerChanged) {
		cues = append(cues, CueMarker)
	}
	return cues
}
