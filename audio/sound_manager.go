package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager manages all game audio
// Every method is a no-op until Initialize succeeds, so the game runs without a sound device
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	master      *effects.Volume
	engine      *EngineGenerator
	engineCtrl  *beep.Ctrl
	initialized bool
	muted       bool
}

// NewSoundManager creates a sound manager at linear volume in [0, 1]
func NewSoundManager(volume float64) *SoundManager {
	mixer := &beep.Mixer{}
	sm := &SoundManager{
		mixer:  mixer,
		engine: NewEngineGenerator(sampleRate),
		master: &effects.Volume{
			Streamer: mixer,
			Base:     2,
			Volume:   linearToExp(volume),
			Silent:   volume <= 0,
		},
	}
	sm.engineCtrl = &beep.Ctrl{Streamer: sm.engine, Paused: true}
	return sm
}

// linearToExp converts linear gain to the base-2 exponent effects.Volume expects
func linearToExp(volume float64) float64 {
	if volume <= 0 {
		return 0
	}
	return math.Log2(volume)
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	sm.mixer.Add(sm.engineCtrl)
	speaker.Play(sm.master)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.engineCtrl.Paused = true
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Clear()
	sm.initialized = false
}

// SetEngine runs or idles the engine hum and tunes it to the speed ratio
func (sm *SoundManager) SetEngine(running bool, speedRatio float64) {
	sm.engine.SetSpeedRatio(speedRatio)

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.engineCtrl.Paused == !running {
		return
	}
	speaker.Lock()
	sm.engineCtrl.Paused = !running
	speaker.Unlock()
}

// PlayCrash plays the crash effect once
func (sm *SoundManager) PlayCrash() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(crashSound(sampleRate))
	speaker.Unlock()
}

// ToggleMute flips the master mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	if sm.initialized {
		speaker.Lock()
		sm.master.Silent = sm.muted
		speaker.Unlock()
	} else {
		sm.master.Silent = sm.muted
	}
	return sm.muted
}

// Muted reports whether the player hears nothing, either by choice or because audio is unavailable
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted || !sm.initialized
}

// EngineFreq returns the current hum frequency
func (sm *SoundManager) EngineFreq() float64 {
	return sm.engine.Freq()
}
