package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/lane-racer/status"
)

// Engine hum pitch range in Hz, start speed to max speed
const (
	engineMinFreq = 55.0
	engineMaxFreq = 165.0
)

// EngineFreq maps a speed ratio in [0, 1] to the engine hum frequency
func EngineFreq(ratio float64) float64 {
	ratio = max(0, min(1, ratio))
	return engineMinFreq + (engineMaxFreq-engineMinFreq)*ratio
}

// EngineGenerator is an endless detuned sawtooth whose pitch follows the car speed
// Frequency is written by the game loop and read on the speaker goroutine
type EngineGenerator struct {
	sr     beep.SampleRate
	freq   status.AtomicFloat
	phaseA float64
	phaseB float64
}

// NewEngineGenerator creates an engine hum at idle pitch
func NewEngineGenerator(sr beep.SampleRate) *EngineGenerator {
	g := &EngineGenerator{sr: sr}
	g.freq.Set(engineMinFreq)
	return g
}

// SetSpeedRatio retunes the hum; safe from any goroutine
func (g *EngineGenerator) SetSpeedRatio(ratio float64) {
	g.freq.Set(EngineFreq(ratio))
}

// Freq returns the current hum frequency
func (g *EngineGenerator) Freq() float64 {
	return g.freq.Get()
}

func (g *EngineGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	freq := g.freq.Get()
	stepA := freq / float64(g.sr)
	stepB := freq * 1.01 / float64(g.sr) // Slight detune for a rougher tone

	for i := range samples {
		saw := (2*g.phaseA - 1) + (2*g.phaseB - 1)
		sample := 0.12 * saw

		samples[i][0] = sample
		samples[i][1] = sample

		g.phaseA += stepA
		g.phaseA -= math.Floor(g.phaseA)
		g.phaseB += stepB
		g.phaseB -= math.Floor(g.phaseB)
	}
	return len(samples), true
}

func (g *EngineGenerator) Err() error {
	return nil
}

// CrashGenerator generates a noise burst over a low rumble with exponential decay
type CrashGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

// NewCrashGenerator creates a crash sound generator
func NewCrashGenerator(sr beep.SampleRate, seed int64) *CrashGenerator {
	return &CrashGenerator{
		sr:   sr,
		seed: seed,
	}
}

func (g *CrashGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * 6)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		rumble := 0.4 * math.Sin(2*math.Pi*50*t)

		sample := envelope * (0.35*noise + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *CrashGenerator) Err() error {
	return nil
}

// crashSound is a bounded crash effect
func crashSound(sr beep.SampleRate) beep.Streamer {
	return beep.Take(sr.N(400*time.Millisecond), NewCrashGenerator(sr, time.Now().UnixNano()))
}
