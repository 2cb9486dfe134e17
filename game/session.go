package game

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lane-racer/input"
	"github.com/lixenwraith/lane-racer/render"
	"github.com/lixenwraith/lane-racer/status"
	"github.com/lixenwraith/lane-racer/track"
)

// burstLogThreshold is the catch-up step count above which a frame is logged as stalled
const burstLogThreshold = 10

// Drawer renders frames; *render.Renderer satisfies it
type Drawer interface {
	Draw(snap track.Snapshot, hud render.HUD)
	Sync()
}

// Sound receives race audio cues; *audio.SoundManager satisfies it
type Sound interface {
	SetEngine(running bool, speedRatio float64)
	PlayCrash()
	ToggleMute() bool
	Muted() bool
}

// Session binds one simulator to input, rendering, audio and metrics
// All methods run on the loop goroutine
type Session struct {
	sim    *track.Simulator
	keys   *input.KeyTable
	drawer Drawer
	sound  Sound
	reg    *status.Registry
	debug  bool

	lastState track.State

	statSteps    *atomic.Int64
	statCrashes  *atomic.Int64
	statDistance *atomic.Int64
	statBest     *atomic.Int64
	statBurst    *status.AtomicFloat
	statSpeed    *status.AtomicFloat
	statState    *status.AtomicString
}

// NewSession creates a session; debug starts with the metrics overlay visible
func NewSession(sim *track.Simulator, keys *input.KeyTable, drawer Drawer, sound Sound, reg *status.Registry, debug bool) *Session {
	s := &Session{
		sim:       sim,
		keys:      keys,
		drawer:    drawer,
		sound:     sound,
		reg:       reg,
		debug:     debug,
		lastState: sim.State(),

		statSteps:    reg.Ints.Get("race.steps"),
		statCrashes:  reg.Ints.Get("race.crashes"),
		statDistance: reg.Ints.Get("race.distance"),
		statBest:     reg.Ints.Get("race.best_distance"),
		statBurst:    reg.Floats.Get("race.peak_catchup"),
		statSpeed:    reg.Floats.Get("race.speed"),
		statState:    reg.Strings.Get("race.state"),
	}
	s.statState.Store(s.lastState.String())
	return s
}

// HandleEvent processes one terminal event and returns false to quit
func (s *Session) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return s.HandleIntent(s.keys.Resolve(ev))
	case *tcell.EventResize:
		s.drawer.Sync()
	}
	return true
}

// HandleIntent applies a decoded key action and returns false to quit
func (s *Session) HandleIntent(intent input.Intent) bool {
	switch intent {
	case input.IntentQuit:
		log.Printf("quit at distance %d", s.sim.Distance())
		return false
	case input.IntentLeft:
		s.sim.OnDirection(track.DirLeft)
	case input.IntentRight:
		s.sim.OnDirection(track.DirRight)
	case input.IntentNeutral:
		s.sim.OnDirection(track.DirNeutral)
	case input.IntentConfirm:
		s.sim.OnConfirm()
	case input.IntentToggleMute:
		log.Printf("audio muted: %v", s.sound.ToggleMute())
	case input.IntentToggleDebug:
		s.debug = !s.debug
	}
	s.observeState()
	return true
}

// Frame runs due simulation steps at now, then publishes metrics, cues audio and draws
func (s *Session) Frame(now time.Time) {
	steps := s.sim.Tick(now)
	if steps > burstLogThreshold {
		log.Printf("catch-up burst of %d steps", steps)
	}
	s.statSteps.Add(int64(steps))
	s.statBurst.Max(float64(steps))

	s.observeState()

	snap := s.sim.Snapshot()
	ratio := s.speedRatio(snap.Speed)

	s.statDistance.Store(int64(snap.Distance))
	s.statSpeed.Set(snap.SpeedKMH())
	if int64(snap.Distance) > s.statBest.Load() {
		s.statBest.Store(int64(snap.Distance))
	}

	s.sound.SetEngine(snap.State == track.StateRunning, ratio)

	hud := render.HUD{
		SpeedRatio: ratio,
		Muted:      s.sound.Muted(),
	}
	if s.debug {
		hud.Debug = s.reg.Lines()
	}
	s.drawer.Draw(snap, hud)
}

// observeState reacts to lifecycle transitions caused by input or ticks
func (s *Session) observeState() {
	state := s.sim.State()
	if state == s.lastState {
		return
	}

	log.Printf("race %v -> %v at distance %d, speed %.2f", s.lastState, state, s.sim.Distance(), s.sim.Speed())
	if state == track.StateCrashed {
		s.statCrashes.Add(1)
		s.sound.PlayCrash()
	}
	s.lastState = state
	s.statState.Store(state.String())
}

// speedRatio places speed between the configured start and max, 0..1
func (s *Session) speedRatio(speed float64) float64 {
	cfg := s.sim.Config()
	span := cfg.MaxSpeed - cfg.StartSpeed
	if span <= 0 {
		return 0
	}
	return (speed - cfg.StartSpeed) / span
}
