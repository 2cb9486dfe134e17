package track

import (
	"fmt"
	"time"
)

// Clock supplies the current wall-clock time to input handlers
type Clock interface {
	Now() time.Time
}

// Simulator owns the track, the car and the pacing clock of one race
// Not safe for concurrent use; a single goroutine drives Tick and the input handlers
type Simulator struct {
	cfg   Config
	clock Clock

	gen   *Generator
	track *Track
	drift Drift
	kerb  int

	state     State
	column    int
	direction Direction

	speed    float64
	distance int
	elapsed  time.Duration
	nextDue  time.Time
}

// NewSimulator validates cfg and builds a simulator in the Paused state
// A nil rng falls back to a wall-clock seeded source
func NewSimulator(cfg Config, rng RandomSource, clock Clock) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if clock == nil {
		return nil, fmt.Errorf("%w: nil clock", ErrInvalidConfig)
	}
	if rng == nil {
		rng = NewRandomSource(0)
	}

	s := &Simulator{
		cfg:   cfg,
		clock: clock,
		gen:   NewGenerator(cfg, rng),
		track: NewTrack(cfg.Rows),
	}
	s.reset()
	return s, nil
}

// reset restores the straight starting track and zeroes the run
func (s *Simulator) reset() {
	offset := s.cfg.initialOffset()

	s.track.Reset()
	for range s.cfg.Rows {
		s.track.Push(Segment{Left: offset, Right: offset + s.cfg.TrackWidth})
	}
	s.drift = Drift{Offset: offset}
	s.kerb = 0

	s.state = StatePaused
	s.column = s.cfg.initialColumn()
	s.direction = DirNeutral

	s.speed = s.cfg.StartSpeed
	s.distance = 0
	s.elapsed = 0
	s.nextDue = s.clock.Now()
}

// Tick runs every step that has come due by now and returns how many succeeded
// A crash ends the catch-up loop immediately
func (s *Simulator) Tick(now time.Time) int {
	steps := 0
	for s.state == StateRunning && !now.Before(s.nextDue) {
		if !s.updateCar() {
			break
		}
		s.advanceTrack()

		s.distance++
		s.speed = s.speedAt(s.distance)

		interval := time.Duration(float64(time.Second) / s.speed)
		s.nextDue = s.nextDue.Add(interval)
		s.elapsed += interval
		steps++
	}
	return steps
}

// advanceTrack appends the next generated segment, flipping the kerb phase on scroll
func (s *Simulator) advanceTrack() {
	var seg Segment
	s.drift, seg = s.gen.Advance(s.drift)
	if s.track.Push(seg) {
		s.kerb = 1 - s.kerb
	}
}

// speedAt is the clamped linear speed after distance steps
func (s *Simulator) speedAt(distance int) float64 {
	return min(s.cfg.MaxSpeed, s.cfg.StartSpeed+float64(distance)*s.cfg.Acceleration)
}

// OnDirection sets the steering direction; from Paused it also starts the race
// Ignored while Crashed, only OnConfirm leaves that state
func (s *Simulator) OnDirection(d Direction) {
	if s.state == StateCrashed {
		return
	}
	s.direction = d
	if s.state == StatePaused {
		s.resume()
	}
}

// OnConfirm cycles Running -> Paused -> Running, and resets a crashed race to Paused
func (s *Simulator) OnConfirm() {
	switch s.state {
	case StateCrashed:
		s.reset()
	case StatePaused:
		s.resume()
	case StateRunning:
		s.state = StatePaused
	}
}

// resume enters Running with the pacing clock rescheduled to now
func (s *Simulator) resume() {
	s.state = StateRunning
	s.nextDue = s.clock.Now()
}

// State returns the current lifecycle state
func (s *Simulator) State() State {
	return s.state
}

// Distance returns the number of steps driven since the last reset
func (s *Simulator) Distance() int {
	return s.distance
}

// Speed returns the current speed in steps per second
func (s *Simulator) Speed() float64 {
	return s.speed
}

// NextDue returns when the next simulation step becomes due
func (s *Simulator) NextDue() time.Time {
	return s.nextDue
}

// Config returns the configuration the simulator was built with
func (s *Simulator) Config() Config {
	return s.cfg
}

// Snapshot copies the renderer-visible state
func (s *Simulator) Snapshot() Snapshot {
	return Snapshot{
		Segments:  s.track.AppendTo(make([]Segment, 0, s.track.Len())),
		Column:    s.column,
		Direction: s.direction,
		State:     s.state,
		Speed:     s.speed,
		Distance:  s.distance,
		Elapsed:   s.elapsed,
		KerbPhase: s.kerb,
		Columns:   s.cfg.Columns,
		Rows:      s.cfg.Rows,
		NearRow:   s.cfg.NearRow,
	}
}
