package track

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every configuration precondition failure
var ErrInvalidConfig = errors.New("invalid track configuration")

// Config holds the playfield geometry and pacing parameters of one simulator
type Config struct {
	Columns    int // Playfield width in cells
	TrackWidth int // Constant drivable width of every generated segment
	Rows       int // Visible-row capacity of the track
	NearRow    int // Segment index the car occupies and collides against

	StartSpeed   float64 // Steps per second after reset
	MaxSpeed     float64 // Speed ceiling
	Acceleration float64 // Speed gained per step

	BiasMinSteps int // Shortest drift run, inclusive
	BiasMaxSteps int // Longest drift run, inclusive
}

// DefaultConfig returns the classic 80x60 layout with a 20 cell lane
func DefaultConfig() Config {
	return Config{
		Columns:      80,
		TrackWidth:   20,
		Rows:         60,
		NearRow:      1,
		StartSpeed:   20.0,
		MaxSpeed:     84.0,
		Acceleration: 0.02,
		BiasMinSteps: 10,
		BiasMaxSteps: 40,
	}
}

// Validate reports the first violated precondition, wrapped in ErrInvalidConfig
func (c Config) Validate() error {
	switch {
	case c.TrackWidth < 1:
		return fmt.Errorf("%w: track width %d must be positive", ErrInvalidConfig, c.TrackWidth)
	case c.TrackWidth > c.Columns-2:
		// Lane must keep one column of clearance on both sides
		return fmt.Errorf("%w: track width %d does not fit %d columns", ErrInvalidConfig, c.TrackWidth, c.Columns)
	case c.Rows < 2:
		return fmt.Errorf("%w: rows %d, need at least 2", ErrInvalidConfig, c.Rows)
	case c.NearRow < 0 || c.NearRow >= c.Rows:
		return fmt.Errorf("%w: near row %d outside [0, %d)", ErrInvalidConfig, c.NearRow, c.Rows)
	case c.StartSpeed <= 0:
		return fmt.Errorf("%w: start speed %g must be positive", ErrInvalidConfig, c.StartSpeed)
	case c.MaxSpeed < c.StartSpeed:
		return fmt.Errorf("%w: max speed %g below start speed %g", ErrInvalidConfig, c.MaxSpeed, c.StartSpeed)
	case c.Acceleration < 0:
		return fmt.Errorf("%w: negative acceleration %g", ErrInvalidConfig, c.Acceleration)
	case c.BiasMinSteps < 1:
		return fmt.Errorf("%w: bias min steps %d must be positive", ErrInvalidConfig, c.BiasMinSteps)
	case c.BiasMaxSteps < c.BiasMinSteps:
		return fmt.Errorf("%w: bias max steps %d below min %d", ErrInvalidConfig, c.BiasMaxSteps, c.BiasMinSteps)
	}
	return nil
}

// initialOffset is the left bound of the straight starting track
func (c Config) initialOffset() int {
	return c.Columns/2 - c.TrackWidth/2
}

// initialColumn is the car column after reset
func (c Config) initialColumn() int {
	return c.Columns / 2
}
