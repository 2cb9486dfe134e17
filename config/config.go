package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/lixenwraith/lane-racer/input"
	"github.com/lixenwraith/lane-racer/track"
)

// hudRows is the number of terminal rows reserved above the track
const hudRows = 1

// Config is the complete game configuration, decoded from TOML and overridden by flags
type Config struct {
	Track  TrackConfig         `toml:"track"`
	Pacing PacingConfig        `toml:"pacing"`
	Game   GameConfig          `toml:"game"`
	Audio  AudioConfig         `toml:"audio"`
	Keys   map[string][]string `toml:"keys"` // action name → key names
}

// TrackConfig is the playfield geometry
type TrackConfig struct {
	Columns      int `toml:"columns"`
	Width        int `toml:"width"`
	Rows         int `toml:"rows"` // 0 fits the terminal height
	NearRow      int `toml:"near_row"`
	BiasMinSteps int `toml:"bias_min_steps"`
	BiasMaxSteps int `toml:"bias_max_steps"`
}

// PacingConfig is the speed curve
type PacingConfig struct {
	StartSpeed   float64 `toml:"start_speed"`
	MaxSpeed     float64 `toml:"max_speed"`
	Acceleration float64 `toml:"acceleration"`
}

// GameConfig holds shell settings
type GameConfig struct {
	Seed          uint64        `toml:"seed"` // 0 seeds from the clock
	FrameInterval time.Duration `toml:"frame_interval"`
	Debug         bool          `toml:"debug"`
	ColorMode     string        `toml:"color"` // auto, truecolor, 256
}

// AudioConfig controls the sound manager
type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

// Default returns the built-in configuration
func Default() *Config {
	tc := track.DefaultConfig()
	return &Config{
		Track: TrackConfig{
			Columns:      tc.Columns,
			Width:        tc.TrackWidth,
			NearRow:      tc.NearRow,
			BiasMinSteps: tc.BiasMinSteps,
			BiasMaxSteps: tc.BiasMaxSteps,
		},
		Pacing: PacingConfig{
			StartSpeed:   tc.StartSpeed,
			MaxSpeed:     tc.MaxSpeed,
			Acceleration: tc.Acceleration,
		},
		Game: GameConfig{
			FrameInterval: 16 * time.Millisecond,
			ColorMode:     "auto",
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.3,
		},
	}
}

// LoadFile decodes path over the defaults; unknown keys are an error
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "decode config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}

	return cfg, nil
}

// Validate checks the shell settings and the track geometry for a terminal of termRows
func (c *Config) Validate(termRows int) error {
	if c.Game.FrameInterval <= 0 {
		return errors.Errorf("frame interval %v must be positive", c.Game.FrameInterval)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return errors.Errorf("audio volume %g outside [0, 1]", c.Audio.Volume)
	}
	switch c.Game.ColorMode {
	case "auto", "truecolor", "256":
	default:
		return errors.Errorf("unknown color mode %q", c.Game.ColorMode)
	}
	if _, err := c.KeyTable(); err != nil {
		return err
	}
	return errors.Wrap(c.TrackConfig(termRows).Validate(), "track")
}

// TrackConfig converts to the simulator configuration
// Rows of 0 takes the terminal height minus the HUD
func (c *Config) TrackConfig(termRows int) track.Config {
	rows := c.Track.Rows
	if rows == 0 {
		rows = termRows - hudRows
	}
	return track.Config{
		Columns:      c.Track.Columns,
		TrackWidth:   c.Track.Width,
		Rows:         rows,
		NearRow:      c.Track.NearRow,
		StartSpeed:   c.Pacing.StartSpeed,
		MaxSpeed:     c.Pacing.MaxSpeed,
		Acceleration: c.Pacing.Acceleration,
		BiasMinSteps: c.Track.BiasMinSteps,
		BiasMaxSteps: c.Track.BiasMaxSteps,
	}
}

// KeyTable returns the default bindings merged with the [keys] section
func (c *Config) KeyTable() (*input.KeyTable, error) {
	base := input.DefaultKeyTable()
	if len(c.Keys) == 0 {
		return base, nil
	}
	override, err := input.LoadKeyConfig(c.Keys)
	if err != nil {
		return nil, errors.Wrap(err, "keys")
	}
	return input.MergeKeyTable(base, override), nil
}
