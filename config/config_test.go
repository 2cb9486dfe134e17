package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lane-racer/input"
	"github.com/lixenwraith/lane-racer/track"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lane-racer.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultMatchesTrackDefaults(t *testing.T) {
	cfg := Default()
	tc := cfg.TrackConfig(61)

	want := track.DefaultConfig()
	if tc != want {
		t.Errorf("TrackConfig(61) = %+v, want %+v", tc, want)
	}
	if err := cfg.Validate(61); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[track]
columns = 60
width = 16
rows = 30

[pacing]
start_speed = 10.0
acceleration = 0.05

[game]
seed = 99
frame_interval = "33ms"

[audio]
enabled = false

[keys]
left = ["a"]
right = ["d"]
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	tc := cfg.TrackConfig(24)
	if tc.Columns != 60 || tc.TrackWidth != 16 || tc.Rows != 30 {
		t.Errorf("geometry = %+v", tc)
	}
	if tc.StartSpeed != 10 || tc.Acceleration != 0.05 || tc.MaxSpeed != 84 {
		t.Errorf("pacing = %+v", tc)
	}
	if cfg.Game.Seed != 99 || cfg.Game.FrameInterval != 33*time.Millisecond {
		t.Errorf("game = %+v", cfg.Game)
	}
	if cfg.Audio.Enabled {
		t.Error("audio should be disabled")
	}

	kt, err := cfg.KeyTable()
	if err != nil {
		t.Fatalf("KeyTable: %v", err)
	}
	if kt.Runes['a'] != input.IntentLeft || kt.SpecialKeys[tcell.KeyLeft] != input.IntentLeft {
		t.Error("custom and default left bindings should both resolve")
	}
}

func TestLoadFileRejectsUnknownKey(t *testing.T) {
	path := writeConfig(t, "[track]\nlanes = 3\n")
	_, err := LoadFile(path)
	if err == nil || !strings.Contains(err.Error(), "lanes") {
		t.Fatalf("err = %v, want unknown key error naming lanes", err)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want wrapped ErrNotExist", err)
	}
}

func TestLoadFileSyntaxError(t *testing.T) {
	path := writeConfig(t, "[track\ncolumns = 1\n")
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		trackErr bool
		termRows int
	}{
		{"terminal too short", func(*Config) {}, true, 2},
		{"width too large", func(c *Config) { c.Track.Width = 79 }, true, 40},
		{"bad frame interval", func(c *Config) { c.Game.FrameInterval = 0 }, false, 40},
		{"bad volume", func(c *Config) { c.Audio.Volume = 1.5 }, false, 40},
		{"bad color", func(c *Config) { c.Game.ColorMode = "sepia" }, false, 40},
		{"bad key", func(c *Config) { c.Keys = map[string][]string{"warp": {"w"}} }, false, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate(tt.termRows)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.Is(err, track.ErrInvalidConfig); got != tt.trackErr {
				t.Errorf("errors.Is(ErrInvalidConfig) = %v, want %v (%v)", got, tt.trackErr, err)
			}
		})
	}
}

func TestParseFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "[game]\nseed = 5\ndebug = false\n")

	cfg, err := Parse([]string{"--config", path, "--debug", "--mute", "--color", "256"}, io.Discard)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !cfg.Game.Debug {
		t.Error("--debug not applied")
	}
	if cfg.Game.Seed != 5 {
		t.Errorf("seed = %d, file value should survive when flag absent", cfg.Game.Seed)
	}
	if cfg.Audio.Enabled {
		t.Error("--mute not applied")
	}
	if cfg.Game.ColorMode != "256" {
		t.Errorf("color = %q", cfg.Game.ColorMode)
	}
}

func TestParseSeedFlag(t *testing.T) {
	cfg, err := Parse([]string{"--seed", "1234"}, io.Discard)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Game.Seed != 1234 {
		t.Errorf("seed = %d", cfg.Game.Seed)
	}
	if !cfg.Audio.Enabled {
		t.Error("audio default changed without --mute")
	}
}

func TestParseRejectsStrayArgs(t *testing.T) {
	if _, err := Parse([]string{"extra"}, io.Discard); err == nil {
		t.Error("expected error for positional argument")
	}
	if _, err := Parse([]string{"--nope"}, io.Discard); err == nil {
		t.Error("expected error for unknown flag")
	}
}
