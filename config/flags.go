package config

import (
	"flag"
	"io"

	"github.com/pkg/errors"
)

// Parse reads command-line args, loads the optional --config file and applies explicit flags on top
func Parse(args []string, output io.Writer) (*Config, error) {
	fs := flag.NewFlagSet("lane-racer", flag.ContinueOnError)
	fs.SetOutput(output)

	var (
		path  = fs.String("config", "", "Path to a TOML configuration file")
		debug = fs.Bool("debug", false, "Write a debug log to logs/ and show the metrics overlay")
		seed  = fs.Uint64("seed", 0, "Track generator seed, 0 picks one from the clock")
		mute  = fs.Bool("mute", false, "Start with audio disabled")
		color = fs.String("color", "auto", "Color mode: auto, truecolor, 256")
	)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, errors.Errorf("unexpected argument %q", fs.Arg(0))
	}

	cfg := Default()
	if *path != "" {
		loaded, err := LoadFile(*path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	// Only flags given on the command line override the file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Game.Debug = *debug
		case "seed":
			cfg.Game.Seed = *seed
		case "mute":
			cfg.Audio.Enabled = !*mute
		case "color":
			cfg.Game.ColorMode = *color
		}
	})

	return cfg, nil
}
