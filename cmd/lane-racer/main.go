package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/lane-racer/audio"
	"github.com/lixenwraith/lane-racer/config"
	"github.com/lixenwraith/lane-racer/core"
	"github.com/lixenwraith/lane-racer/engine"
	"github.com/lixenwraith/lane-racer/game"
	"github.com/lixenwraith/lane-racer/render"
	"github.com/lixenwraith/lane-racer/status"
	"github.com/lixenwraith/lane-racer/track"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "lane-racer: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Parse(args, os.Stderr)
	if err != nil {
		return err
	}

	if logFile := setupLogging(cfg.Game.Debug, logDir); logFile != nil {
		defer logFile.Close()
	}
	applyColorMode(cfg.Game.ColorMode)

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "initialize terminal")
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	core.RegisterTerminal(screen)
	defer core.RegisterTerminal(nil)

	screen.HideCursor()
	_, termRows := screen.Size()
	if err := cfg.Validate(termRows); err != nil {
		return err
	}

	clock := engine.NewMonotonicTimeProvider()
	sim, err := track.NewSimulator(cfg.TrackConfig(termRows), track.NewRandomSource(cfg.Game.Seed), clock)
	if err != nil {
		return err
	}
	keys, err := cfg.KeyTable()
	if err != nil {
		return err
	}

	// Audio is optional; a missing device leaves the manager silent
	sound := audio.NewSoundManager(cfg.Audio.Volume)
	if err := sound.Initialize(); err != nil {
		log.Printf("audio initialization failed: %v (continuing without audio)", err)
	}
	defer sound.Cleanup()
	if !cfg.Audio.Enabled {
		sound.ToggleMute()
	}

	reg := status.NewRegistry()
	session := game.NewSession(sim, keys, render.NewRenderer(screen), sound, reg, cfg.Game.Debug)
	loop := engine.NewLoop(screen, session, clock, cfg.Game.FrameInterval, reg)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigs)
	core.Go(func() {
		if sig, ok := <-sigs; ok {
			log.Printf("received %v, stopping", sig)
			loop.Stop()
		}
	})

	log.Printf("lane-racer started: %dx%d track, seed %d", cfg.Track.Columns, cfg.TrackConfig(termRows).Rows, cfg.Game.Seed)
	loop.Run()
	log.Printf("lane-racer stopped: distance %d, best %d", sim.Distance(), reg.Ints.Get("race.best_distance").Load())
	return nil
}

// applyColorMode steers tcell's color detection through its environment variables
func applyColorMode(mode string) {
	switch mode {
	case "256":
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case "truecolor":
		os.Setenv("COLORTERM", "truecolor")
	}
}
