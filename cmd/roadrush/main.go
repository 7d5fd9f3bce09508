package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"roadrush/internal/audio/beepout"
	"roadrush/internal/audio/otoout"
	"roadrush/internal/config"
	"roadrush/internal/desktop"
	"roadrush/internal/game"
	"roadrush/internal/logging"
	"roadrush/internal/terminal"
)

func main() {
	var (
		configDir string
		frontend  string
		seed      uint64
		mute      bool
	)
	flag.StringVar(&configDir, "config", ".", "directory holding "+config.FileName)
	flag.StringVar(&frontend, "frontend", "", "desktop or terminal (overrides config)")
	flag.Uint64Var(&seed, "seed", 0, "spawn seed, 0 picks one from the clock")
	flag.BoolVar(&mute, "mute", false, "disable audio")
	flag.Parse()

	if err := run(configDir, frontend, seed, mute); err != nil {
		fmt.Fprintf(os.Stderr, "roadrush: %v\n", err)
		os.Exit(1)
	}
}

func run(configDir, frontend string, seed uint64, mute bool) error {
	cfg, err := config.Load(configDir)
	if err != nil {
		return err
	}
	if frontend != "" {
		cfg.Frontend = frontend
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	if mute {
		cfg.Audio.Enabled = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.Init(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logging.Sync()
	log.Infow("starting", "frontend", cfg.Frontend, "seed", cfg.Seed, "audio", cfg.Audio.Enabled)

	session := game.NewSession(cfg.Settings(), nil, log)

	cues := openAudio(cfg, log)
	defer func() {
		if err := cues.Close(); err != nil {
			log.Warnw("close audio", "error", err)
		}
	}()
	game.AttachAudio(session.Bus, cues)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cfg.Frontend {
	case config.FrontendTerminal:
		err = terminal.Run(ctx, session, terminal.Options{
			FrameMillis:   cfg.Terminal.FrameMillis,
			KeyHoldFrames: cfg.Terminal.KeyHoldFrames,
		}, log)
	default:
		err = desktop.Run(ctx, session, desktop.Options{
			Title: cfg.Window.Title,
			Scale: cfg.Window.Scale,
		}, log)
	}
	if err != nil {
		log.Errorw("host stopped", "frontend", cfg.Frontend, "error", err)
		return fmt.Errorf("%s host: %w", cfg.Frontend, err)
	}
	log.Info("bye")
	return nil
}

// openAudio picks oto for the desktop and the beep speaker for the terminal.
// Any failure falls back to silence.
func openAudio(cfg *config.Config, log *zap.SugaredLogger) game.CuePlayer {
	if !cfg.Audio.Enabled {
		return game.NopCues{}
	}
	opts := cfg.AudioOptions()
	var (
		cues game.CuePlayer
		err  error
	)
	switch cfg.Frontend {
	case config.FrontendTerminal:
		cues, err = beepout.New(opts, log)
	default:
		cues, err = otoout.New(opts, log)
	}
	if err != nil {
		log.Warnw("audio unavailable, continuing without sound", "error", err)
		return game.NopCues{}
	}
	return cues
}
