package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/frame"
	"github.com/plus3/blockfall/logging"
	"github.com/plus3/blockfall/session"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "blockfall:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "Path to a yaml config file. Environment variables are used when empty.")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [width height]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if err := windowSize(&cfg, flag.Args()); err != nil {
		return err
	}

	logger := logging.New(os.Stderr, cfg.LogLevel)
	slog.SetDefault(logger)

	s := session.New(cfg, session.WithLogger(logger))
	backend := debugui_ebiten.New("blockfall", cfg.Window.Width, cfg.Window.Height)

	scheduler := frame.NewScheduler()
	input := &debugui.InputState{}
	scheduler.Register(&session.TickSystem{
		Session: s,
		Input:   newKeyboard(input),
	})
	perf := debugui.NewPerformanceStats(scheduler, 120)
	overlay := scheduler.Register(&debugui.System{
		Windows: []debugui.Window{perf, debugui.NewSessionInspector(s)},
		Input:   input,
	})
	scheduler.SetEnabled(overlay, false)

	game := &Game{
		session:   s,
		scheduler: scheduler,
		backend:   backend,
		overlay:   overlay,
		renderer:  &boardRenderer{},
		dt:        cfg.FrameInterval(),
	}

	ebiten.SetTPS(cfg.FrameRate)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logger.Info("starting", "window", fmt.Sprintf("%dx%d", cfg.Window.Width, cfg.Window.Height))
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("unable to run game: %w", err)
	}
	logger.Info("stopped", "losses", s.Losses())
	return nil
}

// windowSize applies the optional `width height` positional arguments.
func windowSize(cfg *config.Config, args []string) error {
	switch len(args) {
	case 0:
		return nil
	case 2:
	default:
		return fmt.Errorf("expected width and height, got %d arguments", len(args))
	}

	w, err := strconv.Atoi(args[0])
	if err != nil || w <= 0 {
		return fmt.Errorf("invalid window width %q", args[0])
	}
	h, err := strconv.Atoi(args[1])
	if err != nil || h <= 0 {
		return fmt.Errorf("invalid window height %q", args[1])
	}
	cfg.Window.Width, cfg.Window.Height = w, h
	return nil
}
