package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/frame"
	"github.com/plus3/blockfall/logging"
	"github.com/plus3/blockfall/session"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "blockfall-tui:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "Path to a yaml config file. Environment variables are used when empty.")
	logPath := flag.String("log", "blockfall-tui.log", "File to write logs to. The terminal is reserved for the game.")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("unable to open log file: %w", err)
	}
	defer logFile.Close()
	logger := logging.New(logFile, cfg.LogLevel)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("unable to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("unable to init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	s := session.New(cfg, session.WithLogger(logger))
	input := newTermInput()

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				input.handle(ev)
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}()

	scheduler := frame.NewScheduler()
	scheduler.Register(&session.TickSystem{Session: s, Input: input})
	scheduler.Register(&session.RenderSystem{Session: s, Renderer: &termRenderer{screen: screen}})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("starting", "frame-rate", cfg.FrameRate)
	scheduler.Run(ctx, cfg.FrameInterval())

	stats := scheduler.GetStats()
	logger.Info("stopped", "frames", stats.Frames, "losses", s.Losses())
	return nil
}
