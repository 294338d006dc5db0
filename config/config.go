// Package config holds the startup configuration shared by the playfield,
// pieces and session. A Config is built once and never modified.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/plus3/blockfall/piece"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Width         int           `yaml:"width" env:"BLOCKFALL_WIDTH" env-default:"10"`
	Height        int           `yaml:"height" env:"BLOCKFALL_HEIGHT" env-default:"24"`
	QueueCapacity int           `yaml:"queue-capacity" env:"BLOCKFALL_QUEUE_CAPACITY" env-default:"14"`
	VisibleQueue  int           `yaml:"visible-queue" env:"BLOCKFALL_VISIBLE_QUEUE" env-default:"5"`
	FallInterval  time.Duration `yaml:"fall-interval" env:"BLOCKFALL_FALL_INTERVAL" env-default:"400ms"`
	FrameRate     int           `yaml:"frame-rate" env:"BLOCKFALL_FRAME_RATE" env-default:"30"`
	Seed          uint64        `yaml:"seed" env:"BLOCKFALL_SEED" env-default:"0"`
	LogLevel      string        `yaml:"log-level" env:"BLOCKFALL_LOG_LEVEL" env-default:"info"`
	Window        Window        `yaml:"window"`
}

// Window is the size of the graphical front-end's window in pixels.
type Window struct {
	Width  int `yaml:"width" env:"BLOCKFALL_WINDOW_WIDTH" env-default:"500"`
	Height int `yaml:"height" env:"BLOCKFALL_WINDOW_HEIGHT" env-default:"760"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Width:         10,
		Height:        24,
		QueueCapacity: 14,
		VisibleQueue:  5,
		FallInterval:  400 * time.Millisecond,
		FrameRate:     30,
		LogLevel:      "info",
		Window: Window{
			Width:  500,
			Height: 760,
		},
	}
}

// Load reads the configuration from the yaml file at path, or from the
// environment alone when path is empty, and validates it.
func Load(path string) (Config, error) {
	var cfg Config

	var err error
	if path == "" {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = cleanenv.ReadConfig(path, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("unable to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration describes a playable session.
func (c Config) Validate() error {
	switch {
	case c.Width < 4 || c.Height < 4:
		return fmt.Errorf("%w: playfield %dx%d is smaller than 4x4", ErrInvalid, c.Width, c.Height)
	case c.QueueCapacity < 1:
		return fmt.Errorf("%w: queue capacity %d", ErrInvalid, c.QueueCapacity)
	case c.QueueCapacity > piece.MaxQueueCapacity:
		return fmt.Errorf("%w: queue capacity %d exceeds %d", ErrInvalid, c.QueueCapacity, piece.MaxQueueCapacity)
	case c.VisibleQueue < 0 || c.VisibleQueue > c.QueueCapacity:
		return fmt.Errorf("%w: visible queue %d outside [0,%d]", ErrInvalid, c.VisibleQueue, c.QueueCapacity)
	case c.FallInterval <= 0:
		return fmt.Errorf("%w: fall interval %s", ErrInvalid, c.FallInterval)
	case c.FrameRate <= 0:
		return fmt.Errorf("%w: frame rate %d", ErrInvalid, c.FrameRate)
	}
	return nil
}

// FrameInterval is the time between two ticks.
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FrameRate)
}
