// Package config provides YAML-based configuration loading for the sliding puzzle.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-slide/internal/puzzle"
)

// SlideConfig contains all configuration for the sliding puzzle.
type SlideConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Shuffle ShuffleConfig `yaml:"shuffle"`
	Clock   ClockConfig   `yaml:"clock"`
	UI      UIConfig      `yaml:"ui"`
}

// BoardConfig defines the starting board.
type BoardConfig struct {
	Size int `yaml:"size"` // 3, 4 or 5
}

// ShuffleConfig selects how starting boards are generated.
type ShuffleConfig struct {
	Strategy  ShuffleStrategy `yaml:"strategy"`
	WalkSteps int             `yaml:"walk_steps"` // Slides applied by the walk strategy
}

// ClockConfig defines simulation timing.
type ClockConfig struct {
	TickRate int `yaml:"tick_rate"` // Simulation ticks per second
}

// UIConfig defines presentation toggles.
type UIConfig struct {
	ShowHints  bool `yaml:"show_hints"`  // Highlight tiles that can slide
	TileColors bool `yaml:"tile_colors"` // Color tiles by value
}

// ShuffleStrategy names a shuffle algorithm.
type ShuffleStrategy string

const (
	ShuffleParity ShuffleStrategy = "parity"
	ShuffleWalk   ShuffleStrategy = "walk"
)

// Validate checks that all values are usable.
func (c SlideConfig) Validate() error {
	if !puzzle.ValidSize(c.Board.Size) {
		return fmt.Errorf("config: board.size %d: %w", c.Board.Size, puzzle.ErrInvalidSize)
	}

	switch c.Shuffle.Strategy {
	case ShuffleParity:
	case ShuffleWalk:
		if c.Shuffle.WalkSteps < 1 {
			return fmt.Errorf("config: shuffle.walk_steps must be positive, got %d", c.Shuffle.WalkSteps)
		}
	default:
		return fmt.Errorf("config: unknown shuffle.strategy %q", c.Shuffle.Strategy)
	}

	if c.Clock.TickRate < 1 {
		return fmt.Errorf("config: clock.tick_rate must be positive, got %d", c.Clock.TickRate)
	}
	return nil
}
