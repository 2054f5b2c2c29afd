package config

import (
	_ "embed"
)

//go:embed defaults/slide.yaml
var defaultSlideYAML []byte

// DefaultSlideConfig returns the default sliding puzzle configuration.
func DefaultSlideConfig() SlideConfig {
	return SlideConfig{
		Board: BoardConfig{
			Size: 4,
		},
		Shuffle: ShuffleConfig{
			Strategy:  ShuffleParity,
			WalkSteps: 200,
		},
		Clock: ClockConfig{
			TickRate: 60,
		},
		UI: UIConfig{
			ShowHints:  false,
			TileColors: true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSlideYAML
}
