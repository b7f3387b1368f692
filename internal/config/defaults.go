package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:  80,
			Height: 20,
		},
		Snake: StartConfig{
			StartX: 5,
			StartY: 3,
		},
		Input: InputConfig{
			Buffer: 8,
		},
		Glyphs: GlyphsConfig{
			Head:   "@",
			Body:   "o",
			Apple:  "b",
			Border: "*",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
