// Package config provides YAML-based configuration loading and validation
// for the snake game.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid snake configuration")

// SnakeConfig contains all configuration for the snake game.
// The tick rate is fixed and deliberately absent.
type SnakeConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Snake  StartConfig  `yaml:"snake"`
	Input  InputConfig  `yaml:"input"`
	Glyphs GlyphsConfig `yaml:"glyphs"`
}

// BoardConfig defines the playing field.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// StartConfig defines where the snake starts.
type StartConfig struct {
	StartX int `yaml:"start_x"`
	StartY int `yaml:"start_y"`
}

// InputConfig defines keypress buffering.
type InputConfig struct {
	Buffer int `yaml:"buffer"`
}

// GlyphsConfig defines the characters used to draw a frame.
// Each value must be exactly one character.
type GlyphsConfig struct {
	Head   string `yaml:"head"`
	Body   string `yaml:"body"`
	Apple  string `yaml:"apple"`
	Border string `yaml:"border"`
}

// Validate checks the configuration before a game is started.
func (c SnakeConfig) Validate() error {
	if _, err := snake.NewBoard(c.Board.Width, c.Board.Height); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	// The starting snake occupies start, start+1 and start+2 rows.
	x, y := c.Snake.StartX, c.Snake.StartY
	if x < 0 || x >= c.Board.Width || y < 0 || y+2 >= c.Board.Height {
		return fmt.Errorf("%w: starting snake at (%d,%d) does not fit a %dx%d board",
			ErrInvalidConfig, x, y, c.Board.Width, c.Board.Height)
	}

	if c.Input.Buffer < 1 {
		return fmt.Errorf("%w: input buffer must be at least 1, got %d", ErrInvalidConfig, c.Input.Buffer)
	}

	glyphs := []struct {
		name, value string
	}{
		{"head", c.Glyphs.Head},
		{"body", c.Glyphs.Body},
		{"apple", c.Glyphs.Apple},
		{"border", c.Glyphs.Border},
	}
	for _, g := range glyphs {
		if utf8.RuneCountInString(g.value) != 1 {
			return fmt.Errorf("%w: glyph %s must be a single character, got %q", ErrInvalidConfig, g.name, g.value)
		}
	}
	return nil
}

// Setup converts the configuration into a game setup.
func (c SnakeConfig) Setup() snake.Setup {
	return snake.Setup{
		Width:  c.Board.Width,
		Height: c.Board.Height,
		Start:  core.Pos(c.Snake.StartX, c.Snake.StartY),
	}
}

// GlyphSet converts the configured glyphs. Call Validate first.
func (c SnakeConfig) GlyphSet() snake.Glyphs {
	first := func(s string) rune {
		r, _ := utf8.DecodeRuneInString(s)
		return r
	}
	return snake.Glyphs{
		Head:   first(c.Glyphs.Head),
		Body:   first(c.Glyphs.Body),
		Apple:  first(c.Glyphs.Apple),
		Border: first(c.Glyphs.Border),
	}
}
