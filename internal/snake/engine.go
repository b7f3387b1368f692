// Package snake implements the snake simulation: a bounded board, a snake
// whose body grows behind the place an apple was eaten, apple placement and
// the per-tick game-over checks.
//
// The package has no terminal dependencies. The platform layer feeds
// keypresses through an InputSource and draws frames with Render.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// InputSource delivers keypresses without blocking.
// core.InputQueue satisfies it.
type InputSource interface {
	Poll() (rune, bool)
}

// Setup describes a new game.
type Setup struct {
	Width  int
	Height int
	Start  core.Position // tail of the starting snake
}

// DefaultSetup returns the reference 80x20 board with the snake's tail at (5,3).
func DefaultSetup() Setup {
	return Setup{Width: 80, Height: 20, Start: core.Pos(5, 3)}
}

// Engine runs one game. It owns the board, the snake and the apple and is
// driven by a single goroutine calling Tick.
type Engine struct {
	board   Board
	snake   *Snake
	apple   Apple
	input   InputSource
	rng     *rand.Rand
	ticks   uint64
	outcome Outcome

	applePlaced bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithApple places the first apple at p instead of choosing it at random.
// The caller is responsible for p being a sensible cell.
func WithApple(p core.Position) Option {
	return func(e *Engine) {
		e.apple = NewApple(p)
		e.applePlaced = true
	}
}

// NewEngine creates a game on board with snake s. A nil input means no
// keypresses ever arrive; a nil rng is seeded with 1.
func NewEngine(board Board, s *Snake, input InputSource, rng *rand.Rand, opts ...Option) (*Engine, error) {
	if s == nil {
		return nil, ErrEmptySnake
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	e := &Engine{
		board: board,
		snake: s,
		input: input,
		rng:   rng,
	}

	for _, opt := range opts {
		opt(e)
	}

	if !e.applePlaced {
		apple, err := PlaceApple(board, s, rng)
		if err != nil {
			return nil, fmt.Errorf("snake: cannot place first apple: %w", err)
		}
		e.apple = apple
	}
	return e, nil
}

// New creates a game from setup with a snake in its default shape and an RNG
// seeded with seed.
func New(setup Setup, input InputSource, seed int64) (*Engine, error) {
	board, err := NewBoard(setup.Width, setup.Height)
	if err != nil {
		return nil, err
	}
	s := DefaultSnake(setup.Start)
	for _, p := range s.Body() {
		if !board.Contains(p) {
			return nil, fmt.Errorf("snake: starting segment %v is outside the %dx%d board", p, board.Width(), board.Height())
		}
	}
	return NewEngine(board, s, input, rand.New(rand.NewSource(seed)))
}

// Tick runs one simulation step. Once the game is over, Tick returns the
// final result without advancing.
func (e *Engine) Tick() Result {
	if e.outcome.Over() {
		return e.result()
	}

	if r, ok := e.poll(); ok {
		if cmd, dir, known := ParseKey(r); known {
			if cmd == CommandQuit {
				e.outcome = UserQuit
				return e.result()
			}
			e.snake.ProcessInput(dir)
		}
	}

	e.snake.Tick()
	e.ticks++

	head := e.snake.Head()
	full := false
	if head == e.apple.Position() {
		e.snake.ConsumeApple(e.apple)
		next, err := PlaceApple(e.board, e.snake, e.rng)
		if err != nil {
			full = true
		} else {
			e.apple = next
		}
	}

	switch {
	case e.snake.BitesItself():
		e.outcome = SelfCollision
	case !e.board.Contains(head):
		e.outcome = OutOfBounds
	case full:
		e.outcome = BoardFull
	}
	return e.result()
}

func (e *Engine) poll() (rune, bool) {
	if e.input == nil {
		return 0, false
	}
	return e.input.Poll()
}

func (e *Engine) result() Result {
	return Result{Outcome: e.outcome, Tick: e.ticks}
}

// Board returns the playing field.
func (e *Engine) Board() Board {
	return e.board
}

// Snake returns the live snake.
func (e *Engine) Snake() *Snake {
	return e.snake
}

// Apple returns the current apple.
func (e *Engine) Apple() Apple {
	return e.apple
}

// Outcome returns the current outcome; Continue while the game runs.
func (e *Engine) Outcome() Outcome {
	return e.outcome
}

// Ticks returns how many times the snake has moved.
func (e *Engine) Ticks() uint64 {
	return e.ticks
}
