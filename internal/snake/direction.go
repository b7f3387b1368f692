package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Direction is the axis-aligned direction the head moves on the next tick.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// vectors holds the unit step for each direction. Board y grows upward.
var vectors = [...]core.Position{
	Up:    {X: 0, Y: 1},
	Down:  {X: 0, Y: -1},
	Left:  {X: -1, Y: 0},
	Right: {X: 1, Y: 0},
}

// turns lists, for each facing direction, the directions it may switch to.
// Only the two orthogonal directions are legal.
var turns = [...][2]Direction{
	Up:    {Left, Right},
	Down:  {Left, Right},
	Left:  {Up, Down},
	Right: {Up, Down},
}

// Vector returns the unit step for d.
func (d Direction) Vector() core.Position {
	return vectors[d]
}

// Opposite returns the reverse of d.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// CanTurnTo reports whether a snake facing d may switch to next.
func (d Direction) CanTurnTo(next Direction) bool {
	for _, t := range turns[d] {
		if t == next {
			return true
		}
	}
	return false
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Command is a recognized keypress.
type Command int

const (
	CommandTurn Command = iota
	CommandQuit
)

// Key bindings for the game.
const (
	KeyUp    = 'w'
	KeyLeft  = 'a'
	KeyDown  = 's'
	KeyRight = 'd'
	KeyQuit  = 'q'
)

// ParseKey maps a keypress to a command. For CommandTurn the requested
// direction is returned as well. Unrecognized keys report ok == false.
func ParseKey(r rune) (cmd Command, dir Direction, ok bool) {
	switch r {
	case KeyUp:
		return CommandTurn, Up, true
	case KeyLeft:
		return CommandTurn, Left, true
	case KeyDown:
		return CommandTurn, Down, true
	case KeyRight:
		return CommandTurn, Right, true
	case KeyQuit:
		return CommandQuit, 0, true
	}
	return 0, 0, false
}
