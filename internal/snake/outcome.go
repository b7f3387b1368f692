package snake

// Outcome is the result of a tick.
type Outcome int

const (
	Continue Outcome = iota
	UserQuit
	SelfCollision
	OutOfBounds
	BoardFull
)

// Over reports whether the outcome ends the game.
func (o Outcome) Over() bool {
	return o != Continue
}

// String returns the termination reason surfaced to the caller.
func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case UserQuit:
		return "user quit"
	case SelfCollision:
		return "self-collision"
	case OutOfBounds:
		return "out of bounds"
	case BoardFull:
		return "board full"
	default:
		return "unknown"
	}
}

// Message returns the line shown to the player when the game ends.
func (o Outcome) Message() string {
	switch o {
	case UserQuit:
		return "User quit requested, game over!"
	case SelfCollision:
		return "Snake ate itself, game over!"
	case OutOfBounds:
		return "Snake hit stage bounds, game over!"
	case BoardFull:
		return "Board full, you win!"
	default:
		return ""
	}
}

// Result is reported after every tick.
type Result struct {
	Outcome Outcome
	Tick    uint64 // number of ticks the snake has moved
}
