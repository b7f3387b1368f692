package snake

// Snapshot captures the complete game state for determinism testing and logging.
type Snapshot struct {
	Tick       uint64
	Outcome    Outcome
	Len        int
	HistoryLen uint64
	HeadX      int
	HeadY      int
	Facing     Direction
	AppleX     int
	AppleY     int
	Pending    int
}

// Snapshot returns the current game snapshot.
func (e *Engine) Snapshot() Snapshot {
	head := e.snake.Head()
	apple := e.apple.Position()
	return Snapshot{
		Tick:       e.ticks,
		Outcome:    e.outcome,
		Len:        e.snake.Len(),
		HistoryLen: e.snake.HistoryLen(),
		HeadX:      head.X,
		HeadY:      head.Y,
		Facing:     e.snake.Facing(),
		AppleX:     apple.X,
		AppleY:     apple.Y,
		Pending:    len(e.snake.pending),
	}
}
