package snake

import (
	"errors"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrEmptySnake is returned when a snake is constructed without segments.
var ErrEmptySnake = errors.New("snake: at least one segment is required")

// compactAfter is the number of dead history entries tolerated before the
// history buffer is compacted.
const compactAfter = 64

// growth is an eaten apple waiting for the tail to reach it.
type growth struct {
	pos core.Position
	seq uint64 // history index of the head when the apple was eaten
}

// Snake is the moving body. Every tick appends the new head to the history;
// only the last Len() entries are alive. Growth is delayed: an eaten apple is
// queued and the body lengthens once the tail reaches the place where it was
// eaten.
type Snake struct {
	history []core.Position // retained suffix of the full history, head last
	dropped uint64          // entries compacted away from the front of history
	length  int
	facing  Direction
	pending []growth
}

// NewSnake creates a snake from its segments, ordered tail first and head last.
func NewSnake(segments []core.Position, facing Direction) (*Snake, error) {
	if len(segments) == 0 {
		return nil, ErrEmptySnake
	}
	history := make([]core.Position, len(segments))
	copy(history, segments)
	return &Snake{
		history: history,
		length:  len(segments),
		facing:  facing,
	}, nil
}

// DefaultSnake creates the three-segment starting snake with its tail at
// start, stretched upward and facing Up.
func DefaultSnake(start core.Position) *Snake {
	up := Up.Vector()
	s, _ := NewSnake([]core.Position{
		start,
		start.Add(up),
		start.Add(up).Add(up),
	}, Up)
	return s
}

// Head returns the most recent position.
func (s *Snake) Head() core.Position {
	return s.history[len(s.history)-1]
}

// Len returns the number of alive segments.
func (s *Snake) Len() int {
	return s.length
}

// HistoryLen returns how many positions the snake has ever occupied,
// including entries already compacted away.
func (s *Snake) HistoryLen() uint64 {
	return s.dropped + uint64(len(s.history))
}

// Facing returns the current direction.
func (s *Snake) Facing() Direction {
	return s.facing
}

// ProcessInput turns the snake toward d if d is orthogonal to the current
// direction. Any other request is ignored.
func (s *Snake) ProcessInput(d Direction) {
	if s.facing.CanTurnTo(d) {
		s.facing = d
	}
}

// Tick advances the head one cell and runs the growth check.
func (s *Snake) Tick() {
	s.history = append(s.history, s.Head().Add(s.facing.Vector()))
	s.growIfDue()
	s.compact()
}

// ConsumeApple queues growth at the apple's position. The body does not
// lengthen until the tail reaches that position.
func (s *Snake) ConsumeApple(a Apple) {
	s.pending = append(s.pending, growth{
		pos: a.Position(),
		seq: s.HistoryLen() - 1,
	})
}

// growIfDue extends the alive window by one when the entry about to leave it
// is the oldest pending growth position.
func (s *Snake) growIfDue() {
	if len(s.pending) == 0 {
		return
	}
	idx := len(s.history) - s.length - 1
	if idx < 0 {
		return
	}
	next := s.pending[0]
	// The candidate must not predate the meal: an earlier visit to the same
	// cell is not the place the apple was eaten.
	if s.history[idx] == next.pos && s.dropped+uint64(idx) >= next.seq {
		s.length++
		s.pending = s.pending[1:]
	}
}

// compact drops history entries that can no longer become alive. The entry
// just before the alive window is kept for the growth check.
func (s *Snake) compact() {
	keep := s.length + 1
	dead := len(s.history) - keep
	if dead < compactAfter || dead < s.length {
		return
	}
	retained := make([]core.Position, keep, 2*keep)
	copy(retained, s.history[dead:])
	s.history = retained
	s.dropped += uint64(dead)
}

// Body returns the alive segments, head first.
func (s *Snake) Body() []core.Position {
	body := make([]core.Position, 0, s.length)
	for i := len(s.history) - 1; i >= len(s.history)-s.length; i-- {
		body = append(body, s.history[i])
	}
	return body
}

// Occupies reports whether any alive segment lies at p.
func (s *Snake) Occupies(p core.Position) bool {
	for i := len(s.history) - s.length; i < len(s.history); i++ {
		if s.history[i] == p {
			return true
		}
	}
	return false
}

// BitesItself reports whether the head coincides with another alive segment.
func (s *Snake) BitesItself() bool {
	head := s.Head()
	for i := len(s.history) - s.length; i < len(s.history)-1; i++ {
		if s.history[i] == head {
			return true
		}
	}
	return false
}

// Pending returns the positions of eaten apples the tail has not reached
// yet, oldest first.
func (s *Snake) Pending() []core.Position {
	out := make([]core.Position, len(s.pending))
	for i, g := range s.pending {
		out[i] = g.pos
	}
	return out
}

// String lists the alive segments head first.
func (s *Snake) String() string {
	body := s.Body()
	parts := make([]string, len(body))
	for i, p := range body {
		parts[i] = p.String()
	}
	return strings.Join(parts, ", ")
}
