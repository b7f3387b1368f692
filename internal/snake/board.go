package snake

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrInvalidBoard is returned when a board is constructed with a
// non-positive extent.
var ErrInvalidBoard = errors.New("snake: board extents must be positive")

// Board is the fixed playing field. Legal positions are [0, width) x [0, height).
type Board struct {
	width  int
	height int
}

// NewBoard creates a board with the given extents.
func NewBoard(width, height int) (Board, error) {
	if width < 1 || height < 1 {
		return Board{}, fmt.Errorf("%w: got %dx%d", ErrInvalidBoard, width, height)
	}
	return Board{width: width, height: height}, nil
}

// Width returns the number of columns.
func (b Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b Board) Height() int {
	return b.height
}

// Cells returns the total number of cells on the board.
func (b Board) Cells() int {
	return b.width * b.height
}

// Contains reports whether p lies inside the board.
func (b Board) Contains(p core.Position) bool {
	return p.X >= 0 && p.X < b.width && p.Y >= 0 && p.Y < b.height
}
