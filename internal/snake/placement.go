package snake

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrBoardFull is returned when no free cell is left for an apple.
var ErrBoardFull = errors.New("snake: no free cell left for an apple")

// PlaceApple picks a cell uniformly at random among the board cells not
// covered by an alive segment of s.
func PlaceApple(board Board, s *Snake, rng *rand.Rand) (Apple, error) {
	occupied := make([]bool, board.Cells())
	for _, p := range s.Body() {
		if board.Contains(p) {
			occupied[p.Y*board.Width()+p.X] = true
		}
	}

	free := make([]core.Position, 0, board.Cells())
	for x := 0; x < board.Width(); x++ {
		for y := 0; y < board.Height(); y++ {
			if !occupied[y*board.Width()+x] {
				free = append(free, core.Pos(x, y))
			}
		}
	}

	if len(free) == 0 {
		return Apple{}, ErrBoardFull
	}
	return NewApple(free[rng.Intn(len(free))]), nil
}
