package snake

import (
	"github.com/vovakirdan/tui-snake/internal/core"
)

// HelpLine is drawn below the board.
const HelpLine = "[ Snake ] w/a/s/d: Move | q: Quit"

// ContinuePrompt follows the game-over message.
const ContinuePrompt = "Press any key to continue."

// Glyphs are the characters used to draw a frame.
type Glyphs struct {
	Head   rune
	Body   rune
	Apple  rune
	Border rune
}

// DefaultGlyphs returns the classic glyph set.
func DefaultGlyphs() Glyphs {
	return Glyphs{Head: '@', Body: 'o', Apple: 'b', Border: '*'}
}

// FrameSize returns the screen size needed to draw a board: the board plus
// its border, the help line and the message line.
func FrameSize(b Board) (w, h int) {
	return b.Width() + 2, b.Height() + 4
}

// Render draws the board, snake, apple and status lines into dst.
// Board y grows upward, so the top screen row holds the highest board row.
func (e *Engine) Render(dst *core.Screen, g Glyphs) {
	dst.Clear()

	w, h := e.board.Width(), e.board.Height()
	toScreen := func(p core.Position) (int, int) {
		return p.X + 1, h - p.Y
	}

	dst.DrawFrame(core.NewRect(0, 0, w+2, h+2), g.Border, core.ColorGray)

	body := e.snake.Body()
	for i := len(body) - 1; i >= 1; i-- {
		if e.board.Contains(body[i]) {
			sx, sy := toScreen(body[i])
			dst.SetColor(sx, sy, g.Body, core.ColorGreen)
		}
	}
	if head := body[0]; e.board.Contains(head) {
		sx, sy := toScreen(head)
		dst.SetColor(sx, sy, g.Head, core.ColorBrightGreen)
	}

	if apple := e.apple.Position(); e.board.Contains(apple) && !e.snake.Occupies(apple) {
		sx, sy := toScreen(apple)
		dst.SetColor(sx, sy, g.Apple, core.ColorBrightRed)
	}

	dst.DrawText(0, h+2, HelpLine)
	if e.outcome.Over() {
		dst.DrawTextColor(0, h+3, e.outcome.Message()+" "+ContinuePrompt, core.ColorYellow)
	}
}
