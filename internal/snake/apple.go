package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Apple is a single food item. A new apple is a new value; apples are never moved.
type Apple struct {
	position core.Position
}

// NewApple places an apple at p.
func NewApple(p core.Position) Apple {
	return Apple{position: p}
}

// Position returns where the apple lies.
func (a Apple) Position() core.Position {
	return a.position
}
