package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each color to a terminal style.
type Color uint8

// Colors used by the game frame.
const (
	ColorDefault     Color = iota
	ColorGreen             // body
	ColorYellow            // game-over message
	ColorBrightRed         // apple
	ColorBrightGreen       // head
	ColorGray              // border
)
