package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// KeyMap translates Bubble Tea key messages to game keypresses.
// This centralizes key bindings and makes them testable.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
	Restart   key.Binding
}

// DefaultKeyMap returns the default bindings. Arrow keys mirror w/a/s/d.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("w/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "down"),
			key.WithHelp("s/↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/→", "right"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "exit now"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "play again"),
		),
	}
}

// ShortHelp returns the bindings shown after a game ends.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Restart, anyKey}
}

// FullHelp returns all bindings.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Quit, k.ForceQuit, k.Restart},
	}
}

// anyKey is a help-only binding for "press any key". It never matches.
var anyKey = key.NewBinding(
	key.WithKeys("any"),
	key.WithHelp("any key", "continue"),
)

// GameKey maps a key message to the keypress the game understands.
// Returns false for keys the game does not use.
func (k KeyMap) GameKey(msg tea.KeyMsg) (rune, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return snake.KeyUp, true
	case key.Matches(msg, k.Down):
		return snake.KeyDown, true
	case key.Matches(msg, k.Left):
		return snake.KeyLeft, true
	case key.Matches(msg, k.Right):
		return snake.KeyRight, true
	case key.Matches(msg, k.Quit):
		return snake.KeyQuit, true
	}
	return 0, false
}
