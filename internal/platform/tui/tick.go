// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, input delivery, and frame rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// TickMsg is sent once per simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends the next tick message
// after the fixed tick interval.
func tickCmd() tea.Cmd {
	return tea.Tick(core.TickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
