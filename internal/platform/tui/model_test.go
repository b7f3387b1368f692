package tui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m, err := NewModel(config.DefaultSnakeConfig(), 42, nil)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelInvalidConfig(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Board.Width = 0
	if _, err := NewModel(cfg, 1, nil); err == nil {
		t.Error("expected error for invalid board")
	}
}

func TestModelTickMovesSnake(t *testing.T) {
	m := newTestModel(t)
	head := m.Engine().Snake().Head()

	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("expected next tick to be scheduled")
	}
	if got := m.Engine().Ticks(); got != 1 {
		t.Errorf("Ticks() = %d, want 1", got)
	}
	if got := m.Engine().Snake().Head(); got.Y != head.Y+1 {
		t.Errorf("head = %v, want one row above %v", got, head)
	}
}

func TestModelKeysWaitForTick(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, runeKey('d'))
	if got := m.Engine().Snake().Facing(); got != snake.Up {
		t.Fatalf("facing changed before tick: %v", got)
	}

	m, _ = update(t, m, TickMsg{})
	if got := m.Engine().Snake().Facing(); got != snake.Right {
		t.Errorf("Facing() = %v, want %v", got, snake.Right)
	}
}

func TestModelOneKeyPerTick(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, runeKey('d'))
	m, _ = update(t, m, runeKey('q'))

	m, _ = update(t, m, TickMsg{})
	if m.GameOver() {
		t.Fatal("quit applied on the same tick as the turn")
	}

	m, _ = update(t, m, TickMsg{})
	if !m.GameOver() {
		t.Fatal("expected game over on second tick")
	}
	if got := m.Result().Outcome; got != snake.UserQuit {
		t.Errorf("Outcome = %v, want %v", got, snake.UserQuit)
	}
}

func TestModelUnmappedKeysIgnored(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, runeKey('x'))
	if cmd != nil {
		t.Error("unmapped key should not produce a command")
	}
	if got := m.queue.Len(); got != 0 {
		t.Errorf("queue length = %d, want 0", got)
	}
}

func TestModelInputDroppedWhenFull(t *testing.T) {
	m := newTestModel(t)
	buffer := m.cfg.Input.Buffer

	for i := 0; i < buffer+4; i++ {
		m, _ = update(t, m, runeKey('a'))
	}
	if got := m.queue.Len(); got != buffer {
		t.Errorf("queue length = %d, want %d", got, buffer)
	}
}

func TestModelQuitStopsTicking(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, runeKey('q'))
	m, cmd := update(t, m, TickMsg{})
	if cmd != nil {
		t.Error("no tick should be scheduled after game over")
	}

	ticks := m.Engine().Ticks()
	m, _ = update(t, m, TickMsg{})
	if got := m.Engine().Ticks(); got != ticks {
		t.Errorf("Ticks() = %d after game over, want %d", got, ticks)
	}

	view := m.View()
	if !strings.Contains(view, snake.UserQuit.Message()) {
		t.Errorf("view missing game over message:\n%s", view)
	}
	if !strings.Contains(view, "play again") {
		t.Errorf("view missing restart help:\n%s", view)
	}
}

func TestModelAnyKeyExitsAfterGameOver(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, runeKey('q'))
	m, _ = update(t, m, TickMsg{})

	m, cmd := update(t, m, runeKey('x'))
	if !isQuit(cmd) {
		t.Error("expected quit after game over")
	}
	if got := m.View(); got != "" {
		t.Errorf("View() after quit = %q, want empty", got)
	}
}

func TestModelRestart(t *testing.T) {
	m := newTestModel(t)
	m.newSeed = func() int64 { return 7 }

	m, _ = update(t, m, runeKey('q'))
	m, _ = update(t, m, TickMsg{})
	if !m.GameOver() {
		t.Fatal("expected game over")
	}

	m, cmd := update(t, m, runeKey('r'))
	if cmd == nil || isQuit(cmd) {
		t.Fatal("restart should schedule a tick")
	}
	if m.GameOver() {
		t.Error("GameOver() still true after restart")
	}
	if got := m.Engine().Ticks(); got != 0 {
		t.Errorf("Ticks() = %d after restart, want 0", got)
	}
	if m.seed != 7 {
		t.Errorf("seed = %d, want 7", m.seed)
	}
}

func TestModelForceQuit(t *testing.T) {
	m := newTestModel(t)

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) {
		t.Error("ctrl+c should quit")
	}
}

func viewLines(t *testing.T, m Model) []string {
	t.Helper()
	return strings.Split(m.View(), "\n")
}

func TestModelKeepsPlayingInSmallTerminal(t *testing.T) {
	m := newTestModel(t)
	fw, fh := snake.FrameSize(m.Engine().Board())

	// The common 80x24 terminal is two columns short of the default frame.
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	for i := 1; i <= 5; i++ {
		var cmd tea.Cmd
		m, cmd = update(t, m, TickMsg{})
		if cmd == nil {
			t.Fatalf("tick %d: next tick not scheduled", i)
		}
	}
	if got := m.Engine().Ticks(); got != 5 {
		t.Errorf("Ticks() = %d, want 5", got)
	}

	lines := viewLines(t, m)
	if len(lines) != 24 {
		t.Errorf("view has %d lines, want 24", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w > 80 {
			t.Errorf("line %d is %d cells wide, want at most 80", i, w)
		}
	}
	hint := fmt.Sprintf("resize to %dx%d", fw, fh)
	if !strings.Contains(m.View(), hint) {
		t.Errorf("view missing %q:\n%s", hint, m.View())
	}
}

func TestModelClipsToTerminalHeight(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	m, _ = update(t, m, TickMsg{})

	lines := viewLines(t, m)
	if len(lines) != 10 {
		t.Fatalf("view has %d lines, want 10", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w > 40 {
			t.Errorf("line %d is %d cells wide, want at most 40", i, w)
		}
	}
	// The status rows stay at the bottom.
	if !strings.HasPrefix(lines[8], "Window 40x10") {
		t.Errorf("hint row = %q", lines[8])
	}
}

func TestModelGameOverFitsFrame(t *testing.T) {
	m := newTestModel(t)
	fw, fh := snake.FrameSize(m.Engine().Board())

	m, _ = update(t, m, tea.WindowSizeMsg{Width: fw, Height: fh})
	m, _ = update(t, m, runeKey('q'))
	m, _ = update(t, m, TickMsg{})
	if !m.GameOver() {
		t.Fatal("expected game over")
	}

	lines := viewLines(t, m)
	if len(lines) != fh {
		t.Fatalf("view has %d lines, want %d", len(lines), fh)
	}
	if want := strings.Repeat("*", fw); lines[0] != want {
		t.Errorf("top border = %q, want %q", lines[0], want)
	}
	last := lines[fh-1]
	if !strings.Contains(last, snake.UserQuit.Message()) || !strings.Contains(last, "play again") {
		t.Errorf("message row = %q, want outcome and restart help", last)
	}
	if w := lipgloss.Width(last); w > fw {
		t.Errorf("message row is %d cells wide, want at most %d", w, fw)
	}
}

func TestModelViewShowsBoard(t *testing.T) {
	m := newTestModel(t)

	view := m.View()
	if !strings.Contains(view, snake.HelpLine) {
		t.Errorf("view missing help line:\n%s", view)
	}
	if strings.Contains(view, "play again") {
		t.Error("restart help shown during play")
	}
}
