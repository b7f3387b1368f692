package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Model is the Bubble Tea model running one snake game at a time.
//
// Key messages are pushed into an InputQueue; the engine polls it at most
// once per tick. All engine access happens inside Update, so the simulation
// has a single owner.
type Model struct {
	cfg      config.SnakeConfig
	glyphs   snake.Glyphs
	engine   *snake.Engine
	queue    *core.InputQueue
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	seed     int64
	newSeed  func() int64
	width    int
	height   int
	result   snake.Result
	gameOver bool
	quitting bool
}

// NewModel creates a model for cfg. A zero seed picks a time-based seed.
// A nil logger discards log output.
func NewModel(cfg config.SnakeConfig, seed int64, logger *log.Logger) (Model, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := Model{
		cfg:     cfg,
		glyphs:  cfg.GlyphSet(),
		queue:   core.NewInputQueue(cfg.Input.Buffer),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		logger:  logger,
		newSeed: func() int64 { return time.Now().UnixNano() },
	}
	if seed == 0 {
		seed = m.newSeed()
	}
	if err := m.startGame(seed); err != nil {
		return Model{}, err
	}
	return m, nil
}

// startGame builds a fresh engine with the given seed.
func (m *Model) startGame(seed int64) error {
	m.queue.Drain()
	engine, err := snake.New(m.cfg.Setup(), m.queue, seed)
	if err != nil {
		return fmt.Errorf("cannot start game: %w", err)
	}

	w, h := snake.FrameSize(engine.Board())
	m.engine = engine
	m.screen = core.NewScreen(w, h)
	m.seed = seed
	m.result = snake.Result{}
	m.gameOver = false

	m.logger.Info("game started",
		"board", fmt.Sprintf("%dx%d", engine.Board().Width(), engine.Board().Height()),
		"seed", seed,
	)
	return nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	// After game over: play again or leave on any other key
	if m.gameOver {
		if key.Matches(msg, m.keys.Restart) {
			if err := m.startGame(m.newSeed()); err != nil {
				m.logger.Error("restart failed", "error", err)
				m.quitting = true
				return m, tea.Quit
			}
			m.logger.Info("game restarted")
			return m, tickCmd()
		}
		m.quitting = true
		return m, tea.Quit
	}

	if r, ok := m.keys.GameKey(msg); ok {
		if !m.queue.Push(r) {
			m.logger.Debug("input dropped", "key", string(r))
		}
	}
	return m, nil
}

// handleTick advances the simulation by one tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.gameOver {
		return m, nil
	}

	m.result = m.engine.Tick()
	if m.result.Outcome.Over() {
		m.gameOver = true
		snap := m.engine.Snapshot()
		m.logger.Info("game over",
			"reason", m.result.Outcome.String(),
			"ticks", m.result.Tick,
			"length", snap.Len,
			"seed", m.seed,
		)
		return m, nil
	}
	return m, tickCmd()
}

// tooSmall reports whether the known terminal size cannot fit a frame.
func (m Model) tooSmall() bool {
	if m.width == 0 && m.height == 0 {
		return false
	}
	w, h := snake.FrameSize(m.engine.Board())
	return m.width < w || m.height < h
}

// View renders the current state to a string for display.
//
// The view is never taller or wider than a known terminal size. When the
// terminal is too small the frame is clipped, the help row carries a resize
// hint and the bottom rows stay visible. After game over the message row
// shows the outcome next to the restart help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.engine.Render(m.screen, m.glyphs)
	fw, fh := snake.FrameSize(m.engine.Board())

	cols := fw
	if m.tooSmall() {
		cols = min(fw, m.width)
	}
	clip := lipgloss.NewStyle().MaxWidth(cols)

	lines := make([]string, fh)
	for y := range fh {
		lines[y] = renderRow(m.screen, y, cols)
	}

	if m.gameOver {
		msg := styleFor(core.ColorYellow).Render(m.result.Outcome.Message())
		lines[fh-1] = clip.Render(msg + " " + m.help.View(m.keys))
	}

	if m.tooSmall() {
		hint := fmt.Sprintf("Window %dx%d, resize to %dx%d to see the whole board", m.width, m.height, fw, fh)
		lines[fh-2] = clip.Render(hint)
		if m.height < len(lines) {
			lines = lines[len(lines)-m.height:]
		}
	}
	return strings.Join(lines, "\n")
}

// Result returns the result of the last tick.
func (m Model) Result() snake.Result {
	return m.result
}

// GameOver reports whether the current game has ended.
func (m Model) GameOver() bool {
	return m.gameOver
}

// Engine returns the running game.
func (m Model) Engine() *snake.Engine {
	return m.engine
}

// Run starts the Bubble Tea program for a local game.
// rt seeds the game and gives the initial terminal size.
func Run(cfg config.SnakeConfig, rt core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(cfg, rt.Seed, logger)
	if err != nil {
		return err
	}
	model.width, model.height = rt.ScreenW, rt.ScreenH

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
