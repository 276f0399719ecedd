package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starship/internal/core"
	"github.com/vovakirdan/starship/internal/storage"
)

// Game is the interface the platform drives each tick.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig) error
	Step(in core.InputFrame) (core.StepResult, error)
	Render(dst *core.Screen)
	State() core.GameState
}

// Options configures a game session.
type Options struct {
	Store      *storage.Store // nil disables score persistence
	Logger     *log.Logger    // nil discards logs
	Runtime    core.RuntimeConfig
	Difficulty string // Preset name stored with scores
	RunID      string // Per-process id stored with scores
	HoldTicks  int    // Ticks a steering press stays held
	AllowBack  bool   // Esc returns to the caller while paused or over
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       Game
	screen     *core.Screen
	opts       Options
	logger     *log.Logger
	keys       *KeyMapper
	hold       *HoldTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	back       bool
	err        error // Fatal error that stopped the program
}

// NewModel resets the game and creates a model for it.
// A reset failure (missing texture) is returned as is.
func NewModel(game Game, opts Options) (Model, error) {
	// Use time-based seed if not specified
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if err := game.Reset(opts.Runtime); err != nil {
		return Model{}, fmt.Errorf("tui: cannot start %s: %w", game.ID(), err)
	}
	logger.Info("game started", "game", game.ID(), "seed", opts.Runtime.Seed, "difficulty", opts.Difficulty)

	return Model{
		game:       game,
		screen:     core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		opts:       opts,
		logger:     logger,
		keys:       NewKeyMapper(),
		hold:       NewHoldTracker(opts.HoldTicks),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsScreenshot(msg) {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionLeft, core.ActionRight:
		m.hold.Press(action)
	case core.ActionPause, core.ActionRestart:
		m.inputFrame.Set(action)
	case core.ActionBack:
		if m.opts.AllowBack && (m.gameState.Paused() || m.gameState.GameOver()) {
			m.back = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleResize processes window resize events.
// The world is in logical units, so the run continues at the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Runtime.ScreenW = msg.Width
	m.opts.Runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.gameState

	m.hold.Apply(&m.inputFrame)
	result, err := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()
	if err != nil {
		m.logger.Error("restart failed", "err", err)
		m.err = err
		return m, tea.Quit
	}
	m.gameState = result.State

	if result.Hit {
		m.logger.Debug("ship hit", "lives", m.gameState.Lives)
	}

	switch {
	case m.gameState.GameOver() && !prev.GameOver():
		m.hold.Release()
		m.logger.Info("game over", "best", m.gameState.Best, "clears", m.gameState.Clears)
		m.saveScore()
	case !m.gameState.GameOver() && prev.GameOver():
		m.logger.Info("game restarted")
	}

	return m, tickCmd(m.opts.Runtime.TickRate)
}

// saveScore persists the finished run's best score.
func (m Model) saveScore() {
	if m.opts.Store == nil || m.gameState.Best <= 0 {
		return
	}
	id, err := m.opts.Store.SaveScore(storage.ScoreRecord{
		RunID:      m.opts.RunID,
		Difficulty: m.opts.Difficulty,
		Score:      m.gameState.Best,
		Clears:     m.gameState.Clears,
	})
	if err != nil {
		m.logger.Warn("cannot save score", "err", err)
		return
	}
	m.logger.Info("score saved", "id", id, "score", m.gameState.Best)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".starship", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back || m.err != nil {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// Err returns the error that stopped the program, if any.
func (m Model) Err() error {
	return m.err
}

// WentBack reports whether the player asked to return to the menu.
func (m Model) WentBack() bool {
	return m.back
}

// Result describes how a game session ended.
type Result struct {
	State core.GameState
	Back  bool // Player returned to the menu instead of quitting
}

// Run starts the Bubble Tea program for game and blocks until it exits.
func Run(game Game, opts Options) (Result, error) {
	model, err := NewModel(game, opts)
	if err != nil {
		return Result{}, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return Result{}, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return Result{}, nil
	}
	if m.Err() != nil {
		return Result{State: m.State()}, m.Err()
	}

	return Result{State: m.State(), Back: m.WentBack()}, nil
}
