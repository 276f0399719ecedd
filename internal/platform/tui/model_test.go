package tui

import (
	"errors"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/starship/internal/core"
	"github.com/vovakirdan/starship/internal/storage"
)

// fakeGame records the inputs it is stepped with and returns scripted states.
type fakeGame struct {
	resetErr error
	stepErr  error
	state    core.GameState
	next     []core.GameState // States returned by successive steps
	inputs   []core.InputFrame
	resets   int
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) error {
	g.resets++
	g.state = core.GameState{Lives: 3}
	return g.resetErr
}

func (g *fakeGame) Step(in core.InputFrame) (core.StepResult, error) {
	frame := core.NewInputFrame()
	for a := range in.Actions {
		frame.Set(a)
	}
	g.inputs = append(g.inputs, frame)

	if g.stepErr != nil {
		return core.StepResult{State: g.state}, g.stepErr
	}
	if len(g.next) > 0 {
		g.state = g.next[0]
		g.next = g.next[1:]
	}
	return core.StepResult{State: g.state}, nil
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake", core.ColorDefault)
}

func (g *fakeGame) State() core.GameState { return g.state }

func newTestModel(t *testing.T, g *fakeGame, opts Options) Model {
	t.Helper()
	opts.Runtime = core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}
	m, err := NewModel(g, opts)
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
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

func TestNewModelResetError(t *testing.T) {
	g := &fakeGame{resetErr: errors.New("no texture")}
	if _, err := NewModel(g, Options{}); err == nil {
		t.Fatal("NewModel() should fail when the game cannot reset")
	}
}

func TestHeldKeyReachesGameForHoldTicks(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, Options{HoldTicks: 2})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	for i := 0; i < 3; i++ {
		m, _ = update(t, m, TickMsg{})
	}

	if len(g.inputs) != 3 {
		t.Fatalf("game stepped %d times, expected 3", len(g.inputs))
	}
	if !g.inputs[0].Has(core.ActionRight) || !g.inputs[1].Has(core.ActionRight) {
		t.Error("right should be held for two ticks")
	}
	if g.inputs[2].Has(core.ActionRight) {
		t.Error("right should be released after the hold expires")
	}
}

func TestPressIsDeliveredOnce(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, Options{HoldTicks: 8})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, TickMsg{})

	if !g.inputs[0].Has(core.ActionPause) {
		t.Error("pause should reach the game on the next tick")
	}
	if g.inputs[1].Has(core.ActionPause) {
		t.Error("pause should not repeat on later ticks")
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t, &fakeGame{}, Options{})

	m, cmd := update(t, m, runeKey('q'))
	if !isQuit(cmd) {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestBackOnlyWhenPausedOrOver(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, Options{AllowBack: true})

	// Playing: ignored
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd != nil || m.WentBack() {
		t.Fatal("esc while playing should be ignored")
	}

	g.next = []core.GameState{{Lives: 3, Phase: core.PhasePaused}}
	m, _ = update(t, m, TickMsg{})
	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !isQuit(cmd) || !m.WentBack() {
		t.Error("esc while paused should return to the menu")
	}
}

func TestBackDisabledWithoutMenu(t *testing.T) {
	g := &fakeGame{next: []core.GameState{{Phase: core.PhaseOver}}}
	m := newTestModel(t, g, Options{})

	m, _ = update(t, m, TickMsg{})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd != nil || m.WentBack() {
		t.Error("esc should do nothing when there is no menu to return to")
	}
}

func TestStepErrorStopsProgram(t *testing.T) {
	g := &fakeGame{stepErr: errors.New("texture vanished")}
	m := newTestModel(t, g, Options{})

	m, cmd := update(t, m, TickMsg{})
	if !isQuit(cmd) {
		t.Error("a step error should quit the program")
	}
	if !errors.Is(m.Err(), g.stepErr) {
		t.Errorf("Err() = %v, expected the step error", m.Err())
	}
}

func TestScoreSavedOnceOnGameOver(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	over := core.GameState{Best: 4, Clears: 6, Phase: core.PhaseOver}
	g := &fakeGame{next: []core.GameState{
		{Score: 4, Best: 4, Lives: 1},
		over,
		over,
		{Lives: 3}, // Restarted
		{Best: 2, Phase: core.PhaseOver},
	}}
	m := newTestModel(t, g, Options{Store: store, Difficulty: "hard", RunID: "run-42"})

	for i := 0; i < 5; i++ {
		m, _ = update(t, m, TickMsg{})
	}

	scores, err := store.TopScores("", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("saved %d scores, expected one per game over (2)", len(scores))
	}
	first := scores[0]
	if first.Score != 4 || first.Clears != 6 || first.Difficulty != "hard" || first.RunID != "run-42" {
		t.Errorf("unexpected saved score: %+v", first)
	}
}

func TestZeroBestNotSaved(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	g := &fakeGame{next: []core.GameState{{Phase: core.PhaseOver}}}
	m := newTestModel(t, g, Options{Store: store})
	update(t, m, TickMsg{})

	if high, _ := store.HighScore(""); high != 0 {
		t.Errorf("zero-point run should not be saved, high score = %d", high)
	}
}

func TestResizeKeepsRun(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, Options{})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if g.resets != 1 {
		t.Errorf("resize reset the game (%d resets)", g.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, expected 100x30", m.screen.Width(), m.screen.Height())
	}
}
