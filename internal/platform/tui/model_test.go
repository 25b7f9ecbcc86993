package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hexshift/internal/core"
	"github.com/vovakirdan/hexshift/internal/registry"
	"github.com/vovakirdan/hexshift/internal/storage"
)

// fakeGame is a scripted game: it ends when over is set.
type fakeGame struct {
	resets  int
	resized [2]int
	steps   int
	over    bool
	paused  bool
	score   int
	lastIn  core.InputFrame
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.over = false
	g.steps = 0
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.lastIn = in.Clone()
	return core.StepResult{State: g.State()}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake")
}

func (g *fakeGame) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.over, Paused: g.paused}
}

func (g *fakeGame) Summary() registry.Summary {
	return registry.Summary{Radius: 3, MaxTile: 64, Moves: 12, Won: false}
}

func (g *fakeGame) Resize(w, h int) {
	g.resized = [2]int{w, h}
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm
}

func newTestModel(g *fakeGame, store *storage.Store) GameModel {
	m := NewGameModel(g, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 1}, "session-1")
	m.Init()
	return m
}

func TestGameModelForwardsShiftKeys(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil)

	m = update(t, m, runeKey("e"))
	m = update(t, m, TickMsg{})

	if !g.lastIn.Has(core.ActionNorthEast) {
		t.Error("the game did not see the NE shift")
	}

	update(t, m, TickMsg{})
	if g.lastIn.Has(core.ActionNorthEast) {
		t.Error("input frame was not cleared after the tick")
	}
}

func TestGameModelSavesResultOnce(t *testing.T) {
	store := openStore(t)
	g := &fakeGame{score: 320}
	m := newTestModel(g, store)

	g.over = true
	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{})

	if m.SavedID() == 0 {
		t.Fatal("result was not saved")
	}

	scores, err := store.AllScores("fake")
	if err != nil {
		t.Fatalf("AllScores() error = %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d results, want 1", len(scores))
	}
	got := scores[0]
	if got.Score != 320 || got.MaxTile != 64 || got.Moves != 12 || got.Radius != 3 {
		t.Errorf("saved %+v, want summary fields", got)
	}
	if got.SessionID != "session-1" {
		t.Errorf("session id = %q, want session-1", got.SessionID)
	}
}

func TestGameModelSkipsZeroScore(t *testing.T) {
	store := openStore(t)
	g := &fakeGame{}
	m := newTestModel(g, store)

	g.over = true
	update(t, m, TickMsg{})

	scores, err := store.AllScores("fake")
	if err != nil {
		t.Fatalf("AllScores() error = %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("saved %d results for a zero score", len(scores))
	}
}

func TestGameModelRestart(t *testing.T) {
	store := openStore(t)
	g := &fakeGame{score: 16}
	m := newTestModel(g, store)

	// Restart is ignored while playing
	m = update(t, m, runeKey("r"))
	m = update(t, m, TickMsg{})
	if g.resets != 1 {
		t.Fatalf("resets = %d while playing, want 1", g.resets)
	}

	g.over = true
	m = update(t, m, TickMsg{})
	m = update(t, m, runeKey("r"))
	m = update(t, m, TickMsg{})
	if g.resets != 2 {
		t.Fatalf("resets = %d after restart, want 2", g.resets)
	}

	g.over = true
	update(t, m, TickMsg{})

	scores, _ := store.AllScores("fake")
	if len(scores) != 2 {
		t.Errorf("saved %d results over two games, want 2", len(scores))
	}
}

func TestGameModelBackToMenu(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("back accepted while playing")
	}
	m = update(t, m, TickMsg{})

	g.paused = true
	m = update(t, m, TickMsg{})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("back ignored while paused")
	}
	if m.View() != "" {
		t.Error("view not empty after leaving")
	}
}

func TestGameModelQuit(t *testing.T) {
	m := newTestModel(&fakeGame{}, nil)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !next.(GameModel).IsQuitting() {
		t.Error("ctrl+c did not quit")
	}
	if cmd == nil {
		t.Error("ctrl+c returned no command")
	}
}

func TestGameModelResizeKeepsGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil)

	update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if g.resized != [2]int{100, 40} {
		t.Errorf("resized = %v, want [100 40]", g.resized)
	}
	if g.resets != 1 {
		t.Errorf("resize restarted the game (resets = %d)", g.resets)
	}
}

func TestGameModelView(t *testing.T) {
	m := newTestModel(&fakeGame{}, nil)
	if got := m.View(); len(got) == 0 || got[:4] != "fake" {
		t.Errorf("View() = %q, want the game's screen", got)
	}
}

func TestTickInterval(t *testing.T) {
	if tickInterval(0) != tickInterval(defaultTickRate) {
		t.Error("zero tick rate does not fall back to the default")
	}
	if tickInterval(10) <= tickInterval(60) {
		t.Error("lower tick rate should mean a longer interval")
	}
}
