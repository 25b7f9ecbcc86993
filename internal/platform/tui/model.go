package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hexshift/internal/core"
	"github.com/vovakirdan/hexshift/internal/registry"
	"github.com/vovakirdan/hexshift/internal/storage"
)

// Resizer is implemented by games that can follow a terminal resize
// without restarting.
type Resizer interface {
	Resize(w, h int)
}

// Outcome says how a game session ended.
type Outcome int

const (
	// OutcomeBack means the player asked to return to the menu.
	OutcomeBack Outcome = iota
	// OutcomeQuit means the player asked to leave the program.
	OutcomeQuit
)

// GameModel is the Bubble Tea model that runs one game.
// It is used directly by the CLI and embedded in SSH sessions.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	theme      Theme
	config     core.RuntimeConfig
	sessionID  string
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the result has been saved for the current game over
	savedID    int64
}

// NewGameModel creates a model for the given game.
// A nil store disables score saving.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, sessionID string) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		theme:      NewTheme(nil),
		config:     cfg,
		sessionID:  sessionID,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// WithTheme returns a copy of the model rendering with t.
func (m GameModel) WithTheme(t Theme) GameModel {
	m.theme = t
	return m
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back to the menu only from a finished or paused game
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(Resizer); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}

	// Games without Resize restart with the new dimensions
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// New seed so a restart is a new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.savedID = 0
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveResult()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// result builds the stored record for the current game.
func (m GameModel) result() storage.GameResult {
	r := storage.GameResult{
		GameID:    m.game.ID(),
		Score:     m.gameState.Score,
		SessionID: m.sessionID,
	}
	if rep, ok := m.game.(registry.Reporter); ok {
		s := rep.Summary()
		r.Radius = s.Radius
		r.MaxTile = s.MaxTile
		r.Moves = s.Moves
		r.Won = s.Won
	}
	return r
}

// saveResult stores a finished game with a positive score.
func (m *GameModel) saveResult() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	id, err := m.store.SaveResult(m.result())
	if err == nil {
		m.savedID = id
	}
}

// screenshotDir returns the directory screenshots are written to.
func screenshotDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return filepath.Join(home, ".hexshift", "screenshots"), nil
}

// saveScreenshot writes the current screen as plain text.
func (m *GameModel) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir, err := screenshotDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return m.theme.Render(m.screen)
}

// IsQuitting returns true if the player requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the player requested the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// SavedID returns the score record id of the last saved game, 0 if none.
func (m GameModel) SavedID() int64 {
	return m.savedID
}

// Run plays a game in the local terminal until the player leaves it.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, sessionID string) (Outcome, error) {
	model := NewGameModel(game, store, cfg, sessionID)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return OutcomeQuit, err
	}

	if m, ok := final.(GameModel); ok && m.BackToMenu() {
		return OutcomeBack, nil
	}
	return OutcomeQuit, nil
}
