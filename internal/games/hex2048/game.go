// Package hex2048 implements 2048 on a hexagonal board: the shift/merge
// engine over cube coordinates and the classic, endless and campaign modes
// built on it.
package hex2048

import (
	"github.com/vovakirdan/hexshift/internal/config"
	"github.com/vovakirdan/hexshift/internal/core"
	"github.com/vovakirdan/hexshift/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic  Mode = "classic"
	ModeEndless  Mode = "endless"
	ModeCampaign Mode = "campaign"
)

// Registered game ids.
const (
	IDClassic  = "hex2048"
	IDEndless  = "hex2048_endless"
	IDCampaign = "hex2048_campaign"
)

// levelClearTicks is how long the "level cleared" banner stays up.
const levelClearTicks = 120

// Settings chosen on the command line or in the menu, applied on Reset.
var (
	configPath         string
	difficultyPreset   config.DifficultyPreset
	radiusOverride     int
	winValueOverride   = -1
	selectedStartLevel int
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset by name; unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetRadius overrides the configured board radius. 0 keeps the config value.
func SetRadius(radius int) {
	radiusOverride = radius
}

// SetWinValue overrides the configured win tile. Negative keeps the config value.
func SetWinValue(value int) {
	winValueOverride = value
}

// SetStartLevel sets the starting campaign level (1-based). 0 means start from the beginning.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStartLevel
}

// Options override the package-wide settings for one game instance.
// SSH sessions use them so concurrent players do not share choices.
type Options struct {
	Radius     int // 0 keeps the configured radius
	StartLevel int // 1-based campaign level, 0 for the first
}

// Game implements the hexagonal 2048 puzzle.
type Game struct {
	mode Mode
	opts Options
	tick uint64

	cfg        config.HexConfig
	difficulty *config.DifficultyManager
	spawner    *Spawner
	resolver   Resolver

	board      Board
	score      int
	moves      int
	levelIndex int
	lastSpawn  []Tile

	screenW int
	screenH int

	gameOver     bool
	won          bool
	levelCleared bool
	clearTicks   int
	paused       bool
	tooSmall     bool
	showCoords   bool
}

// New creates a classic game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewEndless creates a game without a win tile.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// NewCampaign creates a campaign game.
func NewCampaign() *Game {
	return &Game{mode: ModeCampaign}
}

func init() {
	registry.Register(IDClassic, func() registry.Game { return New() })
	registry.Register(IDEndless, func() registry.Game { return NewEndless() })
	registry.Register(IDCampaign, func() registry.Game { return NewCampaign() })
}

// SetOptions sets per-instance overrides, applied on the next Reset.
func (g *Game) SetOptions(o Options) {
	g.opts = o
}

// ID returns the game identifier.
func (g *Game) ID() string {
	switch g.mode {
	case ModeEndless:
		return IDEndless
	case ModeCampaign:
		return IDCampaign
	default:
		return IDClassic
	}
}

// Title returns the display name.
func (g *Game) Title() string {
	switch g.mode {
	case ModeEndless:
		return "Hex 2048 (Endless)"
	case ModeCampaign:
		return "Hex 2048 (Campaign)"
	default:
		return "Hex 2048"
	}
}

// Reset initializes or restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadHex(configPath)
	if err != nil {
		cfg = config.DefaultHexConfig()
	}
	if difficultyPreset != "" {
		config.ApplyHexPreset(&cfg, difficultyPreset)
	}
	radius := radiusOverride
	if g.opts.Radius != 0 {
		radius = g.opts.Radius
	}
	if radius != 0 {
		cfg.Board.Radius = core.Clamp(radius, config.MinRadius, config.MaxRadius)
	}
	if winValueOverride >= 0 {
		cfg.Board.WinValue = winValueOverride
	}
	g.ResetWith(rc, cfg)
}

// ResetWith restarts the game from an explicit configuration.
func (g *Game) ResetWith(rc core.RuntimeConfig, cfg config.HexConfig) {
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.spawner = NewSpawner(rc.Seed, cfg.Spawn)
	g.tick = 0
	g.score = 0
	g.moves = 0
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.gameOver = false
	g.won = false
	g.levelCleared = false
	g.clearTicks = 0
	g.paused = false

	g.levelIndex = 0
	if g.mode == ModeCampaign {
		switch {
		case g.opts.StartLevel > 0 && g.opts.StartLevel <= LevelCount():
			g.levelIndex = g.opts.StartLevel - 1
		case selectedStartLevel > 0 && selectedStartLevel <= LevelCount():
			g.levelIndex = selectedStartLevel - 1
			selectedStartLevel = 0 // Reset after use
		}
	}

	g.loadLevel()
}

// loadLevel sets up the resolver for the current mode/level and deals a fresh board.
func (g *Game) loadLevel() {
	radius := g.cfg.Board.Radius
	target := g.cfg.Board.WinValue

	switch g.mode {
	case ModeEndless:
		target = 0
	case ModeCampaign:
		level := GetLevel(g.levelIndex)
		if level == nil {
			level = GetLevel(LevelCount() - 1)
		}
		radius = level.Radius
		target = level.Target
	}

	g.resolver = NewResolver(radius, target)
	g.board = Board{}
	g.lastSpawn = g.spawner.Opening(g.board, radius)
	g.checkScreenSize()
}

// Resize updates the screen size without restarting the game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough for the board.
func (g *Game) checkScreenSize() {
	minW, minH := layoutSize(g.resolver.Radius)
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver && !g.won {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionCoords) {
		g.showCoords = !g.showCoords
	}

	if g.levelCleared {
		g.clearTicks++
		if g.clearTicks >= levelClearTicks {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	// Restart is handled by the platform once the game is over.
	if g.gameOver || g.won {
		return core.StepResult{State: g.State()}
	}

	moved := false
	if a, ok := in.Shift(); ok {
		if dir, ok := DirectionForAction(a); ok {
			moved = g.processMove(dir)
		}
	}

	return core.StepResult{State: g.State(), Moved: moved}
}

// processMove runs one turn: shift, then either finish on a win or spawn
// and check for a locked board. It reports whether the board changed.
func (g *Game) processMove(dir Direction) bool {
	res := g.resolver.Shift(g.board, dir)
	if !res.Moved {
		return false
	}

	g.board = res.Board
	g.score += res.Score
	g.moves++
	g.lastSpawn = nil

	if res.Won {
		if g.mode == ModeCampaign {
			g.levelCleared = true
			g.clearTicks = 0
		} else {
			g.won = true
		}
		return true
	}

	four := g.difficulty.FourChance(g.cfg.Spawn.FourChance, g.score, g.moves)
	extra := g.difficulty.ExtraTileChance(g.cfg.Spawn.ExtraTileChance, g.score, g.moves)
	g.lastSpawn = g.spawner.Spawn(g.board, g.resolver.Radius, extra, four)

	if g.board.IsFull(g.resolver.Radius) && !g.resolver.HasAnyMove(g.board) {
		g.gameOver = true
	}
	return true
}

// advanceLevel moves to the next campaign level on a fresh board.
func (g *Game) advanceLevel() {
	g.levelCleared = false
	g.clearTicks = 0

	if g.levelIndex >= LevelCount()-1 {
		g.won = true
		return
	}

	g.levelIndex++
	g.loadLevel()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver || g.won,
		Won:      g.won,
		Paused:   g.paused || g.tooSmall || g.levelCleared,
	}
}

// Summary describes the game for the score store.
func (g *Game) Summary() registry.Summary {
	return registry.Summary{
		Radius:  g.resolver.Radius,
		MaxTile: g.board.MaxTile(),
		Moves:   g.moves,
		Won:     g.won,
	}
}

// Board returns a copy of the current board.
func (g *Game) Board() Board {
	return g.board.Clone()
}

// Radius returns the radius of the current board.
func (g *Game) Radius() int {
	return g.resolver.Radius
}

// Target returns the current win tile, 0 when there is none.
func (g *Game) Target() int {
	return g.resolver.WinValue
}
