package hex2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StatePaused       GameStateType = "paused"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Mode    string
	Level   int // Current level (1-indexed), 0 outside the campaign
	Radius  int
	Target  int // Win tile, 0 when there is none
	Score   int
	Moves   int
	Board   Board
	MaxTile int
	State   GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.levelCleared:
		state = StateLevelCleared
	case g.paused:
		state = StatePaused
	}

	level := 0
	if g.mode == ModeCampaign {
		level = g.levelIndex + 1
	}

	return Snapshot{
		Tick:    g.tick,
		Mode:    string(g.mode),
		Level:   level,
		Radius:  g.resolver.Radius,
		Target:  g.resolver.WinValue,
		Score:   g.score,
		Moves:   g.moves,
		Board:   g.board.Clone(),
		MaxTile: g.board.MaxTile(),
		State:   state,
	}
}
