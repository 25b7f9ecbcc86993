package config

// DifficultyManager calculates spawn chances based on score or moves.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0).
// Disabled progression keeps the game at level 0 so the base chances apply as written.
func (d *DifficultyManager) Level(score, moves int) float64 {
	if !d.cfg.Enabled {
		return 0
	}
	if d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "moves":
		progress = float64(moves) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// FourChance returns the chance of spawning a 4 at the current difficulty.
func (d *DifficultyManager) FourChance(base float64, score, moves int) float64 {
	level := d.Level(score, moves)
	return clampF(base+level*d.cfg.Scaling.FourChanceBonus, 0.0, 1.0)
}

// ExtraTileChance returns the chance of spawning a second tile at the current difficulty.
func (d *DifficultyManager) ExtraTileChance(base float64, score, moves int) float64 {
	level := d.Level(score, moves)
	return clampF(base+level*d.cfg.Scaling.ExtraTileChanceBonus, 0.0, 1.0)
}

func clampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
