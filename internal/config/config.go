// Package config loads the tunable parameters of hexshift from YAML.
package config

import (
	"errors"
	"fmt"
)

// HexConfig holds all hex2048 tunable parameters.
type HexConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the playing field.
type BoardConfig struct {
	Radius   int `yaml:"radius"`    // Cells from the center to the edge, inclusive of the center
	WinValue int `yaml:"win_value"` // Tile that wins the game, 0 for none
}

// SpawnConfig defines how new tiles enter the board.
type SpawnConfig struct {
	InitialCount    int     `yaml:"initial_count"`     // Tiles placed on an empty board
	InitialValue    int     `yaml:"initial_value"`     // Value of the opening tiles
	ExtraTileChance float64 `yaml:"extra_tile_chance"` // Chance of two tiles after a move
	FourChance      float64 `yaml:"four_chance"`       // Chance a new tile is a 4
}

// DifficultyConfig ramps the spawn chances up as the game goes on.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "moves", or "none"
	MaxAt int    `yaml:"max_at"` // Score/moves at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	FourChanceBonus      float64 `yaml:"four_chance_bonus"`       // Added to four_chance at max difficulty
	ExtraTileChanceBonus float64 `yaml:"extra_tile_chance_bonus"` // Added to extra_tile_chance at max difficulty
}

// Board radius limits.
const (
	MinRadius = 2
	MaxRadius = 7
)

// ErrInvalidConfig is returned when a configuration breaks a cross-field rule.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Validate checks rules the schema cannot express.
func (c HexConfig) Validate() error {
	if c.Board.Radius < MinRadius || c.Board.Radius > MaxRadius {
		return fmt.Errorf("%w: radius %d not in [%d, %d]", ErrInvalidConfig, c.Board.Radius, MinRadius, MaxRadius)
	}
	if w := c.Board.WinValue; w != 0 && (w < 4 || w&(w-1) != 0) {
		return fmt.Errorf("%w: win_value %d is not a power of two >= 4", ErrInvalidConfig, w)
	}
	if v := c.Spawn.InitialValue; v < 2 || v&(v-1) != 0 {
		return fmt.Errorf("%w: initial_value %d is not a power of two >= 2", ErrInvalidConfig, v)
	}
	if c.Board.WinValue != 0 && c.Spawn.InitialValue >= c.Board.WinValue {
		return fmt.Errorf("%w: initial_value %d reaches win_value %d", ErrInvalidConfig, c.Spawn.InitialValue, c.Board.WinValue)
	}
	cells := 3*c.Board.Radius*(c.Board.Radius-1) + 1
	if c.Spawn.InitialCount < 1 || c.Spawn.InitialCount >= cells {
		return fmt.Errorf("%w: initial_count %d must leave room on a %d-cell board", ErrInvalidConfig, c.Spawn.InitialCount, cells)
	}
	for name, p := range map[string]float64{
		"extra_tile_chance": c.Spawn.ExtraTileChance,
		"four_chance":       c.Spawn.FourChance,
	} {
		if p < 0 || p > 1 {
			return fmt.Errorf("%w: %s %.2f not in [0, 1]", ErrInvalidConfig, name, p)
		}
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI name to a preset. Unknown names return "".
func ParsePreset(name string) DifficultyPreset {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
