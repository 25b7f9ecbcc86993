package config

import (
	_ "embed"
)

//go:embed defaults/hex2048.yaml
var defaultHexYAML []byte

//go:embed defaults/hex2048.schema.json
var hexSchemaJSON []byte

// DefaultHexConfig returns the default hex2048 configuration.
func DefaultHexConfig() HexConfig {
	return HexConfig{
		Board: BoardConfig{
			Radius:   3,
			WinValue: 2048,
		},
		Spawn: SpawnConfig{
			InitialCount:    3,
			InitialValue:    2,
			ExtraTileChance: 0.2,
			FourChance:      0.5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "moves",
				MaxAt: 400,
			},
			Scaling: ScalingConfig{
				FourChanceBonus:      0.3,
				ExtraTileChanceBonus: 0.2,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "hex2048", "hex2048_endless", "hex2048_campaign":
		return defaultHexYAML
	default:
		return nil
	}
}
