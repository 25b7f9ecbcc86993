package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

const hexConfigFile = "hex2048.yaml"

var hexSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	if err := c.AddResource("hex2048.schema.json", bytes.NewReader(hexSchemaJSON)); err != nil {
		return nil, fmt.Errorf("config: load schema: %w", err)
	}
	return c.Compile("hex2048.schema.json")
})

// LoadHex loads hex2048 configuration.
// Search order: customPath -> ~/.hexshift/configs/hex2048.yaml -> ./configs/hex2048.yaml -> embedded default
func LoadHex(customPath string) (HexConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultHexConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseHex(data)
		if err != nil {
			return DefaultHexConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(hexConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseHex(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", hexConfigFile)); err == nil {
		if cfg, err := ParseHex(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseHex(defaultHexYAML)
	if err != nil {
		return DefaultHexConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseHex decodes a YAML document over the defaults. The document is
// checked against the embedded JSON schema first, then HexConfig.Validate
// runs on the merged result.
func ParseHex(data []byte) (HexConfig, error) {
	cfg := DefaultHexConfig()

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return cfg, fmt.Errorf("config: yaml: %w", err)
	}
	if doc != nil {
		if err := validateSchema(doc); err != nil {
			return cfg, err
		}
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// validateSchema runs doc through the schema. The YAML tree is converted to
// its JSON form so numbers and maps have the types the validator expects.
func validateSchema(doc any) error {
	schema, err := hexSchema()
	if err != nil {
		return err
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("config: convert to json: %w", err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("config: convert to json: %w", err)
	}

	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("config: schema: %w", err)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hexshift", "configs", filename)
}

// ApplyHexPreset modifies the config based on a difficulty preset.
// Easy and hard also shift the base spawn chances.
func ApplyHexPreset(cfg *HexConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Spawn.ExtraTileChance = 0.1
		cfg.Spawn.FourChance = 0.25
	case DifficultyHard:
		cfg.Spawn.ExtraTileChance = 0.3
		cfg.Spawn.FourChance = 0.6
	}
}
