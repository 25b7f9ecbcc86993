package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := ParseHex(defaultHexYAML)
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultHexConfig() {
		t.Errorf("embedded defaults = %+v, want %+v", cfg, DefaultHexConfig())
	}
}

func TestParseHexPartialDocument(t *testing.T) {
	cfg, err := ParseHex([]byte("board:\n  radius: 5\n"))
	if err != nil {
		t.Fatalf("ParseHex failed: %v", err)
	}
	if cfg.Board.Radius != 5 {
		t.Errorf("radius = %d, want 5", cfg.Board.Radius)
	}
	if cfg.Board.WinValue != 2048 || cfg.Spawn.InitialCount != 3 {
		t.Errorf("omitted fields should keep defaults, got %+v", cfg)
	}
}

func TestParseHexEmptyDocument(t *testing.T) {
	cfg, err := ParseHex(nil)
	if err != nil {
		t.Fatalf("empty document should yield defaults: %v", err)
	}
	if cfg != DefaultHexConfig() {
		t.Errorf("got %+v", cfg)
	}
}

func TestParseHexRejects(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		schema bool // rejected by the schema rather than Validate
	}{
		{"radius too large", "board:\n  radius: 8\n", true},
		{"radius too small", "board:\n  radius: 1\n", true},
		{"unknown key", "board:\n  size: 3\n", true},
		{"chance above one", "spawn:\n  four_chance: 1.5\n", true},
		{"radius as string", "board:\n  radius: big\n", true},
		{"unknown progression", "difficulty:\n  progression:\n    type: time\n", true},
		{"win not power of two", "board:\n  win_value: 1000\n", false},
		{"initial value not power of two", "spawn:\n  initial_value: 3\n", false},
		{"initial count fills board", "board:\n  radius: 2\nspawn:\n  initial_count: 7\n", false},
		{"initial value reaches win", "board:\n  win_value: 4\nspawn:\n  initial_value: 4\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHex([]byte(tt.doc))
			if err == nil {
				t.Fatal("expected an error")
			}
			isSchema := strings.Contains(err.Error(), "config: schema")
			if isSchema != tt.schema {
				t.Errorf("schema error = %v, want %v (err: %v)", isSchema, tt.schema, err)
			}
			if !tt.schema && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error should wrap ErrInvalidConfig: %v", err)
			}
		})
	}
}

func TestParseHexWinDisabled(t *testing.T) {
	cfg, err := ParseHex([]byte("board:\n  win_value: 0\n"))
	if err != nil {
		t.Fatalf("win_value 0 should be accepted: %v", err)
	}
	if cfg.Board.WinValue != 0 {
		t.Errorf("win_value = %d, want 0", cfg.Board.WinValue)
	}
}

func TestLoadHexCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("board:\n  radius: 4\n  win_value: 512\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadHex(path)
	if err != nil {
		t.Fatalf("LoadHex failed: %v", err)
	}
	if cfg.Board.Radius != 4 || cfg.Board.WinValue != 512 {
		t.Errorf("got %+v", cfg.Board)
	}

	if _, err := LoadHex(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom path should fail")
	}
}

func TestApplyHexPreset(t *testing.T) {
	cfg := DefaultHexConfig()
	ApplyHexPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset: %+v", cfg.Difficulty)
	}
	if cfg.Spawn.FourChance != 0.6 {
		t.Errorf("hard four_chance = %.2f", cfg.Spawn.FourChance)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset produced invalid config: %v", err)
	}

	cfg = DefaultHexConfig()
	ApplyHexPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("hard not recognised")
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown preset should map to empty")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DefaultHexConfig().Difficulty

	d := NewDifficultyManager(cfg)
	if d.IsEnabled() {
		t.Error("default difficulty should be disabled")
	}
	if got := d.FourChance(0.5, 10000, 10000); got != 0.5 {
		t.Errorf("disabled FourChance = %.2f, want base 0.5", got)
	}

	cfg.Enabled = true
	d = NewDifficultyManager(cfg)
	if got := d.Level(0, 0); got != 0 {
		t.Errorf("Level at start = %.2f, want 0", got)
	}
	if got := d.Level(0, 200); got != 0.5 {
		t.Errorf("Level halfway = %.2f, want 0.5", got)
	}
	if got := d.Level(0, 4000); got != 1 {
		t.Errorf("Level past max_at = %.2f, want 1", got)
	}
	if got := d.FourChance(0.5, 0, 400); math.Abs(got-0.8) > 1e-9 {
		t.Errorf("FourChance at max = %.2f, want 0.8", got)
	}
	if got := d.ExtraTileChance(0.9, 0, 400); got != 1 {
		t.Errorf("ExtraTileChance should clamp to 1, got %.2f", got)
	}
}
