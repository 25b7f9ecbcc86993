package main

import (
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexshift/internal/config"
	"github.com/vovakirdan/hexshift/internal/games/hex2048"
	"github.com/vovakirdan/hexshift/internal/platform/tui"
	"github.com/vovakirdan/hexshift/internal/registry"
	"github.com/vovakirdan/hexshift/internal/storage"
)

var (
	flagRadius int
	flagWin    int
	flagLevel  int
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode (default: hex2048).

Controls:
  Q W E      - Shift north-west, north, north-east
  A S D      - Shift south-west, south, south-east
  Up/Down    - Shift north/south
  C          - Show cube coordinates
  P/Space    - Pause
  R          - Restart (after game over)
  Esc        - Back (when paused or over)
  Ctrl+S     - Save a screenshot
  Ctrl+C     - Quit

Difficulty presets:
  easy   - Fewer extra tiles, more 2s
  normal - Config values, difficulty grows with score
  hard   - More extra tiles, more 4s
  fixed  - No progression

Examples:
  hexshift play
  hexshift play hex2048 --radius 4 --win 1024
  hexshift play hex2048_endless --preset hard
  hexshift play hex2048_campaign --level 3
  hexshift play --config ./my-hex.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagRadius, "radius", 0, "Board radius (0 = from config)")
	playCmd.Flags().IntVar(&flagWin, "win", -1, "Win tile, 0 disables winning (-1 = from config)")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Campaign start level (1-based)")
}

// applyGameFlags hands the shared settings to the game package.
func applyGameFlags() {
	hex2048.SetConfigPath(flagConfig)
	hex2048.SetDifficultyPreset(flagPreset)
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := hex2048.IDClassic
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		logger.Fatal("unknown mode", "mode", gameID, "available", strings.Join(registry.IDs(), ", "))
	}
	if flagRadius != 0 && (flagRadius < config.MinRadius || flagRadius > config.MaxRadius) {
		logger.Fatal("radius out of range", "radius", flagRadius, "min", config.MinRadius, "max", config.MaxRadius)
	}
	if flagLevel < 0 || flagLevel > hex2048.LevelCount() {
		logger.Fatal("no such level", "level", flagLevel, "levels", hex2048.LevelCount())
	}

	// Fail early on a broken config file
	if _, err := config.LoadHex(flagConfig); err != nil {
		logger.Fatal("cannot load config", "error", err)
	}

	applyGameFlags()
	hex2048.SetRadius(flagRadius)
	hex2048.SetWinValue(flagWin)
	hex2048.SetStartLevel(flagLevel)

	game, err := registry.Create(gameID)
	if err != nil {
		logger.Fatal("cannot create game", "error", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	_, runErr := tui.Run(game, store, runtimeConfig(), uuid.NewString())

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("game failed", "error", runErr)
		os.Exit(1)
	}
}
