package main

import (
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexshift/internal/config"
	"github.com/vovakirdan/hexshift/internal/games/hex2048"
	"github.com/vovakirdan/hexshift/internal/platform/tui"
	"github.com/vovakirdan/hexshift/internal/registry"
	"github.com/vovakirdan/hexshift/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the mode picker menu",
	Long: `Start hexshift in interactive menu mode.

Pick a mode, change the board radius with left/right, or open the
campaign level list. After a game you return to the menu.

Controls:
  Up/Down/j/k   - Navigate menu
  Left/Right    - Change radius (classic, endless)
  Enter/Space   - Select
  Tab           - Scoreboard
  Q             - Quit

Examples:
  hexshift menu
  hexshift menu --fps 60
  hexshift menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	hexCfg, err := config.LoadHex(flagConfig)
	if err != nil {
		logger.Warn("cannot load config, using defaults", "error", err)
		hexCfg = config.DefaultHexConfig()
	}
	applyGameFlags()

	cfg := runtimeConfig()
	radius := hexCfg.Board.Radius
	sessionID := uuid.NewString()

	for {
		menuResult, err := tui.RunMenu(store, cfg, radius)
		if err != nil {
			logger.Error("menu failed", "error", err)
			return
		}

		cfg = menuResult.Config
		radius = menuResult.Radius

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, sessionID)
			if sbErr != nil {
				logger.Error("scoreboard failed", "error", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("cannot create game", "error", err)
			continue
		}
		if hg, ok := game.(*hex2048.Game); ok {
			hg.SetOptions(menuResult.Options)
		}

		// New seed for each game unless one was fixed on the command line
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		outcome, err := tui.Run(game, store, cfg, sessionID)
		if err != nil {
			logger.Error("game failed", "error", err)
		}
		if outcome == tui.OutcomeQuit {
			return
		}
	}
}
