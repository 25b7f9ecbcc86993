// hexshift is a hexagonal 2048 puzzle for the terminal.
//
// Usage:
//
//	hexshift                  - Start the mode picker menu
//	hexshift list             - List available modes
//	hexshift play [mode]      - Play a mode directly
//	hexshift scores [mode]    - Show high scores
//	hexshift serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible games
//	--db <path>     - Set database path (default: ~/.hexshift/scores.db, or $HEXSHIFT_DB)
package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hexshift/internal/core"
)

const (
	envDB     = "HEXSHIFT_DB"
	envConfig = "HEXSHIFT_CONFIG"

	defaultDBPath = "~/.hexshift/scores.db"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
	flagPreset string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "hexshift",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hexshift",
	Short: "Hexshift - 2048 on a hexagonal board",
	Long: `Hexshift is 2048 on a hexagonal board, played in the terminal.

Tiles slide in six directions. Equal tiles merge; reach the target
tile to win, or play endless until the board locks.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker (default)
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  hexshift
  hexshift play hex2048 --radius 4
  hexshift serve --ssh :2222
  hexshift scores hex2048_campaign`,
	PersistentPreRunE: loadEnv,
	Run:               runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDBPath, "Path to scores database (env "+envDB+")")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom hex2048 config YAML (env "+envConfig+")")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadEnv reads .env from the working directory and fills flags the
// user did not set from the environment.
func loadEnv(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if v := os.Getenv(envDB); v != "" && !cmd.Flags().Changed("db") {
		flagDBPath = v
	}
	if v := os.Getenv(envConfig); v != "" && !cmd.Flags().Changed("config") {
		flagConfig = v
	}
	return nil
}

// runtimeConfig builds the runtime config from the flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}
