package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexshift/internal/config"
	"github.com/vovakirdan/hexshift/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the hexshift SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the mode picker menu.
Scores are stored per-server (all users share the same leaderboard);
the scoreboard can filter to the current session.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.hexshift/host_key

Examples:
  hexshift serve                           # Listen on :23234 with auto-generated key
  hexshift serve --ssh :2222               # Listen on port 2222
  hexshift serve --host-key ./my_host_key  # Use specific host key
  hexshift serve --db ./scores.db          # Use specific database
  hexshift serve --idle-timeout 10m

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Idle time before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	hexCfg, err := config.LoadHex(flagConfig)
	if err != nil {
		logger.Fatal("cannot load config", "error", err)
	}
	applyGameFlags()

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = flagIdleTimeout
	cfg.TickRate = flagFPS
	cfg.Radius = hexCfg.Board.Radius

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		logger.Fatal("cannot create server", "error", err)
	}

	fmt.Printf("Starting hexshift SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		logger.Fatal("server stopped", "error", err)
	}
}
