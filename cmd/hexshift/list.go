package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexshift/internal/games/hex2048"
	"github.com/vovakirdan/hexshift/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available modes",
	Long:  `Shows every registered mode and the campaign levels.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	if game, err := registry.Create(games[0].ID); err == nil {
		if c, ok := game.(registry.Controller); ok {
			fmt.Println()
			fmt.Printf("Controls: %s\n", c.Controls())
		}
	}

	fmt.Println()
	fmt.Println("Campaign levels:")
	for _, lvl := range hex2048.Levels {
		fmt.Printf("  %2d. %-14s radius %d  target %d\n", lvl.ID, lvl.Name, lvl.Radius, lvl.Target)
	}

	fmt.Println()
	fmt.Println("Run 'hexshift play <id>' to play a mode.")
}
