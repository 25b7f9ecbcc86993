package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexshift/internal/registry"
	"github.com/vovakirdan/hexshift/internal/storage"
)

var flagScoreLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top scores for a mode, or a summary of every mode
when no mode is given.

Examples:
  hexshift scores
  hexshift scores hex2048
  hexshift scores hex2048_campaign --limit 20`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoreLimit, "limit", 10, "Number of scores to show")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Fatal("cannot open scores database", "error", err)
	}
	defer store.Close()

	if len(args) == 0 {
		printSummary(store)
		return
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		logger.Fatal("unknown mode", "mode", gameID, "available", strings.Join(registry.IDs(), ", "))
	}

	game, err := registry.Create(gameID)
	if err != nil {
		logger.Fatal("cannot create game", "error", err)
	}

	scores, err := store.TopScores(gameID, flagScoreLimit)
	if err != nil {
		logger.Fatal("cannot retrieve scores", "error", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'hexshift play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-5s  %-3s  %s\n", "Rank", "Score", "Tile", "Radius", "Moves", "Won", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-5s  %-3s  %s\n", "----", "-----", "----", "------", "-----", "---", "----")

	for i, e := range scores {
		won := ""
		if e.Won {
			won = "yes"
		}
		fmt.Printf("  %-4d  %-8d  %-6d  %-6d  %-5d  %-3s  %s\n",
			i+1, e.Score, e.MaxTile, e.Radius, e.Moves, won, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if highScore, err := store.HighScore(gameID); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}

// printSummary prints aggregated stats for every mode with results.
func printSummary(store *storage.Store) {
	all, err := store.AllGameStats()
	if err != nil {
		logger.Fatal("cannot retrieve stats", "error", err)
	}

	if len(all) == 0 {
		fmt.Println("No scores recorded yet.")
		return
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-18s  %-5s  %-4s  %-8s  %-6s  %s\n", "Mode", "Games", "Wins", "Best", "Tile", "Last played")
	fmt.Printf("  %-18s  %-5s  %-4s  %-8s  %-6s  %s\n", "----", "-----", "----", "----", "----", "-----------")
	for _, id := range ids {
		s := all[id]
		fmt.Printf("  %-18s  %-5d  %-4d  %-8d  %-6d  %s\n",
			id, s.GamesCount, s.Wins, s.HighScore, s.BestTile, s.LastPlayed.Format("2006-01-02 15:04"))
	}
}
