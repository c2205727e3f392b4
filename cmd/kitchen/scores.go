package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/voodoo-kitchen/internal/platform/tui"
	"github.com/vovakirdan/voodoo-kitchen/internal/registry"
	"github.com/vovakirdan/voodoo-kitchen/internal/storage"
)

var (
	flagClearScores bool
	flagBrowse      bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores for a game mode",
	Long: `Display the top 10 scores and the shift statistics for a game mode.

Examples:
  kitchen scores
  kitchen scores kitchen_rush
  kitchen scores kitchen --clear
  kitchen scores --browse`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete every score and shift of the game")
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Open the interactive scoreboard")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := "kitchen"
	if len(args) > 0 {
		gameID = args[0]
	}

	info, ok := registry.Info(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'kitchen list' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagBrowse {
		cfg := runtimeConfig()
		if err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Printf("Cleared scores for %s.\n", info.Title)
		return
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'kitchen play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if highScore, err := store.HighScore(gameID); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}

	stats, err := store.GetShiftStats(gameID)
	if err != nil || stats.Shifts == 0 {
		return
	}
	avg := int(stats.AvgDuration)
	fmt.Printf("Shifts: %d  Served: %d  Wrong: %d  Walkouts: %d\n",
		stats.Shifts, stats.Served, stats.Wrong, stats.Walkouts)
	fmt.Printf("Accuracy: %.0f%%  Average shift: %d:%02d\n", stats.Accuracy*100, avg/60, avg%60)

	if gs, err := store.GetGameStats(gameID); err == nil && gs.GamesCount > 0 {
		fmt.Printf("Average score: %.0f  Last played: %s\n", gs.AvgScore, gs.LastPlayed.Format("2006-01-02 15:04"))
	}
}
