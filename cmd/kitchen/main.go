// kitchen is a terminal cooking game: walk the kitchen, combine ingredients
// into dishes and serve customers before the shift ends.
//
// Usage:
//
//	kitchen play [kitchen|kitchen_rush]  - Play a shift
//	kitchen menu                         - Start the main menu
//	kitchen list                         - List game modes
//	kitchen recipes                      - Print the recipe book
//	kitchen scores <game>                - Show high scores and shift stats
//	kitchen settings                     - Show or change player settings
//	kitchen serve                        - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible shifts
//	--db <path>        - Set database path (default: ~/.kitchen/scores.db)
//	--log-file <path>  - Write logs to a file (default: ~/.kitchen/kitchen.log)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/voodoo-kitchen/internal/games/kitchen"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

// logger is set up before every command runs.
var logger = log.New(io.Discard)

func main() {
	err := rootCmd.Execute()
	closeLog()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kitchen",
	Short: "VooDoo Kitchen - cook and serve in your terminal",
	Long: `VooDoo Kitchen is a terminal cooking game. Walk between the
baskets and appliances, combine ingredients into dishes and serve the
customers at the counter before the shift clock runs out.

Available commands:
  play      - Play a shift directly
  menu      - Main menu with settings and scores
  list      - Show the game modes
  recipes   - Print the recipe book
  scores    - View high scores
  settings  - Show or change player settings
  serve     - Start SSH server for remote play

Examples:
  kitchen play
  kitchen play kitchen_rush --difficulty hard
  kitchen menu
  kitchen serve --ssh :2222
  kitchen scores kitchen`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.kitchen/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.kitchen/kitchen.log", "Log file path (empty disables logging)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(recipesCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(serveCmd)
}

var logFile *os.File

// setupLogging opens the log file. Bubble Tea owns the terminal, so game
// logs never go to stdout.
func setupLogging(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	if flagLogFile == "" {
		return nil
	}

	path, err := expandHome(flagLogFile)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	logFile = f

	logger = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "kitchen",
		Level:           level,
	})
	kitchen.SetLogger(logger)
	return nil
}

func closeLog() {
	if logFile != nil {
		_ = logFile.Close()
	}
}

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
