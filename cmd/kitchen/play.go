package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/voodoo-kitchen/internal/config"
	"github.com/vovakirdan/voodoo-kitchen/internal/games/kitchen"
	"github.com/vovakirdan/voodoo-kitchen/internal/platform/tui"
	"github.com/vovakirdan/voodoo-kitchen/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [kitchen|kitchen_rush]",
	Short: "Play a shift",
	Long: `Start a kitchen shift. The default mode is "kitchen";
"kitchen_rush" is a short shift.

Controls:
  Left/Right, A/D  - Select the previous/next station
  1..9, 0          - Select a station directly
  Enter/Space      - Walk to the selected station and use it
  P                - Pause
  Esc              - Pause, press again to leave
  R                - Restart
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More patient customers with shorter orders
  normal - The config as written
  hard   - Impatient customers with longer orders
  fixed  - No progression, stays at config's initial level

Examples:
  kitchen play
  kitchen play kitchen_rush
  kitchen play --difficulty hard
  kitchen play --config ./my-kitchen.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom kitchen config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// applyGameFlags checks --config and --difficulty and hands them to the
// kitchen. A config file that does not load is an error here, the game
// itself would fall back to the defaults.
func applyGameFlags() error {
	if _, ok := config.ParsePreset(flagDifficulty); !ok {
		return fmt.Errorf("unknown difficulty %q (easy, normal, hard, fixed)", flagDifficulty)
	}
	if flagConfig != "" {
		if _, err := config.Load(flagConfig); err != nil {
			return err
		}
	}
	kitchen.SetConfigPath(flagConfig)
	kitchen.SetDifficultyPreset(flagDifficulty)
	return nil
}

// mustApplyGameFlags reports a bad flag on stderr and exits.
func mustApplyGameFlags() {
	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "kitchen"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'kitchen list' to see available modes.")
		os.Exit(1)
	}
	mustApplyGameFlags()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	env := newEnv()
	logger.Info("play", "game", gameID, "difficulty", flagDifficulty, "config", flagConfig)
	runErr := tui.Run(game, env)

	// Close store before potential exit
	closeEnv(env)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
