package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/voodoo-kitchen/internal/config"
)

var flagDumpConfig bool

var recipesCmd = &cobra.Command{
	Use:   "recipes",
	Short: "Print the recipe book",
	Long: `Print the recipes, baskets and appliances of the active kitchen config.

Examples:
  kitchen recipes
  kitchen recipes --config ./my-kitchen.yaml
  kitchen recipes --dump > ~/.kitchen/configs/kitchen.yaml`,
	Run: runRecipes,
}

func init() {
	recipesCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom kitchen config YAML")
	recipesCmd.Flags().BoolVar(&flagDumpConfig, "dump", false, "Print the full config as YAML")
}

func runRecipes(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if flagDumpConfig {
		data, err := config.Marshal(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		_, _ = os.Stdout.Write(data)
		return
	}

	book, err := cfg.RecipeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recipes:")
	for _, r := range book.Recipes() {
		fmt.Printf("  %s\n", r)
	}

	if baskets, err := cfg.BasketList(); err == nil {
		fmt.Println()
		fmt.Println("Baskets:")
		for _, b := range baskets {
			fmt.Printf("  %-12s at %s\n", b.Kind.Label(), b.Point)
		}
	}

	if apps, err := cfg.ApplianceList(); err == nil {
		fmt.Println()
		fmt.Println("Appliances:")
		for _, a := range apps {
			name := a.Name
			if name == "" {
				name = a.Point.String()
			}
			line := fmt.Sprintf("  %-12s at %s", name, a.Point)
			if a.CookSeconds > 0 {
				line += fmt.Sprintf(", cooks in %.1fs", a.CookSeconds)
			}
			if a.Transform != nil {
				line += fmt.Sprintf(", %s -> %s", a.Transform.From.Label(), a.Transform.To.Label())
			}
			fmt.Println(line)
		}
	}

	fmt.Println()
	fmt.Printf("Counter at %s. Shift %.0fs, rush %.0fs.\n", cfg.CounterPoint(), cfg.Shift.MainSeconds, cfg.RushSeconds())
}
