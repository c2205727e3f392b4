package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/voodoo-kitchen/internal/platform/tui"
	"github.com/vovakirdan/voodoo-kitchen/internal/settings"
)

var (
	flagVolume      float64
	flagQuality     string
	flagFullscreen  bool
	flagResolution  int
	flagResetPrefs  bool
	flagEditSetting bool
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change player settings",
	Long: `Show the player settings, or change them with flags.

Settings:
  --volume      0.0 ~ 1.0, 0 silences the terminal bell
  --quality     mono, basic or full colour
  --fullscreen  run in the alternate screen
  --resolution  viewport preset index (0: 80x24, 1: 100x30, 2: 120x40)

Examples:
  kitchen settings
  kitchen settings --volume 0
  kitchen settings --quality basic --fullscreen=false --resolution 1
  kitchen settings --reset
  kitchen settings --edit`,
	Run: runSettings,
}

func init() {
	settingsCmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Bell volume 0.0 ~ 1.0")
	settingsCmd.Flags().StringVar(&flagQuality, "quality", "full", "Colour quality: mono, basic, full")
	settingsCmd.Flags().BoolVar(&flagFullscreen, "fullscreen", true, "Use the alternate screen")
	settingsCmd.Flags().IntVar(&flagResolution, "resolution", 0, "Viewport preset index")
	settingsCmd.Flags().BoolVar(&flagResetPrefs, "reset", false, "Restore the default settings")
	settingsCmd.Flags().BoolVar(&flagEditSetting, "edit", false, "Open the interactive settings screen")
}

func parseQuality(name string) (int, error) {
	for q := settings.QualityMono; q <= settings.QualityFull; q++ {
		if settings.QualityName(q) == name {
			return q, nil
		}
	}
	return 0, fmt.Errorf("unknown quality %q (mono, basic, full)", name)
}

func runSettings(cmd *cobra.Command, _ []string) {
	mgr := openSettings()

	if flagEditSetting {
		cfg := runtimeConfig()
		if err := tui.RunSettings(mgr, cfg.ScreenW, cfg.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flagResetPrefs {
		if err := mgr.Reset(); err != nil {
			fmt.Fprintf(os.Stderr, "Error resetting settings: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Settings restored to defaults.")
		printSettings(mgr)
		return
	}

	s := mgr.Current()
	changed := false
	flags := cmd.Flags()
	if flags.Changed("volume") {
		s.Volume, changed = flagVolume, true
	}
	if flags.Changed("quality") {
		q, err := parseQuality(flagQuality)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		s.Quality, changed = q, true
	}
	if flags.Changed("fullscreen") {
		s.Fullscreen, changed = flagFullscreen, true
	}
	if flags.Changed("resolution") {
		if flagResolution < 0 || flagResolution >= len(settings.Resolutions) {
			fmt.Fprintf(os.Stderr, "Error: resolution must be 0..%d\n", len(settings.Resolutions)-1)
			os.Exit(1)
		}
		s.Resolution, changed = flagResolution, true
	}

	if changed {
		if err := mgr.Apply(s); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving settings: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Settings saved.")
	}
	printSettings(mgr)
}

func printSettings(mgr *settings.Manager) {
	s := mgr.Current()
	fmt.Printf("Volume:      %.0f%%\n", s.Volume*100)
	fmt.Printf("Quality:     %s\n", settings.QualityName(s.Quality))
	fmt.Printf("Fullscreen:  %v\n", s.Fullscreen)
	fmt.Printf("Resolution:  %s\n", s.Viewport())
	switch {
	case !mgr.Persistent():
		fmt.Println("(settings storage unavailable, nothing is kept)")
	case !mgr.Custom():
		fmt.Println("(defaults)")
	}
}
