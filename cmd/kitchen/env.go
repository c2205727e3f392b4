package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/voodoo-kitchen/internal/core"
	"github.com/vovakirdan/voodoo-kitchen/internal/platform/tui"
	"github.com/vovakirdan/voodoo-kitchen/internal/settings"
	"github.com/vovakirdan/voodoo-kitchen/internal/storage"
)

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. The game still works without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores database unavailable", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// openSettings loads the player settings, falling back to in-memory defaults.
func openSettings() *settings.Manager {
	mgr, err := settings.Open(settings.AppName)
	if err != nil {
		logger.Warn("settings storage unavailable", "err", err)
	}
	mgr.SetLogger(logger)
	if err := mgr.Load(); err != nil {
		logger.Warn("cannot load settings, using defaults", "err", err)
	}
	return mgr
}

// newEnv assembles what the UI needs. The caller closes the store.
func newEnv() tui.Env {
	return tui.Env{
		Store:    openStore(),
		Settings: openSettings(),
		Config:   runtimeConfig(),
		Bell:     os.Stderr,
		Logger:   logger,
	}
}

func closeEnv(env tui.Env) {
	if env.Store != nil {
		_ = env.Store.Close()
	}
}
