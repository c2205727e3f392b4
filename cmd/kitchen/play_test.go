package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/voodoo-kitchen/internal/games/kitchen"
)

func withGameFlags(t *testing.T, configPath, difficulty string) {
	t.Helper()
	flagConfig, flagDifficulty = configPath, difficulty
	t.Cleanup(func() {
		flagConfig, flagDifficulty = "", ""
		kitchen.SetConfigPath("")
		kitchen.SetDifficultyPreset("")
	})
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kitchen.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestApplyGameFlags(t *testing.T) {
	tests := []struct {
		name       string
		config     string // file body, "" for no --config
		missing    bool
		difficulty string
		wantErr    string
	}{
		{name: "defaults"},
		{name: "valid config", config: "player: { speed: 5 }\n", difficulty: "hard"},
		{name: "bad difficulty", difficulty: "brutal", wantErr: "unknown difficulty"},
		{name: "repeated key", config: "shift: { main_seconds: 60 }\nshift: { main_seconds: 30 }\n", wantErr: "already defined"},
		{name: "invalid value", config: "player: { speed: 50 }\n", wantErr: "player.speed"},
		{name: "missing file", missing: true, wantErr: "read"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := ""
			switch {
			case tt.missing:
				path = filepath.Join(t.TempDir(), "nope.yaml")
			case tt.config != "":
				path = writeFile(t, tt.config)
			}
			withGameFlags(t, path, tt.difficulty)

			err := applyGameFlags()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, expected it to mention %q", err, tt.wantErr)
			}
		})
	}
}
