package tui

import (
	"errors"
	"fmt"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrUnknownScene is returned when switching to a scene that was never added.
var ErrUnknownScene = errors.New("tui: unknown scene")

// Scene names.
const (
	SceneMenu     = "menu"
	SceneKitchen  = "kitchen"
	SceneRush     = "kitchen_rush"
	SceneSettings = "settings"
	SceneScores   = "scores"
)

// SceneSwitcher tracks the showing scene and the one queued to load next.
type SceneSwitcher struct {
	scenes  []string
	current string
	toLoad  string
}

// NewSceneSwitcher creates a switcher over the given scenes. With no names
// every built-in scene is known.
func NewSceneSwitcher(names ...string) *SceneSwitcher {
	if len(names) == 0 {
		names = []string{SceneMenu, SceneKitchen, SceneRush, SceneSettings, SceneScores}
	}
	return &SceneSwitcher{scenes: slices.Clone(names)}
}

// SceneExists reports whether name is a known scene.
func (s *SceneSwitcher) SceneExists(name string) bool {
	return slices.Contains(s.scenes, name)
}

// SetSceneToLoad queues name to load next.
func (s *SceneSwitcher) SetSceneToLoad(name string) error {
	if !s.SceneExists(name) {
		return fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	s.toLoad = name
	return nil
}

// Pending returns the queued scene, if any.
func (s *SceneSwitcher) Pending() (string, bool) {
	return s.toLoad, s.toLoad != ""
}

// Load makes the queued scene current and returns it.
// Returns the current scene when nothing is queued.
func (s *SceneSwitcher) Load() string {
	if s.toLoad != "" {
		s.current, s.toLoad = s.toLoad, ""
	}
	return s.current
}

// Current returns the showing scene.
func (s *SceneSwitcher) Current() string {
	return s.current
}

// Scenes returns the known scene names.
func (s *SceneSwitcher) Scenes() []string {
	return slices.Clone(s.scenes)
}

// SwitchSceneMsg asks the session to show another scene.
type SwitchSceneMsg struct {
	Name string
}

// switchScene returns a command that emits SwitchSceneMsg.
func switchScene(name string) tea.Cmd {
	return func() tea.Msg {
		return SwitchSceneMsg{Name: name}
	}
}
