package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	_ "github.com/vovakirdan/voodoo-kitchen/internal/games/kitchen"
	"github.com/vovakirdan/voodoo-kitchen/internal/settings"
)

// send feeds msg to the session and follows a scene switch it asks for.
func send(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	if cmd != nil {
		if sw, ok := cmd().(SwitchSceneMsg); ok {
			return send(t, sm, sw)
		}
	}
	return sm, cmd
}

func newSession(t *testing.T, start string) SessionModel {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	env := Env{Settings: settings.NewManager(nil), Config: testConfig()}
	return NewSessionModel(env, "tester", start)
}

func TestSessionMenuToSettingsAndBack(t *testing.T) {
	m := newSession(t, SceneMenu)
	if m.Scene() != SceneMenu {
		t.Fatalf("start scene = %q", m.Scene())
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Scene() != SceneSettings {
		t.Fatalf("scene = %q, expected settings", m.Scene())
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Scene() != SceneMenu {
		t.Errorf("scene = %q, expected menu", m.Scene())
	}
}

func TestSessionUnknownStart(t *testing.T) {
	m := newSession(t, "lobby")
	if m.Scene() != SceneMenu {
		t.Errorf("scene = %q, expected menu fallback", m.Scene())
	}
}

func TestSessionUnknownSwitchIgnored(t *testing.T) {
	m := newSession(t, SceneScores)
	m, _ = send(t, m, SwitchSceneMsg{Name: "credits"})
	if m.Scene() != SceneScores {
		t.Errorf("scene = %q", m.Scene())
	}
}

func TestSessionPlaysKitchen(t *testing.T) {
	m := newSession(t, SceneMenu)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Scene() != SceneKitchen {
		t.Fatalf("scene = %q, expected kitchen", m.Scene())
	}

	gm, ok := m.active.(Model)
	if !ok {
		t.Fatalf("active scene is %T", m.active)
	}
	m, _ = send(t, m, TickMsg{Gen: gm.gen})
	if m.View() == "" {
		t.Error("kitchen view is empty")
	}

	// Esc pauses, a second Esc returns to the menu
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Scene() != SceneKitchen {
		t.Fatal("first Esc should only pause")
	}
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Scene() != SceneMenu {
		t.Errorf("scene = %q, expected menu", m.Scene())
	}
}

func TestSessionQuitFromMenu(t *testing.T) {
	m := newSession(t, SceneMenu)
	m, cmd := send(t, m, runeKey("q"))
	if cmd == nil || !m.quitting || m.View() != "" {
		t.Error("q on the menu should end the session")
	}
}
