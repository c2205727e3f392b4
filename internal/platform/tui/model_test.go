package tui

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/voodoo-kitchen/internal/core"
	"github.com/vovakirdan/voodoo-kitchen/internal/settings"
	"github.com/vovakirdan/voodoo-kitchen/internal/storage"
)

// stubGame is a scripted game for driving the model.
type stubGame struct {
	resets  int
	steps   int
	width   int
	height  int
	paused  bool
	over    bool
	score   int
	events  []core.Event
	stats   core.ShiftStats
	lastIn  core.InputFrame
	resized bool
}

func (g *stubGame) ID() string {
	return "stub"
}
func (g *stubGame) Title() string {
	return "Stub"
}
func (g *stubGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.width, g.height = cfg.ScreenW, cfg.ScreenH
	g.over, g.paused = false, false
}
func (g *stubGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "stub kitchen")
}
func (g *stubGame) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.over, Paused: g.paused}
}
func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.lastIn = in.Clone()
	ev := g.events
	g.events = nil
	return core.StepResult{State: g.State(), Events: ev}
}
func (g *stubGame) Pause() {
	g.paused = true
}
func (g *stubGame) Stats() core.ShiftStats {
	return g.stats
}
func (g *stubGame) Resize(width, height int) {
	g.width, g.height, g.resized = width, height, true
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm, cmd
}

func tick(m Model) TickMsg {
	return TickMsg{Gen: m.gen}
}

func TestModelStepsOnOwnTicks(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, Env{Config: testConfig()})
	m.Init()

	m, _ = update(t, m, TickMsg{Gen: m.gen + 1000})
	if g.steps != 0 {
		t.Error("a tick from another model advanced the game")
	}

	m, _ = update(t, m, runeKey("3"))
	m, cmd := update(t, m, tick(m))
	if g.steps != 1 || cmd == nil {
		t.Fatalf("steps = %d, cmd = %v", g.steps, cmd)
	}
	if g.lastIn.SelectedSlot() != 2 {
		t.Error("key press did not reach the game")
	}
	if m.inputFrame.SelectedSlot() != -1 {
		t.Error("input frame should be cleared after a tick")
	}
}

func TestModelBackPausesFirst(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, Env{Config: testConfig()})
	m.back = switchScene(SceneMenu)
	m.Init()

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd != nil || !g.paused {
		t.Fatal("first back should pause the shift")
	}

	_, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("second back should leave")
	}
	if msg, ok := cmd().(SwitchSceneMsg); !ok || msg.Name != SceneMenu {
		t.Errorf("back cmd = %#v", cmd())
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&stubGame{}, Env{Config: testConfig()})
	m, cmd := update(t, m, runeKey("q"))
	if cmd == nil || !m.IsQuitting() || m.View() != "" {
		t.Error("q should quit")
	}
}

func TestModelSavesShiftOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	var bell bytes.Buffer
	g := &stubGame{}
	m := NewModel(g, Env{Store: store, Bell: &bell, Config: testConfig()})
	m.Init()

	g.over, g.score = true, 150
	g.events = []core.Event{core.EventOrderCorrect, core.EventShiftOver}
	g.stats = core.ShiftStats{Served: 3, Wrong: 1, Walkouts: 2, Customers: 4, Seconds: 61.5, Difficulty: "hard"}
	m, _ = update(t, m, tick(m))
	m, _ = update(t, m, tick(m))

	if bell.String() != "\a\a" || m.rings != 2 {
		t.Errorf("bell = %q, rings = %d", bell.String(), m.rings)
	}

	hs, err := store.HighScore("stub")
	if err != nil || hs != 150 {
		t.Errorf("HighScore = %d, %v", hs, err)
	}
	shifts, err := store.RecentShifts("stub", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(shifts) != 1 {
		t.Fatalf("saved %d shifts, expected 1", len(shifts))
	}
	got := shifts[0]
	if got.Served != 3 || got.Wrong != 1 || got.Walkouts != 2 || got.Duration != 61 || got.Difficulty != "hard" {
		t.Errorf("shift = %+v", got)
	}
}

func TestModelMutedBell(t *testing.T) {
	mgr := settings.NewManager(nil)
	mgr.SetVolume(0)

	var bell bytes.Buffer
	g := &stubGame{events: []core.Event{core.EventWalkout}}
	m := NewModel(g, Env{Settings: mgr, Bell: &bell, Config: testConfig()})
	m.Init()
	update(t, m, tick(m))

	if bell.Len() != 0 {
		t.Error("muted settings should silence the bell")
	}
}

func TestModelResize(t *testing.T) {
	mgr := settings.NewManager(nil)
	mgr.SetFullscreen(false)
	mgr.SetResolution(0) // 80x24

	g := &stubGame{}
	m := NewModel(g, Env{Settings: mgr, Config: core.RuntimeConfig{ScreenW: 120, ScreenH: 40, TickRate: 60, Seed: 1}})
	m.Init()
	if g.width != 80 || g.height != 24 {
		t.Errorf("game started at %dx%d, expected the 80x24 preset", g.width, g.height)
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 70, Height: 20})
	if !g.resized || g.width != 70 || g.height != 20 {
		t.Errorf("Resize got %dx%d", g.width, g.height)
	}
	if g.resets != 1 {
		t.Error("a resizable game must not be reset")
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 150, Height: 50})
	if !strings.Contains(m.View(), "stub kitchen") {
		t.Error("view lost the game screen")
	}
}
