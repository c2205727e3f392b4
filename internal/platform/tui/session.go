package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/voodoo-kitchen/internal/registry"
)

// SessionModel manages the full flow for one player: menu, kitchen,
// settings, scores and back. It is the top-level model for `kitchen menu`
// and for SSH sessions.
type SessionModel struct {
	env      Env
	id       string
	user     string
	log      *log.Logger
	scenes   *SceneSwitcher
	active   tea.Model
	quitting bool
}

// NewSessionModel creates a session that starts on the given scene.
// An unknown start scene falls back to the menu.
func NewSessionModel(env Env, user, start string) SessionModel {
	id := uuid.NewString()
	m := SessionModel{
		env:    env,
		id:     id,
		user:   user,
		log:    env.logger().With("session", id[:8], "user", user),
		scenes: NewSceneSwitcher(),
	}
	if err := m.scenes.SetSceneToLoad(start); err != nil {
		m.log.Warn("bad start scene", "err", err)
		_ = m.scenes.SetSceneToLoad(SceneMenu)
	}
	m.active = m.build(m.scenes.Load())
	return m
}

// ID returns the session id.
func (m SessionModel) ID() string {
	return m.id
}

// Scene returns the showing scene.
func (m SessionModel) Scene() string {
	return m.scenes.Current()
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.active.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.env.Config.ScreenW = msg.Width
		m.env.Config.ScreenH = msg.Height

	case SwitchSceneMsg:
		if err := m.scenes.SetSceneToLoad(msg.Name); err != nil {
			m.log.Error("cannot switch scene", "err", err)
			return m, nil
		}
		from := m.scenes.Current()
		m.active = m.build(m.scenes.Load())
		m.log.Info("scene switched", "from", from, "to", m.scenes.Current())
		return m, m.active.Init()
	}

	var cmd tea.Cmd
	m.active, cmd = m.active.Update(msg)
	if q, ok := m.active.(interface{ IsQuitting() bool }); ok && q.IsQuitting() {
		m.quitting = true
	}
	return m, cmd
}

// build creates the model for a scene.
func (m SessionModel) build(scene string) tea.Model {
	cfg := m.env.Config
	back := switchScene(SceneMenu)

	switch scene {
	case SceneKitchen, SceneRush:
		game, err := registry.Create(scene)
		if err != nil {
			m.log.Error("cannot create game", "scene", scene, "err", err)
			break
		}
		gm := NewModel(game, m.env)
		gm.back = back
		gm.log = gm.log.With("session", m.id[:8])
		return gm

	case SceneSettings:
		sm := NewSettingsModel(m.env.Settings, cfg.ScreenW, cfg.ScreenH)
		sm.back = back
		return sm

	case SceneScores:
		sb := NewScoreboardModel(m.env.Store, cfg.ScreenW, cfg.ScreenH)
		sb.back = back
		return sb
	}

	menu := NewMenuModel(m.env.Store, cfg)
	menu.embedded = true
	return menu
}

// View renders the current scene.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	return m.active.View()
}

// RunSession runs a local session starting on scene.
func RunSession(env Env, start string) error {
	model := NewSessionModel(env, "local", start)
	p := tea.NewProgram(model, programOptions(env.prefs())...)
	_, err := p.Run()
	return err
}
