package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/voodoo-kitchen/internal/core"
	"github.com/vovakirdan/voodoo-kitchen/internal/registry"
	"github.com/vovakirdan/voodoo-kitchen/internal/settings"
	"github.com/vovakirdan/voodoo-kitchen/internal/storage"
)

// Env is what every scene needs from its host.
type Env struct {
	Store    *storage.Store    // nil disables score saving
	Settings *settings.Manager // nil uses the default settings
	Config   core.RuntimeConfig
	Bell     io.Writer // receives the terminal bell, nil for silence
	Logger   *log.Logger
}

// prefs returns the active player settings.
func (e Env) prefs() settings.Settings {
	if e.Settings == nil {
		return settings.Default()
	}
	return e.Settings.Current()
}

func (e Env) logger() *log.Logger {
	if e.Logger == nil {
		return log.New(io.Discard)
	}
	return e.Logger
}

// Optional game capabilities.
type (
	resizer interface{ Resize(width, height int) }
	pauser  interface{ Pause() }
	statser interface{ Stats() core.ShiftStats }
)

// Model is the Bubble Tea model for running a kitchen shift.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	prefs      settings.Settings
	config     core.RuntimeConfig
	log        *log.Logger
	bell       io.Writer
	back       tea.Cmd // run on back-to-menu
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	termW      int
	termH      int
	rings      int // bells sent, for tests
	gen        uint64
	quitting   bool
	scoreSaved bool // Whether the shift has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, env Env) Model {
	cfg := env.Config
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	prefs := env.prefs()
	termW, termH := cfg.ScreenW, cfg.ScreenH
	cfg.ScreenW, cfg.ScreenH = viewportSize(prefs, termW, termH)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      env.Store,
		prefs:      prefs,
		config:     cfg,
		log:        env.logger().With("game", game.ID()),
		bell:       env.Bell,
		back:       tea.Quit,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		termW:      termW,
		termH:      termH,
		gen:        nextTickGen(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionBack:
		// Back pauses a running shift, a second press leaves it.
		if m.gameState.GameOver || m.gameState.Paused {
			return m, m.back
		}
		if p, ok := m.game.(pauser); ok {
			p.Pause()
			m.gameState = m.game.State()
			return m, nil
		}
		m.inputFrame.Set(core.ActionPause)
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.termW, m.termH = msg.Width, msg.Height
	m.config.ScreenW, m.config.ScreenH = viewportSize(m.prefs, msg.Width, msg.Height)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)

	if r, ok := m.game.(resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
		return m, nil
	}
	// Games that cannot adapt start over with the new dimensions
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate, m.gen)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if !m.gameState.GameOver {
		m.scoreSaved = false
	}

	for _, e := range result.Events {
		switch e {
		case core.EventOrderCorrect, core.EventOrderWrong, core.EventWalkout, core.EventShiftOver:
			m.ring()
		}
	}

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveShift()
		m.scoreSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate, m.gen)
}

// ring sounds the terminal bell unless the player muted it.
func (m *Model) ring() {
	if m.bell == nil || m.prefs.Muted() {
		return
	}
	if _, err := io.WriteString(m.bell, "\a"); err != nil {
		m.log.Debug("bell failed", "err", err)
		return
	}
	m.rings++
}

// saveShift stores the finished shift. Storage failures only get logged.
func (m *Model) saveShift() {
	if m.store == nil {
		return
	}
	if m.gameState.Score > 0 {
		if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
			m.log.Warn("cannot save score", "err", err)
		}
	}

	rec := storage.ShiftRecord{GameID: m.game.ID(), Score: m.gameState.Score}
	if s, ok := m.game.(statser); ok {
		st := s.Stats()
		rec.Served = st.Served
		rec.Wrong = st.Wrong
		rec.Walkouts = st.Walkouts
		rec.Customers = st.Customers
		rec.Duration = int(st.Seconds)
		rec.Difficulty = st.Difficulty
	}
	id, err := m.store.SaveShift(rec)
	if err != nil {
		m.log.Warn("cannot save shift", "err", err)
		return
	}
	m.log.Info("shift saved", "id", id, "score", rec.Score)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".kitchen", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("cannot create screenshot dir", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("cannot save screenshot", "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	out := RenderScreen(m.screen, m.prefs.Quality)

	// A preset smaller than the terminal sits in the middle of it
	if m.termW > m.screen.Width() || m.termH > m.screen.Height() {
		return lipgloss.Place(m.termW, m.termH, lipgloss.Center, lipgloss.Center, out)
	}
	return out
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// programOptions returns the Bubble Tea options for the player's settings.
func programOptions(prefs settings.Settings) []tea.ProgramOption {
	if prefs.Fullscreen {
		return []tea.ProgramOption{tea.WithAltScreen()}
	}
	return nil
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, env Env) error {
	model := NewModel(game, env)

	p := tea.NewProgram(model, programOptions(model.prefs)...)

	_, err := p.Run()
	return err
}
