package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/voodoo-kitchen/internal/settings"
)

// volumeStep is how much one key press moves the volume slider.
const volumeStep = 0.1

// Rows of the settings screen.
const (
	rowVolume = iota
	rowQuality
	rowFullscreen
	rowResolution
	rowCount
)

// SettingsKeyMap defines the key bindings for the settings screen.
type SettingsKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Apply key.Binding
	Reset key.Binding
	Back  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SettingsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Apply, k.Reset, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k SettingsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Apply, k.Reset, k.Back, k.Quit},
	}
}

// DefaultSettingsKeyMap returns default key bindings.
func DefaultSettingsKeyMap() SettingsKeyMap {
	return SettingsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up", "prev"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down", "next"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("left", "less"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "d"),
			key.WithHelp("right", "more"),
		),
		Apply: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "defaults"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// SettingsModel edits the player settings. Changes stay in a draft until
// applied.
type SettingsModel struct {
	manager  *settings.Manager
	draft    settings.Settings
	cursor   int
	status   string
	keys     SettingsKeyMap
	help     help.Model
	width    int
	height   int
	back     tea.Cmd
	quitting bool
}

// NewSettingsModel creates a settings screen over manager.
func NewSettingsModel(manager *settings.Manager, width, height int) SettingsModel {
	if manager == nil {
		manager = settings.NewManager(nil)
	}
	return SettingsModel{
		manager: manager,
		draft:   manager.Current(),
		keys:    DefaultSettingsKeyMap(),
		help:    help.New(),
		width:   width,
		height:  height,
		back:    tea.Quit,
	}
}

// Init initializes the settings model.
func (m SettingsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the settings screen.
func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			return m, m.back
		case key.Matches(msg, m.keys.Up):
			m.cursor = (m.cursor - 1 + rowCount) % rowCount
		case key.Matches(msg, m.keys.Down):
			m.cursor = (m.cursor + 1) % rowCount
		case key.Matches(msg, m.keys.Left):
			m.adjust(-1)
		case key.Matches(msg, m.keys.Right):
			m.adjust(1)
		case key.Matches(msg, m.keys.Apply):
			m.apply()
		case key.Matches(msg, m.keys.Reset):
			if err := m.manager.Reset(); err != nil {
				m.status = "Reset failed: " + err.Error()
			} else {
				m.status = "Defaults restored"
			}
			m.draft = m.manager.Current()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

// adjust moves the selected row one step in dir.
func (m *SettingsModel) adjust(dir int) {
	m.status = ""
	switch m.cursor {
	case rowVolume:
		v := m.draft.Volume + float64(dir)*volumeStep
		m.draft.Volume = math.Round(v*10) / 10
	case rowQuality:
		m.draft.Quality = (m.draft.Quality + dir + settings.QualityFull + 1) % (settings.QualityFull + 1)
	case rowFullscreen:
		m.draft.Fullscreen = !m.draft.Fullscreen
	case rowResolution:
		n := len(settings.Resolutions)
		m.draft.Resolution = (m.draft.Resolution + dir + n) % n
	}
	m.draft = m.draft.Clamp()
}

func (m *SettingsModel) apply() {
	if err := m.manager.Apply(m.draft); err != nil {
		m.status = "Save failed: " + err.Error()
		return
	}
	m.draft = m.manager.Current()
	if m.manager.Persistent() {
		m.status = "Settings saved"
	} else {
		m.status = "Settings applied for this session"
	}
}

// Draft returns the settings being edited.
func (m SettingsModel) Draft() settings.Settings {
	return m.draft
}

// IsQuitting returns true if user requested to quit entirely.
func (m SettingsModel) IsQuitting() bool {
	return m.quitting
}

// View renders the settings screen.
func (m SettingsModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).MarginBottom(1)
	selStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 2)

	rows := []string{
		fmt.Sprintf("Volume      %s %3.0f%%", slider(m.draft.Volume, 10), m.draft.Volume*100),
		fmt.Sprintf("Quality     %s", settings.QualityName(m.draft.Quality)),
		fmt.Sprintf("Fullscreen  %s", onOff(m.draft.Fullscreen)),
		fmt.Sprintf("Resolution  %s", m.draft.Viewport()),
	}
	for i := range rows {
		if i == m.cursor {
			rows[i] = selStyle.Render("> " + rows[i])
		} else {
			rows[i] = "  " + rows[i]
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(centerText("SETTINGS", m.width)))
	b.WriteString("\n\n")
	b.WriteString(boxStyle.Render(strings.Join(rows, "\n")))
	b.WriteString("\n\n")
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if !m.manager.Persistent() {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("Settings storage unavailable, changes are not kept"))
		b.WriteString("\n")
	}
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(m.help.View(m.keys)))
	return b.String()
}

func slider(v float64, width int) string {
	n := int(math.Round(v * float64(width)))
	return "[" + strings.Repeat("#", n) + strings.Repeat("-", width-n) + "]"
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// RunSettings runs the settings screen on its own.
func RunSettings(manager *settings.Manager, width, height int) error {
	p := tea.NewProgram(NewSettingsModel(manager, width, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
