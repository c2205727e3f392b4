// Package settings stores the player's preferences (volume, colour quality,
// fullscreen, viewport size) between runs.
package settings

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AppName is the gdata application directory.
const AppName = "voodoo_kitchen"

// Quality levels pick how the screen is coloured.
const (
	QualityMono  = 0
	QualityBasic = 1
	QualityFull  = 2
)

// Resolution is a viewport size in terminal cells.
type Resolution struct {
	Width  int
	Height int
}

// String renders "WxH".
func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// Resolutions are the selectable viewport presets.
var Resolutions = []Resolution{
	{Width: 80, Height: 24},
	{Width: 100, Height: 30},
	{Width: 120, Height: 40},
}

// Settings are the player's preferences.
type Settings struct {
	Volume     float64 `yaml:"volume"`     // 0.0 ~ 1.0, 0 silences the bell
	Quality    int     `yaml:"quality"`    // QualityMono .. QualityFull
	Fullscreen bool    `yaml:"fullscreen"` // run in the alternate screen
	Resolution int     `yaml:"resolution"` // index into Resolutions
}

// Default returns the stock preferences.
func Default() Settings {
	return Settings{
		Volume:     0.5,
		Quality:    QualityFull,
		Fullscreen: true,
		Resolution: 0,
	}
}

// Clamp brings every field into range.
func (s Settings) Clamp() Settings {
	if s.Volume < 0 {
		s.Volume = 0
	}
	if s.Volume > 1 {
		s.Volume = 1
	}
	if s.Quality < QualityMono {
		s.Quality = QualityMono
	}
	if s.Quality > QualityFull {
		s.Quality = QualityFull
	}
	if s.Resolution < 0 || s.Resolution >= len(Resolutions) {
		s.Resolution = 0
	}
	return s
}

// Viewport returns the selected resolution.
func (s Settings) Viewport() Resolution {
	return Resolutions[s.Clamp().Resolution]
}

// Muted reports whether the bell is off.
func (s Settings) Muted() bool {
	return s.Volume <= 0
}

// QualityName returns a label for the quality level.
func QualityName(q int) string {
	switch q {
	case QualityMono:
		return "mono"
	case QualityBasic:
		return "basic"
	default:
		return "full"
	}
}

// Storage keys
const (
	prefsObject    = "prefs"
	propCustom     = "custom_settings"
	propVolume     = "volume"
	propQuality    = "quality"
	propFullscreen = "fullscreen"
	propResolution = "resolution"
)

// Manager loads and saves preferences. A nil store runs in memory only.
type Manager struct {
	store   *gdata.Manager
	current Settings
	custom  bool
	logger  *log.Logger
}

// Open opens the preference store for appName. When the store cannot be
// opened the returned manager still works in memory and the error says why.
func Open(appName string) (*Manager, error) {
	store, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return NewManager(nil), fmt.Errorf("settings: open store: %w", err)
	}
	return NewManager(store), nil
}

// NewManager creates a manager on top of store, which may be nil.
func NewManager(store *gdata.Manager) *Manager {
	return &Manager{
		store:   store,
		current: Default(),
		logger:  log.New(io.Discard),
	}
}

// SetLogger sets where load/save messages go.
func (m *Manager) SetLogger(l *log.Logger) {
	if l != nil {
		m.logger = l
	}
}

// Persistent reports whether settings survive a restart.
func (m *Manager) Persistent() bool {
	return m.store != nil
}

// Load reads the saved preferences. If the player never applied custom
// settings, the defaults are used and the store is wiped back to them.
func (m *Manager) Load() error {
	if m.store == nil {
		m.current, m.custom = Default(), false
		return nil
	}

	var custom bool
	if err := m.loadProp(propCustom, &custom); err != nil || !custom {
		m.logger.Debug("no custom settings, using defaults")
		return m.Reset()
	}

	s := Default()
	for prop, dst := range map[string]any{
		propVolume:     &s.Volume,
		propQuality:    &s.Quality,
		propFullscreen: &s.Fullscreen,
		propResolution: &s.Resolution,
	} {
		if err := m.loadProp(prop, dst); err != nil {
			m.current, m.custom = Default(), false
			return fmt.Errorf("settings: load %s: %w", prop, err)
		}
	}

	m.current, m.custom = s.Clamp(), true
	m.logger.Debug("settings loaded", "volume", m.current.Volume, "quality", m.current.Quality,
		"fullscreen", m.current.Fullscreen, "resolution", m.current.Viewport())
	return nil
}

// Apply stores s as the player's custom settings.
func (m *Manager) Apply(s Settings) error {
	m.current, m.custom = s.Clamp(), true
	if err := m.write(); err != nil {
		return err
	}
	m.logger.Info("settings applied", "volume", m.current.Volume, "quality", QualityName(m.current.Quality))
	return nil
}

// Save persists the current in-memory settings as custom settings.
func (m *Manager) Save() error {
	return m.Apply(m.current)
}

// Reset restores the defaults and clears the custom flag.
func (m *Manager) Reset() error {
	m.current, m.custom = Default(), false
	return m.write()
}

// Current returns the active settings.
func (m *Manager) Current() Settings {
	return m.current
}

// Custom reports whether the player applied their own settings.
func (m *Manager) Custom() bool {
	return m.custom
}

// SetVolume changes the volume in memory. Call Save to persist.
func (m *Manager) SetVolume(v float64) {
	m.current.Volume = v
	m.current = m.current.Clamp()
}

// SetQuality changes the colour quality in memory.
func (m *Manager) SetQuality(q int) {
	m.current.Quality = q
	m.current = m.current.Clamp()
}

// SetFullscreen changes the fullscreen flag in memory.
func (m *Manager) SetFullscreen(v bool) {
	m.current.Fullscreen = v
}

// SetResolution changes the viewport preset in memory.
func (m *Manager) SetResolution(i int) {
	m.current.Resolution = i
	m.current = m.current.Clamp()
}

func (m *Manager) write() error {
	if m.store == nil {
		return nil
	}
	for prop, v := range map[string]any{
		propCustom:     m.custom,
		propVolume:     m.current.Volume,
		propQuality:    m.current.Quality,
		propFullscreen: m.current.Fullscreen,
		propResolution: m.current.Resolution,
	} {
		if err := m.saveProp(prop, v); err != nil {
			return err
		}
	}
	return nil
}

func (m *Manager) saveProp(prop string, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("settings: marshal %s: %w", prop, err)
	}
	if err := m.store.SaveObjectProp(prefsObject, prop, data); err != nil {
		return fmt.Errorf("settings: save %s: %w", prop, err)
	}
	return nil
}

func (m *Manager) loadProp(prop string, dst any) error {
	if !m.store.ObjectPropExists(prefsObject, prop) {
		return fmt.Errorf("%s not set", prop)
	}
	data, err := m.store.LoadObjectProp(prefsObject, prop)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, dst)
}
