package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/voodoo-kitchen/internal/registry"
	"github.com/vovakirdan/voodoo-kitchen/internal/storage"
)

const (
	maxScores   = 100 // rows loaded for the score page
	maxShifts   = 50  // rows loaded for the shift log
	tableChrome = 10  // title, tabs, summary, help and borders
)

// Pages of the scoreboard.
const (
	pageScores = iota
	pageShifts
	pageCount
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Mode key.Binding // next kitchen mode
	Page key.Binding // scores <-> shift log
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Mode, k.Page, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Mode}, {k.Page, k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up", "scroll")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down", "scroll")),
		Mode: key.NewBinding(key.WithKeys("left", "right", "h", "l"), key.WithHelp("left/right", "mode")),
		Page: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "scores/shifts")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the high scores and the shift log of every
// kitchen mode.
type ScoreboardModel struct {
	modes    []registry.GameInfo
	mode     int
	page     int
	store    *storage.Store
	scores   []storage.ScoreEntry
	shifts   []storage.ShiftRecord
	stats    *storage.ShiftStats
	loadErr  error
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	back     tea.Cmd
	quitting bool
}

// NewScoreboardModel creates a scoreboard over store. A nil store shows
// empty pages.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
		back:   tea.Quit,
	}
	m.reload()
	return m
}

// Mode returns the id of the kitchen mode being shown.
func (m ScoreboardModel) Mode() string {
	if len(m.modes) == 0 {
		return ""
	}
	return m.modes[m.mode].ID
}

// reload fetches the data of the current mode and rebuilds the table.
func (m *ScoreboardModel) reload() {
	m.scores, m.shifts, m.stats, m.loadErr = nil, nil, nil, nil
	if id := m.Mode(); id != "" && m.store != nil {
		if m.scores, m.loadErr = m.store.TopScores(id, maxScores); m.loadErr == nil {
			m.shifts, m.loadErr = m.store.RecentShifts(id, maxShifts)
		}
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.GetShiftStats(id)
		}
	}
	m.table = m.buildTable()
}

func (m *ScoreboardModel) buildTable() table.Model {
	var cols []table.Column
	var rows []table.Row

	switch m.page {
	case pageScores:
		cols = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 10},
			{Title: "Date", Width: 16},
		}
		for i, s := range m.scores {
			rows = append(rows, table.Row{
				fmt.Sprintf("#%d", i+1),
				strconv.Itoa(s.Score),
				s.CreatedAt.Format("Jan 02 15:04"),
			})
		}
	case pageShifts:
		cols = []table.Column{
			{Title: "Date", Width: 14},
			{Title: "Score", Width: 7},
			{Title: "Served", Width: 7},
			{Title: "Wrong", Width: 6},
			{Title: "Left", Width: 5},
			{Title: "Time", Width: 6},
			{Title: "Level", Width: 7},
		}
		for _, r := range m.shifts {
			level := r.Difficulty
			if level == "" {
				level = "-"
			}
			rows = append(rows, table.Row{
				r.CreatedAt.Format("Jan 02 15:04"),
				strconv.Itoa(r.Score),
				strconv.Itoa(r.Served),
				strconv.Itoa(r.Wrong),
				strconv.Itoa(r.Walkouts),
				fmt.Sprintf("%d:%02d", r.Duration/60, r.Duration%60),
				level,
			})
		}
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-tableChrome, 3)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			return m, m.back
		case key.Matches(msg, m.keys.Mode):
			if n := len(m.modes); n > 0 {
				step := 1
				if s := msg.String(); s == "left" || s == "h" {
					step = n - 1
				}
				m.mode = (m.mode + step) % n
				m.reload()
			}
			return m, nil
		case key.Matches(msg, m.keys.Page):
			m.page = (m.page + 1) % pageCount
			m.table = m.buildTable()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.buildTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

var (
	boardTitle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTab    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActive = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	boardBox    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	title := "HIGH SCORES"
	if m.page == pageShifts {
		title = "SHIFT LOG"
	}

	tabs := make([]string, len(m.modes))
	for i, g := range m.modes {
		if i == m.mode {
			tabs[i] = boardActive.Render(g.Title)
		} else {
			tabs[i] = boardTab.Render(g.Title)
		}
	}

	var b strings.Builder
	b.WriteString(centerText(boardTitle.Render(title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(boardBox.Render(m.body()), m.width))
	b.WriteString("\n")
	if sum := m.summary(); sum != "" {
		b.WriteString(centerText(sum, m.width))
		b.WriteString("\n")
	}
	b.WriteString(boardDim.Render(m.help.View(m.keys)))
	return b.String()
}

// body is the table, or a note when there is nothing to show.
func (m ScoreboardModel) body() string {
	note := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 3)
	switch {
	case m.loadErr != nil:
		return note.Render("Scores unavailable:\n" + m.loadErr.Error())
	case m.store == nil:
		return note.Render("Score saving is off.")
	case m.page == pageScores && len(m.scores) == 0,
		m.page == pageShifts && len(m.shifts) == 0:
		return note.Render("No shifts yet.\nServe some customers first!")
	}
	return m.table.View()
}

func (m ScoreboardModel) summary() string {
	if m.stats == nil || m.stats.Shifts == 0 {
		return ""
	}
	avg := int(m.stats.AvgDuration)
	return boardDim.Render(fmt.Sprintf("%d shifts  %d served  %d wrong  %d walkouts  accuracy %.0f%%  avg %d:%02d",
		m.stats.Shifts, m.stats.Served, m.stats.Wrong, m.stats.Walkouts, m.stats.Accuracy*100, avg/60, avg%60))
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard on its own.
func RunScoreboard(store *storage.Store, width, height int) error {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
