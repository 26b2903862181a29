// Package tui is the interactive day board: today's mood and blocks on
// one tab, the weekly balance on the other.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/gentleday/gentleday/internal/journal"
	"github.com/gentleday/gentleday/internal/stats"
	"github.com/gentleday/gentleday/internal/utils"
)

type sessionState int

const (
	stateDay sessionState = iota
	stateWeek
	stateMoodForm
	stateNotesForm
	stateBlockForm
	stateCloseForm
)

type moodFormModel struct {
	Mood  string
	Color string
	Focus string
}

type blockFormModel struct {
	Title    string
	Start    string
	End      string
	Category string
}

type closeFormModel struct {
	Drain    string
	SmallWin string
}

type notesFormModel struct {
	Notes     string
	Gratitude string
}

type Model struct {
	journal *journal.Service
	stats   *stats.Aggregator
	userID  string

	state  sessionState
	keys   KeyMap
	help   help.Model
	view   journal.DayView
	week   stats.WeeklyScore
	cursor int

	form      *huh.Form
	moodForm  *moodFormModel
	notesForm *notesFormModel
	blockForm *blockFormModel
	closeForm *closeFormModel

	statusLine string
	quitting   bool
	width      int
	height     int
}

func NewModel(j *journal.Service, st *stats.Aggregator, userID string) Model {
	m := Model{
		journal: j,
		stats:   st,
		userID:  userID,
		state:   stateDay,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
	m.refresh()
	return m
}

// refresh reloads the day view and weekly score. Errors land in the
// status line rather than aborting the program.
func (m *Model) refresh() {
	view, err := m.journal.Today(m.userID)
	if err != nil {
		m.statusLine = "⚠ " + err.Error()
		return
	}
	m.view = view
	if m.cursor >= len(m.view.Blocks) {
		m.cursor = len(m.view.Blocks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	week, err := m.stats.WeeklyBalance(m.userID, utils.Today())
	if err != nil {
		m.statusLine = "⚠ " + err.Error()
		return
	}
	m.week = week
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.state == stateDay {
		keys = append(keys, m.keys.Mood, m.keys.Add, m.keys.Toggle, m.keys.Close)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.Refresh, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down}
	actions := []key.Binding{m.keys.Mood, m.keys.Notes, m.keys.Add, m.keys.Toggle, m.keys.Delete, m.keys.Close}
	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}
