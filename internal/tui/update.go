package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/huh"

	"github.com/gentleday/gentleday/internal/journal"
	"github.com/gentleday/gentleday/internal/models"
	"github.com/gentleday/gentleday/internal/utils"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateMoodForm, stateNotesForm, stateBlockForm, stateCloseForm:
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			if m.state == stateDay {
				m.state = stateWeek
			} else {
				m.state = stateDay
			}
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			m.statusLine = ""
			m.refresh()
			return m, nil
		}

		if m.state != stateDay {
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.view.Blocks)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Mood):
			m.openMoodForm()
		case key.Matches(msg, m.keys.Notes):
			m.openNotesForm()
		case key.Matches(msg, m.keys.Add):
			m.openBlockForm()
		case key.Matches(msg, m.keys.Toggle):
			m.toggleSelected()
		case key.Matches(msg, m.keys.Delete):
			m.deleteSelected()
		case key.Matches(msg, m.keys.Close):
			m.openCloseForm()
		}
		return m, nil
	}

	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = stateDay
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		switch m.state {
		case stateMoodForm:
			m.submitMoodForm()
		case stateNotesForm:
			m.submitNotesForm()
		case stateBlockForm:
			m.submitBlockForm()
		case stateCloseForm:
			m.submitCloseForm()
		}
		m.state = stateDay
		m.refresh()
	case huh.StateAborted:
		m.state = stateDay
	}
	return m, cmd
}

func (m *Model) openMoodForm() {
	m.moodForm = &moodFormModel{
		Mood:  string(m.view.Day.Mood),
		Color: string(m.view.Day.Color),
		Focus: m.view.Day.Focus,
	}

	moodOptions := make([]huh.Option[string], 0, len(models.Moods))
	for _, mood := range models.Moods {
		moodOptions = append(moodOptions, huh.NewOption(string(mood), string(mood)))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How are you feeling?").
				Options(moodOptions...).
				Value(&m.moodForm.Mood),
			huh.NewInput().
				Title("Color of the day").
				Value(&m.moodForm.Color),
			huh.NewInput().
				Title("One thing to focus on").
				Value(&m.moodForm.Focus),
		),
	)
	m.state = stateMoodForm
}

func (m *Model) submitMoodForm() {
	mood := models.Mood(m.moodForm.Mood)
	color := models.Color(m.moodForm.Color)
	upd := journal.DayUpdate{Focus: &m.moodForm.Focus}
	if mood != "" {
		upd.Mood = &mood
	}
	if color != "" {
		upd.Color = &color
	}

	status, _, err := m.journal.UpdateDay(m.userID, utils.Today(), upd)
	if err != nil {
		m.statusLine = "⚠ " + err.Error()
		return
	}
	m.reportStatus(status, "Mood logged.")
}

func (m *Model) openNotesForm() {
	m.notesForm = &notesFormModel{
		Notes:     m.view.Day.Notes,
		Gratitude: m.view.Day.Gratitude,
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Notes").
				Value(&m.notesForm.Notes),
			huh.NewText().
				Title("Grateful for").
				Value(&m.notesForm.Gratitude),
		),
	)
	m.state = stateNotesForm
}

func (m *Model) submitNotesForm() {
	status, _, err := m.journal.UpdateDay(m.userID, m.view.Day.Date, journal.DayUpdate{
		Notes:     &m.notesForm.Notes,
		Gratitude: &m.notesForm.Gratitude,
	})
	if err != nil {
		m.statusLine = "⚠ " + err.Error()
		return
	}
	m.reportStatus(status, "Notes saved.")
}

func (m *Model) openBlockForm() {
	m.blockForm = &blockFormModel{Category: string(models.CategoryOther)}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&m.blockForm.Title),
			huh.NewInput().
				Title("Start (HH:MM)").
				Placeholder("09:00").
				Value(&m.blockForm.Start),
			huh.NewInput().
				Title("End (HH:MM)").
				Placeholder("10:00").
				Value(&m.blockForm.End),
			huh.NewSelect[string]().
				Title("Category").
				Options(
					huh.NewOption("work", string(models.CategoryWork)),
					huh.NewOption("personal", string(models.CategoryPersonal)),
					huh.NewOption("health", string(models.CategoryHealth)),
					huh.NewOption("travel", string(models.CategoryTravel)),
					huh.NewOption("rest", string(models.CategoryRest)),
					huh.NewOption("other", string(models.CategoryOther)),
				).
				Value(&m.blockForm.Category),
		),
	)
	m.state = stateBlockForm
}

func (m *Model) submitBlockForm() {
	_, status, err := m.journal.AddBlock(m.userID, m.view.Day.Date, journal.BlockInput{
		Title:     m.blockForm.Title,
		StartTime: m.blockForm.Start,
		EndTime:   m.blockForm.End,
		Category:  models.Category(m.blockForm.Category),
	})
	if err != nil {
		m.statusLine = "⚠ " + err.Error()
		return
	}
	m.reportStatus(status, "Block added.")
}

func (m *Model) openCloseForm() {
	m.closeForm = &closeFormModel{}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("What drained you today?").
				Value(&m.closeForm.Drain),
			huh.NewText().
				Title("Name one small win.").
				Value(&m.closeForm.SmallWin),
		),
	)
	m.state = stateCloseForm
}

func (m *Model) submitCloseForm() {
	result, err := m.journal.CloseDay(m.userID, m.view.Day.Date, m.closeForm.Drain, m.closeForm.SmallWin)
	if err != nil {
		m.statusLine = "⚠ " + err.Error()
		return
	}
	if result.Status == journal.StatusIgnored {
		m.statusLine = "Day was already closed."
	} else if result.Quote != nil {
		m.statusLine = "Day closed. " + result.Quote.Text
	} else {
		m.statusLine = "Day closed. Rest well."
	}
}

func (m *Model) toggleSelected() {
	if len(m.view.Blocks) == 0 {
		return
	}
	block := m.view.Blocks[m.cursor]
	_, status, err := m.journal.ToggleBlock(m.userID, block.ID)
	if err != nil {
		m.statusLine = "⚠ " + err.Error()
		return
	}
	m.reportStatus(status, "")
	m.refresh()
}

func (m *Model) deleteSelected() {
	if len(m.view.Blocks) == 0 {
		return
	}
	block := m.view.Blocks[m.cursor]
	status, err := m.journal.DeleteBlock(m.userID, block.ID)
	if err != nil {
		m.statusLine = "⚠ " + err.Error()
		return
	}
	m.reportStatus(status, "Block deleted.")
	m.refresh()
}

func (m *Model) reportStatus(status journal.UpdateStatus, applied string) {
	switch status {
	case journal.StatusApplied:
		m.statusLine = applied
	case journal.StatusIgnored:
		m.statusLine = "Day is closed; nothing changed."
	case journal.StatusLimitReached:
		m.statusLine = "Block limit reached; nothing added."
	}
}
