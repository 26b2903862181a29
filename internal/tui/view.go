package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case stateMoodForm, stateNotesForm, stateBlockForm, stateCloseForm:
		return docStyle.Render(m.form.View())
	}

	var content string
	switch m.state {
	case stateDay:
		content = m.viewDay()
	case stateWeek:
		content = m.viewWeek()
	}

	status := ""
	if m.statusLine != "" {
		status = statusStyle.Render(m.statusLine)
	}

	ui := lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		status,
		m.help.View(m),
	)
	return docStyle.Render(ui)
}

func (m Model) viewTabs() string {
	tabs := []string{"Today", "Week"}
	active := 0
	if m.state == stateWeek {
		active = 1
	}

	rendered := make([]string, len(tabs))
	for i, tab := range tabs {
		if i == active {
			rendered[i] = activeTabStyle.Render(tab)
		} else {
			rendered[i] = inactiveTabStyle.Render(tab)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) viewDay() string {
	var b strings.Builder

	title := m.view.Day.Date
	if m.view.Day.IsClosed {
		title += " (closed)"
	}
	b.WriteString(titleStyle.Render(title) + "\n")

	if m.view.Day.HasMood() {
		line := "Mood: " + string(m.view.Day.Mood)
		if m.view.Day.Color != "" {
			line += "  Color: " + string(m.view.Day.Color)
		}
		b.WriteString(line + "\n")
	} else {
		b.WriteString(mutedStyle.Render("No mood logged yet (press m).") + "\n")
	}
	if m.view.Day.Focus != "" {
		b.WriteString("Focus: " + m.view.Day.Focus + "\n")
	}
	if m.view.Message != "" {
		b.WriteString(gentleStyle.Render(m.view.Message) + "\n")
	}
	b.WriteString("\n")

	if len(m.view.Blocks) == 0 {
		b.WriteString(mutedStyle.Render("No time blocks yet (press a).") + "\n")
	}
	for i, block := range m.view.Blocks {
		mark := "○"
		if block.Completed {
			mark = "✓"
		}
		line := fmt.Sprintf("%s %s–%s  %s (%s)", mark, block.StartTime, block.EndTime, block.Title, block.Category)
		switch {
		case i == m.cursor:
			line = selectedStyle.Render(line)
		case block.Completed:
			line = doneStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%d/%d blocks", len(m.view.Blocks), m.view.Limit)) + "\n")

	if m.view.Quote != nil {
		b.WriteString("\n" + quoteStyle.Render("“"+m.view.Quote.Text+"”") + "\n")
	}

	return b.String()
}

func (m Model) viewWeek() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Week %s – %s", m.week.Start, m.week.End)) + "\n")
	b.WriteString(fmt.Sprintf("Days logged:     %d\n", m.week.DaysLogged))
	b.WriteString(fmt.Sprintf("Moods logged:    %d\n", m.week.MoodDays))
	b.WriteString(fmt.Sprintf("Blocks finished: %d\n", m.week.CompletedTasks))
	b.WriteString(fmt.Sprintf("Balance score:   %d/100 (%s)\n", m.week.Score, m.week.Tier))
	b.WriteString("\n" + gentleStyle.Render(m.week.Message) + "\n")

	return b.String()
}
