package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/gentleday/gentleday/internal/apperr"
	"github.com/gentleday/gentleday/internal/constants"
	"github.com/gentleday/gentleday/internal/journal"
	"github.com/gentleday/gentleday/internal/models"
	"github.com/gentleday/gentleday/internal/stats"
	"github.com/gentleday/gentleday/internal/storage"
)

type Context struct {
	Store   storage.Provider
	Journal *journal.Service
	Stats   *stats.Aggregator

	localUserID string
}

// LocalUser resolves the implicit single-user account the CLI operates
// on, creating it on first use. The local account never logs in, so it
// carries no password hash.
func (c *Context) LocalUser() (string, error) {
	if c.localUserID != "" {
		return c.localUserID, nil
	}

	user, err := c.Store.GetUserByEmail(constants.LocalUserEmail)
	if err == nil {
		c.localUserID = user.ID
		return user.ID, nil
	}
	if !apperr.IsNotFound(err) {
		return "", err
	}

	user = models.User{
		ID:        uuid.New().String(),
		Email:     constants.LocalUserEmail,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}
	if err := c.Store.CreateUser(user); err != nil {
		return "", err
	}
	c.localUserID = user.ID
	return user.ID, nil
}

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)

	quoteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// RenderDayView prints a day board: header, mood line, blocks and the
// daily quote.
func RenderDayView(view journal.DayView) string {
	var b strings.Builder

	title := view.Day.Date
	if view.Day.IsClosed {
		title += " (closed)"
	}
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")

	if view.Day.HasMood() {
		line := fmt.Sprintf("Mood: %s", view.Day.Mood)
		if view.Day.Color != "" {
			line += fmt.Sprintf("  Color: %s", view.Day.Color)
		}
		b.WriteString(line + "\n")
	}
	if view.Day.Focus != "" {
		b.WriteString(fmt.Sprintf("Focus: %s\n", view.Day.Focus))
	}
	if view.Message != "" {
		b.WriteString(messageStyle.Render(view.Message) + "\n")
	}

	b.WriteString("\n")
	if len(view.Blocks) == 0 {
		b.WriteString(mutedStyle.Render("No time blocks yet.") + "\n")
	} else {
		for _, block := range view.Blocks {
			mark := " "
			if block.Completed {
				mark = "x"
			}
			b.WriteString(fmt.Sprintf("  [%s] %s–%s  %s (%s)\n",
				mark, block.StartTime, block.EndTime, block.Title, block.Category))
		}
	}
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%d/%d blocks", len(view.Blocks), view.Limit)) + "\n")

	if view.Day.Gratitude != "" {
		b.WriteString(fmt.Sprintf("\nGrateful for: %s\n", view.Day.Gratitude))
	}
	if view.Day.Notes != "" {
		b.WriteString(fmt.Sprintf("Notes: %s\n", view.Day.Notes))
	}
	if view.Quote != nil {
		b.WriteString("\n" + quoteStyle.Render("“"+view.Quote.Text+"”") + "\n")
	}

	return b.String()
}

// ReportStatus prints the outcome of a guarded mutation in a uniform
// way so closed-day no-ops are visible but not alarming.
func ReportStatus(status journal.UpdateStatus, applied string) {
	switch status {
	case journal.StatusApplied:
		fmt.Println(applied)
	case journal.StatusIgnored:
		fmt.Println("Day is closed; nothing changed.")
	case journal.StatusLimitReached:
		fmt.Println("Block limit reached for this day; nothing added.")
	}
}
