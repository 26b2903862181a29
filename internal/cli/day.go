package cli

import (
	"fmt"

	"github.com/gentleday/gentleday/internal/validation"
)

type DayCmd struct {
	Date      string `arg:"" help:"Date to show (YYYY-MM-DD)."`
	Mood      string `short:"m" help:"Log the day's mood (very_bad|bad|neutral|good|very_good)."`
	Color     string `short:"c" help:"Log the day's color word."`
	Notes     string `help:"Set free-form notes."`
	Focus     string `help:"Set the day's focus."`
	Gratitude string `help:"Set the day's gratitude note."`
}

func (c *DayCmd) Validate() error {
	return validation.Date(c.Date)
}

func (c *DayCmd) Run(ctx *Context) error {
	userID, err := ctx.LocalUser()
	if err != nil {
		return err
	}

	upd := dayUpdateFromFlags(c.Mood, c.Color, c.Notes, c.Focus, c.Gratitude)
	if upd != nil {
		status, _, err := ctx.Journal.UpdateDay(userID, c.Date, *upd)
		if err != nil {
			return err
		}
		ReportStatus(status, "Updated "+c.Date+".")
	}

	view, err := ctx.Journal.Day(userID, c.Date)
	if err != nil {
		return err
	}
	fmt.Print(RenderDayView(view))
	return nil
}
