package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/gentleday/gentleday/internal/journal"
	"github.com/gentleday/gentleday/internal/models"
	"github.com/gentleday/gentleday/internal/utils"
)

type TodayCmd struct {
	Mood      string `short:"m" help:"Log today's mood (very_bad|bad|neutral|good|very_good)."`
	Color     string `short:"c" help:"Log today's color word."`
	Notes     string `help:"Set free-form notes."`
	Focus     string `help:"Set today's focus."`
	Gratitude string `help:"Set today's gratitude note."`
	Edit      bool   `short:"e" help:"Open the interactive mood form."`
}

func (c *TodayCmd) Run(ctx *Context) error {
	userID, err := ctx.LocalUser()
	if err != nil {
		return err
	}

	if c.Edit {
		if err := c.promptMood(ctx, userID); err != nil {
			return err
		}
	}

	upd := dayUpdateFromFlags(c.Mood, c.Color, c.Notes, c.Focus, c.Gratitude)
	if upd != nil {
		status, _, err := ctx.Journal.UpdateDay(userID, utils.Today(), *upd)
		if err != nil {
			return err
		}
		ReportStatus(status, "Updated today.")
	}

	view, err := ctx.Journal.Today(userID)
	if err != nil {
		return err
	}
	fmt.Print(RenderDayView(view))
	return nil
}

func (c *TodayCmd) promptMood(ctx *Context, userID string) error {
	view, err := ctx.Journal.Today(userID)
	if err != nil {
		return err
	}

	mood := string(view.Day.Mood)
	color := string(view.Day.Color)
	focus := view.Day.Focus

	moodOptions := make([]huh.Option[string], 0, len(models.Moods))
	for _, m := range models.Moods {
		moodOptions = append(moodOptions, huh.NewOption(string(m), string(m)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How are you feeling?").
				Options(moodOptions...).
				Value(&mood),
			huh.NewInput().
				Title("Color of the day").
				Placeholder("green|yellow|red|blue|purple").
				Value(&color),
			huh.NewInput().
				Title("One thing to focus on").
				Value(&focus),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	c.Mood, c.Color, c.Focus = mood, color, focus
	return nil
}

func dayUpdateFromFlags(mood, color, notes, focus, gratitude string) *journal.DayUpdate {
	var upd journal.DayUpdate
	touched := false
	if mood != "" {
		m := models.Mood(mood)
		upd.Mood = &m
		touched = true
	}
	if color != "" {
		c := models.Color(color)
		upd.Color = &c
		touched = true
	}
	if notes != "" {
		upd.Notes = &notes
		touched = true
	}
	if focus != "" {
		upd.Focus = &focus
		touched = true
	}
	if gratitude != "" {
		upd.Gratitude = &gratitude
		touched = true
	}
	if !touched {
		return nil
	}
	return &upd
}
