package cli

import (
	"fmt"
	"time"
)

type MonthCmd struct {
	Year  int `help:"Year to show (defaults to the current year)."`
	Month int `help:"Month to show, 1-12 (defaults to the current month)."`
}

func (c *MonthCmd) Validate() error {
	if c.Month != 0 && (c.Month < 1 || c.Month > 12) {
		return fmt.Errorf("month must be between 1 and 12")
	}
	return nil
}

func (c *MonthCmd) Run(ctx *Context) error {
	userID, err := ctx.LocalUser()
	if err != nil {
		return err
	}
	now := time.Now()
	year := c.Year
	if year == 0 {
		year = now.Year()
	}
	month := time.Month(c.Month)
	if c.Month == 0 {
		month = now.Month()
	}

	days, err := ctx.Stats.MonthlyOverview(userID, year, month)
	if err != nil {
		return err
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("%s %d", month, year)))
	if len(days) == 0 {
		fmt.Println(mutedStyle.Render("No days logged this month."))
		return nil
	}
	for _, day := range days {
		mood := "-"
		if day.HasMood() {
			mood = string(day.Mood)
		}
		flags := ""
		if day.RestDay {
			flags += " rest"
		}
		if day.IsClosed {
			flags += " closed"
		}
		fmt.Printf("  %s  %-9s%s\n", day.Date, mood, flags)
	}
	return nil
}
