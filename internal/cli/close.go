package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/gentleday/gentleday/internal/journal"
	"github.com/gentleday/gentleday/internal/utils"
	"github.com/gentleday/gentleday/internal/validation"
)

type CloseCmd struct {
	Date     string `short:"d" help:"Date to close (defaults to today)."`
	Drain    string `help:"What drained you today."`
	SmallWin string `help:"A small win from today." name:"small-win"`
	NoPrompt bool   `help:"Close without the reflection form."`
}

func (c *CloseCmd) Validate() error {
	if c.Date != "" {
		return validation.Date(c.Date)
	}
	return nil
}

func (c *CloseCmd) Run(ctx *Context) error {
	userID, err := ctx.LocalUser()
	if err != nil {
		return err
	}
	date := c.Date
	if date == "" {
		date = utils.Today()
	}

	if !c.NoPrompt && c.Drain == "" && c.SmallWin == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewText().
					Title("What drained you today?").
					Value(&c.Drain),
				huh.NewText().
					Title("Name one small win.").
					Value(&c.SmallWin),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
	}

	result, err := ctx.Journal.CloseDay(userID, date, c.Drain, c.SmallWin)
	if err != nil {
		return err
	}

	if result.Status == journal.StatusIgnored {
		fmt.Printf("%s was already closed.\n", date)
	} else {
		fmt.Printf("Closed %s. Rest well.\n", date)
	}
	if result.Quote != nil {
		fmt.Println(quoteStyle.Render("“" + result.Quote.Text + "”"))
	}
	return nil
}
