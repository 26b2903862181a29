package cli

import (
	"fmt"

	"github.com/gentleday/gentleday/internal/journal"
	"github.com/gentleday/gentleday/internal/models"
	"github.com/gentleday/gentleday/internal/utils"
	"github.com/gentleday/gentleday/internal/validation"
)

type BlockAddCmd struct {
	Title    string `arg:"" help:"Block title."`
	Start    string `short:"s" help:"Start time (HH:MM)." required:""`
	End      string `short:"e" help:"End time (HH:MM)." required:""`
	Date     string `short:"d" help:"Date to add the block to (defaults to today)."`
	Category string `short:"c" help:"Category (work|personal|health|travel|rest|other)." default:"other"`
}

func (c *BlockAddCmd) Validate() error {
	if c.Date != "" {
		if err := validation.Date(c.Date); err != nil {
			return err
		}
	}
	if cat := models.Category(c.Category); !cat.Valid() {
		return fmt.Errorf("invalid category: %s", c.Category)
	}
	return nil
}

func (c *BlockAddCmd) Run(ctx *Context) error {
	userID, err := ctx.LocalUser()
	if err != nil {
		return err
	}
	date := c.Date
	if date == "" {
		date = utils.Today()
	}

	block, status, err := ctx.Journal.AddBlock(userID, date, journal.BlockInput{
		Title:     c.Title,
		StartTime: c.Start,
		EndTime:   c.End,
		Category:  models.Category(c.Category),
	})
	if err != nil {
		return err
	}
	ReportStatus(status, fmt.Sprintf("Added block: %s %s–%s (ID: %s)", block.Title, block.StartTime, block.EndTime, block.ID))
	return nil
}

type BlockToggleCmd struct {
	ID string `arg:"" help:"Block ID."`
}

func (c *BlockToggleCmd) Run(ctx *Context) error {
	userID, err := ctx.LocalUser()
	if err != nil {
		return err
	}
	block, status, err := ctx.Journal.ToggleBlock(userID, c.ID)
	if err != nil {
		return err
	}
	done := "not done"
	if block.Completed {
		done = "done"
	}
	ReportStatus(status, fmt.Sprintf("Marked %q %s.", block.Title, done))
	return nil
}

type BlockDeleteCmd struct {
	ID string `arg:"" help:"Block ID."`
}

func (c *BlockDeleteCmd) Run(ctx *Context) error {
	userID, err := ctx.LocalUser()
	if err != nil {
		return err
	}
	status, err := ctx.Journal.DeleteBlock(userID, c.ID)
	if err != nil {
		return err
	}
	ReportStatus(status, "Deleted block.")
	return nil
}
