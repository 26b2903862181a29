package cli

import (
	"fmt"

	"github.com/gentleday/gentleday/internal/utils"
	"github.com/gentleday/gentleday/internal/validation"
)

type WeekCmd struct {
	AsOf string `help:"End of the 7-day window (defaults to today)." name:"as-of"`
}

func (c *WeekCmd) Validate() error {
	if c.AsOf != "" {
		return validation.Date(c.AsOf)
	}
	return nil
}

func (c *WeekCmd) Run(ctx *Context) error {
	userID, err := ctx.LocalUser()
	if err != nil {
		return err
	}
	asOf := c.AsOf
	if asOf == "" {
		asOf = utils.Today()
	}

	score, err := ctx.Stats.WeeklyBalance(userID, asOf)
	if err != nil {
		return err
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("Week %s – %s", score.Start, score.End)))
	fmt.Printf("Days logged:     %d\n", score.DaysLogged)
	fmt.Printf("Moods logged:    %d\n", score.MoodDays)
	fmt.Printf("Blocks finished: %d\n", score.CompletedTasks)
	fmt.Printf("Balance score:   %d/100 (%s)\n", score.Score, score.Tier)
	fmt.Println(messageStyle.Render(score.Message))
	return nil
}
