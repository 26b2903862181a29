package cli

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/gentleday/gentleday/internal/models"
	"github.com/gentleday/gentleday/internal/validation"
)

type QuoteAddCmd struct {
	Text string `arg:"" help:"Quote text."`
	Mood string `short:"m" help:"Mood affinity (very_bad|bad|neutral|good|very_good); untagged quotes match any mood."`
}

func (c *QuoteAddCmd) Run(ctx *Context) error {
	quote := models.Quote{
		ID:     uuid.New().String(),
		Text:   c.Text,
		Mood:   models.Mood(c.Mood),
		Active: true,
	}
	if err := validation.Quote(quote); err != nil {
		return err
	}
	if err := ctx.Store.AddQuote(quote); err != nil {
		return err
	}
	fmt.Printf("Added quote (ID: %s)\n", quote.ID)
	return nil
}

type QuoteListCmd struct {
	All bool `help:"Include inactive quotes."`
}

func (c *QuoteListCmd) Run(ctx *Context) error {
	var (
		quotes []models.Quote
		err    error
	)
	if c.All {
		quotes, err = ctx.Store.ListQuotes()
	} else {
		quotes, err = ctx.Store.ListActiveQuotes()
	}
	if err != nil {
		return err
	}
	if len(quotes) == 0 {
		fmt.Println("No quotes found")
		return nil
	}

	for _, q := range quotes {
		mood := "any"
		if q.Mood != "" {
			mood = string(q.Mood)
		}
		status := ""
		if !q.Active {
			status = " [inactive]"
		}
		fmt.Printf("  %s  (%s)%s\n", q.Text, mood, status)
		fmt.Println(mutedStyle.Render("    ID: " + q.ID))
	}
	return nil
}
