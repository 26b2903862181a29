package system

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gentleday/gentleday/internal/cli"
	"github.com/gentleday/gentleday/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	userID, err := ctx.LocalUser()
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(ctx.Journal, ctx.Stats, userID), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
