package system

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gentleday/gentleday/internal/cli"
	"github.com/gentleday/gentleday/internal/constants"
)

type DebugCmd struct {
	DBPath     *DebugDBPathCmd     `cmd:"" help:"Show database path."`
	DumpDay    *DebugDumpDayCmd    `cmd:"" help:"Dump a day record as JSON."`
	DumpBlock  *DebugDumpBlockCmd  `cmd:"" help:"Dump a time block as JSON."`
	DumpQuotes *DebugDumpQuotesCmd `cmd:"" help:"Dump every quote as JSON."`
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *cli.Context) error {
	output := map[string]string{
		"path": ctx.Store.GetConfigPath(),
	}
	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpDayCmd struct {
	Date string `arg:"" help:"Date of the day to dump (YYYY-MM-DD or 'today')."`
}

func (cmd *DebugDumpDayCmd) Run(ctx *cli.Context) error {
	date := cmd.Date
	if date == "today" {
		date = time.Now().Format(constants.DateFormat)
	}
	if _, err := time.Parse(constants.DateFormat, date); err != nil {
		return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD or 'today')", date)
	}

	userID, err := ctx.LocalUser()
	if err != nil {
		return err
	}

	day, found, err := ctx.Store.GetDay(userID, date)
	if err != nil {
		return fmt.Errorf("failed to get day: %w", err)
	}
	if !found {
		return fmt.Errorf("no day record for date: %s", date)
	}

	blocks, err := ctx.Store.ListTimeBlocks(day.ID)
	if err != nil {
		return fmt.Errorf("failed to list time blocks: %w", err)
	}

	jsonBytes, err := json.MarshalIndent(map[string]interface{}{
		"day":         day,
		"time_blocks": blocks,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal day: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpBlockCmd struct {
	ID string `arg:"" help:"ID of the block to dump."`
}

func (cmd *DebugDumpBlockCmd) Run(ctx *cli.Context) error {
	block, err := ctx.Store.GetTimeBlock(cmd.ID)
	if err != nil {
		return fmt.Errorf("failed to get block: %w", err)
	}
	jsonBytes, err := json.MarshalIndent(block, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal block: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpQuotesCmd struct{}

func (cmd *DebugDumpQuotesCmd) Run(ctx *cli.Context) error {
	quotes, err := ctx.Store.ListQuotes()
	if err != nil {
		return fmt.Errorf("failed to list quotes: %w", err)
	}
	jsonBytes, err := json.MarshalIndent(quotes, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal quotes: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}
