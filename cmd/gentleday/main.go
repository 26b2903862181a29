package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/gentleday/gentleday/internal/cli"
	"github.com/gentleday/gentleday/internal/cli/system"
	"github.com/gentleday/gentleday/internal/constants"
	"github.com/gentleday/gentleday/internal/journal"
	"github.com/gentleday/gentleday/internal/keyring"
	"github.com/gentleday/gentleday/internal/logger"
	"github.com/gentleday/gentleday/internal/stats"
	"github.com/gentleday/gentleday/internal/storage"
	"github.com/gentleday/gentleday/internal/storage/postgres"
	"github.com/gentleday/gentleday/internal/storage/sqlite"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database file path or PostgreSQL connection string. Falls back to the connection string stored in the OS keyring, then to the default SQLite file." type:"string"`
	Verbose bool   `help:"Enable debug logging."`

	Init    system.InitCmd    `cmd:"" help:"Initialize gentleday storage."`
	Migrate system.MigrateCmd `cmd:"" help:"Run database migrations."`
	Doctor  system.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
	Serve   system.ServeCmd   `cmd:"" help:"Run the HTTP API server."`
	Tui     system.TuiCmd     `cmd:"" help:"Launch the interactive day board." default:"1"`

	Today   cli.TodayCmd   `cmd:"" help:"Show or update today's journal."`
	Day     cli.DayCmd     `cmd:"" help:"Show or update a specific day."`
	Close   cli.CloseCmd   `cmd:"" help:"Close a day with an evening reflection."`
	Week    cli.WeekCmd    `cmd:"" help:"Show the weekly balance score."`
	Month   cli.MonthCmd   `cmd:"" help:"Show the monthly overview."`
	Profile cli.ProfileCmd `cmd:"" help:"Show or edit the user profile."`
	Block   struct {
		Add    cli.BlockAddCmd    `cmd:"" help:"Add a time block."`
		Toggle cli.BlockToggleCmd `cmd:"" help:"Toggle a block's completed state."`
		Delete cli.BlockDeleteCmd `cmd:"" help:"Delete a time block."`
	} `cmd:"" help:"Manage time blocks."`
	Quote struct {
		Add  cli.QuoteAddCmd  `cmd:"" help:"Add a quote to the pool."`
		List cli.QuoteListCmd `cmd:"" help:"List quotes."`
	} `cmd:"" help:"Manage the quote pool."`
	Keyring struct {
		Set     system.KeyringSetCmd     `cmd:"" help:"Store a PostgreSQL connection string in the OS keyring."`
		Delete  system.KeyringDeleteCmd  `cmd:"" help:"Remove the stored connection string."`
		SetSmtp system.KeyringSetSMTPCmd `cmd:"" help:"Store the SMTP password for activation mail."`
	} `cmd:"" help:"Manage secrets in the OS keyring."`
	Debug system.DebugCmd `cmd:"" help:"Debug commands for troubleshooting."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Gentle mood and day journal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": "v0.3.0"},
	)

	configDir := defaultConfigDir()
	console := ctx.Selected() != nil && ctx.Selected().Name == "serve"
	if err := logger.Init(logger.Config{Debug: CLI.Verbose, Console: console, ConfigDir: configDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	store := resolveStore(configDir)
	appCtx := &cli.Context{
		Store:   store,
		Journal: journal.New(store),
		Stats:   stats.New(store),
	}

	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	defer store.Close()

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// resolveStore picks the storage backend: explicit --config wins, then
// a keyring-stored postgres connection string, then the local SQLite
// file.
func resolveStore(configDir string) storage.Provider {
	config := CLI.Config
	if config == "" {
		if connStr, err := keyring.GetConnectionString(); err == nil {
			config = connStr
		} else if !errors.Is(err, keyring.ErrNotFound) {
			logger.Debug("keyring lookup failed", "error", err)
		}
	}
	if config == "" {
		config = filepath.Join(configDir, constants.DefaultDBFileName)
	}

	if strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://") || strings.Contains(config, "host=") {
		return postgres.NewStore(config)
	}
	return sqlite.NewStore(config)
}

func defaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", constants.AppName)
}
