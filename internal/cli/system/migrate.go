package system

import (
	"fmt"
	"io/fs"

	"github.com/gentleday/gentleday/internal/cli"
	"github.com/gentleday/gentleday/internal/migration"
	"github.com/gentleday/gentleday/internal/storage/postgres"
	"github.com/gentleday/gentleday/internal/storage/sqlite"
	"github.com/gentleday/gentleday/migrations"
)

type MigrateCmd struct{}

// migrationRunner builds a Runner against the store's live connection,
// using the embedded SQL set matching the engine.
func migrationRunner(ctx *cli.Context) (*migration.Runner, error) {
	var engine string
	switch ctx.Store.(type) {
	case *sqlite.Store:
		engine = "sqlite"
	case *postgres.Store:
		engine = "postgres"
	default:
		return nil, fmt.Errorf("unknown storage engine")
	}

	db := ctx.Store.GetDB()
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	subFS, err := fs.Sub(migrations.FS, engine)
	if err != nil {
		return nil, fmt.Errorf("failed to access %s migrations: %w", engine, err)
	}
	return migration.NewRunner(db, subFS), nil
}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	runner, err := migrationRunner(ctx)
	if err != nil {
		return err
	}

	count, err := runner.Apply(func(msg string) {
		fmt.Println(msg)
	})
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if count == 0 {
		fmt.Println("No migrations to apply. Database is up to date.")
	} else {
		fmt.Printf("\nSuccessfully applied %d migration(s).\n", count)
	}
	return nil
}
