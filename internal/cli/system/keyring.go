package system

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gentleday/gentleday/internal/cli"
	"github.com/gentleday/gentleday/internal/keyring"
)

// KeyringSetCmd stores the postgres connection string in the OS keyring.
type KeyringSetCmd struct {
	ConnectionString string `arg:"" help:"PostgreSQL connection string to store in the keyring."`
}

func (cmd *KeyringSetCmd) Run(ctx *cli.Context) error {
	if !strings.HasPrefix(cmd.ConnectionString, "postgres://") &&
		!strings.HasPrefix(cmd.ConnectionString, "postgresql://") &&
		!strings.Contains(cmd.ConnectionString, "host=") {
		return errors.New("connection string must be a valid PostgreSQL connection string")
	}

	if err := keyring.SetConnectionString(cmd.ConnectionString); err != nil {
		return fmt.Errorf("failed to store connection string in keyring: %w", err)
	}

	fmt.Println("✓ Connection string stored in OS keyring")
	fmt.Println("  You can now run gentleday without the --config flag")
	return nil
}

// KeyringDeleteCmd removes the stored connection string.
type KeyringDeleteCmd struct{}

func (cmd *KeyringDeleteCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteConnectionString(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no connection string found in keyring")
		}
		return fmt.Errorf("failed to delete connection string from keyring: %w", err)
	}
	fmt.Println("✓ Connection string deleted from OS keyring")
	return nil
}

// KeyringSetSMTPCmd stores the SMTP password used by the activation
// mailer when serving.
type KeyringSetSMTPCmd struct {
	Password string `arg:"" help:"SMTP password to store in the keyring."`
}

func (cmd *KeyringSetSMTPCmd) Run(ctx *cli.Context) error {
	if err := keyring.SetSMTPPassword(cmd.Password); err != nil {
		return fmt.Errorf("failed to store SMTP password in keyring: %w", err)
	}
	fmt.Println("✓ SMTP password stored in OS keyring")
	return nil
}
