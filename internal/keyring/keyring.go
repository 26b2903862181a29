// Package keyring stores the secrets gentleday needs (postgres
// connection string, SMTP password) in the OS keyring so they never end
// up in flags or config files.
package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/gentleday/gentleday/internal/constants"
)

var (
	// ErrNotFound is returned when no secret is stored under the key
	ErrNotFound = errors.New("credentials not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

func get(account string) (string, error) {
	v, err := keyring.Get(constants.AppName, account)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return v, nil
}

func set(account, value string) error {
	if value == "" {
		return errors.New("secret cannot be empty")
	}
	if err := keyring.Set(constants.AppName, account, value); err != nil {
		return fmt.Errorf("failed to store credentials in keyring: %w", err)
	}
	return nil
}

// GetConnectionString retrieves the postgres connection string.
func GetConnectionString() (string, error) {
	return get(constants.DefaultKeyringUser)
}

// SetConnectionString stores the postgres connection string.
func SetConnectionString(connStr string) error {
	return set(constants.DefaultKeyringUser, connStr)
}

// DeleteConnectionString removes the postgres connection string.
func DeleteConnectionString() error {
	err := keyring.Delete(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete credentials from keyring: %w", err)
	}
	return nil
}

// GetSMTPPassword retrieves the SMTP password for the mailer.
func GetSMTPPassword() (string, error) {
	return get(constants.SMTPKeyringUser)
}

// SetSMTPPassword stores the SMTP password for the mailer.
func SetSMTPPassword(password string) error {
	return set(constants.SMTPKeyringUser, password)
}
