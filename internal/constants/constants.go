package constants

const (
	AppName = "gentleday"

	// DateFormat is the canonical date representation (YYYY-MM-DD)
	DateFormat = "2006-01-02"
	// TimeFormat is the canonical time-of-day representation (HH:MM)
	TimeFormat = "15:04"

	DefaultDBFileName = "gentleday.db"
	DefaultListenAddr = ":8372"

	// DefaultKeyringUser is the keyring account name for the postgres
	// connection string
	DefaultKeyringUser = "db"
	// SMTPKeyringUser is the keyring account name for the SMTP password
	SMTPKeyringUser = "smtp"

	// LocalUserEmail identifies the implicit single-user account the CLI
	// and TUI operate on
	LocalUserEmail = "local@gentleday"

	// SessionTTLHours is how long a login session stays valid
	SessionTTLHours = 24 * 14
	// ActivationTTLHours is how long an account activation link stays valid
	ActivationTTLHours = 48
)
