// Package validation holds boundary checks shared by the API and CLI.
// Invariant violations are rejected here before anything is persisted.
package validation

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/gentleday/gentleday/internal/apperr"
	"github.com/gentleday/gentleday/internal/models"
	"github.com/gentleday/gentleday/internal/utils"
)

const minPasswordLen = 8

// Email validates an email address.
func Email(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return apperr.Invariantf("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return apperr.Invariantf("invalid email address %q", email)
	}
	return nil
}

// Password validates a registration password.
func Password(password string) error {
	if len(password) < minPasswordLen {
		return apperr.Invariantf("password must be at least %d characters", minPasswordLen)
	}
	return nil
}

// Date validates a YYYY-MM-DD date string.
func Date(dateStr string) error {
	if _, err := utils.ParseDate(dateStr); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrInvariant, err)
	}
	return nil
}

// Mood validates a mood value. Empty is allowed (clears nothing, means
// "not logged yet").
func Mood(m models.Mood) error {
	if m == "" {
		return nil
	}
	if !m.Valid() {
		return apperr.Invariantf("invalid mood: %s", m)
	}
	return nil
}

// Color validates a color tag value. Empty is allowed.
func Color(c models.Color) error {
	if c == "" {
		return nil
	}
	if !c.Valid() {
		return apperr.Invariantf("invalid color: %s", c)
	}
	return nil
}

// TimeBlock validates a block before it is persisted.
func TimeBlock(b models.TimeBlock) error {
	if err := b.Validate(); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrInvariant, err)
	}
	return nil
}

// Quote validates a quote before it enters the pool.
func Quote(q models.Quote) error {
	if strings.TrimSpace(q.Text) == "" {
		return apperr.Invariantf("quote text is required")
	}
	if err := Mood(q.Mood); err != nil {
		return err
	}
	return nil
}

// ReminderTime validates a profile reminder time. Empty turns the
// reminder off.
func ReminderTime(timeStr string) error {
	if timeStr == "" {
		return nil
	}
	if !utils.ValidateTimeFormat(timeStr) {
		return apperr.Invariantf("invalid reminder time %q (expected HH:MM)", timeStr)
	}
	return nil
}
