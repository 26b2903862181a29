package models

import "time"

// User is an account identity. Accounts start inactive and are switched
// on by the email activation link.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

// Pronoun options offered on the profile form.
const (
	PronounShe  = "she"
	PronounHe   = "he"
	PronounThey = "they"
)

// UserProfile is the 1:1 profile attached to a user.
type UserProfile struct {
	UserID       string `json:"user_id"`
	Nickname     string `json:"nickname,omitempty"`
	Bio          string `json:"bio,omitempty"`
	Pronoun      string `json:"pronoun,omitempty"`
	ReminderTime string `json:"evening_reminder_time,omitempty"` // HH:MM, empty when off
}

// Session is a persisted opaque login token.
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its expiry.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
