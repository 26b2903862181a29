package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gentleday/gentleday/internal/apperr"
	"github.com/gentleday/gentleday/internal/models"
)

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	var createdAt string
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Active, &createdAt); err != nil {
		return models.User{}, err
	}
	var err error
	if u.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return models.User{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	return u, nil
}

func (s *Store) CreateUser(u models.User) error {
	createdAt := u.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := s.db.Exec(`
		INSERT INTO users (id, email, password_hash, active, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.PasswordHash, u.Active, createdAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (s *Store) GetUser(id string) (models.User, error) {
	row := s.db.QueryRow(`SELECT id, email, password_hash, active, created_at FROM users WHERE id = ?`, id)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, apperr.NotFoundf("user %s", id)
		}
		return models.User{}, err
	}
	return u, nil
}

func (s *Store) GetUserByEmail(email string) (models.User, error) {
	row := s.db.QueryRow(`SELECT id, email, password_hash, active, created_at FROM users WHERE email = ?`, email)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, apperr.NotFoundf("user %s", email)
		}
		return models.User{}, err
	}
	return u, nil
}

func (s *Store) ActivateUser(id string) error {
	res, err := s.db.Exec(`UPDATE users SET active = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to activate user: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.NotFoundf("user %s", id)
	}
	return nil
}

func (s *Store) GetOrCreateProfile(userID string) (models.UserProfile, error) {
	_, err := s.db.Exec(`
		INSERT INTO profiles (user_id) VALUES (?)
		ON CONFLICT(user_id) DO NOTHING`, userID)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("failed to create profile: %w", err)
	}

	var p models.UserProfile
	err = s.db.QueryRow(`
		SELECT user_id, nickname, bio, pronoun, reminder_time FROM profiles WHERE user_id = ?`, userID).
		Scan(&p.UserID, &p.Nickname, &p.Bio, &p.Pronoun, &p.ReminderTime)
	if err != nil {
		return models.UserProfile{}, err
	}
	return p, nil
}

func (s *Store) SaveProfile(p models.UserProfile) error {
	_, err := s.db.Exec(`
		INSERT INTO profiles (user_id, nickname, bio, pronoun, reminder_time)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			nickname = excluded.nickname,
			bio = excluded.bio,
			pronoun = excluded.pronoun,
			reminder_time = excluded.reminder_time`,
		p.UserID, p.Nickname, p.Bio, p.Pronoun, p.ReminderTime)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

func (s *Store) CreateSession(sess models.Session) error {
	_, err := s.db.Exec(`
		INSERT INTO sessions (token, user_id, created_at, expires_at)
		VALUES (?, ?, ?, ?)`,
		sess.Token, sess.UserID,
		sess.CreatedAt.UTC().Format(time.RFC3339), sess.ExpiresAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

func (s *Store) GetSession(token string) (models.Session, error) {
	var sess models.Session
	var createdAt, expiresAt string
	err := s.db.QueryRow(`SELECT token, user_id, created_at, expires_at FROM sessions WHERE token = ?`, token).
		Scan(&sess.Token, &sess.UserID, &createdAt, &expiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, apperr.NotFoundf("session")
		}
		return models.Session{}, err
	}
	if sess.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return models.Session{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if sess.ExpiresAt, err = time.Parse(time.RFC3339, expiresAt); err != nil {
		return models.Session{}, fmt.Errorf("failed to parse expires_at: %w", err)
	}
	return sess, nil
}

func (s *Store) DeleteSession(token string) error {
	_, err := s.db.Exec(`DELETE FROM sessions WHERE token = ?`, token)
	return err
}

func (s *Store) DeleteExpiredSessions(now time.Time) error {
	_, err := s.db.Exec(`DELETE FROM sessions WHERE expires_at < ?`, now.UTC().Format(time.RFC3339))
	return err
}
