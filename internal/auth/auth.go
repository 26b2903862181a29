// Package auth covers registration, email activation and session
// login. The journal core never sees credentials; it only receives the
// user id the session resolves to.
package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/gentleday/gentleday/internal/apperr"
	"github.com/gentleday/gentleday/internal/constants"
	"github.com/gentleday/gentleday/internal/logger"
	"github.com/gentleday/gentleday/internal/mailer"
	"github.com/gentleday/gentleday/internal/models"
	"github.com/gentleday/gentleday/internal/storage"
	"github.com/gentleday/gentleday/internal/validation"
)

// Service implements the account flows.
type Service struct {
	Store  storage.Provider
	Mailer mailer.Dispatcher
	// Secret keys the activation token MAC.
	Secret []byte
	// BaseURL prefixes activation links, e.g. "https://plan.example.org".
	BaseURL string

	ActivationTTL time.Duration
	SessionTTL    time.Duration
	Now           func() time.Time
}

// New creates an auth service with the default TTLs.
func New(store storage.Provider, dispatcher mailer.Dispatcher, secret []byte, baseURL string) *Service {
	return &Service{
		Store:         store,
		Mailer:        dispatcher,
		Secret:        secret,
		BaseURL:       strings.TrimRight(baseURL, "/"),
		ActivationTTL: constants.ActivationTTLHours * time.Hour,
		SessionTTL:    constants.SessionTTLHours * time.Hour,
		Now:           time.Now,
	}
}

// Register creates an inactive account and dispatches the activation
// link. Mail delivery failure is logged, never returned: the account
// exists either way and the link can be re-requested.
func (s *Service) Register(email, password string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validation.Email(email); err != nil {
		return models.User{}, err
	}
	if err := validation.Password(password); err != nil {
		return models.User{}, err
	}

	if _, err := s.Store.GetUserByEmail(email); err == nil {
		return models.User{}, apperr.Invariantf("email already registered")
	} else if !apperr.IsNotFound(err) {
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Active:       false,
		CreatedAt:    s.Now().UTC(),
	}
	if err := s.Store.CreateUser(user); err != nil {
		return models.User{}, err
	}

	token := s.activationToken(user, s.Now())
	link := fmt.Sprintf("%s/api/v1/auth/activate/%s", s.BaseURL, token)
	if err := s.Mailer.SendActivation(user.Email, link); err != nil {
		logger.Warn("activation mail not delivered", "email", user.Email, "error", err)
	}

	return user, nil
}

// Activate flips the account on and provisions its profile.
func (s *Service) Activate(token string) (models.User, error) {
	user, err := s.parseActivationToken(token)
	if err != nil {
		return models.User{}, err
	}
	if user.Active {
		// Token MAC covers the active flag, so this is unreachable for
		// well-formed tokens; keep the guard anyway.
		return user, nil
	}
	if err := s.Store.ActivateUser(user.ID); err != nil {
		return models.User{}, err
	}
	if _, err := s.Store.GetOrCreateProfile(user.ID); err != nil {
		return models.User{}, err
	}
	user.Active = true
	return user, nil
}

// Login verifies credentials and opens a session.
func (s *Service) Login(email, password string) (models.Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.Store.GetUserByEmail(email)
	if err != nil {
		if apperr.IsNotFound(err) {
			return models.Session{}, fmt.Errorf("invalid email or password: %w", apperr.ErrUnauthorized)
		}
		return models.Session{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.Session{}, fmt.Errorf("invalid email or password: %w", apperr.ErrUnauthorized)
	}
	if !user.Active {
		return models.Session{}, fmt.Errorf("account not activated: %w", apperr.ErrUnauthorized)
	}

	token, err := newSessionToken()
	if err != nil {
		return models.Session{}, err
	}
	now := s.Now().UTC()
	session := models.Session{
		Token:     token,
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.SessionTTL),
	}
	if err := s.Store.CreateSession(session); err != nil {
		return models.Session{}, err
	}
	return session, nil
}

// Logout drops the session. Unknown tokens are fine.
func (s *Service) Logout(token string) error {
	return s.Store.DeleteSession(token)
}

// Authenticate resolves a session token to its user.
func (s *Service) Authenticate(token string) (models.User, error) {
	if token == "" {
		return models.User{}, fmt.Errorf("missing session token: %w", apperr.ErrUnauthorized)
	}
	session, err := s.Store.GetSession(token)
	if err != nil {
		if apperr.IsNotFound(err) {
			return models.User{}, fmt.Errorf("invalid session: %w", apperr.ErrUnauthorized)
		}
		return models.User{}, err
	}
	if session.Expired(s.Now()) {
		_ = s.Store.DeleteSession(token)
		return models.User{}, fmt.Errorf("session expired: %w", apperr.ErrUnauthorized)
	}
	return s.Store.GetUser(session.UserID)
}
