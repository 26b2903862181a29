package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gentleday/gentleday/internal/apperr"
	"github.com/gentleday/gentleday/internal/models"
)

// activationToken builds a self-contained activation token:
// base64url(userID|issuedUnix|mac). The MAC covers the user's password
// hash and active flag, so the token stops verifying once the account
// is activated or the password changes.
func (s *Service) activationToken(user models.User, issued time.Time) string {
	payload := fmt.Sprintf("%s|%d", user.ID, issued.Unix())
	mac := s.activationMAC(user, payload)
	return base64.RawURLEncoding.EncodeToString([]byte(payload + "|" + mac))
}

func (s *Service) activationMAC(user models.User, payload string) string {
	h := hmac.New(sha256.New, s.Secret)
	fmt.Fprintf(h, "%s|%s|%t", payload, user.PasswordHash, user.Active)
	return hex.EncodeToString(h.Sum(nil))
}

// parseActivationToken verifies a token and returns the user it
// activates. Tampered, expired and already-used tokens all come back as
// ErrUnauthorized.
func (s *Service) parseActivationToken(token string) (models.User, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return models.User{}, fmt.Errorf("invalid activation token: %w", apperr.ErrUnauthorized)
	}
	parts := strings.Split(string(raw), "|")
	if len(parts) != 3 {
		return models.User{}, fmt.Errorf("invalid activation token: %w", apperr.ErrUnauthorized)
	}
	userID, issuedStr, mac := parts[0], parts[1], parts[2]

	issuedUnix, err := strconv.ParseInt(issuedStr, 10, 64)
	if err != nil {
		return models.User{}, fmt.Errorf("invalid activation token: %w", apperr.ErrUnauthorized)
	}
	issued := time.Unix(issuedUnix, 0)
	if s.Now().Sub(issued) > s.ActivationTTL {
		return models.User{}, fmt.Errorf("activation token expired: %w", apperr.ErrUnauthorized)
	}

	user, err := s.Store.GetUser(userID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return models.User{}, fmt.Errorf("invalid activation token: %w", apperr.ErrUnauthorized)
		}
		return models.User{}, err
	}

	payload := fmt.Sprintf("%s|%s", userID, issuedStr)
	expected := s.activationMAC(user, payload)
	if !hmac.Equal([]byte(mac), []byte(expected)) {
		return models.User{}, fmt.Errorf("invalid activation token: %w", apperr.ErrUnauthorized)
	}
	return user, nil
}

// newSessionToken returns a 256-bit random opaque token.
func newSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
