package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/gentleday/gentleday/internal/apperr"
)

const localUserID = "userID"

// requireUser resolves the bearer session token and stashes the user id
// in the request locals for downstream handlers.
func (s *Server) requireUser(c *fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		return apperr.Unauthorizedf("missing bearer token")
	}
	user, err := s.auth.Authenticate(token)
	if err != nil {
		return err
	}
	c.Locals(localUserID, user.ID)
	return c.Next()
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func userID(c *fiber.Ctx) string {
	id, _ := c.Locals(localUserID).(string)
	return id
}
