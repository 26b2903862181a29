package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gentleday/gentleday/internal/apperr"
	"github.com/gentleday/gentleday/internal/models"
	"github.com/gentleday/gentleday/internal/validation"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleRegister(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Invariantf("invalid request body")
	}
	user, err := s.auth.Register(req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": user})
}

func (s *Server) handleActivate(c *fiber.Ctx) error {
	user, err := s.auth.Activate(c.Params("token"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": user})
}

func (s *Server) handleLogin(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Invariantf("invalid request body")
	}
	session, err := s.auth.Login(req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{
		"token":      session.Token,
		"expires_at": session.ExpiresAt,
	}})
}

func (s *Server) handleLogout(c *fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		return apperr.Unauthorizedf("missing bearer token")
	}
	if err := s.auth.Logout(token); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handleGetProfile(c *fiber.Ctx) error {
	profile, err := s.store.GetOrCreateProfile(userID(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": profile})
}

type profileRequest struct {
	Nickname     string `json:"nickname"`
	Bio          string `json:"bio"`
	Pronoun      string `json:"pronoun"`
	ReminderTime string `json:"reminder_time"`
}

func (s *Server) handleUpdateProfile(c *fiber.Ctx) error {
	var req profileRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Invariantf("invalid request body")
	}
	switch req.Pronoun {
	case "", models.PronounShe, models.PronounHe, models.PronounThey:
	default:
		return apperr.Invariantf("unknown pronoun %q", req.Pronoun)
	}
	if req.ReminderTime != "" {
		if err := validation.ReminderTime(req.ReminderTime); err != nil {
			return err
		}
	}
	profile := models.UserProfile{
		UserID:       userID(c),
		Nickname:     req.Nickname,
		Bio:          req.Bio,
		Pronoun:      req.Pronoun,
		ReminderTime: req.ReminderTime,
	}
	if err := s.store.SaveProfile(profile); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": profile})
}
