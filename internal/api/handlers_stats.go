package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/gentleday/gentleday/internal/apperr"
	"github.com/gentleday/gentleday/internal/models"
	"github.com/gentleday/gentleday/internal/utils"
	"github.com/gentleday/gentleday/internal/validation"
)

func (s *Server) handleWeekly(c *fiber.Ctx) error {
	asOf := c.Query("as_of", utils.Today())
	if err := validation.Date(asOf); err != nil {
		return err
	}
	score, err := s.stats.WeeklyBalance(userID(c), asOf)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": score})
}

func (s *Server) handleMonthly(c *fiber.Ctx) error {
	now := time.Now()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))
	if month < 1 || month > 12 {
		return apperr.Invariantf("month must be between 1 and 12, got %d", month)
	}
	days, err := s.stats.MonthlyOverview(userID(c), year, time.Month(month))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": days})
}

func (s *Server) handleMoodSeries(c *fiber.Ctx) error {
	points, err := s.stats.MoodSeries(userID(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": points})
}

func (s *Server) handleProductivitySeries(c *fiber.Ctx) error {
	points, err := s.stats.ProductivitySeries(userID(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": points})
}

func (s *Server) handleDailyQuote(c *fiber.Ctx) error {
	view, err := s.journal.Today(userID(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": view.Quote})
}

type quoteRequest struct {
	Text string      `json:"text"`
	Mood models.Mood `json:"mood"`
}

func (s *Server) handleAddQuote(c *fiber.Ctx) error {
	var req quoteRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Invariantf("invalid request body")
	}
	quote := models.Quote{
		ID:     uuid.NewString(),
		Text:   req.Text,
		Mood:   req.Mood,
		Active: true,
	}
	if err := validation.Quote(quote); err != nil {
		return err
	}
	if err := s.store.AddQuote(quote); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": quote})
}
