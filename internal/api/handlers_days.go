package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gentleday/gentleday/internal/apperr"
	"github.com/gentleday/gentleday/internal/journal"
	"github.com/gentleday/gentleday/internal/models"
	"github.com/gentleday/gentleday/internal/validation"
)

func dateParam(c *fiber.Ctx) (string, error) {
	date := c.Params("date")
	if err := validation.Date(date); err != nil {
		return "", err
	}
	return date, nil
}

func (s *Server) handleToday(c *fiber.Ctx) error {
	view, err := s.journal.Today(userID(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": view})
}

func (s *Server) handleDay(c *fiber.Ctx) error {
	date, err := dateParam(c)
	if err != nil {
		return err
	}
	view, err := s.journal.Day(userID(c), date)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": view})
}

type dayPatchRequest struct {
	Mood      *models.Mood  `json:"mood"`
	Color     *models.Color `json:"color"`
	Notes     *string       `json:"notes"`
	Focus     *string       `json:"focus"`
	Gratitude *string       `json:"gratitude"`
}

func (s *Server) handleUpdateDay(c *fiber.Ctx) error {
	date, err := dateParam(c)
	if err != nil {
		return err
	}
	var req dayPatchRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Invariantf("invalid request body")
	}
	status, day, err := s.journal.UpdateDay(userID(c), date, journal.DayUpdate{
		Mood:      req.Mood,
		Color:     req.Color,
		Notes:     req.Notes,
		Focus:     req.Focus,
		Gratitude: req.Gratitude,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"status": status, "data": day})
}

type blockRequest struct {
	Title     string          `json:"title"`
	StartTime string          `json:"start_time"`
	EndTime   string          `json:"end_time"`
	Category  models.Category `json:"category"`
}

func (s *Server) handleAddBlock(c *fiber.Ctx) error {
	date, err := dateParam(c)
	if err != nil {
		return err
	}
	var req blockRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Invariantf("invalid request body")
	}
	block, status, err := s.journal.AddBlock(userID(c), date, journal.BlockInput{
		Title:     req.Title,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Category:  req.Category,
	})
	if err != nil {
		return err
	}
	switch status {
	case journal.StatusApplied:
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": status, "data": block})
	case journal.StatusLimitReached:
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"status": status})
	default:
		return c.JSON(fiber.Map{"status": status})
	}
}

func (s *Server) handleToggleBlock(c *fiber.Ctx) error {
	block, status, err := s.journal.ToggleBlock(userID(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"status": status, "data": block})
}

func (s *Server) handleDeleteBlock(c *fiber.Ctx) error {
	status, err := s.journal.DeleteBlock(userID(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"status": status})
}

func (s *Server) handleReflection(c *fiber.Ctx) error {
	date, err := dateParam(c)
	if err != nil {
		return err
	}
	reflection, err := s.journal.Reflection(userID(c), date)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": reflection})
}

type reflectionRequest struct {
	Drain    string `json:"drain"`
	SmallWin string `json:"small_win"`
}

func (s *Server) handleSaveReflection(c *fiber.Ctx) error {
	date, err := dateParam(c)
	if err != nil {
		return err
	}
	var req reflectionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Invariantf("invalid request body")
	}
	status, err := s.journal.SaveReflectionDraft(userID(c), date, req.Drain, req.SmallWin)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"status": status})
}

func (s *Server) handleCloseDay(c *fiber.Ctx) error {
	date, err := dateParam(c)
	if err != nil {
		return err
	}
	var req reflectionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return apperr.Invariantf("invalid request body")
		}
	}
	result, err := s.journal.CloseDay(userID(c), date, req.Drain, req.SmallWin)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": result})
}
