// Package api exposes the journal over a JSON HTTP API. Handlers take
// the authenticated user id from the session middleware and pass it
// explicitly into the core services.
package api

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/gentleday/gentleday/internal/apperr"
	"github.com/gentleday/gentleday/internal/auth"
	"github.com/gentleday/gentleday/internal/journal"
	"github.com/gentleday/gentleday/internal/logger"
	"github.com/gentleday/gentleday/internal/stats"
	"github.com/gentleday/gentleday/internal/storage"
)

// Config wraps the knobs that impact runtime behavior.
type Config struct {
	Addr string
}

// Server wires the fiber application to the journal core.
type Server struct {
	app     *fiber.App
	cfg     Config
	store   storage.Provider
	journal *journal.Service
	stats   *stats.Aggregator
	auth    *auth.Service
}

// NewServer wires handlers and middleware.
func NewServer(cfg Config, store storage.Provider, authSvc *auth.Service) *Server {
	srv := &Server{
		cfg:     cfg,
		store:   store,
		journal: journal.New(store),
		stats:   stats.New(store),
		auth:    authSvc,
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          15 * time.Second,
		ErrorHandler:          srv.errorHandler,
	})
	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${method} ${path}\n",
	}))
	app.Use(cors.New())

	srv.app = app
	srv.registerRoutes()
	return srv
}

// Run starts listening for HTTP traffic until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		_ = s.app.Shutdown()
	}()

	logger.Info("listening", "addr", s.cfg.Addr)
	return s.app.Listen(s.cfg.Addr)
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) registerRoutes() {
	s.app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := s.app.Group("/api/v1")

	api.Post("/auth/register", s.handleRegister)
	api.Get("/auth/activate/:token", s.handleActivate)
	api.Post("/auth/login", s.handleLogin)
	api.Post("/auth/logout", s.handleLogout)

	authed := api.Group("", s.requireUser)
	authed.Get("/profile", s.handleGetProfile)
	authed.Put("/profile", s.handleUpdateProfile)

	authed.Get("/days/today", s.handleToday)
	authed.Get("/days/:date", s.handleDay)
	authed.Patch("/days/:date", s.handleUpdateDay)
	authed.Post("/days/:date/blocks", s.handleAddBlock)
	authed.Post("/blocks/:id/toggle", s.handleToggleBlock)
	authed.Delete("/blocks/:id", s.handleDeleteBlock)
	authed.Get("/days/:date/reflection", s.handleReflection)
	authed.Put("/days/:date/reflection", s.handleSaveReflection)
	authed.Post("/days/:date/close", s.handleCloseDay)

	authed.Get("/stats/weekly", s.handleWeekly)
	authed.Get("/stats/monthly", s.handleMonthly)
	authed.Get("/stats/mood", s.handleMoodSeries)
	authed.Get("/stats/productivity", s.handleProductivitySeries)

	authed.Get("/quotes/daily", s.handleDailyQuote)
	authed.Post("/quotes", s.handleAddQuote)
}

// errorHandler maps the core error taxonomy onto HTTP statuses.
func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &fiberErr):
		return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
	case apperr.IsNotFound(err):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case apperr.IsInvariant(err):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, apperr.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	default:
		logger.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
}
