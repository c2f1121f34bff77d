package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"

	"github.com/UnknownOlympus/hestia/internal/form"
	"github.com/UnknownOlympus/hestia/internal/metrics"
	"github.com/UnknownOlympus/hestia/internal/models"
)

// DirectoryService is the part of the employee service the API depends on.
type DirectoryService interface {
	Search(ctx context.Context, query string) ([]models.Employee, int)
	Get(ctx context.Context, id uuid.UUID) (models.Employee, error)
	Add(ctx context.Context, entry form.Entry) (models.Employee, error)
	RemoveVisible(ctx context.Context, query string, positions []int) (int, error)
	MoveVisible(ctx context.Context, query string, from []int, to int) error
}

// APIConfig bundles dependencies for the directory API.
type APIConfig struct {
	Log         *slog.Logger
	Metrics     *metrics.Metrics
	Service     DirectoryService
	ReadTimeout time.Duration
}

// NewAPI builds the fiber application serving the directory under /api/v1.
func NewAPI(cfg APIConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "hestia",
		DisableStartupMessage: true,
		ReadTimeout:           cfg.ReadTimeout,
		ErrorHandler:          errorHandler(cfg.Log),
	})

	app.Use(requestLogger(cfg.Log, cfg.Metrics))
	app.Use(recover.New())

	handler := &employeesHandler{service: cfg.Service}

	api := app.Group("/api/v1")
	api.Get("/departments", handler.Departments)
	api.Get("/employees", handler.List)
	api.Post("/employees", handler.Create)
	api.Delete("/employees", handler.Remove)
	api.Post("/employees/move", handler.Move)
	api.Get("/employees/:id", handler.Get)

	return app
}
