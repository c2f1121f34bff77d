package server

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/UnknownOlympus/hestia/internal/metrics"
)

// requestLogger renders handler errors through the app error handler so the
// final status is known, then logs and measures the request.
func requestLogger(log *slog.Logger, metrics *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		startTime := time.Now()

		if chainErr := c.Next(); chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(http.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		route := c.Route().Path
		duration := time.Since(startTime)

		metrics.HTTPRequests.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		metrics.HTTPDuration.WithLabelValues(c.Method(), route).Observe(duration.Seconds())

		log.DebugContext(c.UserContext(), "request handled",
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"duration", duration.String(),
		)

		return nil
	}
}
