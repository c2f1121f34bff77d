package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/UnknownOlympus/hestia/internal/directory"
	"github.com/UnknownOlympus/hestia/internal/form"
	"github.com/UnknownOlympus/hestia/internal/lib/logger/sl"
	"github.com/UnknownOlympus/hestia/internal/services/employees"
)

// apiError is the body of every failed API response.
type apiError struct {
	Status  int            `json:"-"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// toAPIError maps service errors onto HTTP statuses and stable codes.
func toAPIError(err error) apiError {
	var (
		fiberErr      *fiber.Error
		rangeErr      *directory.OutOfRangeError
		validationErr *form.ValidationError
	)

	switch {
	case errors.As(err, &rangeErr):
		return apiError{
			Status:  http.StatusUnprocessableEntity,
			Code:    "OUT_OF_RANGE",
			Message: rangeErr.Error(),
			Details: map[string]any{"operation": rangeErr.Op, "index": rangeErr.Index, "size": rangeErr.Len},
		}
	case errors.As(err, &validationErr):
		return apiError{
			Status:  http.StatusBadRequest,
			Code:    "VALIDATION_FAILED",
			Message: "all fields are required",
			Details: map[string]any{"missing": validationErr.Missing},
		}
	case errors.Is(err, employees.ErrNotFound):
		return apiError{Status: http.StatusNotFound, Code: "NOT_FOUND", Message: "employee not found"}
	case errors.As(err, &fiberErr):
		return apiError{Status: fiberErr.Code, Code: codeFor(fiberErr.Code), Message: fiberErr.Message}
	default:
		return apiError{Status: http.StatusInternalServerError, Code: "INTERNAL_ERROR", Message: "internal server error"}
	}
}

func codeFor(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "BAD_REQUEST"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case http.StatusRequestTimeout:
		return "TIMEOUT"
	default:
		if status >= http.StatusInternalServerError {
			return "INTERNAL_ERROR"
		}
		return "REQUEST_FAILED"
	}
}

func errorHandler(log *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		apiErr := toAPIError(err)
		if apiErr.Status >= http.StatusInternalServerError {
			log.ErrorContext(c.UserContext(), "request failed", "path", c.Path(), "method", c.Method(), sl.Err(err))
		}

		return c.Status(apiErr.Status).JSON(fiber.Map{"error": apiErr})
	}
}
