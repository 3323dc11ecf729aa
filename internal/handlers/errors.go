package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/example/callerid/internal/middleware"
	"github.com/example/callerid/internal/services"
)

const serverErrorMessage = "Server error"

// ErrorHandler renders every failure as {"message": ...} with the status
// matching its kind. Unexpected errors are logged and hidden from clients.
func ErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, message := StatusFor(err)
		if status >= fiber.StatusInternalServerError {
			logger.Error("request failed",
				slog.String("method", c.Method()),
				slog.String("path", c.Path()),
				slog.String("request_id", middleware.GetRequestID(c)),
				slog.Any("error", err),
			)
		}
		return c.Status(status).JSON(fiber.Map{"message": message})
	}
}

// StatusFor maps an error to its HTTP status and client-facing message.
func StatusFor(err error) (int, string) {
	var svcErr *services.Error
	if errors.As(err, &svcErr) {
		switch {
		case errors.Is(svcErr.Kind, services.ErrValidation), errors.Is(svcErr.Kind, services.ErrConflict):
			return fiber.StatusBadRequest, svcErr.Message
		case errors.Is(svcErr.Kind, services.ErrUnauthorized), errors.Is(svcErr.Kind, services.ErrInvalidCredential):
			return fiber.StatusUnauthorized, svcErr.Message
		default:
			return fiber.StatusInternalServerError, serverErrorMessage
		}
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		if fiberErr.Code >= fiber.StatusInternalServerError {
			return fiberErr.Code, serverErrorMessage
		}
		return fiberErr.Code, fiberErr.Message
	}

	return fiber.StatusInternalServerError, serverErrorMessage
}
