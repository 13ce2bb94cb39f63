// Package response provides shared JSON error helpers for Fiber handlers.
package response

import (
	"errors"

	"imgbase/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// InternalError is the message returned for errors that are not storage failures.
// Their details only go to the log.
const InternalError = "internal server error"

// Error writes {"error": message} with the given status.
func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// BadRequest writes a 400 response.
func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

// Failure renders err. A *storage.Failure keeps its message and kind and maps
// onto its HTTP status; anything else is a 500 with a generic message.
func Failure(c *fiber.Ctx, l *zap.Logger, err error) error {
	var f *storage.Failure
	if errors.As(err, &f) {
		l.Warn("Storage request failed", zap.String("kind", string(f.Kind)), zap.String("error", f.Message))
		return c.Status(f.HTTPStatus()).JSON(fiber.Map{
			"error": f.Message,
			"kind":  f.Kind,
		})
	}
	l.Error("Request failed", zap.Error(err))
	return Error(c, fiber.StatusInternalServerError, InternalError)
}
