package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/stripe-memberships/internal/models"
	"go.uber.org/zap"
)

const (
	msgMethodNotAllowed = "Método no permitido"
	msgInternalError    = "Error interno del servidor"
)

// ErrorHandler renders errors that escape the route handlers, including
// fiber's own 404/405 routing errors.
func ErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			if fiberErr.Code == fiber.StatusMethodNotAllowed {
				return c.Status(fiber.StatusMethodNotAllowed).JSON(models.ErrorResponse(msgMethodNotAllowed))
			}
			return c.Status(fiberErr.Code).JSON(models.ErrorResponse(fiberErr.Message))
		}

		logger.Error("unhandled request error",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(msgInternalError))
	}
}
