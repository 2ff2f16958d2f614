package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"octobot-be/internal/pkg/logger"
)

// ErrorHandler maps fiber errors and panics recovered upstream into the
// standard response envelope.
func ErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}

		if code >= 500 {
			log.Error("http", "unhandled error", map[string]interface{}{
				"path":   ctx.Path(),
				"method": ctx.Method(),
				"error":  err.Error(),
			})
		}

		return ctx.Status(code).JSON(ErrorResponse(code, err.Error()))
	}
}
