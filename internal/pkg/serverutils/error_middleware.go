// FILE: internal/pkg/serverutils/error_middleware.go
package serverutils

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware recovers from panics and converts unhandled errors
// into the generic 500 envelope so internals never leak to clients.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		defer func() {
			if r := recover(); r != nil {
				_ = ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"success": false,
					"code":    500,
					"message": "An error occurred while processing your request.",
				})
			}
		}()

		if err := ctx.Next(); err != nil {
			if e, ok := err.(*fiber.Error); ok {
				return ctx.Status(e.Code).JSON(fiber.Map{
					"success": false,
					"code":    e.Code,
					"message": e.Message,
				})
			}
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"code":    500,
				"message": "An error occurred while processing your request.",
			})
		}
		return nil
	}
}
