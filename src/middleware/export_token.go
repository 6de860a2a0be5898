package middleware

import (
	"onboarding-logger/src/services/export"
	"onboarding-logger/src/utils"

	"github.com/gofiber/fiber/v2"
)

// ExportToken guards bulk export with the pre-shared bearer token. onDenied may be nil.
func ExportToken(token string, onDenied func()) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !export.Authorized(c.Get(fiber.HeaderAuthorization), token) {
			if onDenied != nil {
				onDenied()
			}
			return utils.ErrUnauthorized
		}
		return c.Next()
	}
}
