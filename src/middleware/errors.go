package middleware

import (
	"onboarding-logger/src/utils"

	"github.com/gofiber/fiber/v2"
)

func errorStatus(err error) int {
	status, _ := utils.StatusFor(err)
	return status
}

// ErrorHandler renders every handler error as plain text. The driver text of a
// storage failure never reaches the body; RequestLogger records it instead.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status, message := utils.StatusFor(err)
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(status).SendString(message)
}
