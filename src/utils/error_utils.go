// error_utils.go
package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

var (
	// ErrInvalidInput marks a request body that is missing required fields or is not a JSON object.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnauthorized marks a missing or mismatched export token.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound marks an unknown route/method combination.
	ErrNotFound = errors.New("not found")
)

// HandleError writes a plain-text error reply. CORS headers were already set by middleware.
func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).SendString(message)
}

// StatusFor maps a handler error onto the HTTP status and public message sent to the client.
// Anything outside the known taxonomy is a storage or internal failure and never leaks its text.
func StatusFor(err error) (int, string) {
	var fe *fiber.Error
	switch {
	case errors.Is(err, ErrInvalidInput):
		return fiber.StatusBadRequest, "Invalid input"
	case errors.Is(err, ErrUnauthorized):
		return fiber.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound, "Not found"
	case errors.As(err, &fe):
		if fe.Code == fiber.StatusNotFound || fe.Code == fiber.StatusMethodNotAllowed {
			return fiber.StatusNotFound, "Not found"
		}
		if fe.Code < fiber.StatusInternalServerError {
			return fe.Code, fe.Message
		}
	}
	return fiber.StatusInternalServerError, "Internal Server Error"
}
