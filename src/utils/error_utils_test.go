package utils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusForMessages(t *testing.T) {
	cases := []struct {
		err     error
		status  int
		message string
	}{
		{fmt.Errorf("decode: %w", ErrInvalidInput), fiber.StatusBadRequest, "Invalid input"},
		{ErrNotFound, fiber.StatusNotFound, "Not found"},
		{fiber.ErrNotFound, fiber.StatusNotFound, "Not found"},
		{fiber.ErrMethodNotAllowed, fiber.StatusNotFound, "Not found"},
		{errors.New("dial tcp 10.0.0.1:6379: connection refused"), fiber.StatusInternalServerError, "Internal Server Error"},
	}
	for _, tc := range cases {
		status, message := StatusFor(tc.err)
		assert.Equal(t, tc.status, status, tc.err.Error())
		assert.Equal(t, tc.message, message, tc.err.Error())
	}
}
