package presenters

import (
	"errors"
	"fmt"
	"testing"

	"ecotrack/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domain.ErrInvalidQuantity, fiber.StatusBadRequest},
		{fmt.Errorf("add: %w", domain.ErrInvalidCategory), fiber.StatusBadRequest},
		{domain.ErrInventoryItemNotFound, fiber.StatusNotFound},
		{domain.ErrAssistantBusy, fiber.StatusTooManyRequests},
		{domain.ErrTokenExpired, fiber.StatusUnauthorized},
		{domain.ErrGeminiProcessingFailed, fiber.StatusInternalServerError},
		{errors.New("disk full"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusFor(tt.err), tt.err.Error())
	}
}
