package http

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raushan1895/resort360/internal/domain"
)

func TestParseDate(t *testing.T) {
	parsed, err := parseDate("2025-06-05")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC), parsed)

	_, err = parseDate("05/06/2025")
	assert.Error(t, err)
}

func TestParseInterval(t *testing.T) {
	t.Run("valid interval", func(t *testing.T) {
		interval, err := parseInterval("2025-06-05", "2025-06-08")
		require.NoError(t, err)
		assert.Equal(t, 3, interval.Nights())
	})

	t.Run("reversed dates rejected", func(t *testing.T) {
		_, err := parseInterval("2025-06-08", "2025-06-05")
		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("malformed start date", func(t *testing.T) {
		_, err := parseInterval("June 5", "2025-06-08")
		assert.True(t, domain.IsValidationError(err))
	})
}

func TestHandleErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation error", domain.NewValidationError("field", "bad input"), fiber.StatusBadRequest},
		{"not found error", domain.NewNotFoundError("room", 9), fiber.StatusNotFound},
		{"conflict error", domain.NewConflictError("room is booked"), fiber.StatusConflict},
		{"untyped error", errors.New("database exploded"), fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/boom", func(c *fiber.Ctx) error {
				return handleError(c, tc.err)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}
