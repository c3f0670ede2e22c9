package http

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/raushan1895/resort360/internal/domain"
)

const dateLayout = "2006-01-02"

// parseDate parses a YYYY-MM-DD calendar date in UTC.
func parseDate(value string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, value, time.UTC)
}

// nowDate is today's date in the wire format, used as a query default.
func nowDate() string {
	return time.Now().UTC().Format(dateLayout)
}

// parseInterval builds a validated DateInterval from two date strings.
func parseInterval(start, end string) (domain.DateInterval, error) {
	from, err := parseDate(start)
	if err != nil {
		return domain.DateInterval{}, domain.NewValidationError("startDate", "invalid date format, use YYYY-MM-DD")
	}
	to, err := parseDate(end)
	if err != nil {
		return domain.DateInterval{}, domain.NewValidationError("endDate", "invalid date format, use YYYY-MM-DD")
	}
	return domain.NewDateInterval(from, to)
}

// handleError maps domain errors to HTTP status codes. Anything untyped is a
// 500 and the detail stays in the log, not the response.
func handleError(c *fiber.Ctx, err error) error {
	switch {
	case domain.IsValidationError(err):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	case domain.IsNotFoundError(err):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	case domain.IsConflictError(err):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	default:
		log.Printf("Internal error on %s %s: %v", c.Method(), c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}
}
