package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/raushan1895/resort360/internal/application"
)

type ReportHandler struct {
	service *application.ReportService
}

// NewReportHandler creates a new instance of the report handler.
func NewReportHandler(service *application.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Occupancy aggregates nights sold and revenue over ?startDate=&endDate=.
func (h *ReportHandler) Occupancy(c *fiber.Ctx) error {
	period, err := parseInterval(c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		return handleError(c, err)
	}

	stats, err := h.service.OccupancyReport(period.Start, period.End)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(stats)
}
