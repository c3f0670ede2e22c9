package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/raushan1895/resort360/internal/application"
)

type CatalogHandler struct {
	service *application.CatalogService
}

// NewCatalogHandler creates a new instance of the catalog handler.
func NewCatalogHandler(service *application.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

func (h *CatalogHandler) GetAllServices(c *fiber.Ctx) error {
	services, err := h.service.GetAllServices()
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(services)
}

func (h *CatalogHandler) GetServiceByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid service id",
		})
	}

	service, err := h.service.GetServiceByID(id)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(service)
}
