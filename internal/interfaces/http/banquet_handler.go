package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/raushan1895/resort360/internal/application"
	"github.com/raushan1895/resort360/internal/domain"
)

type BanquetHandler struct {
	service *application.BanquetService
}

// NewBanquetHandler creates a new instance of the banquet handler.
func NewBanquetHandler(service *application.BanquetService) *BanquetHandler {
	return &BanquetHandler{service: service}
}

// BanquetRequest is the payload for requesting a banquet.
type BanquetRequest struct {
	HostID        int     `json:"hostId"`
	Hall          string  `json:"hall"`
	Occasion      string  `json:"occasion"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
	GuestCount    int     `json:"guestCount"`
	PricePerGuest float64 `json:"pricePerGuest"`
	Menu          string  `json:"menu,omitempty"`
}

type UpdateBanquetStatusRequest struct {
	Status string `json:"status"`
}

func (h *BanquetHandler) GetAllBanquets(c *fiber.Ctx) error {
	banquets, err := h.service.GetAllBanquets()
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(banquets)
}

func (h *BanquetHandler) GetBanquetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid banquet id",
		})
	}

	banquet, err := h.service.GetBanquetByID(id)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(banquet)
}

func (h *BanquetHandler) GetHostBanquets(c *fiber.Ctx) error {
	hostID, err := strconv.Atoi(c.Params("hostId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid host id",
		})
	}

	banquets, err := h.service.GetHostBanquets(hostID)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(banquets)
}

func (h *BanquetHandler) RequestBanquet(c *fiber.Ctx) error {
	var req BanquetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	schedule, err := parseInterval(req.StartDate, req.EndDate)
	if err != nil {
		return handleError(c, err)
	}

	banquet := domain.Banquet{
		HostID:        req.HostID,
		Hall:          req.Hall,
		Occasion:      req.Occasion,
		Schedule:      schedule,
		GuestCount:    req.GuestCount,
		PricePerGuest: req.PricePerGuest,
		Menu:          req.Menu,
	}
	if err := h.service.RequestBanquet(&banquet); err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"banquet": banquet,
		"total":   banquet.Total(),
	})
}

func (h *BanquetHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid banquet id",
		})
	}

	var req UpdateBanquetStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if err := h.service.UpdateStatus(id, domain.BanquetStatus(req.Status)); err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"id": id, "status": req.Status})
}
