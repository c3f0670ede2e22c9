package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/raushan1895/resort360/internal/application"
	"github.com/raushan1895/resort360/internal/domain"
)

type RoomHandler struct {
	service *application.RoomService
}

// NewRoomHandler creates a new instance of the room handler.
func NewRoomHandler(service *application.RoomService) *RoomHandler {
	return &RoomHandler{service: service}
}

// RoomRequest is the payload for creating or updating a room.
type RoomRequest struct {
	Name          string  `json:"name"`
	Number        string  `json:"number"`
	Capacity      int     `json:"capacity"`
	Status        string  `json:"status"`
	Description   string  `json:"description"`
	PricePerNight float64 `json:"pricePerNight"`
	RoomTypeID    int     `json:"roomTypeId"`
}

// SeasonalPricingRequest carries a pricing window: YYYY-MM-DD dates.
type SeasonalPricingRequest struct {
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
	Price     float64 `json:"price"`
}

// DiscountRequest carries a discount window: YYYY-MM-DD dates.
type DiscountRequest struct {
	Type        string  `json:"type"`
	Percentage  float64 `json:"percentage"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	MinimumStay int     `json:"minimumStay"`
}

// MaintenanceRequest schedules a maintenance window on one room.
type MaintenanceRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Status    string `json:"status,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// BulkMaintenanceRequest schedules the same window on several rooms; each
// room is accepted or rejected on its own.
type BulkMaintenanceRequest struct {
	RoomIDs   []int  `json:"roomIds"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Status    string `json:"status,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// GetAllRooms returns every room with its pricing and maintenance entries.
func (h *RoomHandler) GetAllRooms(c *fiber.Ctx) error {
	rooms, err := h.service.GetAllRooms()
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(rooms)
}

func (h *RoomHandler) GetRoomByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid room id",
		})
	}

	room, err := h.service.GetRoomByID(id)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(room)
}

func (h *RoomHandler) GetRoomTypes(c *fiber.Ctx) error {
	types, err := h.service.GetRoomTypes()
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(types)
}

func (h *RoomHandler) CreateRoom(c *fiber.Ctx) error {
	var req RoomRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	room := roomFromRequest(req)
	if err := h.service.CreateRoom(&room); err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(room)
}

func (h *RoomHandler) UpdateRoom(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid room id",
		})
	}

	var req RoomRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	room := roomFromRequest(req)
	room.ID = id
	if err := h.service.UpdateRoom(&room); err != nil {
		return handleError(c, err)
	}
	return c.JSON(room)
}

func roomFromRequest(req RoomRequest) domain.Room {
	return domain.Room{
		Name:          req.Name,
		Number:        req.Number,
		Capacity:      req.Capacity,
		Status:        domain.RoomStatus(req.Status),
		Description:   req.Description,
		PricePerNight: req.PricePerNight,
		Type:          domain.RoomType{ID: req.RoomTypeID},
	}
}

// GetAvailableRooms lists rooms free for the stay given as ?startDate=&endDate=.
func (h *RoomHandler) GetAvailableRooms(c *fiber.Ctx) error {
	stay, err := parseInterval(c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		return handleError(c, err)
	}

	rooms, err := h.service.GetAvailableRooms(stay)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(rooms)
}

// GetBlockedDates lists the days inside ?startDate=&endDate= on which no
// room at all is free.
func (h *RoomHandler) GetBlockedDates(c *fiber.Ctx) error {
	window, err := parseInterval(c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		return handleError(c, err)
	}

	dates, err := h.service.GetBlockedDates(window.Start, window.End)
	if err != nil {
		return handleError(c, err)
	}

	blocked := make([]string, len(dates))
	for i, d := range dates {
		blocked[i] = d.Format(dateLayout)
	}
	return c.JSON(fiber.Map{"blockedDates": blocked})
}

// GetCurrentPrice resolves the room's nightly price for ?date= (default today).
func (h *RoomHandler) GetCurrentPrice(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid room id",
		})
	}

	asOf, err := parseDate(c.Query("date", nowDate()))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid date format, use YYYY-MM-DD",
		})
	}

	price, err := h.service.CurrentPrice(id, asOf)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"roomId": id, "date": asOf.Format(dateLayout), "price": price})
}

func (h *RoomHandler) AddSeasonalPricing(c *fiber.Ctx) error {
	roomID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid room id",
		})
	}

	var req SeasonalPricingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	sp, err := seasonalFromRequest(req)
	if err != nil {
		return handleError(c, err)
	}

	created, err := h.service.AddSeasonalPricing(roomID, sp)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *RoomHandler) UpdateSeasonalPricing(c *fiber.Ctx) error {
	roomID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid room id",
		})
	}
	pricingID, err := strconv.Atoi(c.Params("pricingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid pricing id",
		})
	}

	var req SeasonalPricingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	sp, err := seasonalFromRequest(req)
	if err != nil {
		return handleError(c, err)
	}
	sp.ID = pricingID

	if err := h.service.UpdateSeasonalPricing(roomID, sp); err != nil {
		return handleError(c, err)
	}
	return c.JSON(sp)
}

func (h *RoomHandler) DeleteSeasonalPricing(c *fiber.Ctx) error {
	roomID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid room id",
		})
	}
	pricingID, err := strconv.Atoi(c.Params("pricingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid pricing id",
		})
	}

	if err := h.service.DeleteSeasonalPricing(roomID, pricingID); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func seasonalFromRequest(req SeasonalPricingRequest) (domain.SeasonalPricing, error) {
	validity, err := parseInterval(req.StartDate, req.EndDate)
	if err != nil {
		return domain.SeasonalPricing{}, err
	}
	return domain.SeasonalPricing{Validity: validity, Price: req.Price}, nil
}

func (h *RoomHandler) AddDiscount(c *fiber.Ctx) error {
	roomID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid room id",
		})
	}

	var req DiscountRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	d, err := discountFromRequest(req)
	if err != nil {
		return handleError(c, err)
	}

	created, err := h.service.AddDiscount(roomID, d)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *RoomHandler) UpdateDiscount(c *fiber.Ctx) error {
	roomID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid room id",
		})
	}
	discountID, err := strconv.Atoi(c.Params("discountId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid discount id",
		})
	}

	var req DiscountRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	d, err := discountFromRequest(req)
	if err != nil {
		return handleError(c, err)
	}
	d.ID = discountID

	if err := h.service.UpdateDiscount(roomID, d); err != nil {
		return handleError(c, err)
	}
	return c.JSON(d)
}

func (h *RoomHandler) DeleteDiscount(c *fiber.Ctx) error {
	roomID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid room id",
		})
	}
	discountID, err := strconv.Atoi(c.Params("discountId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid discount id",
		})
	}

	if err := h.service.DeleteDiscount(roomID, discountID); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func discountFromRequest(req DiscountRequest) (domain.Discount, error) {
	validity, err := parseInterval(req.StartDate, req.EndDate)
	if err != nil {
		return domain.Discount{}, err
	}
	return domain.Discount{
		Type:        domain.DiscountType(req.Type),
		Percentage:  req.Percentage,
		Validity:    validity,
		MinimumStay: req.MinimumStay,
	}, nil
}

func (h *RoomHandler) ScheduleMaintenance(c *fiber.Ctx) error {
	roomID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid room id",
		})
	}

	var req MaintenanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	w, err := maintenanceFromRequest(req.StartDate, req.EndDate, req.Status, req.Notes)
	if err != nil {
		return handleError(c, err)
	}

	created, err := h.service.ScheduleMaintenance(roomID, w)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// ScheduleBulkMaintenance applies one window to many rooms. The response
// reports each room separately; one conflict never rolls back the rest.
func (h *RoomHandler) ScheduleBulkMaintenance(c *fiber.Ctx) error {
	var req BulkMaintenanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if len(req.RoomIDs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "roomIds must not be empty",
		})
	}

	w, err := maintenanceFromRequest(req.StartDate, req.EndDate, req.Status, req.Notes)
	if err != nil {
		return handleError(c, err)
	}

	results := h.service.ScheduleBulkMaintenance(req.RoomIDs, w)
	return c.Status(fiber.StatusMultiStatus).JSON(fiber.Map{"results": results})
}

func (h *RoomHandler) CompleteMaintenance(c *fiber.Ctx) error {
	roomID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid room id",
		})
	}
	windowID, err := strconv.Atoi(c.Params("windowId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid window id",
		})
	}

	if err := h.service.CompleteMaintenance(roomID, windowID); err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"message": "maintenance completed"})
}

func maintenanceFromRequest(start, end, status, notes string) (domain.MaintenanceWindow, error) {
	window, err := parseInterval(start, end)
	if err != nil {
		return domain.MaintenanceWindow{}, err
	}
	return domain.MaintenanceWindow{
		Window: window,
		Status: domain.MaintenanceStatus(status),
		Notes:  notes,
	}, nil
}
