package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/raushan1895/resort360/internal/application"
	"github.com/raushan1895/resort360/internal/domain"
)

type EventHandler struct {
	service *application.EventService
}

// NewEventHandler creates a new instance of the event handler.
func NewEventHandler(service *application.EventService) *EventHandler {
	return &EventHandler{service: service}
}

// EventRequest is the payload for creating or updating an event.
type EventRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Venue       string  `json:"venue"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Capacity    int     `json:"capacity"`
	TicketPrice float64 `json:"ticketPrice"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

type UpdateEventStatusRequest struct {
	Status string `json:"status"`
}

func (h *EventHandler) GetAllEvents(c *fiber.Ctx) error {
	events, err := h.service.GetAllEvents()
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(events)
}

func (h *EventHandler) GetEventByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid event id",
		})
	}

	event, err := h.service.GetEventByID(id)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(event)
}

func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	var req EventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	event, err := eventFromRequest(req)
	if err != nil {
		return handleError(c, err)
	}

	if err := h.service.CreateEvent(&event); err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(event)
}

func (h *EventHandler) UpdateEvent(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid event id",
		})
	}

	var req EventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	event, err := eventFromRequest(req)
	if err != nil {
		return handleError(c, err)
	}
	event.ID = id

	if err := h.service.UpdateEvent(&event); err != nil {
		return handleError(c, err)
	}
	return c.JSON(event)
}

func (h *EventHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid event id",
		})
	}

	var req UpdateEventStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if err := h.service.UpdateStatus(id, domain.EventStatus(req.Status)); err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"id": id, "status": req.Status})
}

func eventFromRequest(req EventRequest) (domain.Event, error) {
	schedule, err := parseInterval(req.StartDate, req.EndDate)
	if err != nil {
		return domain.Event{}, err
	}
	return domain.Event{
		Title:       req.Title,
		Description: req.Description,
		Venue:       req.Venue,
		Schedule:    schedule,
		Capacity:    req.Capacity,
		TicketPrice: req.TicketPrice,
		ImageURL:    req.ImageURL,
	}, nil
}
