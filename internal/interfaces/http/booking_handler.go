package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/raushan1895/resort360/internal/application"
	"github.com/raushan1895/resort360/internal/domain"
)

type BookingHandler struct {
	service *application.BookingService
}

// NewBookingHandler creates a new instance of the booking handler.
func NewBookingHandler(service *application.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// canActOn reports whether the user may touch a booking owned by guestID:
// the owner, or anyone holding the booking management permission.
func canActOn(user *domain.User, guestID int) bool {
	if user == nil {
		return false
	}
	return user.ID == guestID || user.Role.Can(domain.PermManageBookings)
}

func forbidden(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
		"error": "insufficient permissions",
	})
}

// CreateBookingRequest is the payload for creating a booking. Dates are
// YYYY-MM-DD; totalPrice 0 means the server quotes the stay itself.
type CreateBookingRequest struct {
	RoomID     int     `json:"roomId"`
	GuestID    int     `json:"guestId"`
	CheckIn    string  `json:"checkIn"`
	CheckOut   string  `json:"checkOut"`
	Adults     int     `json:"adults"`
	Children   int     `json:"children"`
	TotalPrice float64 `json:"totalPrice,omitempty"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status"`
}

type VerifyAvailabilityRequest struct {
	RoomID   int    `json:"roomId"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
}

type ConfirmPaymentRequest struct {
	Amount float64 `json:"amount"`
	Method string  `json:"method"`
}

type AttachServicesRequest struct {
	ServiceIDs []int `json:"serviceIds"`
}

func (h *BookingHandler) CreateBooking(c *fiber.Ctx) error {
	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	stay, err := parseInterval(req.CheckIn, req.CheckOut)
	if err != nil {
		return handleError(c, err)
	}

	booking := domain.Booking{
		RoomID:     req.RoomID,
		GuestID:    req.GuestID,
		Stay:       stay,
		Adults:     req.Adults,
		Children:   req.Children,
		TotalPrice: req.TotalPrice,
	}
	if err := h.service.CreateBooking(&booking); err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(booking)
}

func (h *BookingHandler) GetBookingByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid booking id",
		})
	}

	booking, err := h.service.GetBooking(id)
	if err != nil {
		return handleError(c, err)
	}
	if !canActOn(CurrentUser(c), booking.GuestID) {
		return forbidden(c)
	}
	return c.JSON(booking)
}

func (h *BookingHandler) GetBookingByReference(c *fiber.Ctx) error {
	booking, err := h.service.GetBookingByReference(c.Params("reference"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(booking)
}

func (h *BookingHandler) GetGuestBookings(c *fiber.Ctx) error {
	guestID, err := strconv.Atoi(c.Params("guestId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid guest id",
		})
	}

	if !canActOn(CurrentUser(c), guestID) {
		return forbidden(c)
	}

	bookings, err := h.service.GetGuestBookings(guestID)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(bookings)
}

// GetBookingsInRange lists bookings touching ?startDate=&endDate=.
func (h *BookingHandler) GetBookingsInRange(c *fiber.Ctx) error {
	window, err := parseInterval(c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		return handleError(c, err)
	}

	bookings, err := h.service.GetBookingsInRange(window.Start, window.End)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(bookings)
}

func (h *BookingHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid booking id",
		})
	}

	var req UpdateBookingStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	status := domain.BookingStatus(req.Status)
	if !status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "unknown booking status",
		})
	}

	if err := h.service.UpdateStatus(id, status); err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"id": id, "status": status})
}

func (h *BookingHandler) CancelBooking(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid booking id",
		})
	}

	booking, err := h.service.GetBooking(id)
	if err != nil {
		return handleError(c, err)
	}
	if !canActOn(CurrentUser(c), booking.GuestID) {
		return forbidden(c)
	}

	if err := h.service.CancelBooking(id); err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"message": "booking cancelled"})
}

func (h *BookingHandler) ConfirmBooking(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid booking id",
		})
	}

	if err := h.service.ConfirmBooking(id); err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"message": "booking confirmed"})
}

// ConfirmPayment records a completed payment and confirms a pending booking.
func (h *BookingHandler) ConfirmPayment(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid booking id",
		})
	}

	var req ConfirmPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	payment := domain.Payment{
		Amount: req.Amount,
		Method: req.Method,
	}
	if err := h.service.ConfirmPayment(id, &payment); err != nil {
		return handleError(c, err)
	}
	return c.JSON(payment)
}

func (h *BookingHandler) GetPayments(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid booking id",
		})
	}

	payments, err := h.service.GetPayments(id)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(payments)
}

func (h *BookingHandler) VerifyAvailability(c *fiber.Ctx) error {
	var req VerifyAvailabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	stay, err := parseInterval(req.CheckIn, req.CheckOut)
	if err != nil {
		return handleError(c, err)
	}

	available, err := h.service.VerifyAvailability(req.RoomID, stay)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"roomId": req.RoomID, "available": available})
}

// Quote prices a candidate stay without creating anything.
func (h *BookingHandler) Quote(c *fiber.Ctx) error {
	var req VerifyAvailabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	stay, err := parseInterval(req.CheckIn, req.CheckOut)
	if err != nil {
		return handleError(c, err)
	}

	total, err := h.service.Quote(req.RoomID, stay)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"roomId": req.RoomID, "total": total})
}

func (h *BookingHandler) AttachServices(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid booking id",
		})
	}

	var req AttachServicesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if len(req.ServiceIDs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "serviceIds must not be empty",
		})
	}

	booking, err := h.service.GetBooking(id)
	if err != nil {
		return handleError(c, err)
	}
	if !canActOn(CurrentUser(c), booking.GuestID) {
		return forbidden(c)
	}

	if err := h.service.AttachServices(id, req.ServiceIDs); err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"message": "services attached"})
}
