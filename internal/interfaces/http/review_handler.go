package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/raushan1895/resort360/internal/application"
	"github.com/raushan1895/resort360/internal/domain"
)

type ReviewHandler struct {
	service *application.ReviewService
}

// NewReviewHandler creates a new instance of the review handler.
func NewReviewHandler(service *application.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// ReviewRequest scores a completed stay. All scores run 1 to 5.
type ReviewRequest struct {
	BookingID   int     `json:"bookingId"`
	Overall     int     `json:"overall"`
	Cleanliness int     `json:"cleanliness"`
	Service     int     `json:"service"`
	Comfort     int     `json:"comfort"`
	Comments    *string `json:"comments,omitempty"`
}

// CreateReview records a review for the authenticated guest's own booking.
func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
	user := CurrentUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "authentication required",
		})
	}

	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	review := domain.Review{
		BookingID:   req.BookingID,
		GuestID:     user.ID,
		Overall:     req.Overall,
		Cleanliness: req.Cleanliness,
		Service:     req.Service,
		Comfort:     req.Comfort,
		Comments:    req.Comments,
	}
	if err := h.service.CreateReview(&review); err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}

// ListReviews pages through reviews newest first: ?limit=&offset=.
func (h *ReviewHandler) ListReviews(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))

	reviews, err := h.service.ListReviews(limit, offset)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(reviews)
}

func (h *ReviewHandler) GetByBooking(c *fiber.Ctx) error {
	bookingID, err := strconv.Atoi(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid booking id",
		})
	}

	review, err := h.service.GetByBooking(bookingID)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(review)
}

func (h *ReviewHandler) GetGuestReviews(c *fiber.Ctx) error {
	guestID, err := strconv.Atoi(c.Params("guestId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid guest id",
		})
	}

	reviews, err := h.service.GetGuestReviews(guestID)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(reviews)
}

func (h *ReviewHandler) GetAverageScores(c *fiber.Ctx) error {
	scores, err := h.service.AverageScores()
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(scores)
}
