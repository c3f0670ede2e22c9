package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/raushan1895/resort360/internal/application"
	"github.com/raushan1895/resort360/internal/domain"
)

type InquiryHandler struct {
	service *application.InquiryService
}

// NewInquiryHandler creates a new instance of the inquiry handler.
func NewInquiryHandler(service *application.InquiryService) *InquiryHandler {
	return &InquiryHandler{service: service}
}

type InquiryRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type UpdateInquiryStatusRequest struct {
	Status string `json:"status"`
}

func (h *InquiryHandler) Create(c *fiber.Ctx) error {
	var req InquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	inquiry := domain.Inquiry{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := h.service.CreateInquiry(&inquiry); err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(inquiry)
}

func (h *InquiryHandler) List(c *fiber.Ctx) error {
	inquiries, err := h.service.ListInquiries()
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(inquiries)
}

func (h *InquiryHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid inquiry id",
		})
	}

	var req UpdateInquiryStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if err := h.service.UpdateStatus(id, domain.InquiryStatus(req.Status)); err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"id": id, "status": req.Status})
}
