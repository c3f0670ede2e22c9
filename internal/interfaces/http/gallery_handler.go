package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/raushan1895/resort360/internal/application"
)

type GalleryHandler struct {
	service *application.GalleryService
}

// NewGalleryHandler creates a new instance of the gallery handler.
func NewGalleryHandler(service *application.GalleryService) *GalleryHandler {
	return &GalleryHandler{service: service}
}

// UploadRoomImage stores the multipart "file" field and attaches the
// resulting URL to the room.
func (h *GalleryHandler) UploadRoomImage(c *fiber.Ctx) error {
	roomID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid room id",
		})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "file field is required",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "could not open uploaded file",
		})
	}
	defer file.Close()

	image, err := h.service.AddRoomImage(roomID, file, fileHeader, c.FormValue("caption"))
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(image)
}
