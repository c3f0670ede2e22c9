package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/raushan1895/resort360/internal/application"
	"github.com/raushan1895/resort360/internal/domain"
)

type UserHandler struct {
	service *application.UserService
}

// NewUserHandler creates a new instance of the user handler.
func NewUserHandler(service *application.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateRoleRequest struct {
	Role string `json:"role"`
}

func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	user, err := h.service.Register(req.Name, req.Email, req.Phone, req.Password)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login issues a bearer token. Invalid credentials and unknown accounts get
// the same answer.
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	session, user, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		if domain.IsValidationError(err) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return handleError(c, err)
	}

	return c.JSON(fiber.Map{
		"token":     session.Token,
		"expiresAt": session.ExpiresAt,
		"user":      user,
	})
}

func (h *UserHandler) Logout(c *fiber.Ctx) error {
	token, _ := strings.CutPrefix(c.Get("Authorization"), "Bearer ")
	if err := h.service.Logout(token); err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"message": "logged out"})
}

// Me returns the authenticated user.
func (h *UserHandler) Me(c *fiber.Ctx) error {
	user := CurrentUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "authentication required",
		})
	}
	return c.JSON(user)
}

func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.service.ListUsers()
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(users)
}

func (h *UserHandler) UpdateRole(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid user id",
		})
	}

	var req UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if err := h.service.UpdateRole(id, domain.Role(req.Role)); err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"id": id, "role": req.Role})
}
