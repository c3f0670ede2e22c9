package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/raushan1895/resort360/internal/application"
	"github.com/raushan1895/resort360/internal/domain"
)

const userLocalKey = "currentUser"

// RequireAuth resolves the bearer token and stores the user in the request
// locals. Requests without a valid session get a 401.
func RequireAuth(users *application.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing bearer token",
			})
		}

		user, err := users.Authenticate(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or expired session",
			})
		}

		c.Locals(userLocalKey, user)
		return c.Next()
	}
}

// RequirePermission gates a route on the authenticated user's role. It must
// run after RequireAuth.
func RequirePermission(perm domain.Permission) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "authentication required",
			})
		}
		if !user.Role.Can(perm) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "insufficient permissions",
			})
		}
		return c.Next()
	}
}

// CurrentUser returns the authenticated user set by RequireAuth, or nil.
func CurrentUser(c *fiber.Ctx) *domain.User {
	user, _ := c.Locals(userLocalKey).(*domain.User)
	return user
}
