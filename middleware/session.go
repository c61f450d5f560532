package middleware

import (
	"github.com/gofiber/fiber/v2"

	"lms/models"
	"lms/services/identity"
)

// RequireSession rejects requests when no session user is set. The session
// user is stored in the request context for downstream handlers.
func RequireSession(id *identity.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := id.Current()
		if user == nil {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Not signed in!", nil)
		}

		c.Locals("user", *user)
		c.Locals("userId", user.ID)
		return c.Next()
	}
}

// AdminOnly rejects requests unless the session user holds the ADMIN role.
// Must run after RequireSession.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals("user").(models.User)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Not signed in!", nil)
		}

		if user.Role != models.RoleAdmin {
			return JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
		}
		return c.Next()
	}
}
