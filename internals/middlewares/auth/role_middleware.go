package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "universe_backend/internals/helpers"
)

// CheckRole gates a route to the given allow-list. Must run after VerifyToken.
func CheckRole(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := Role(c)
		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}
		return helper.JsonError(c, fiber.StatusForbidden, "Access denied. Insufficient permissions.")
	}
}
