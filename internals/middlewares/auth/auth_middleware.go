package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	helper "universe_backend/internals/helpers"
)

// Locals keys set by VerifyToken.
const (
	LocalsUserID   = "user_id"
	LocalsRole     = "role"
	LocalsUserName = "user_name"
)

// VerifyToken reads the auth cookie (Authorization bearer as fallback),
// verifies the JWT and stores the claims on the request context.
func VerifyToken() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(helper.AuthCookieName)
		if tokenString == "" {
			if h := c.Get(fiber.HeaderAuthorization); strings.HasPrefix(h, "Bearer ") {
				tokenString = strings.TrimPrefix(h, "Bearer ")
			}
		}
		if tokenString == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Access denied. No token provided.")
		}

		claims, err := helper.ParseJWT(tokenString)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid token.")
		}

		c.Locals(LocalsUserID, claims.Subject)
		c.Locals(LocalsRole, claims.Role)
		c.Locals(LocalsUserName, claims.UserName)
		return c.Next()
	}
}

// UserID returns the authenticated caller's id from the request context.
func UserID(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocalsUserID).(string); ok {
		return v
	}
	return ""
}

func Role(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocalsRole).(string); ok {
		return v
	}
	return ""
}

func UserName(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocalsUserName).(string); ok {
		return v
	}
	return ""
}
