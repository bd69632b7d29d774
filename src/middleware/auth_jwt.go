package middleware

import (
	"strings"

	"course-marketplace/src/utils"

	"github.com/gofiber/fiber/v2"
)

const (
	LocalUsername = "username"
	LocalRole     = "role"
)

// AuthJWT ตรวจสอบ Bearer token
//
// No header is 401. A header that is malformed, badly signed or expired is 403.
// The role claim is stored but not checked here, see RequireRoles.
func AuthJWT(tokens *utils.TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return utils.HandleError(c, fiber.StatusUnauthorized, "Missing Authorization header")
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return utils.HandleError(c, fiber.StatusForbidden, "Invalid or expired token")
		}

		claims, err := tokens.ParseJWT(parts[1])
		if err != nil {
			return utils.HandleError(c, fiber.StatusForbidden, "Invalid or expired token")
		}

		c.Locals(LocalUsername, claims.Username)
		c.Locals(LocalRole, claims.Role)
		return c.Next()
	}
}

// Identity returns the claims stored by AuthJWT.
func Identity(c *fiber.Ctx) (username, role string) {
	username, _ = c.Locals(LocalUsername).(string)
	role, _ = c.Locals(LocalRole).(string)
	return username, role
}
