package middleware

import (
	"course-marketplace/src/utils"

	"github.com/gofiber/fiber/v2"
)

// RequireRoles must run after AuthJWT.
func RequireRoles(allowedRoles ...string) fiber.Handler {
	roleSet := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		roleSet[r] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		_, role := Identity(c)
		if _, allowed := roleSet[role]; !allowed {
			return utils.HandleError(c, fiber.StatusForbidden, "Insufficient permissions")
		}
		return c.Next()
	}
}
