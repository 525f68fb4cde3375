package auth

import (
	"github.com/gofiber/fiber/v2"
)

const (
	RoleAdmin  = "ADMIN"
	RoleWorker = "WORKER"
)

// IsAdmin gates admin-only routes. Must run after AuthJWT.
func IsAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if role == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}
		if role != RoleAdmin {
			return fiber.NewError(fiber.StatusForbidden, "Admin only")
		}
		return c.Next()
	}
}
