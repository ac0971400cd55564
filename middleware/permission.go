package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/doganzub/calendar-app/auth"
)

// RequireRole gates a route on the closed role set. An authenticated request
// with the wrong role gets a 403 warning, never the not-logged-in response.
// Must run after Protected.
func RequireRole(roles ...auth.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := auth.Require(CurrentIdentity(c), roles...)
		switch {
		case errors.Is(err, auth.ErrNoSession):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":   "authentication_required",
				"message": "Not logged in",
			})
		case errors.Is(err, auth.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error":   "forbidden",
				"message": "You do not have access permission",
			})
		}
		return c.Next()
	}
}
