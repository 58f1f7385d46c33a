package middleware

import (
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/noteapp-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/noteapp-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/noteapp-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

// RequireRoles admits the request only if the caller's current role, read
// from the database rather than the token, is one of roles.
func RequireRoles(policy *services.RolePolicy, roles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, _ := GetIdentity(c)

		err := policy.Authorize(c.UserContext(), identity, roles...)
		switch {
		case err == nil:
			return c.Next()
		case errors.Is(err, services.ErrUnauthorized):
			return unauthorized(c)
		case errors.Is(err, services.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Forbidden resource",
			})
		default:
			slog.Error("role check failed", "path", c.Path(), "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Internal server error",
			})
		}
	}
}
