package handlers

import (
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/noteapp-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/noteapp-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/noteapp-backend/internal/services"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
)

// respondError maps service errors to responses. Anything unrecognised is
// logged, reported to Sentry and hidden behind a generic 500.
func respondError(c *fiber.Ctx, err error, action string) error {
	var notFound *services.NotFoundError
	switch {
	case errors.As(err, &notFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: notFound.Message,
		})
	case errors.Is(err, services.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Forbidden resource",
		})
	}

	attrs := []any{"action", action, "method", c.Method(), "path", c.Path(), "error", err.Error()}
	if rid, ok := c.Locals("requestid").(string); ok {
		attrs = append(attrs, "request_id", rid)
	}
	if identity, idErr := middleware.GetIdentity(c); idErr == nil {
		attrs = append(attrs, "user_id", identity.ID.String())
	}
	slog.Error(action+" failed", attrs...)

	if hub := sentryfiber.GetHubFromContext(c); hub != nil {
		hub.CaptureException(err)
	}

	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Internal server error",
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: message,
	})
}

func validationFailed(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error:   true,
		Message: "Validation failed",
		Details: dto.FieldErrors(err),
	})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "Unauthorized",
	})
}
