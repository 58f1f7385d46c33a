package handlers

import (
	"github.com/ahmetcoskunkizilkaya/noteapp-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/noteapp-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/noteapp-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// UserHandler serves the admin user management endpoints. Role gating is
// done by the router.
type UserHandler struct {
	service *services.UserService
}

func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Create does not create anything. Accounts only come into existence
// through Google sign-in, so the client is sent there.
func (h *UserHandler) Create(c *fiber.Ctx) error {
	c.Location("/api/auth/google")
	return c.Status(fiber.StatusFound).JSON(dto.MessageResponse{
		Message: "Redirected to Google Auth",
	})
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.service.ListAll(c.UserContext())
	if err != nil {
		return respondError(c, err, "list users")
	}
	return c.JSON(users)
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	user, err := h.service.Get(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err, "get user")
	}
	return c.JSON(user)
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return validationFailed(c, err)
	}

	patch := services.UserPatch{Name: req.Name}
	if req.Role != nil {
		role := models.Role(*req.Role)
		patch.Role = &role
	}

	user, err := h.service.Update(c.UserContext(), userID, patch)
	if err != nil {
		return respondError(c, err, "update user")
	}
	return c.JSON(user)
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	user, err := h.service.Delete(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err, "delete user")
	}
	return c.JSON(user)
}
