package handlers

import (
	"github.com/ahmetcoskunkizilkaya/noteapp-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/noteapp-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/noteapp-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CategoryHandler struct {
	service *services.CategoryService
}

func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return validationFailed(c, err)
	}

	category, err := h.service.Create(c.UserContext(), identity, req.Name)
	if err != nil {
		return respondError(c, err, "create category")
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

func (h *CategoryHandler) ListMine(c *fiber.Ctx) error {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		return unauthorized(c)
	}

	categories, err := h.service.ListMine(c.UserContext(), identity)
	if err != nil {
		return respondError(c, err, "list categories")
	}
	return c.JSON(categories)
}

func (h *CategoryHandler) ListAll(c *fiber.Ctx) error {
	categories, err := h.service.ListAll(c.UserContext())
	if err != nil {
		return respondError(c, err, "list all categories")
	}
	return c.JSON(categories)
}

func (h *CategoryHandler) Get(c *fiber.Ctx) error {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		return unauthorized(c)
	}

	categoryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid category ID")
	}

	category, err := h.service.Get(c.UserContext(), identity, categoryID)
	if err != nil {
		return respondError(c, err, "get category")
	}
	return c.JSON(category)
}

func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		return unauthorized(c)
	}

	categoryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid category ID")
	}

	var req dto.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return validationFailed(c, err)
	}

	category, err := h.service.Update(c.UserContext(), identity, categoryID, req.Name)
	if err != nil {
		return respondError(c, err, "update category")
	}
	return c.JSON(category)
}

func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		return unauthorized(c)
	}

	categoryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid category ID")
	}

	category, err := h.service.Delete(c.UserContext(), identity, categoryID)
	if err != nil {
		return respondError(c, err, "delete category")
	}
	return c.JSON(category)
}
