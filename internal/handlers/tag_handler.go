package handlers

import (
	"github.com/ahmetcoskunkizilkaya/noteapp-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/noteapp-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/noteapp-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type TagHandler struct {
	service *services.TagService
}

func NewTagHandler(service *services.TagService) *TagHandler {
	return &TagHandler{service: service}
}

func (h *TagHandler) Create(c *fiber.Ctx) error {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateTagRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return validationFailed(c, err)
	}

	tag, err := h.service.Create(c.UserContext(), identity, req.Name)
	if err != nil {
		return respondError(c, err, "create tag")
	}
	return c.Status(fiber.StatusCreated).JSON(tag)
}

func (h *TagHandler) ListMine(c *fiber.Ctx) error {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		return unauthorized(c)
	}

	tags, err := h.service.ListMine(c.UserContext(), identity)
	if err != nil {
		return respondError(c, err, "list tags")
	}
	return c.JSON(tags)
}

func (h *TagHandler) ListAll(c *fiber.Ctx) error {
	tags, err := h.service.ListAll(c.UserContext())
	if err != nil {
		return respondError(c, err, "list all tags")
	}
	return c.JSON(tags)
}

func (h *TagHandler) Get(c *fiber.Ctx) error {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		return unauthorized(c)
	}

	tagID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid tag ID")
	}

	tag, err := h.service.Get(c.UserContext(), identity, tagID)
	if err != nil {
		return respondError(c, err, "get tag")
	}
	return c.JSON(tag)
}

func (h *TagHandler) Update(c *fiber.Ctx) error {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		return unauthorized(c)
	}

	tagID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid tag ID")
	}

	var req dto.UpdateTagRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return validationFailed(c, err)
	}

	tag, err := h.service.Update(c.UserContext(), identity, tagID, req.Name)
	if err != nil {
		return respondError(c, err, "update tag")
	}
	return c.JSON(tag)
}

func (h *TagHandler) Delete(c *fiber.Ctx) error {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		return unauthorized(c)
	}

	tagID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid tag ID")
	}

	tag, err := h.service.Delete(c.UserContext(), identity, tagID)
	if err != nil {
		return respondError(c, err, "delete tag")
	}
	return c.JSON(tag)
}
