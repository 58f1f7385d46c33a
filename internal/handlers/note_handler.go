package handlers

import (
	"github.com/ahmetcoskunkizilkaya/noteapp-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/noteapp-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/noteapp-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type NoteHandler struct {
	service *services.NoteService
}

func NewNoteHandler(service *services.NoteService) *NoteHandler {
	return &NoteHandler{service: service}
}

func (h *NoteHandler) Create(c *fiber.Ctx) error {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return validationFailed(c, err)
	}

	in := services.NoteInput{
		Title:   req.Title,
		Content: *req.Content,
	}
	if req.CategoryID != nil {
		id, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return badRequest(c, "Invalid category ID")
		}
		in.CategoryID = &id
	}
	if req.TagIDs != nil {
		if in.TagIDs, err = dto.ParseUUIDs(req.TagIDs); err != nil {
			return badRequest(c, "Invalid tag ID")
		}
	}

	note, err := h.service.Create(c.UserContext(), identity, in)
	if err != nil {
		return respondError(c, err, "create note")
	}
	return c.Status(fiber.StatusCreated).JSON(note)
}

// ListMine returns the caller's notes one page at a time.
func (h *NoteHandler) ListMine(c *fiber.Ctx) error {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		return unauthorized(c)
	}

	var query dto.PaginationQuery
	if err := c.QueryParser(&query); err != nil {
		return badRequest(c, "Invalid query parameters")
	}
	if err := query.Validate(); err != nil {
		return validationFailed(c, err)
	}
	page, limit := query.Values()

	result, err := h.service.ListMine(c.UserContext(), identity, services.PageParams{Page: page, Limit: limit})
	if err != nil {
		return respondError(c, err, "list notes")
	}
	return c.JSON(result)
}

func (h *NoteHandler) ListAll(c *fiber.Ctx) error {
	notes, err := h.service.ListAll(c.UserContext())
	if err != nil {
		return respondError(c, err, "list all notes")
	}
	return c.JSON(notes)
}

func (h *NoteHandler) Get(c *fiber.Ctx) error {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		return unauthorized(c)
	}

	noteID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid note ID")
	}

	note, err := h.service.Get(c.UserContext(), identity, noteID)
	if err != nil {
		return respondError(c, err, "get note")
	}
	return c.JSON(note)
}

func (h *NoteHandler) Update(c *fiber.Ctx) error {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		return unauthorized(c)
	}

	noteID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid note ID")
	}

	var req dto.UpdateNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return validationFailed(c, err)
	}

	patch := services.NotePatch{
		Title:       req.Title,
		Content:     req.Content,
		CategorySet: req.CategoryID.Present,
	}
	if req.CategoryID.Value != nil {
		id, err := uuid.Parse(*req.CategoryID.Value)
		if err != nil {
			return badRequest(c, "Invalid category ID")
		}
		patch.CategoryID = &id
	}
	if req.TagIDs != nil {
		if patch.TagIDs, err = dto.ParseUUIDs(req.TagIDs); err != nil {
			return badRequest(c, "Invalid tag ID")
		}
	}

	note, err := h.service.Update(c.UserContext(), identity, noteID, patch)
	if err != nil {
		return respondError(c, err, "update note")
	}
	return c.JSON(note)
}

func (h *NoteHandler) Delete(c *fiber.Ctx) error {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		return unauthorized(c)
	}

	noteID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid note ID")
	}

	note, err := h.service.Delete(c.UserContext(), identity, noteID)
	if err != nil {
		return respondError(c, err, "delete note")
	}
	return c.JSON(note)
}
