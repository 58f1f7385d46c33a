package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/noteapp-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type NoteInput struct {
	Title      string
	Content    string
	CategoryID *uuid.UUID
	TagIDs     []uuid.UUID
}

// NotePatch carries only the fields present in an update request.
// CategorySet distinguishes "clear the category" (CategorySet with a nil
// CategoryID) from "leave it alone" (CategorySet false). A nil TagIDs
// leaves the tags unchanged.
type NotePatch struct {
	Title       *string
	Content     *string
	CategorySet bool
	CategoryID  *uuid.UUID
	TagIDs      []uuid.UUID
}

type NoteService struct {
	db     *gorm.DB
	policy *RolePolicy
	refs   *ReferenceValidator
}

func NewNoteService(db *gorm.DB, policy *RolePolicy, refs *ReferenceValidator) *NoteService {
	return &NoteService{db: db, policy: policy, refs: refs}
}

func (s *NoteService) Create(ctx context.Context, identity *Identity, in NoteInput) (*models.Note, error) {
	if err := s.refs.Validate(ctx, identity.ID, in.CategoryID, in.TagIDs); err != nil {
		return nil, err
	}

	tagIDs := in.TagIDs
	if tagIDs == nil {
		tagIDs = []uuid.UUID{}
	}

	note := models.Note{
		ID:         uuid.New(),
		Title:      in.Title,
		Content:    in.Content,
		UserID:     identity.ID,
		CategoryID: in.CategoryID,
		TagIDs:     datatypes.JSONSlice[uuid.UUID](tagIDs),
	}
	if err := s.db.WithContext(ctx).Omit("Category").Create(&note).Error; err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}

	slog.Info("note created", "user_id", identity.ID.String(), "note_id", note.ID.String())
	return &note, nil
}

// ListMine returns one page of the caller's notes, newest first.
func (s *NoteService) ListMine(ctx context.Context, identity *Identity, params PageParams) (*Page[models.Note], error) {
	return Paginate[models.Note](ctx, s.db, OwnedBy(identity.ID), params)
}

// ListAll returns every note. Callers must have passed an ADMIN role check.
func (s *NoteService) ListAll(ctx context.Context) ([]models.Note, error) {
	notes := []models.Note{}
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&notes).Error; err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

// Get returns the note with its category and tags. Non-admins only see
// their own notes; anything else is ErrNoteNotFound.
func (s *NoteService) Get(ctx context.Context, identity *Identity, id uuid.UUID) (*models.Note, error) {
	scope, err := s.policy.VisibilityScope(ctx, identity)
	if err != nil {
		return nil, err
	}

	var note models.Note
	err = s.db.WithContext(ctx).Scopes(scope).Preload("Category").First(&note, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("get note: %w", err)
	}

	if err := s.loadTags(ctx, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// Update applies patch after the same visibility check as Get. References
// in the patch are validated against the note's owner.
func (s *NoteService) Update(ctx context.Context, identity *Identity, id uuid.UUID, patch NotePatch) (*models.Note, error) {
	note, err := s.Get(ctx, identity, id)
	if err != nil {
		return nil, err
	}

	var categoryID *uuid.UUID
	if patch.CategorySet {
		categoryID = patch.CategoryID
	}
	if err := s.refs.Validate(ctx, note.UserID, categoryID, patch.TagIDs); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Content != nil {
		updates["content"] = *patch.Content
	}
	if patch.CategorySet {
		if patch.CategoryID != nil {
			updates["category_id"] = *patch.CategoryID
		} else {
			updates["category_id"] = nil
		}
	}
	if patch.TagIDs != nil {
		updates["tag_ids"] = datatypes.JSONSlice[uuid.UUID](patch.TagIDs)
	}

	if len(updates) > 0 {
		err := s.db.WithContext(ctx).Model(&models.Note{}).Where("id = ?", note.ID).Updates(updates).Error
		if err != nil {
			return nil, fmt.Errorf("update note: %w", err)
		}
		slog.Info("note updated", "user_id", identity.ID.String(), "note_id", note.ID.String())
	}

	return s.Get(ctx, identity, note.ID)
}

// Delete removes the note and returns its last state.
func (s *NoteService) Delete(ctx context.Context, identity *Identity, id uuid.UUID) (*models.Note, error) {
	note, err := s.Get(ctx, identity, id)
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Delete(&models.Note{}, "id = ?", note.ID).Error; err != nil {
		return nil, fmt.Errorf("delete note: %w", err)
	}

	slog.Info("note deleted", "user_id", identity.ID.String(), "note_id", note.ID.String())
	return note, nil
}

// loadTags resolves TagIDs in their stored order. Tags deleted since the
// note was written are skipped.
func (s *NoteService) loadTags(ctx context.Context, note *models.Note) error {
	note.Tags = []models.Tag{}
	if len(note.TagIDs) == 0 {
		return nil
	}

	var tags []models.Tag
	if err := s.db.WithContext(ctx).Where("id IN ?", []uuid.UUID(note.TagIDs)).Find(&tags).Error; err != nil {
		return fmt.Errorf("load note tags: %w", err)
	}

	byID := make(map[uuid.UUID]models.Tag, len(tags))
	for _, tag := range tags {
		byID[tag.ID] = tag
	}
	for _, id := range note.TagIDs {
		if tag, ok := byID[id]; ok {
			note.Tags = append(note.Tags, tag)
		}
	}
	return nil
}
