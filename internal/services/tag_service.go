package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/noteapp-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TagService struct {
	db     *gorm.DB
	policy *RolePolicy
}

func NewTagService(db *gorm.DB, policy *RolePolicy) *TagService {
	return &TagService{db: db, policy: policy}
}

func (s *TagService) Create(ctx context.Context, identity *Identity, name string) (*models.Tag, error) {
	tag := models.Tag{
		ID:      uuid.New(),
		Name:    name,
		UserID:  identity.ID,
		NoteIDs: []uuid.UUID{},
	}
	if err := s.db.WithContext(ctx).Create(&tag).Error; err != nil {
		return nil, fmt.Errorf("create tag: %w", err)
	}

	slog.Info("tag created", "user_id", identity.ID.String(), "tag_id", tag.ID.String())
	return &tag, nil
}

func (s *TagService) ListMine(ctx context.Context, identity *Identity) ([]models.Tag, error) {
	tags := []models.Tag{}
	if err := s.db.WithContext(ctx).Scopes(OwnedBy(identity.ID)).Order("created_at DESC").Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}

// ListAll returns every tag. Callers must have passed an ADMIN role check.
func (s *TagService) ListAll(ctx context.Context) ([]models.Tag, error) {
	tags := []models.Tag{}
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}

func (s *TagService) Get(ctx context.Context, identity *Identity, id uuid.UUID) (*models.Tag, error) {
	scope, err := s.policy.VisibilityScope(ctx, identity)
	if err != nil {
		return nil, err
	}

	var tag models.Tag
	if err := s.db.WithContext(ctx).Scopes(scope).First(&tag, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, fmt.Errorf("get tag: %w", err)
	}
	return &tag, nil
}

// Update renames the tag. NoteIDs is never written here, and the reloaded
// row reads the same as Get.
func (s *TagService) Update(ctx context.Context, identity *Identity, id uuid.UUID, name *string) (*models.Tag, error) {
	tag, err := s.Get(ctx, identity, id)
	if err != nil {
		return nil, err
	}

	if name != nil {
		err := s.db.WithContext(ctx).Model(&models.Tag{}).Where("id = ?", tag.ID).Update("name", *name).Error
		if err != nil {
			return nil, fmt.Errorf("update tag: %w", err)
		}
		slog.Info("tag updated", "user_id", identity.ID.String(), "tag_id", tag.ID.String())
	}

	var updated models.Tag
	if err := s.db.WithContext(ctx).First(&updated, "id = ?", tag.ID).Error; err != nil {
		return nil, fmt.Errorf("reload tag: %w", err)
	}
	return &updated, nil
}

// Delete removes the tag and returns its last state. Notes that list the
// tag keep the id; reads skip tags that no longer exist.
func (s *TagService) Delete(ctx context.Context, identity *Identity, id uuid.UUID) (*models.Tag, error) {
	tag, err := s.Get(ctx, identity, id)
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Delete(&models.Tag{}, "id = ?", tag.ID).Error; err != nil {
		return nil, fmt.Errorf("delete tag: %w", err)
	}

	slog.Info("tag deleted", "user_id", identity.ID.String(), "tag_id", tag.ID.String())
	return tag, nil
}
