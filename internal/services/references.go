package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/noteapp-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReferenceValidator checks that the category and tags a note points at
// exist and belong to the note's owner.
type ReferenceValidator struct {
	db *gorm.DB
}

func NewReferenceValidator(db *gorm.DB) *ReferenceValidator {
	return &ReferenceValidator{db: db}
}

// ValidateCategory fails with ErrCategoryNotFound unless categoryID is
// owned by ownerID.
func (v *ReferenceValidator) ValidateCategory(ctx context.Context, ownerID, categoryID uuid.UUID) error {
	var category models.Category
	err := v.db.WithContext(ctx).
		Scopes(OwnedBy(ownerID)).
		Select("id").
		First(&category, "id = ?", categoryID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("look up category: %w", err)
	}
	return nil
}

// ValidateTags fails with ErrTagsNotFound unless every requested id
// resolves to a tag owned by ownerID. Duplicated ids count twice in the
// request but once in the store, so they are rejected too.
func (v *ReferenceValidator) ValidateTags(ctx context.Context, ownerID uuid.UUID, tagIDs []uuid.UUID) error {
	if len(tagIDs) == 0 {
		return nil
	}

	var count int64
	err := v.db.WithContext(ctx).
		Model(&models.Tag{}).
		Scopes(OwnedBy(ownerID)).
		Where("id IN ?", tagIDs).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("look up tags: %w", err)
	}
	if count != int64(len(tagIDs)) {
		return ErrTagsNotFound
	}
	return nil
}

// Validate runs the category and tag checks for whichever references are
// present. A nil categoryID or nil tagIDs means the field was not supplied.
func (v *ReferenceValidator) Validate(ctx context.Context, ownerID uuid.UUID, categoryID *uuid.UUID, tagIDs []uuid.UUID) error {
	if categoryID != nil {
		if err := v.ValidateCategory(ctx, ownerID, *categoryID); err != nil {
			return err
		}
	}
	if tagIDs != nil {
		if err := v.ValidateTags(ctx, ownerID, tagIDs); err != nil {
			return err
		}
	}
	return nil
}
