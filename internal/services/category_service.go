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

type CategoryService struct {
	db     *gorm.DB
	policy *RolePolicy
}

func NewCategoryService(db *gorm.DB, policy *RolePolicy) *CategoryService {
	return &CategoryService{db: db, policy: policy}
}

func (s *CategoryService) Create(ctx context.Context, identity *Identity, name string) (*models.Category, error) {
	category := models.Category{
		ID:     uuid.New(),
		Name:   name,
		UserID: identity.ID,
	}
	if err := s.db.WithContext(ctx).Create(&category).Error; err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	slog.Info("category created", "user_id", identity.ID.String(), "category_id", category.ID.String())
	return &category, nil
}

func (s *CategoryService) ListMine(ctx context.Context, identity *Identity) ([]models.Category, error) {
	categories := []models.Category{}
	err := s.db.WithContext(ctx).Scopes(OwnedBy(identity.ID)).Order("created_at DESC").Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// ListAll returns every category. Callers must have passed an ADMIN role check.
func (s *CategoryService) ListAll(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// Get returns the category together with the notes filed under it.
func (s *CategoryService) Get(ctx context.Context, identity *Identity, id uuid.UUID) (*models.Category, error) {
	scope, err := s.policy.VisibilityScope(ctx, identity)
	if err != nil {
		return nil, err
	}

	var category models.Category
	err = s.db.WithContext(ctx).
		Scopes(scope).
		Preload("Notes", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC") }).
		First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &category, nil
}

func (s *CategoryService) Update(ctx context.Context, identity *Identity, id uuid.UUID, name *string) (*models.Category, error) {
	category, err := s.Get(ctx, identity, id)
	if err != nil {
		return nil, err
	}

	if name != nil {
		err := s.db.WithContext(ctx).Model(&models.Category{}).Where("id = ?", category.ID).Update("name", *name).Error
		if err != nil {
			return nil, fmt.Errorf("update category: %w", err)
		}
		slog.Info("category updated", "user_id", identity.ID.String(), "category_id", category.ID.String())
	}

	var updated models.Category
	if err := s.db.WithContext(ctx).First(&updated, "id = ?", category.ID).Error; err != nil {
		return nil, fmt.Errorf("reload category: %w", err)
	}
	return &updated, nil
}

// Delete removes the category and returns its last state. Notes that
// reference it keep their category id.
func (s *CategoryService) Delete(ctx context.Context, identity *Identity, id uuid.UUID) (*models.Category, error) {
	category, err := s.Get(ctx, identity, id)
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", category.ID).Error; err != nil {
		return nil, fmt.Errorf("delete category: %w", err)
	}

	slog.Info("category deleted", "user_id", identity.ID.String(), "category_id", category.ID.String())
	return category, nil
}
