package services

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/ahmetcoskunkizilkaya/noteapp-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Identity is the authorization subject resolved from a verified token.
// Role is whatever the token carried; privileged decisions never trust it
// and read the current role through RolePolicy instead.
type Identity struct {
	ID    uuid.UUID   `json:"id"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

// RolePolicy answers role and visibility questions from the users table.
// Roles are mutable after a token is issued, so every call hits the store.
type RolePolicy struct {
	db *gorm.DB
}

func NewRolePolicy(db *gorm.DB) *RolePolicy {
	return &RolePolicy{db: db}
}

// CurrentRole re-reads the identity's role. A user that no longer exists
// yields ErrUserNotFound.
func (p *RolePolicy) CurrentRole(ctx context.Context, identity *Identity) (models.Role, error) {
	var user models.User
	err := p.db.WithContext(ctx).Select("id", "role").First(&user, "id = ?", identity.ID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("load user role: %w", err)
	}
	return user.Role, nil
}

// Authorize allows the call when no roles are required. Otherwise the
// identity must exist and its current role must be in roles.
func (p *RolePolicy) Authorize(ctx context.Context, identity *Identity, roles ...models.Role) error {
	if len(roles) == 0 {
		return nil
	}
	if identity == nil {
		return ErrUnauthorized
	}

	role, err := p.CurrentRole(ctx, identity)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrForbidden
		}
		return err
	}
	if !slices.Contains(roles, role) {
		return ErrForbidden
	}
	return nil
}

// VisibilityScope returns the filter applied to single-entity reads:
// administrators see every row, everyone else only rows they own.
func (p *RolePolicy) VisibilityScope(ctx context.Context, identity *Identity) (func(*gorm.DB) *gorm.DB, error) {
	role, err := p.CurrentRole(ctx, identity)
	if err != nil {
		return nil, err
	}
	if role == models.RoleAdmin {
		return func(db *gorm.DB) *gorm.DB { return db }, nil
	}
	return OwnedBy(identity.ID), nil
}

// OwnedBy returns a GORM scope that filters by user_id.
func OwnedBy(userID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}
