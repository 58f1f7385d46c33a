package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ahmetcoskunkizilkaya/noteapp-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/noteapp-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/noteapp-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrEmailRequired = errors.New("external identity has no email")

type AuthService struct {
	db     *gorm.DB
	cfg    *config.Config
	tokens *TokenIssuer
}

func NewAuthService(db *gorm.DB, cfg *config.Config, tokens *TokenIssuer) *AuthService {
	return &AuthService{db: db, cfg: cfg, tokens: tokens}
}

// GoogleSignIn resolves an external identity to a local user, creating the
// user on first sight of the email, and issues a session token for it.
func (s *AuthService) GoogleSignIn(ctx context.Context, ext *ExternalIdentity) (*dto.AuthResponse, error) {
	if ext == nil || strings.TrimSpace(ext.Email) == "" {
		return nil, ErrEmailRequired
	}
	email := strings.TrimSpace(ext.Email)

	user, err := s.findByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		user, err = s.provision(ctx, email, ext)
		if err != nil {
			return nil, err
		}
	}

	return s.authResponse(user)
}

// Me echoes the identity carried by the caller's token.
func (s *AuthService) Me(identity *Identity) *dto.IdentityResponse {
	return &dto.IdentityResponse{
		ID:    identity.ID,
		Email: identity.Email,
		Role:  string(identity.Role),
	}
}

func (s *AuthService) findByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

// provision creates the user. Two first sign-ins for the same email can
// race; the loser hits the unique index and adopts the winner's row.
func (s *AuthService) provision(ctx context.Context, email string, ext *ExternalIdentity) (*models.User, error) {
	role := models.RoleUser
	if s.cfg.IsAdminEmail(email) {
		role = models.RoleAdmin
	}

	user := models.User{
		ID:    uuid.New(),
		Email: email,
		Name:  displayName(email, ext),
		Role:  role,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		existing, findErr := s.findByEmail(ctx, email)
		if findErr == nil && existing != nil {
			return existing, nil
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("user provisioned", "user_id", user.ID.String(), "role", string(user.Role), "action", "google_sign_in")
	return &user, nil
}

func (s *AuthService) authResponse(user *models.User) (*dto.AuthResponse, error) {
	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		AccessToken: token,
		User: dto.UserResponse{
			ID:        user.ID,
			Email:     user.Email,
			Name:      user.Name,
			Role:      string(user.Role),
			CreatedAt: user.CreatedAt,
			UpdatedAt: user.UpdatedAt,
		},
	}, nil
}

func displayName(email string, ext *ExternalIdentity) string {
	name := strings.TrimSpace(ext.FirstName + " " + ext.LastName)
	if name == "" {
		name = strings.Split(email, "@")[0]
	}
	return name
}
