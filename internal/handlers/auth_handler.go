package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log/slog"
	"time"

	"github.com/ahmetcoskunkizilkaya/noteapp-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/noteapp-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/noteapp-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

const stateCookie = "oauth_state"

type AuthHandler struct {
	authService  *services.AuthService
	provider     services.IdentityProvider
	secureCookie bool
}

func NewAuthHandler(authService *services.AuthService, provider services.IdentityProvider, secureCookie bool) *AuthHandler {
	return &AuthHandler{authService: authService, provider: provider, secureCookie: secureCookie}
}

// GoogleLogin starts the authorization-code flow. The state value is kept in
// a short-lived cookie and checked again on the callback.
func (h *AuthHandler) GoogleLogin(c *fiber.Ctx) error {
	state, err := newState()
	if err != nil {
		return respondError(c, err, "google login")
	}

	c.Cookie(&fiber.Cookie{
		Name:     stateCookie,
		Value:    state,
		Path:     "/api/auth",
		Expires:  time.Now().Add(10 * time.Minute),
		HTTPOnly: true,
		Secure:   h.secureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Redirect(h.provider.AuthCodeURL(state), fiber.StatusFound)
}

func (h *AuthHandler) GoogleCallback(c *fiber.Ctx) error {
	state := c.Query("state")
	if state == "" || state != c.Cookies(stateCookie) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid OAuth state",
		})
	}
	c.ClearCookie(stateCookie)

	code := c.Query("code")
	if code == "" {
		return badRequest(c, "Authorization code is required")
	}

	ext, err := h.provider.Exchange(c.UserContext(), code)
	if err != nil {
		slog.Warn("google exchange failed", "error", err.Error())
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Google sign-in failed",
		})
	}

	resp, err := h.authService.GoogleSignIn(c.UserContext(), ext)
	if err != nil {
		if errors.Is(err, services.ErrEmailRequired) {
			return badRequest(c, "Google account has no email")
		}
		return respondError(c, err, "google sign-in")
	}

	return c.JSON(resp)
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		return unauthorized(c)
	}
	return c.JSON(h.authService.Me(identity))
}

func newState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
