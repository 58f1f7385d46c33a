package middleware

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/noteapp-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/noteapp-backend/internal/services"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenLocalsKey    = "user"
	identityLocalsKey = "identity"
)

var errNoIdentity = errors.New("no identity in context")

// JWTProtected verifies the bearer token signature and expiry.
func JWTProtected(tokens *services.TokenIssuer) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{JWTAlg: jwtware.HS256, Key: tokens.Secret()},
		ContextKey: tokenLocalsKey,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return unauthorized(c)
		},
	})
}

// Identity checks issuer and audience on the verified token and stores the
// resulting identity in c.Locals. It must run after JWTProtected.
func Identity(tokens *services.TokenIssuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals(tokenLocalsKey).(*jwt.Token)
		if !ok || token == nil {
			return unauthorized(c)
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return unauthorized(c)
		}

		identity, err := tokens.IdentityFromMapClaims(claims)
		if err != nil {
			return unauthorized(c)
		}

		c.Locals(identityLocalsKey, identity)
		return c.Next()
	}
}

// GetIdentity returns the identity stored by Identity.
func GetIdentity(c *fiber.Ctx) (*services.Identity, error) {
	identity, ok := c.Locals(identityLocalsKey).(*services.Identity)
	if !ok || identity == nil {
		return nil, errNoIdentity
	}
	return identity, nil
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error:   true,
		Message: "Unauthorized: invalid or expired token",
	})
}
