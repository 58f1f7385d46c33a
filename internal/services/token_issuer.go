package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/ahmetcoskunkizilkaya/noteapp-backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenClaims is the signed session payload.
type TokenClaims struct {
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 session tokens. Issuer and audience
// are both set to the application name.
type TokenIssuer struct {
	secret []byte
	issuer string
	expiry time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret, issuer string, expiry time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(secret),
		issuer: issuer,
		expiry: expiry,
		now:    time.Now,
	}
}

func (t *TokenIssuer) Secret() []byte { return t.secret }

func (t *TokenIssuer) Issue(user *models.User) (string, error) {
	now := t.now()
	claims := TokenClaims{
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			Issuer:    t.issuer,
			Audience:  jwt.ClaimStrings{t.issuer},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies signature, issuer, audience and expiry and returns the
// identity the token describes.
func (t *TokenIssuer) Parse(tokenString string) (*Identity, error) {
	claims := &TokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (interface{}, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(t.issuer),
		jwt.WithAudience(t.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	return identityFromClaims(claims.Subject, claims.Email, claims.Role)
}

// IdentityFromMapClaims validates issuer and audience on claims already
// verified for signature and expiry, as produced by the Fiber JWT middleware.
func (t *TokenIssuer) IdentityFromMapClaims(claims jwt.MapClaims) (*Identity, error) {
	validator := jwt.NewValidator(
		jwt.WithIssuer(t.issuer),
		jwt.WithAudience(t.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err := validator.Validate(claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	return identityFromClaims(sub, email, models.Role(role))
}

func identityFromClaims(sub, email string, role models.Role) (*Identity, error) {
	if sub == "" {
		return nil, errors.Join(ErrUnauthorized, errors.New("missing sub claim"))
	}
	id, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.Join(ErrUnauthorized, fmt.Errorf("invalid sub claim: %w", err))
	}
	return &Identity{ID: id, Email: email, Role: role}, nil
}
