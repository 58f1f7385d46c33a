package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/noteapp-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/noteapp-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/noteapp-backend/internal/testutil"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(tokens *services.TokenIssuer, extra ...fiber.Handler) *fiber.App {
	app := fiber.New()
	handlers := []fiber.Handler{JWTProtected(tokens), Identity(tokens)}
	handlers = append(handlers, extra...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		identity, err := GetIdentity(c)
		if err != nil {
			return c.SendStatus(fiber.StatusTeapot)
		}
		return c.SendString(identity.ID.String())
	})
	app.Get("/whoami", handlers...)
	return app
}

func call(t *testing.T, app *fiber.App, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestIdentityFromToken(t *testing.T) {
	tokens := services.NewTokenIssuer("secret", "NoteApp", time.Hour)
	app := newTestApp(tokens)
	user := &models.User{ID: uuid.New(), Email: "a@example.com", Role: models.RoleUser}

	token, err := tokens.Issue(user)
	require.NoError(t, err)

	resp := call(t, app, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestJWTRejections(t *testing.T) {
	tokens := services.NewTokenIssuer("secret", "NoteApp", time.Hour)
	app := newTestApp(tokens)

	foreign, err := services.NewTokenIssuer("secret", "OtherApp", time.Hour).Issue(&models.User{Email: "a@example.com"})
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss": "NoteApp", "aud": "NoteApp", "exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	for name, token := range map[string]string{
		"missing":        "",
		"malformed":      "abc.def.ghi",
		"foreign issuer": foreign,
		"no subject":     noSubject,
	} {
		t.Run(name, func(t *testing.T) {
			resp := call(t, app, token)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestRequireRoles(t *testing.T) {
	db := testutil.NewDB(t)
	tokens := services.NewTokenIssuer("secret", "NoteApp", time.Hour)
	policy := services.NewRolePolicy(db)
	app := newTestApp(tokens, RequireRoles(policy, models.RoleAdmin))

	user := testutil.CreateUser(t, db, "user@example.com", models.RoleUser)
	admin := testutil.CreateUser(t, db, "admin@example.com", models.RoleAdmin)

	userToken, err := tokens.Issue(user)
	require.NoError(t, err)
	adminToken, err := tokens.Issue(admin)
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, call(t, app, userToken).StatusCode)
	assert.Equal(t, http.StatusOK, call(t, app, adminToken).StatusCode)

	// a forged ADMIN claim does not help a USER
	user.Role = models.RoleAdmin
	forged, err := tokens.Issue(user)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, call(t, app, forged).StatusCode)
}
