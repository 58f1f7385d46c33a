package services

import (
	"context"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/noteapp-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/noteapp-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/noteapp-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(t *testing.T, db *gorm.DB, adminEmails ...string) (*AuthService, *TokenIssuer) {
	t.Helper()
	cfg := &config.Config{
		JWTSecret:   "test-secret",
		JWTIssuer:   "NoteApp",
		JWTExpiry:   time.Hour,
		AdminEmails: adminEmails,
	}
	tokens := NewTokenIssuer(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTExpiry)
	return NewAuthService(db, cfg, tokens), tokens
}

func countUsers(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.User{}).Count(&n).Error)
	return n
}

func TestGoogleSignInCreatesUserOnce(t *testing.T) {
	db := testutil.NewDB(t)
	auth, tokens := newAuthService(t, db)
	ctx := context.Background()

	ext := &ExternalIdentity{Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace"}

	first, err := auth.GoogleSignIn(ctx, ext)
	require.NoError(t, err)
	assert.EqualValues(t, 1, countUsers(t, db))
	assert.Equal(t, "Ada Lovelace", first.User.Name)
	assert.Equal(t, "USER", first.User.Role)

	identity, err := tokens.Parse(first.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, first.User.ID, identity.ID)
	assert.Equal(t, "ada@example.com", identity.Email)
	assert.Equal(t, models.RoleUser, identity.Role)

	second, err := auth.GoogleSignIn(ctx, ext)
	require.NoError(t, err)
	assert.EqualValues(t, 1, countUsers(t, db))
	assert.Equal(t, first.User.ID, second.User.ID)
}

func TestGoogleSignInUsesStoredRole(t *testing.T) {
	db := testutil.NewDB(t)
	auth, tokens := newAuthService(t, db)
	ctx := context.Background()

	existing := testutil.CreateUser(t, db, "boss@example.com", models.RoleAdmin)

	resp, err := auth.GoogleSignIn(ctx, &ExternalIdentity{Email: "boss@example.com"})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, resp.User.ID)

	identity, err := tokens.Parse(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, identity.Role)
}

func TestGoogleSignInBootstrapsAdmins(t *testing.T) {
	db := testutil.NewDB(t)
	auth, _ := newAuthService(t, db, "root@example.com")

	resp, err := auth.GoogleSignIn(context.Background(), &ExternalIdentity{Email: "Root@Example.com"})
	require.NoError(t, err)
	assert.Equal(t, "ADMIN", resp.User.Role)
	// falls back to the local part when the profile has no name
	assert.Equal(t, "Root", resp.User.Name)
}

func TestGoogleSignInRequiresEmail(t *testing.T) {
	db := testutil.NewDB(t)
	auth, _ := newAuthService(t, db)

	_, err := auth.GoogleSignIn(context.Background(), &ExternalIdentity{Email: "  "})
	assert.ErrorIs(t, err, ErrEmailRequired)

	_, err = auth.GoogleSignIn(context.Background(), nil)
	assert.ErrorIs(t, err, ErrEmailRequired)
	assert.Zero(t, countUsers(t, db))
}

func TestMeEchoesIdentity(t *testing.T) {
	db := testutil.NewDB(t)
	auth, _ := newAuthService(t, db)
	user := testutil.CreateUser(t, db, "me@example.com", models.RoleUser)

	me := auth.Me(identityOf(user))
	assert.Equal(t, user.ID, me.ID)
	assert.Equal(t, "me@example.com", me.Email)
	assert.Equal(t, "USER", me.Role)
}

func TestProvisionAdoptsExistingUser(t *testing.T) {
	db := testutil.NewDB(t)
	auth, _ := newAuthService(t, db)
	existing := testutil.CreateUser(t, db, "dup@example.com", models.RoleAdmin)

	user, err := auth.provision(context.Background(), "dup@example.com", &ExternalIdentity{Email: "dup@example.com", FirstName: "Dup"})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, user.ID)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.EqualValues(t, 1, countUsers(t, db))
}
