package services

import (
	"context"
	"testing"

	"github.com/ahmetcoskunkizilkaya/noteapp-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/noteapp-backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserServiceUpdate(t *testing.T) {
	db := testutil.NewDB(t)
	users := NewUserService(db)
	ctx := context.Background()

	u := testutil.CreateUser(t, db, "u@example.com", models.RoleUser)

	admin := models.RoleAdmin
	got, err := users.Update(ctx, u.ID, UserPatch{Role: &admin})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, got.Role)
	assert.Equal(t, "u", got.Name)

	got, err = users.Update(ctx, u.ID, UserPatch{Name: ptr("Renamed")})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
	assert.Equal(t, models.RoleAdmin, got.Role)

	_, err = users.Update(ctx, uuid.New(), UserPatch{Name: ptr("x")})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserServiceDeleteKeepsContent(t *testing.T) {
	db := testutil.NewDB(t)
	users := NewUserService(db)
	ctx := context.Background()

	u := testutil.CreateUser(t, db, "u@example.com", models.RoleUser)
	testutil.CreateNote(t, db, u.ID, "orphan", 0)

	deleted, err := users.Delete(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, deleted.ID)

	_, err = users.Get(ctx, u.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.EqualValues(t, 1, countNotes(t, db))

	list, err := users.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
