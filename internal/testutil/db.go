// Package testutil provides an in-memory database for package tests.
package testutil

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/noteapp-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/noteapp-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a private shared-cache SQLite database and migrates it.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%s?mode=memory&cache=shared&_busy_timeout=5000", name, uuid.NewString()[:8])

	cfg := database.GormConfig()
	cfg.Logger = logger.Default.LogMode(logger.Silent)
	db, err := gorm.Open(sqlite.Open(dsn), cfg)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps the memory database alive and serializes writes.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

// CreateUser inserts a user with the given role.
func CreateUser(t *testing.T, db *gorm.DB, email string, role models.Role) *models.User {
	t.Helper()
	user := &models.User{
		ID:    uuid.New(),
		Email: email,
		Name:  strings.Split(email, "@")[0],
		Role:  role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateCategory inserts a category owned by userID.
func CreateCategory(t *testing.T, db *gorm.DB, userID uuid.UUID, name string) *models.Category {
	t.Helper()
	category := &models.Category{ID: uuid.New(), Name: name, UserID: userID}
	require.NoError(t, db.Create(category).Error)
	return category
}

// CreateTag inserts a tag owned by userID.
func CreateTag(t *testing.T, db *gorm.DB, userID uuid.UUID, name string) *models.Tag {
	t.Helper()
	tag := &models.Tag{ID: uuid.New(), Name: name, UserID: userID, NoteIDs: []uuid.UUID{}}
	require.NoError(t, db.Create(tag).Error)
	return tag
}

// CreateNote inserts a note owned by userID with a creation time offset by
// age so that ordering by created_at is deterministic.
func CreateNote(t *testing.T, db *gorm.DB, userID uuid.UUID, title string, age time.Duration) *models.Note {
	t.Helper()
	ts := time.Now().Add(-age)
	note := &models.Note{
		ID:        uuid.New(),
		Title:     title,
		UserID:    userID,
		TagIDs:    []uuid.UUID{},
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	require.NoError(t, db.Create(note).Error)
	return note
}
