package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Note struct {
	ID         uuid.UUID                      `gorm:"type:uuid;primaryKey" json:"id"`
	Title      string                         `gorm:"size:255;not null" json:"title"`
	Content    string                         `gorm:"type:text" json:"content"`
	UserID     uuid.UUID                      `gorm:"type:uuid;not null;index" json:"userId"`
	CategoryID *uuid.UUID                     `gorm:"type:uuid;index" json:"categoryId"`
	TagIDs     datatypes.JSONSlice[uuid.UUID] `json:"tagIds"`
	CreatedAt  time.Time                      `gorm:"index" json:"createdAt"`
	UpdatedAt  time.Time                      `json:"updatedAt"`

	// Loaded on single-note reads only.
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Tags     []Tag     `gorm:"-" json:"tags,omitempty"`
}
