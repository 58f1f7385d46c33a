package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Tag struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name   string    `gorm:"size:100;not null" json:"name"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	// NoteIDs is a denormalized back-reference list. Nothing maintains it;
	// note membership is read from Note.TagIDs.
	NoteIDs   datatypes.JSONSlice[uuid.UUID] `json:"noteIds"`
	CreatedAt time.Time                      `json:"createdAt"`
	UpdatedAt time.Time                      `json:"updatedAt"`
}
