package dto

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type CreateNoteRequest struct {
	Title      string   `json:"title"`
	Content    *string  `json:"content"`
	CategoryID *string  `json:"categoryId"`
	TagIDs     []string `json:"tagIds"`
}

func (r CreateNoteRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Content, validation.NotNil),
		validation.Field(&r.CategoryID, validation.NilOrNotEmpty, is.UUID),
		validation.Field(&r.TagIDs, validation.Each(validation.Required, is.UUID)),
	)
}

// UpdateNoteRequest is a partial update. An absent tagIds leaves the tags
// alone while [] clears them; categoryId: null clears the category.
type UpdateNoteRequest struct {
	Title      *string        `json:"title"`
	Content    *string        `json:"content"`
	CategoryID OptionalString `json:"categoryId"`
	TagIDs     []string       `json:"tagIds"`
}

func (r UpdateNoteRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.Length(1, 255)),
		validation.Field(&r.CategoryID, validation.By(func(value interface{}) error {
			opt, _ := value.(OptionalString)
			if !opt.Present || opt.Value == nil {
				return nil
			}
			if *opt.Value == "" {
				return validation.ErrNilOrNotEmpty
			}
			return is.UUID.Validate(*opt.Value)
		})),
		validation.Field(&r.TagIDs, validation.Each(validation.Required, is.UUID)),
	)
}
