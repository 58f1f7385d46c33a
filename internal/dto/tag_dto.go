package dto

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreateTagRequest struct {
	Name string `json:"name"`
}

func (r CreateTagRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
	)
}

type UpdateTagRequest struct {
	Name *string `json:"name"`
}

func (r UpdateTagRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 100)),
	)
}
