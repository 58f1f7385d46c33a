package dto

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type UpdateUserRequest struct {
	Name *string `json:"name"`
	Role *string `json:"role"`
}

func (r UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 255)),
		validation.Field(&r.Role, validation.NilOrNotEmpty, validation.In("USER", "ADMIN")),
	)
}
