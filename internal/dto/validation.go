package dto

import (
	"errors"
	"sort"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors flattens ozzo validation errors into a list sorted by field.
// Nested errors from validation.Each are reported as "field.index".
func FieldErrors(err error) []FieldError {
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := flatten("", verrs)
	sort.Slice(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out
}

func flatten(prefix string, verrs validation.Errors) []FieldError {
	var out []FieldError
	for field, err := range verrs {
		if prefix != "" {
			field = prefix + "." + field
		}
		var nested validation.Errors
		if errors.As(err, &nested) {
			out = append(out, flatten(field, nested)...)
			continue
		}
		out = append(out, FieldError{Field: field, Message: err.Error()})
	}
	return out
}

// positiveInt accepts an empty string (use the default) or a decimal
// integer in [1, max]. max <= 0 means unbounded.
func positiveInt(max int) validation.Rule {
	return validation.By(func(value interface{}) error {
		s, _ := value.(string)
		if s == "" {
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return validation.NewError("validation_is_int", "must be an integer")
		}
		if n < 1 {
			return validation.NewError("validation_min", "must be at least 1")
		}
		if max > 0 && n > max {
			return validation.NewError("validation_max", "must be no greater than "+strconv.Itoa(max))
		}
		return nil
	})
}

// ParseUUIDs converts id strings. The result is never nil so that an empty
// list stays distinguishable from an absent one.
func ParseUUIDs(ids []string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		parsed, err := uuid.Parse(id)
		if err != nil {
			return nil, err
		}
		out = append(out, parsed)
	}
	return out, nil
}
