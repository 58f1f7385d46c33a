package services

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// NotFoundError names the entity kind that could not be resolved. Missing
// and not-visible entities produce the same error so callers cannot probe
// for ids owned by someone else.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// Is lets errors.Is match any NotFoundError against ErrNotFound.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

var (
	ErrUserNotFound     = &NotFoundError{Message: "User not found"}
	ErrNoteNotFound     = &NotFoundError{Message: "Note not found"}
	ErrCategoryNotFound = &NotFoundError{Message: "Category not found"}
	ErrTagNotFound      = &NotFoundError{Message: "Tag not found"}
	ErrTagsNotFound     = &NotFoundError{Message: "One or more tags not found"}
)
