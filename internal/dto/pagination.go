package dto

import (
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// PaginationQuery holds the raw page/limit query values. They are kept as
// strings so that malformed input is reported instead of coerced.
type PaginationQuery struct {
	Page  string `query:"page" json:"page"`
	Limit string `query:"limit" json:"limit"`
}

func (q PaginationQuery) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.Page, positiveInt(0)),
		validation.Field(&q.Limit, positiveInt(MaxLimit)),
	)
}

// Values returns page and limit with defaults applied. Call Validate first.
func (q PaginationQuery) Values() (page, limit int) {
	page, limit = DefaultPage, DefaultLimit
	if n, err := strconv.Atoi(q.Page); err == nil {
		page = n
	}
	if n, err := strconv.Atoi(q.Limit); err == nil {
		limit = n
	}
	return page, limit
}
