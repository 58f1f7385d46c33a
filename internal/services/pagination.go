package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// PageParams must already be validated: Page >= 1 and Limit >= 1.
type PageParams struct {
	Page  int
	Limit int
}

func (p PageParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

type PageMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalItems int64 `json:"totalItems"`
	TotalPages int   `json:"totalPages"`
}

type Page[T any] struct {
	Items []T      `json:"items"`
	Meta  PageMeta `json:"meta"`
}

// TotalPages is ceil(total/limit).
func TotalPages(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// Paginate fetches one page of T under scope, newest first, together with
// the total count. The two reads are independent and run concurrently.
// A page past the end yields an empty Items slice with accurate meta.
func Paginate[T any](ctx context.Context, db *gorm.DB, scope func(*gorm.DB) *gorm.DB, params PageParams) (*Page[T], error) {
	var (
		items []T
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := db.WithContext(gctx).
			Scopes(scope).
			Order("created_at DESC").
			Order("id DESC").
			Limit(params.Limit).
			Offset(params.Offset()).
			Find(&items).Error
		if err != nil {
			return fmt.Errorf("fetch page: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := db.WithContext(gctx).Model(new(T)).Scopes(scope).Count(&total).Error; err != nil {
			return fmt.Errorf("count items: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if items == nil {
		items = []T{}
	}

	return &Page[T]{
		Items: items,
		Meta: PageMeta{
			Page:       params.Page,
			Limit:      params.Limit,
			TotalItems: total,
			TotalPages: TotalPages(total, params.Limit),
		},
	}, nil
}
