package usecase

import (
	"strconv"
	"strings"

	domainerrors "academy/internal/domain/errors"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Pagination is a validated page window.
type Pagination struct {
	Page  int
	Limit int
}

// ParsePagination reads raw page/limit query values. Empty values take the defaults,
// limit is clamped to MaxLimit, and anything non-numeric or below 1 is rejected.
func ParsePagination(rawPage, rawLimit string) (Pagination, error) {
	page, err := parsePositive(rawPage, DefaultPage, "page")
	if err != nil {
		return Pagination{}, err
	}

	limit, err := parsePositive(rawLimit, DefaultLimit, "limit")
	if err != nil {
		return Pagination{}, err
	}

	return Pagination{Page: page, Limit: min(limit, MaxLimit)}, nil
}

func parsePositive(raw string, fallback int, name string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, domainerrors.ErrInvalidPagination.WithDetails(name + " must be a positive integer")
	}

	return n, nil
}

// PageResult is one page of records plus the figures needed to render pagination.
type PageResult[E any] struct {
	Items      []*E
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// NewPageResult computes TotalPages as ceil(total/limit).
func NewPageResult[E any](items []*E, total int64, p Pagination) *PageResult[E] {
	totalPages := 0
	if p.Limit > 0 {
		totalPages = int((total + int64(p.Limit) - 1) / int64(p.Limit))
	}
	if items == nil {
		items = []*E{}
	}

	return &PageResult[E]{
		Items:      items,
		Total:      total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: totalPages,
	}
}
