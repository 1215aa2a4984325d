package repository

import (
	"context"
	"errors"
	"slices"

	"github.com/google/uuid"
)

var (
	// ErrRecordNotFound is returned when no row matches the requested id.
	ErrRecordNotFound = errors.New("record not found")

	// ErrRecordConflict is returned when a write violates a unique constraint.
	ErrRecordConflict = errors.New("record conflicts with an existing one")

	// ErrConstraintViolation is returned when a write breaks a foreign key, check or not-null constraint.
	ErrConstraintViolation = errors.New("record violates a constraint")

	// ErrUnknownColumn is returned when a filter or change names a column outside the schema.
	ErrUnknownColumn = errors.New("unknown column")
)

// DeleteMode selects how Delete removes a record.
type DeleteMode int

const (
	// HardDelete removes the row.
	HardDelete DeleteMode = iota
	// SoftDelete clears the schema's active column instead.
	SoftDelete
)

// ResourceSchema describes a table managed by the generic resource repository.
type ResourceSchema struct {
	Table string
	// FilterColumns are the only columns List accepts as equality filters.
	FilterColumns []string
	// UpdatableColumns are the only columns Update accepts.
	UpdatableColumns []string
	// DefaultOrder is a fixed ORDER BY expression, e.g. "display_order ASC, name ASC".
	DefaultOrder string
	DeleteMode   DeleteMode
	// ActiveColumn is the boolean column cleared by a soft delete.
	ActiveColumn string
}

// AllowsFilter reports whether column may be used as a List filter.
func (s ResourceSchema) AllowsFilter(column string) bool {
	return slices.Contains(s.FilterColumns, column)
}

// AllowsUpdate reports whether column may be changed by Update.
func (s ResourceSchema) AllowsUpdate(column string) bool {
	return slices.Contains(s.UpdatableColumns, column)
}

// ListQuery carries equality filters and a page window.
type ListQuery struct {
	// Filters maps column name to the value it must equal. Only supplied keys are applied.
	Filters map[string]any
	Page    int
	Limit   int
}

// Offset returns the number of rows to skip for the requested page.
func (q ListQuery) Offset() int {
	if q.Page < 1 {
		return 0
	}

	return (q.Page - 1) * q.Limit
}

// ResourceRepository is the generic CRUD contract shared by every content entity.
type ResourceRepository[E any] interface {
	// List returns one page of records matching the filters and the total match count.
	List(ctx context.Context, query ListQuery) ([]*E, int64, error)

	// FindByID returns the record or ErrRecordNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*E, error)

	// Create inserts the record and returns it as stored.
	Create(ctx context.Context, record *E) (*E, error)

	// Update applies only the supplied column changes, bumps updated_at and returns the stored row.
	Update(ctx context.Context, id uuid.UUID, changes map[string]any) (*E, error)

	// Delete removes the record according to the schema's DeleteMode.
	Delete(ctx context.Context, id uuid.UUID) error
}
