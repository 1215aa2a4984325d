package repository

import (
	"context"

	"academy/internal/domain/entity"
)

// SettingRepository persists site settings keyed by key_name.
type SettingRepository interface {
	// List returns every setting ordered by key.
	List(ctx context.Context) ([]*entity.Setting, error)

	// FindByKey returns the setting or ErrRecordNotFound.
	FindByKey(ctx context.Context, key string) (*entity.Setting, error)

	// Upsert inserts or replaces the value for key in a single statement.
	// A nil description keeps the stored one.
	Upsert(ctx context.Context, key, value string, description *string) (*entity.Setting, error)

	// DeleteByKey removes the setting or returns ErrRecordNotFound.
	DeleteByKey(ctx context.Context, key string) error
}
