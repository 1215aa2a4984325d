package usecase

import (
	"context"

	"academy/internal/domain/entity"
)

// SetSettingInput upserts one setting. A nil Description keeps the stored one.
type SetSettingInput struct {
	Key         string  `json:"key_name" validate:"required,max=100"`
	Value       string  `json:"key_value" validate:"required"`
	Description *string `json:"description"`
}

// SettingUsecase manages site-wide key/value settings.
type SettingUsecase interface {
	List(ctx context.Context) ([]*entity.Setting, error)
	Get(ctx context.Context, key string) (*entity.Setting, error)
	Set(ctx context.Context, input *SetSettingInput) (*entity.Setting, error)
	Delete(ctx context.Context, key string) error
}
