package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "academy/internal/delivery/context"
	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	"academy/internal/errors"
	"academy/internal/usecase"
)

// settingService implements the SettingUsecase interface.
type settingService struct {
	repo   repository.SettingRepository
	logger *slog.Logger
}

// NewSettingService is the constructor for settingService.
func NewSettingService(repo repository.SettingRepository, logger *slog.Logger) usecase.SettingUsecase {
	return &settingService{
		repo:   repo,
		logger: logger,
	}
}

func (srv *settingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *settingService) List(ctx context.Context) ([]*entity.Setting, error) {
	settings, err := srv.repo.List(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list settings", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, "list settings")
	}

	return settings, nil
}

func (srv *settingService) Get(ctx context.Context, key string) (*entity.Setting, error) {
	setting, err := srv.repo.FindByKey(ctx, key)
	if err != nil {
		return nil, srv.translate(ctx, err, key)
	}

	return setting, nil
}

// Set upserts the value. Concurrent writers are resolved by the store, last one wins.
func (srv *settingService) Set(ctx context.Context, input *usecase.SetSettingInput) (*entity.Setting, error) {
	if input == nil {
		return nil, errors.WithStack(domainerrors.ErrBadRequest)
	}
	input.Key = strings.TrimSpace(input.Key)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	setting, err := srv.repo.Upsert(ctx, input.Key, input.Value, input.Description)
	if err != nil {
		return nil, srv.translate(ctx, err, input.Key)
	}

	srv.log(ctx).Info("Setting saved", slog.String("key", input.Key))

	return setting, nil
}

func (srv *settingService) Delete(ctx context.Context, key string) error {
	if err := srv.repo.DeleteByKey(ctx, key); err != nil {
		return srv.translate(ctx, err, key)
	}

	srv.log(ctx).Info("Setting deleted", slog.String("key", key))

	return nil
}

func (srv *settingService) translate(ctx context.Context, err error, key string) error {
	if errors.Is(err, repository.ErrRecordNotFound) {
		return errors.Wrapf(domainerrors.ErrNotFound, "setting %q", key)
	}

	srv.log(ctx).Error("Setting store failure", slog.String("key", key), slog.Any("error", err))

	return errors.Wrapf(domainerrors.ErrInternalError, "setting %q", key)
}
