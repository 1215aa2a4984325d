package postgres

import (
	"context"

	"academy/internal/domain/entity"
	"academy/internal/domain/repository"
	"academy/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

type settingRepository struct {
	db *gorm.DB
}

// NewSettingRepository returns the repository as a repository.SettingRepository interface.
func NewSettingRepository(db *gorm.DB) repository.SettingRepository {
	return &settingRepository{db: db}
}

func (repo *settingRepository) List(ctx context.Context) ([]*entity.Setting, error) {
	var settingMs []model.SettingModel
	if err := repo.db.WithContext(ctx).Order("key_name ASC").Find(&settingMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list settings")
	}

	settings := make([]*entity.Setting, 0, len(settingMs))
	for i := range settingMs {
		settings = append(settings, toSettingDomain(&settingMs[i]))
	}

	return settings, nil
}

func (repo *settingRepository) FindByKey(ctx context.Context, key string) (*entity.Setting, error) {
	return repo.findByKey(repo.db.WithContext(ctx), key)
}

// Upsert writes the value in one INSERT ... ON CONFLICT statement so concurrent
// writers never race between a lookup and an insert. Last writer wins.
func (repo *settingRepository) Upsert(ctx context.Context, key, value string, description *string) (*entity.Setting, error) {
	if err := repo.upsertStatement(repo.db.WithContext(ctx), key, value, description).Error; err != nil {
		return nil, errors.Wrap(err, "failed to upsert setting")
	}

	return repo.findByKey(repo.db.WithContext(ctx).Clauses(dbresolver.Write), key)
}

func (repo *settingRepository) DeleteByKey(ctx context.Context, key string) error {
	result := repo.db.WithContext(ctx).Where("key_name = ?", key).Delete(&model.SettingModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete setting")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}

	return nil
}

func (repo *settingRepository) upsertStatement(tx *gorm.DB, key, value string, description *string) *gorm.DB {
	now := repo.db.NowFunc()
	settingM := &model.SettingModel{
		KeyName:     key,
		KeyValue:    value,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key_name"}},
		DoUpdates: clause.Assignments(map[string]any{
			"key_value":   gorm.Expr("EXCLUDED.key_value"),
			"description": gorm.Expr("COALESCE(EXCLUDED.description, settings.description)"),
			"updated_at":  gorm.Expr("EXCLUDED.updated_at"),
		}),
	}).Create(settingM)
}

func (repo *settingRepository) findByKey(tx *gorm.DB, key string) (*entity.Setting, error) {
	var settingM model.SettingModel
	if err := tx.Where("key_name = ?", key).First(&settingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find setting")
	}

	return toSettingDomain(&settingM), nil
}

func toSettingDomain(m *model.SettingModel) *entity.Setting {
	return &entity.Setting{
		ID:          m.ID,
		KeyName:     m.KeyName,
		KeyValue:    m.KeyValue,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
