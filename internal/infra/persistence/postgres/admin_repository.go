package postgres

import (
	"context"
	"time"

	"academy/internal/domain/entity"
	"academy/internal/domain/repository"
	"academy/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// adminRepository implements repository.AdminRepository using GORM.
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository returns the repository as a repository.AdminRepository interface.
func NewAdminRepository(db *gorm.DB) repository.AdminRepository {
	return &adminRepository{db: db}
}

// FindByID always reads from the primary so freshly created or updated accounts are visible.
func (repo *adminRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AdminUser, error) {
	var adminM model.AdminUserModel
	err := repo.db.WithContext(ctx).Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&adminM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin by id")
	}

	return toAdminDomain(&adminM), nil
}

// FindByUsername reads from the primary; login must see accounts created a moment ago.
func (repo *adminRepository) FindByUsername(ctx context.Context, username string) (*entity.AdminUser, error) {
	var adminM model.AdminUserModel
	err := repo.db.WithContext(ctx).Clauses(dbresolver.Write).
		Where("username = ?", username).
		First(&adminM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin by username")
	}

	return toAdminDomain(&adminM), nil
}

func (repo *adminRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).Clauses(dbresolver.Write).
		Model(&model.AdminUserModel{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check admin uniqueness")
	}

	return count > 0, nil
}

func (repo *adminRepository) List(ctx context.Context) ([]*entity.AdminUser, error) {
	var adminMs []model.AdminUserModel
	if err := repo.db.WithContext(ctx).Order("created_at ASC").Find(&adminMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list admins")
	}

	admins := make([]*entity.AdminUser, 0, len(adminMs))
	for i := range adminMs {
		admins = append(admins, toAdminDomain(&adminMs[i]))
	}

	return admins, nil
}

// Create persists a new admin and copies the generated ID and timestamps back onto it.
func (repo *adminRepository) Create(ctx context.Context, admin *entity.AdminUser) error {
	adminM := fromAdminDomain(admin)

	if err := repo.db.WithContext(ctx).Create(adminM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrAdminConflict
		}

		return errors.Wrap(err, "failed to create admin")
	}

	admin.ID = adminM.ID
	admin.CreatedAt = adminM.CreatedAt
	admin.UpdatedAt = adminM.UpdatedAt

	return nil
}

func (repo *adminRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return repo.updateColumns(ctx, id, map[string]any{"password_hash": passwordHash})
}

func (repo *adminRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return repo.updateColumns(ctx, id, map[string]any{"last_login_at": at})
}

func (repo *adminRepository) updateColumns(ctx context.Context, id uuid.UUID, changes map[string]any) error {
	changes["updated_at"] = repo.db.NowFunc()

	result := repo.db.WithContext(ctx).
		Model(&model.AdminUserModel{}).
		Where("id = ?", id).
		Updates(changes)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update admin")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAdminNotFound
	}

	return nil
}

func toAdminDomain(m *model.AdminUserModel) *entity.AdminUser {
	return &entity.AdminUser{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         entity.Role(m.Role),
		IsActive:     m.IsActive,
		LastLoginAt:  m.LastLoginAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromAdminDomain(a *entity.AdminUser) *model.AdminUserModel {
	return &model.AdminUserModel{
		ID:           a.ID,
		Username:     a.Username,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		Role:         a.Role.String(),
		IsActive:     a.IsActive,
		LastLoginAt:  a.LastLoginAt,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}
