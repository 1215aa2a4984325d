package postgres

import (
	"context"
	"testing"

	"academy/internal/domain/repository"
	"academy/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newDryRunDB opens a dialector that never dials; statements are only rendered.
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=academy dbname=academy sslmode=disable",
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return db
}

func TestResourceRepository_ListSQL(t *testing.T) {
	db := newDryRunDB(t)
	repo := newResourceRepository(db, repository.FacilitySchema, toFacilityDomain, fromFacilityDomain,
		func(m *model.FacilityModel) uuid.UUID { return m.ID })

	query := repository.ListQuery{
		Filters: map[string]any{repository.ColumnIsActive: true},
		Page:    3,
		Limit:   10,
	}

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		scoped, err := repo.filtered(tx, query.Filters)
		require.NoError(t, err)

		var rows []model.FacilityModel

		return repo.paginate(scoped, query).Find(&rows)
	})

	assert.Contains(t, sql, `FROM "facilities"`)
	assert.Contains(t, sql, "WHERE is_active = true")
	assert.Contains(t, sql, "ORDER BY display_order ASC, name ASC")
	assert.Contains(t, sql, "LIMIT 10 OFFSET 20")
}

func TestResourceRepository_ListSQL_OnlySuppliedFilters(t *testing.T) {
	db := newDryRunDB(t)
	repo := newResourceRepository(db, repository.GallerySchema, toGalleryDomain, fromGalleryDomain,
		func(m *model.GalleryImageModel) uuid.UUID { return m.ID })

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		scoped, err := repo.filtered(tx, nil)
		require.NoError(t, err)

		var rows []model.GalleryImageModel

		return repo.paginate(scoped, repository.ListQuery{Page: 1, Limit: 10}).Find(&rows)
	})

	assert.NotContains(t, sql, "WHERE")
	assert.Contains(t, sql, "ORDER BY display_order ASC, created_at DESC")
	assert.Contains(t, sql, "LIMIT 10")
	assert.NotContains(t, sql, "OFFSET")
}

func TestResourceRepository_ListSQL_FiltersAreStableAndCounted(t *testing.T) {
	db := newDryRunDB(t)
	repo := newResourceRepository(db, repository.ProgramSchema, toProgramDomain, fromProgramDomain,
		func(m *model.ProgramModel) uuid.UUID { return m.ID })

	filters := map[string]any{
		repository.ColumnIsActive: false,
		repository.ColumnAgeGroup: "6-8",
	}

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		scoped, err := repo.filtered(tx, filters)
		require.NoError(t, err)

		var total int64

		return scoped.Count(&total)
	})

	assert.Contains(t, sql, "count(*)")
	assert.Contains(t, sql, "WHERE age_group = '6-8' AND is_active = false")
}

func TestResourceRepository_RejectsUnknownColumns(t *testing.T) {
	db := newDryRunDB(t)
	repo := NewProgramRepository(db)
	ctx := context.Background()

	_, _, err := repo.List(ctx, repository.ListQuery{
		Filters: map[string]any{"1=1; --": true},
		Page:    1,
		Limit:   10,
	})
	require.ErrorIs(t, err, repository.ErrUnknownColumn)

	_, err = repo.Update(ctx, uuid.New(), map[string]any{"id": uuid.New()})
	require.ErrorIs(t, err, repository.ErrUnknownColumn)
}

func TestSettingRepository_UpsertSQL(t *testing.T) {
	db := newDryRunDB(t)
	repo := &settingRepository{db: db}
	description := "Front desk phone"

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return repo.upsertStatement(tx, "phone", "+1 555 0100", &description)
	})

	assert.Contains(t, sql, `INSERT INTO "settings"`)
	assert.Contains(t, sql, `ON CONFLICT ("key_name") DO UPDATE SET`)
	assert.Contains(t, sql, "EXCLUDED.key_value")
	assert.Contains(t, sql, "COALESCE(EXCLUDED.description, settings.description)")
	assert.Contains(t, sql, "EXCLUDED.updated_at")
	assert.Contains(t, sql, "'+1 555 0100'")
}
