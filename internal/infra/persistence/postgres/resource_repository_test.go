package postgres

import (
	"context"
	"slices"
	"testing"

	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	"academy/internal/errors"
	"academy/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type renderedStatement struct {
	sql  string
	vars []any
}

// newRecordingDB returns a dry-run session plus the UPDATE and DELETE statements it renders.
// Nothing reaches a database, so every write reports zero affected rows.
func newRecordingDB(t *testing.T) (*gorm.DB, *[]renderedStatement) {
	t.Helper()

	db := newDryRunDB(t)
	var rendered []renderedStatement
	record := func(tx *gorm.DB) {
		rendered = append(rendered, renderedStatement{
			sql:  tx.Statement.SQL.String(),
			vars: slices.Clone(tx.Statement.Vars),
		})
	}
	require.NoError(t, db.Callback().Update().After("gorm:update").Register("academy:record_update", record))
	require.NoError(t, db.Callback().Delete().After("gorm:delete").Register("academy:record_delete", record))

	return db.Session(&gorm.Session{DryRun: true}), &rendered
}

type deleter interface {
	Delete(ctx context.Context, id uuid.UUID) error
}

func TestResourceRepository_DeleteModePerEntity(t *testing.T) {
	tests := []struct {
		name    string
		newRepo func(*gorm.DB) deleter
		sql     string
		soft    bool
	}{
		{
			name:    "programs are deactivated",
			newRepo: func(db *gorm.DB) deleter { return NewProgramRepository(db) },
			sql:     `UPDATE "programs" SET "is_active"=$1,"updated_at"=$2 WHERE id = $3`,
			soft:    true,
		},
		{
			name:    "coaches are deactivated",
			newRepo: func(db *gorm.DB) deleter { return NewCoachRepository(db) },
			sql:     `UPDATE "coaches" SET "is_active"=$1,"updated_at"=$2 WHERE id = $3`,
			soft:    true,
		},
		{
			name:    "testimonials are removed",
			newRepo: func(db *gorm.DB) deleter { return NewTestimonialRepository(db) },
			sql:     `DELETE FROM "testimonials" WHERE id = $1`,
		},
		{
			name:    "facilities are removed",
			newRepo: func(db *gorm.DB) deleter { return NewFacilityRepository(db) },
			sql:     `DELETE FROM "facilities" WHERE id = $1`,
		},
		{
			name:    "gallery images are removed",
			newRepo: func(db *gorm.DB) deleter { return NewGalleryRepository(db) },
			sql:     `DELETE FROM "gallery_images" WHERE id = $1`,
		},
		{
			name:    "contact messages are removed",
			newRepo: func(db *gorm.DB) deleter { return NewContactRepository(db) },
			sql:     `DELETE FROM "contact_messages" WHERE id = $1`,
		},
		{
			name:    "students are removed",
			newRepo: func(db *gorm.DB) deleter { return NewStudentRepository(db) },
			sql:     `DELETE FROM "students" WHERE id = $1`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, rendered := newRecordingDB(t)
			id := uuid.New()

			err := tt.newRepo(db).Delete(context.Background(), id)

			// No row was touched, which the repository reports as missing.
			require.ErrorIs(t, err, repository.ErrRecordNotFound)
			require.Len(t, *rendered, 1)
			stmt := (*rendered)[0]
			assert.Equal(t, tt.sql, stmt.sql)
			if tt.soft {
				require.Len(t, stmt.vars, 3)
				assert.Equal(t, false, stmt.vars[0])
				assert.Equal(t, id, stmt.vars[2])
			} else {
				assert.Equal(t, []any{id}, stmt.vars)
			}
		})
	}
}

func TestResourceRepository_UpdateWritesOnlySuppliedColumns(t *testing.T) {
	db, rendered := newRecordingDB(t)
	id := uuid.New()

	_, err := NewProgramRepository(db).Update(context.Background(), id, map[string]any{"price": 500})

	require.ErrorIs(t, err, repository.ErrRecordNotFound)
	require.Len(t, *rendered, 1)
	stmt := (*rendered)[0]
	assert.Equal(t, `UPDATE "programs" SET "price"=$1,"updated_at"=$2 WHERE id = $3`, stmt.sql)
	require.Len(t, stmt.vars, 3)
	assert.Equal(t, 500, stmt.vars[0])
	assert.Equal(t, id, stmt.vars[2])
}

func TestResourceRepository_TranslateStoreErrors(t *testing.T) {
	repo := newResourceRepository(newDryRunDB(t), repository.GallerySchema, toGalleryDomain, fromGalleryDomain,
		func(m *model.GalleryImageModel) uuid.UUID { return m.ID })

	t.Run("unique violation is a conflict", func(t *testing.T) {
		err := repo.translate(gorm.ErrDuplicatedKey, "create")

		assert.ErrorIs(t, err, repository.ErrRecordConflict)
	})

	t.Run("anything else is a database failure", func(t *testing.T) {
		driverErr := errors.New("connection reset by peer")

		err := repo.translate(driverErr, "update")

		dbErr, ok := errors.AsType[*domainerrors.DatabaseExecuteError](err)
		require.True(t, ok)
		assert.Equal(t, "DATABASE_EXECUTE_FAILED", dbErr.ErrorCode())
		assert.Equal(t, "update gallery_images", dbErr.Details())
		assert.ErrorIs(t, err, driverErr)
	})
}

func TestTransactionManager_BeginFailure(t *testing.T) {
	// Port 1 refuses connections, so BEGIN fails before fn runs.
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=127.0.0.1 port=1 user=academy dbname=academy sslmode=disable connect_timeout=1",
	}), &gorm.Config{DisableAutomaticPing: true, SkipDefaultTransaction: true})
	require.NoError(t, err)

	called := false
	err = NewTransactionManager(db).Execute(context.Background(), func(repository.RepositoryFactory) error {
		called = true

		return nil
	})

	require.ErrorIs(t, err, domainerrors.ErrTransactionFailed)
	assert.False(t, called)
}
