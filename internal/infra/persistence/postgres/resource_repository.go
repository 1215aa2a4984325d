package postgres

import (
	"context"
	"sort"

	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// resourceRepository is the single GORM implementation behind every content entity.
// E is the domain entity and M its persistence model.
type resourceRepository[E any, M any] struct {
	db         *gorm.DB
	schema     repository.ResourceSchema
	toDomain   func(*M) *E
	fromDomain func(*E) *M
	keyOf      func(*M) uuid.UUID
}

func newResourceRepository[E any, M any](
	db *gorm.DB,
	schema repository.ResourceSchema,
	toDomain func(*M) *E,
	fromDomain func(*E) *M,
	keyOf func(*M) uuid.UUID,
) *resourceRepository[E, M] {
	return &resourceRepository[E, M]{
		db:         db,
		schema:     schema,
		toDomain:   toDomain,
		fromDomain: fromDomain,
		keyOf:      keyOf,
	}
}

// List runs the page query and a separate COUNT with the same predicate.
// The two reads are not transactional; a concurrent write may make them disagree.
func (repo *resourceRepository[E, M]) List(ctx context.Context, query repository.ListQuery) ([]*E, int64, error) {
	pageQuery, err := repo.filtered(repo.db.WithContext(ctx), query.Filters)
	if err != nil {
		return nil, 0, err
	}

	var rows []M
	if err := repo.paginate(pageQuery, query).Find(&rows).Error; err != nil {
		return nil, 0, repo.translate(err, "list")
	}

	countQuery, err := repo.filtered(repo.db.WithContext(ctx), query.Filters)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, repo.translate(err, "count")
	}

	records := make([]*E, 0, len(rows))
	for i := range rows {
		records = append(records, repo.toDomain(&rows[i]))
	}

	return records, total, nil
}

func (repo *resourceRepository[E, M]) FindByID(ctx context.Context, id uuid.UUID) (*E, error) {
	return repo.findByID(repo.db.WithContext(ctx), id)
}

// Create inserts the record, then reloads it from the primary so database defaults are reflected.
func (repo *resourceRepository[E, M]) Create(ctx context.Context, record *E) (*E, error) {
	row := repo.fromDomain(record)

	if err := repo.db.WithContext(ctx).Table(repo.schema.Table).Create(row).Error; err != nil {
		return nil, repo.translate(err, "create")
	}

	return repo.findByID(repo.db.WithContext(ctx).Clauses(dbresolver.Write), repo.keyOf(row))
}

// Update writes only the supplied columns and always advances updated_at.
func (repo *resourceRepository[E, M]) Update(ctx context.Context, id uuid.UUID, changes map[string]any) (*E, error) {
	assignments := make(map[string]any, len(changes)+1)
	for column, value := range changes {
		if !repo.schema.AllowsUpdate(column) {
			return nil, errors.Wrapf(repository.ErrUnknownColumn, "%s.%s", repo.schema.Table, column)
		}
		assignments[column] = value
	}
	assignments["updated_at"] = repo.db.NowFunc()

	result := repo.db.WithContext(ctx).Table(repo.schema.Table).Where("id = ?", id).Updates(assignments)
	if result.Error != nil {
		return nil, repo.translate(result.Error, "update")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrRecordNotFound
	}

	return repo.findByID(repo.db.WithContext(ctx).Clauses(dbresolver.Write), id)
}

// Delete clears the active column for soft-delete schemas and removes the row otherwise.
func (repo *resourceRepository[E, M]) Delete(ctx context.Context, id uuid.UUID) error {
	tx := repo.db.WithContext(ctx)

	var result *gorm.DB
	switch repo.schema.DeleteMode {
	case repository.SoftDelete:
		result = tx.Table(repo.schema.Table).Where("id = ?", id).Updates(map[string]any{
			repo.schema.ActiveColumn: false,
			"updated_at":             repo.db.NowFunc(),
		})
	default:
		result = tx.Table(repo.schema.Table).Where("id = ?", id).Delete(new(M))
	}

	if result.Error != nil {
		return repo.translate(result.Error, "delete")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}

	return nil
}

func (repo *resourceRepository[E, M]) findByID(tx *gorm.DB, id uuid.UUID) (*E, error) {
	var row M
	if err := tx.Table(repo.schema.Table).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecordNotFound
		}

		return nil, repo.translate(err, "find")
	}

	return repo.toDomain(&row), nil
}

// filtered scopes tx to the table and ANDs one equality predicate per supplied filter.
// Columns are checked against the schema whitelist before being placed in SQL.
func (repo *resourceRepository[E, M]) filtered(tx *gorm.DB, filters map[string]any) (*gorm.DB, error) {
	tx = tx.Table(repo.schema.Table)

	columns := make([]string, 0, len(filters))
	for column := range filters {
		if !repo.schema.AllowsFilter(column) {
			return nil, errors.Wrapf(repository.ErrUnknownColumn, "%s.%s", repo.schema.Table, column)
		}
		columns = append(columns, column)
	}
	// Stable predicate order keeps generated SQL identical across calls.
	sort.Strings(columns)

	for _, column := range columns {
		tx = tx.Where(column+" = ?", filters[column])
	}

	return tx, nil
}

func (repo *resourceRepository[E, M]) paginate(tx *gorm.DB, query repository.ListQuery) *gorm.DB {
	if repo.schema.DefaultOrder != "" {
		tx = tx.Order(repo.schema.DefaultOrder)
	}
	if query.Limit > 0 {
		tx = tx.Limit(query.Limit).Offset(query.Offset())
	}

	return tx
}

func (repo *resourceRepository[E, M]) translate(err error, op string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return errors.Wrapf(repository.ErrRecordConflict, "%s %s", op, repo.schema.Table)
	case isForeignKeyConstraintViolation(err), isCheckConstraintViolation(err), isNotNullConstraintViolation(err):
		return errors.Wrapf(repository.ErrConstraintViolation, "%s %s: %v", op, repo.schema.Table, err)
	default:
		return domainerrors.NewDatabaseExecuteError(err, op+" "+repo.schema.Table)
	}
}
