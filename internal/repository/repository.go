package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"realty/internal/domain"
)

var ErrNotFound = errors.New("record not found")

// Columns describes how an entity maps onto its table. Insert and Update
// cover the mutable columns only; the base columns (id, created_date,
// modified_date, is_deleted) are managed by the repository itself.
type Columns struct {
	Table  string
	Select string
	Insert string
	Values string
	Update string
}

type persistable[T any] interface {
	*T
	Base() *domain.Model
}

// Repository implements soft-delete CRUD for one entity type. Every read
// excludes soft-deleted rows as part of the contract; there is no hidden
// query rewriting anywhere else.
type Repository[T any, PT persistable[T]] struct {
	db   *sqlx.DB
	cols Columns
}

func NewRepository[T any, PT persistable[T]](db *sqlx.DB, cols Columns) *Repository[T, PT] {
	return &Repository[T, PT]{db: db, cols: cols}
}

func (r *Repository[T, PT]) GetAll(ctx context.Context) ([]PT, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE is_deleted = FALSE`, r.cols.Select, r.cols.Table)

	var entities []PT
	if err := r.db.SelectContext(ctx, &entities, query); err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *Repository[T, PT]) GetByID(ctx context.Context, id int64) (PT, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1 AND is_deleted = FALSE`, r.cols.Select, r.cols.Table)

	entity := PT(new(T))
	if err := r.db.GetContext(ctx, entity, query, id); err != nil {
		var zero PT
		if errors.Is(err, sql.ErrNoRows) {
			return zero, ErrNotFound
		}
		return zero, err
	}
	return entity, nil
}

// Find returns non-deleted rows matching the given SQL predicate. The
// non-deleted filter is always ANDed in by the repository.
func (r *Repository[T, PT]) Find(ctx context.Context, predicate string, args ...any) ([]PT, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE is_deleted = FALSE AND (%s)`, r.cols.Select, r.cols.Table, predicate)

	var entities []PT
	if err := r.db.SelectContext(ctx, &entities, query, args...); err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *Repository[T, PT]) Add(ctx context.Context, entity PT) error {
	base := entity.Base()
	base.CreatedDate = time.Now().UTC()
	base.ModifiedDate = sql.NullTime{}
	base.IsDeleted = false

	query := fmt.Sprintf(
		`INSERT INTO %s (created_date, modified_date, is_deleted, %s) VALUES (:created_date, :modified_date, :is_deleted, %s) RETURNING id`,
		r.cols.Table, r.cols.Insert, r.cols.Values,
	)

	rows, err := sqlx.NamedQueryContext(ctx, r.db, query, entity)
	if err != nil {
		return err
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&base.ID); err != nil {
			return err
		}
	}
	return rows.Err()
}

// Update replaces all mutable columns of an already-fetched entity and
// stamps ModifiedDate. CreatedDate is never touched.
func (r *Repository[T, PT]) Update(ctx context.Context, entity PT) error {
	base := entity.Base()
	base.ModifiedDate = sql.NullTime{Time: time.Now().UTC(), Valid: true}

	query := fmt.Sprintf(
		`UPDATE %s SET %s, modified_date = :modified_date WHERE id = :id AND is_deleted = FALSE`,
		r.cols.Table, r.cols.Update,
	)

	res, err := sqlx.NamedExecContext(ctx, r.db, query, entity)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete soft-deletes a row. It reports false when the row is absent or
// already deleted, so a second delete of the same id reports false.
func (r *Repository[T, PT]) Delete(ctx context.Context, id int64) (bool, error) {
	query := fmt.Sprintf(
		`UPDATE %s SET is_deleted = TRUE, modified_date = $1 WHERE id = $2 AND is_deleted = FALSE`,
		r.cols.Table,
	)

	res, err := r.db.ExecContext(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *Repository[T, PT]) Exists(ctx context.Context, id int64) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE id = $1 AND is_deleted = FALSE)`, r.cols.Table)

	exists := false
	err := r.db.GetContext(ctx, &exists, query, id)
	return exists, err
}
