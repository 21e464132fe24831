package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	util "github.com/spec-kit/pharma-inventory/pkg/util"
)

const (
	idColumn            = "id"
	uniqueViolationCode = "23505"
)

// Patch carries a partial update: column name to new value. Columns absent
// from the patch are left untouched.
type Patch map[string]any

// Repository is the CRUD contract shared by every persisted entity.
//
// Every mutating operation runs in its own transaction: either fully applied
// and durable, or rolled back with the in-memory entity unchanged. List is
// ordered by primary key; an out-of-range offset yields an empty slice.
type Repository[T any] interface {
	Get(ctx context.Context, id uuid.UUID) (*T, error)
	List(ctx context.Context, offset, limit int) ([]*T, error)
	Create(ctx context.Context, entity *T) (*T, error)
	Update(ctx context.Context, entity *T, patch Patch) (*T, error)
	Remove(ctx context.Context, id uuid.UUID) (*T, error)
}

// Mapping describes how an entity type maps onto its table. Columns excludes
// the id column; Values and Dest follow the Columns order, with Dest scanning
// id first.
type Mapping[T any] struct {
	Table    string
	Resource string
	Columns  []string
	ID       func(*T) uuid.UUID
	SetID    func(*T, uuid.UUID)
	Values   func(*T) []any
	Dest     func(*T) []any
}

// PgRepository is the Postgres-backed generic implementation.
type PgRepository[T any] struct {
	pool *pgxpool.Pool
	m    Mapping[T]
}

// NewPgRepository builds a repository for the mapped entity type.
func NewPgRepository[T any](pool *pgxpool.Pool, m Mapping[T]) *PgRepository[T] {
	return &PgRepository[T]{pool: pool, m: m}
}

func (r *PgRepository[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	entity := new(T)
	query := selectSQL(r.m.Table, r.m.Columns) + " WHERE id=$1"
	if err := r.pool.QueryRow(ctx, query, id).Scan(r.m.Dest(entity)...); err != nil {
		return nil, translate(err, r.m.Resource)
	}
	return entity, nil
}

func (r *PgRepository[T]) List(ctx context.Context, offset, limit int) ([]*T, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = 100
	}

	query := selectSQL(r.m.Table, r.m.Columns) + " ORDER BY id OFFSET $1 LIMIT $2"
	rows, err := r.pool.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, translate(err, r.m.Resource)
	}
	defer rows.Close()

	entities := make([]*T, 0, limit)
	for rows.Next() {
		entity := new(T)
		if err := rows.Scan(r.m.Dest(entity)...); err != nil {
			return nil, translate(err, r.m.Resource)
		}
		entities = append(entities, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, translate(err, r.m.Resource)
	}
	return entities, nil
}

func (r *PgRepository[T]) Create(ctx context.Context, entity *T) (*T, error) {
	if r.m.ID(entity) == uuid.Nil {
		r.m.SetID(entity, uuid.New())
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, util.NewInternalError(err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	args := append([]any{r.m.ID(entity)}, r.m.Values(entity)...)
	if _, err := tx.Exec(ctx, insertSQL(r.m.Table, r.m.Columns), args...); err != nil {
		return nil, translate(err, r.m.Resource)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, util.NewInternalError(err)
	}
	return entity, nil
}

func (r *PgRepository[T]) Update(ctx context.Context, entity *T, patch Patch) (*T, error) {
	if len(patch) == 0 {
		return entity, nil
	}

	columns, args := patch.ordered()
	args = append(args, r.m.ID(entity))

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, util.NewInternalError(err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	updated := new(T)
	query := updateSQL(r.m.Table, columns, r.m.Columns)
	if err := tx.QueryRow(ctx, query, args...).Scan(r.m.Dest(updated)...); err != nil {
		return nil, translate(err, r.m.Resource)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, util.NewInternalError(err)
	}
	return updated, nil
}

func (r *PgRepository[T]) Remove(ctx context.Context, id uuid.UUID) (*T, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, util.NewInternalError(err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	entity := new(T)
	query := selectSQL(r.m.Table, r.m.Columns) + " WHERE id=$1 FOR UPDATE"
	if err := tx.QueryRow(ctx, query, id).Scan(r.m.Dest(entity)...); err != nil {
		return nil, translate(err, r.m.Resource)
	}
	if _, err := tx.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id=$1", r.m.Table), id); err != nil {
		return nil, translate(err, r.m.Resource)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, util.NewInternalError(err)
	}
	return entity, nil
}

// ordered returns patch columns in a stable order with matching values.
func (p Patch) ordered() ([]string, []any) {
	columns := make([]string, 0, len(p))
	for column := range p {
		columns = append(columns, column)
	}
	sort.Strings(columns)

	values := make([]any, 0, len(columns))
	for _, column := range columns {
		values = append(values, p[column])
	}
	return columns, values
}

func selectSQL(table string, columns []string) string {
	return fmt.Sprintf("SELECT %s, %s FROM %s", idColumn, strings.Join(columns, ", "), table)
}

func insertSQL(table string, columns []string) string {
	placeholders := make([]string, 0, len(columns)+1)
	for i := 0; i <= len(columns); i++ {
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+1))
	}
	return fmt.Sprintf("INSERT INTO %s (%s, %s) VALUES (%s)",
		table, idColumn, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
}

func updateSQL(table string, patchColumns, allColumns []string) string {
	assignments := make([]string, 0, len(patchColumns))
	for i, column := range patchColumns {
		assignments = append(assignments, fmt.Sprintf("%s=$%d", column, i+1))
	}
	return fmt.Sprintf("UPDATE %s SET %s WHERE id=$%d RETURNING %s, %s",
		table, strings.Join(assignments, ", "), len(patchColumns)+1,
		idColumn, strings.Join(allColumns, ", "))
}

// translate maps storage errors onto the domain error taxonomy: absent rows
// become NotFound, unique violations become Conflict, everything else is an
// internal storage fault.
func translate(err error, resource string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return util.NewNotFound(resource, nil)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return util.NewConflict(fmt.Sprintf("%s already exists", resource), nil)
	}
	return util.NewInternalError(err)
}
