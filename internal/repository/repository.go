// Package repository handles all interactions with the database.
//
// It contains the SQL queries and methods to fetch, persist, update, and
// delete records, abstracting SQL away from the service layer. One
// generic keyed-entity component (CRUD) carries the shared plumbing;
// TodoRepository and CounterRepository configure it with their table,
// lookup key, and columns. Store misses and uniqueness conflicts are
// translated to domain errors here, so callers never see driver errors.
package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/avelline/tally/internal/database"
	"github.com/avelline/tally/internal/errs"
	"github.com/avelline/tally/internal/sqlerr"
	"github.com/jmoiron/sqlx"
)

// Table describes how an entity maps onto its backing table.
type Table struct {
	// Name is the table name, e.g. "todos".
	Name string

	// Entity is the record family used in error messages, e.g. "Todo".
	Entity string

	// Key is the lookup column ("id" for todos, "name" for counters).
	Key string

	// Columns are the writable columns; id is always store-assigned.
	Columns []string
}

// CRUD is the generic keyed-entity store component. E is the record type
// with db struct tags matching the table's columns.
type CRUD[E any] struct {
	db    *sqlx.DB
	table Table

	selectAllQuery string
	selectQuery    string
	insertQuery    string
	updateQuery    string
	deleteQuery    string
}

// NewCRUD builds the component and precompiles its query strings.
func NewCRUD[E any](db *database.Database, table Table) *CRUD[E] {
	named := make([]string, len(table.Columns))
	assignments := make([]string, len(table.Columns))
	for i, col := range table.Columns {
		named[i] = ":" + col
		assignments[i] = fmt.Sprintf("%s = :%s", col, col)
	}

	return &CRUD[E]{
		db:             db.DB,
		table:          table,
		selectAllQuery: fmt.Sprintf("SELECT * FROM %s ORDER BY id", table.Name),
		selectQuery:    fmt.Sprintf("SELECT * FROM %s WHERE %%s = ?", table.Name),
		insertQuery: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
			table.Name, strings.Join(table.Columns, ", "), strings.Join(named, ", ")),
		updateQuery: fmt.Sprintf("UPDATE %s SET %s WHERE %s = :%s",
			table.Name, strings.Join(assignments, ", "), table.Key, table.Key),
		deleteQuery: fmt.Sprintf("DELETE FROM %s WHERE %s = ?", table.Name, table.Key),
	}
}

// FindAll returns every record ordered by id. An empty table yields an
// empty slice, not an error.
func (r *CRUD[E]) FindAll(ctx context.Context) ([]E, error) {
	out := make([]E, 0)
	if err := r.db.SelectContext(ctx, &out, r.selectAllQuery); err != nil {
		return nil, fmt.Errorf("selecting %s: %w", r.table.Name, err)
	}
	return out, nil
}

// FindByKey returns the record whose lookup key equals key, or a
// NotFoundError when absent.
func (r *CRUD[E]) FindByKey(ctx context.Context, key any) (E, error) {
	return r.findBy(ctx, r.table.Key, key)
}

func (r *CRUD[E]) findBy(ctx context.Context, column string, value any) (E, error) {
	var entity E
	query := fmt.Sprintf(r.selectQuery, column)
	err := r.db.GetContext(ctx, &entity, query, value)
	if err != nil {
		if sqlerr.IsNoRows(err) {
			return entity, errs.NewNotFound(r.table.Entity, column, value)
		}
		return entity, fmt.Errorf("selecting %s by %s: %w", r.table.Name, column, err)
	}
	return entity, nil
}

// Insert persists a new record and returns it as stored, with its
// assigned id. A uniqueness conflict on the lookup key becomes an
// AlreadyExistsError carrying the offending key.
func (r *CRUD[E]) Insert(ctx context.Context, entity E, key any) (E, error) {
	var zero E
	res, err := r.db.NamedExecContext(ctx, r.insertQuery, entity)
	if err != nil {
		if sqlerr.IsUniqueViolation(err) {
			return zero, errs.NewAlreadyExists(r.table.Entity, r.table.Key, key)
		}
		return zero, fmt.Errorf("inserting into %s: %w", r.table.Name, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return zero, fmt.Errorf("reading %s insert id: %w", r.table.Name, err)
	}
	return r.findBy(ctx, "id", id)
}

// Update overwrites the writable columns of the record identified by its
// lookup key and returns a NotFoundError when no row matched.
func (r *CRUD[E]) Update(ctx context.Context, entity E, key any) error {
	res, err := r.db.NamedExecContext(ctx, r.updateQuery, entity)
	if err != nil {
		return fmt.Errorf("updating %s: %w", r.table.Name, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading %s update result: %w", r.table.Name, err)
	}
	if affected == 0 {
		return errs.NewNotFound(r.table.Entity, r.table.Key, key)
	}
	return nil
}

// DeleteByKey removes the record whose lookup key equals key, or returns
// a NotFoundError when absent.
func (r *CRUD[E]) DeleteByKey(ctx context.Context, key any) error {
	res, err := r.db.ExecContext(ctx, r.deleteQuery, key)
	if err != nil {
		return fmt.Errorf("deleting from %s: %w", r.table.Name, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading %s delete result: %w", r.table.Name, err)
	}
	if affected == 0 {
		return errs.NewNotFound(r.table.Entity, r.table.Key, key)
	}
	return nil
}
