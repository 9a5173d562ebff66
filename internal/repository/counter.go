package repository

import (
	"context"

	"github.com/avelline/tally/internal/database"
	"github.com/avelline/tally/internal/model"
)

// CounterRepository performs database operations for counters, keyed by
// their unique name. The UNIQUE constraint on counters.name makes the
// create path an atomic check-then-insert: a colliding insert surfaces
// as an AlreadyExistsError rather than racing an application-level check.
type CounterRepository struct {
	*CRUD[model.Counter]
}

// NewCounterRepository constructs the counter repository.
func NewCounterRepository(db *database.Database) *CounterRepository {
	return &CounterRepository{
		CRUD: NewCRUD[model.Counter](db, Table{
			Name:    "counters",
			Entity:  "Counter",
			Key:     "name",
			Columns: []string{"name", "value"},
		}),
	}
}

// FindByName returns the counter with the given name or a NotFoundError.
func (r *CounterRepository) FindByName(ctx context.Context, name string) (model.Counter, error) {
	return r.FindByKey(ctx, name)
}

// Create persists a new counter. A name collision returns an
// AlreadyExistsError.
func (r *CounterRepository) Create(ctx context.Context, counter model.Counter) (model.Counter, error) {
	return r.Insert(ctx, counter, counter.Name)
}

// Save overwrites the stored counter with the given one.
func (r *CounterRepository) Save(ctx context.Context, counter model.Counter) error {
	return r.Update(ctx, counter, counter.Name)
}

// DeleteByName removes the counter with the given name or returns a
// NotFoundError.
func (r *CounterRepository) DeleteByName(ctx context.Context, name string) error {
	return r.DeleteByKey(ctx, name)
}
