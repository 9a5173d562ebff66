package repository

import (
	"context"

	"github.com/avelline/tally/internal/database"
	"github.com/avelline/tally/internal/model"
)

// TodoRepository performs database operations for todos, keyed by id.
type TodoRepository struct {
	*CRUD[model.Todo]
}

// NewTodoRepository constructs the todo repository.
func NewTodoRepository(db *database.Database) *TodoRepository {
	return &TodoRepository{
		CRUD: NewCRUD[model.Todo](db, Table{
			Name:    "todos",
			Entity:  "Todo",
			Key:     "id",
			Columns: []string{"title", "description", "completed"},
		}),
	}
}

// FindByID returns the todo with the given id or a NotFoundError.
func (r *TodoRepository) FindByID(ctx context.Context, id int64) (model.Todo, error) {
	return r.FindByKey(ctx, id)
}

// Create persists a new todo and returns it with its assigned id.
func (r *TodoRepository) Create(ctx context.Context, todo model.Todo) (model.Todo, error) {
	return r.Insert(ctx, todo, todo.ID)
}

// Save overwrites the stored todo with the given one.
func (r *TodoRepository) Save(ctx context.Context, todo model.Todo) error {
	return r.Update(ctx, todo, todo.ID)
}

// DeleteByID removes the todo with the given id or returns a
// NotFoundError.
func (r *TodoRepository) DeleteByID(ctx context.Context, id int64) error {
	return r.DeleteByKey(ctx, id)
}
