package service

import (
	"context"

	"github.com/avelline/tally/internal/model"
	"github.com/avelline/tally/internal/repository"
	"github.com/avelline/tally/internal/server"
	"github.com/rs/zerolog"
)

// TodoService applies the todo business rules on top of the store.
type TodoService struct {
	logger *zerolog.Logger
	repo   *repository.TodoRepository
}

// NewTodoService constructs a TodoService.
func NewTodoService(s *server.Server, repos *repository.Repositories) *TodoService {
	return &TodoService{
		logger: s.Logger,
		repo:   repos.Todos,
	}
}

// TodoChanges is a partial-update payload. Nil fields were omitted from
// the request and must leave the stored value untouched; non-nil fields
// overwrite, including explicit zero values such as completed=false.
type TodoChanges struct {
	Title       *string
	Description *string
	Completed   *bool
}

// List returns all todos.
func (s *TodoService) List(ctx context.Context) ([]model.Todo, error) {
	return s.repo.FindAll(ctx)
}

// Get returns the todo with the given id or a NotFoundError.
func (s *TodoService) Get(ctx context.Context, id int64) (model.Todo, error) {
	return s.repo.FindByID(ctx, id)
}

// Create stores a new todo. Description may be empty; Completed always
// starts false.
func (s *TodoService) Create(ctx context.Context, title, description string) (model.Todo, error) {
	todo, err := s.repo.Create(ctx, model.Todo{
		Title:       title,
		Description: description,
		Completed:   false,
	})
	if err != nil {
		return model.Todo{}, err
	}

	s.logger.Debug().Int64("id", todo.ID).Msg("created todo")
	return todo, nil
}

// Update applies the supplied field changes to the todo with the given
// id. Only fields present in changes are overwritten.
func (s *TodoService) Update(ctx context.Context, id int64, changes TodoChanges) (model.Todo, error) {
	todo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return model.Todo{}, err
	}

	if changes.Title != nil {
		todo.Title = *changes.Title
	}
	if changes.Description != nil {
		todo.Description = *changes.Description
	}
	if changes.Completed != nil {
		todo.Completed = *changes.Completed
	}

	if err := s.repo.Save(ctx, todo); err != nil {
		return model.Todo{}, err
	}
	return todo, nil
}

// Toggle flips the completion flag of the todo with the given id.
func (s *TodoService) Toggle(ctx context.Context, id int64) (model.Todo, error) {
	todo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return model.Todo{}, err
	}

	todo.Completed = !todo.Completed
	if err := s.repo.Save(ctx, todo); err != nil {
		return model.Todo{}, err
	}
	return todo, nil
}

// Delete removes the todo with the given id or returns a NotFoundError.
func (s *TodoService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}

	s.logger.Debug().Int64("id", id).Msg("deleted todo")
	return nil
}
