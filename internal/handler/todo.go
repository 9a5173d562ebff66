package handler

import (
	"fmt"

	"github.com/avelline/tally/internal/model"
	"github.com/avelline/tally/internal/server"
	"github.com/avelline/tally/internal/service"
	"github.com/avelline/tally/internal/validation"
	"github.com/labstack/echo/v4"
)

// TodoHandler exposes the todo endpoints.
type TodoHandler struct {
	Handler
	todos *service.TodoService
}

// NewTodoHandler constructs a TodoHandler.
func NewTodoHandler(s *server.Server, services *service.Services) *TodoHandler {
	return &TodoHandler{
		Handler: NewHandler(s),
		todos:   services.Todos,
	}
}

// MessageResponse carries a human-readable confirmation, used by the
// delete endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// ListTodosRequest has no payload.
type ListTodosRequest struct{}

func (r *ListTodosRequest) Validate() error { return nil }

// GetTodoRequest identifies a todo by its path id.
type GetTodoRequest struct {
	ID int64 `param:"id" json:"-"`
}

func (r *GetTodoRequest) Validate() error { return validation.Struct(r) }

// CreateTodoRequest carries the new todo's fields. Title is required;
// description defaults to the empty string.
type CreateTodoRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

func (r *CreateTodoRequest) Validate() error { return validation.Struct(r) }

// UpdateTodoRequest is a partial update: pointer fields distinguish an
// omitted field (nil, leave untouched) from one explicitly set to a zero
// value such as completed=false.
type UpdateTodoRequest struct {
	ID          int64   `param:"id" json:"-"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

func (r *UpdateTodoRequest) Validate() error { return validation.Struct(r) }

// ToggleTodoRequest identifies the todo whose completion flag to flip.
type ToggleTodoRequest struct {
	ID int64 `param:"id" json:"-"`
}

func (r *ToggleTodoRequest) Validate() error { return validation.Struct(r) }

// DeleteTodoRequest identifies the todo to remove.
type DeleteTodoRequest struct {
	ID int64 `param:"id" json:"-"`
}

func (r *DeleteTodoRequest) Validate() error { return validation.Struct(r) }

// List returns all todos.
func (h *TodoHandler) List(c echo.Context, _ *ListTodosRequest) ([]model.Todo, error) {
	return h.todos.List(c.Request().Context())
}

// Get returns a single todo by id.
func (h *TodoHandler) Get(c echo.Context, req *GetTodoRequest) (model.Todo, error) {
	return h.todos.Get(c.Request().Context(), req.ID)
}

// Create stores a new todo.
func (h *TodoHandler) Create(c echo.Context, req *CreateTodoRequest) (model.Todo, error) {
	return h.todos.Create(c.Request().Context(), req.Title, req.Description)
}

// Update applies a partial update to a todo.
func (h *TodoHandler) Update(c echo.Context, req *UpdateTodoRequest) (model.Todo, error) {
	return h.todos.Update(c.Request().Context(), req.ID, service.TodoChanges{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	})
}

// Toggle flips a todo's completion flag.
func (h *TodoHandler) Toggle(c echo.Context, req *ToggleTodoRequest) (model.Todo, error) {
	return h.todos.Toggle(c.Request().Context(), req.ID)
}

// Delete removes a todo and confirms with a message.
func (h *TodoHandler) Delete(c echo.Context, req *DeleteTodoRequest) (MessageResponse, error) {
	if err := h.todos.Delete(c.Request().Context(), req.ID); err != nil {
		return MessageResponse{}, err
	}
	return MessageResponse{
		Message: fmt.Sprintf("Todo with id '%d' deleted", req.ID),
	}, nil
}
