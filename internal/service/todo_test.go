package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/avelline/tally/internal/config"
	"github.com/avelline/tally/internal/errs"
	"github.com/avelline/tally/internal/repository"
	"github.com/avelline/tally/internal/server"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServices(t *testing.T) *Services {
	t.Helper()

	cfg := &config.Config{
		Primary: config.Primary{Env: config.EnvTest},
		Database: config.DatabaseConfig{
			Path: filepath.Join(t.TempDir(), "tally_test.sqlite"),
		},
	}
	log := zerolog.Nop()

	srv, err := server.New(cfg, &log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = srv.DB.Close() })

	return NewServices(srv, repository.NewRepositories(srv))
}

func ptr[T any](v T) *T { return &v }

func TestTodoServiceCreateDefaults(t *testing.T) {
	todos := newTestServices(t).Todos
	ctx := context.Background()

	todo, err := todos.Create(ctx, "Buy milk", "")
	require.NoError(t, err)

	assert.Equal(t, "Buy milk", todo.Title)
	assert.Equal(t, "", todo.Description)
	assert.False(t, todo.Completed)
}

func TestTodoServiceUpdatePartial(t *testing.T) {
	todos := newTestServices(t).Todos
	ctx := context.Background()

	todo, err := todos.Create(ctx, "Buy milk", "whole")
	require.NoError(t, err)

	// Only description supplied: title and completed stay untouched.
	updated, err := todos.Update(ctx, todo.ID, TodoChanges{Description: ptr("2%")})
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", updated.Title)
	assert.Equal(t, "2%", updated.Description)
	assert.False(t, updated.Completed)

	// An explicitly supplied zero value must take effect.
	toggled, err := todos.Toggle(ctx, todo.ID)
	require.NoError(t, err)
	require.True(t, toggled.Completed)

	updated, err = todos.Update(ctx, todo.ID, TodoChanges{Completed: ptr(false)})
	require.NoError(t, err)
	assert.False(t, updated.Completed)
	assert.Equal(t, "Buy milk", updated.Title)
	assert.Equal(t, "2%", updated.Description)
}

func TestTodoServiceUpdateMissing(t *testing.T) {
	todos := newTestServices(t).Todos

	_, err := todos.Update(context.Background(), 404, TodoChanges{Title: ptr("ghost")})

	var notFound *errs.NotFoundError
	require.ErrorAs(t, err, &notFound)

	// Nothing was created as a side effect.
	all, err := todos.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestTodoServiceToggleIsInvolution(t *testing.T) {
	todos := newTestServices(t).Todos
	ctx := context.Background()

	todo, err := todos.Create(ctx, "Buy milk", "")
	require.NoError(t, err)

	once, err := todos.Toggle(ctx, todo.ID)
	require.NoError(t, err)
	assert.True(t, once.Completed)

	twice, err := todos.Toggle(ctx, todo.ID)
	require.NoError(t, err)
	assert.Equal(t, todo.Completed, twice.Completed)
}

func TestTodoServiceScenario(t *testing.T) {
	todos := newTestServices(t).Todos
	ctx := context.Background()

	todo, err := todos.Create(ctx, "Buy milk", "")
	require.NoError(t, err)
	assert.Equal(t, "", todo.Description)
	assert.False(t, todo.Completed)

	todo, err = todos.Toggle(ctx, todo.ID)
	require.NoError(t, err)
	assert.True(t, todo.Completed)

	todo, err = todos.Update(ctx, todo.ID, TodoChanges{Description: ptr("2%")})
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", todo.Title)
	assert.True(t, todo.Completed)
	assert.Equal(t, "2%", todo.Description)
}

func TestTodoServiceDelete(t *testing.T) {
	todos := newTestServices(t).Todos
	ctx := context.Background()

	todo, err := todos.Create(ctx, "Buy milk", "")
	require.NoError(t, err)

	require.NoError(t, todos.Delete(ctx, todo.ID))

	var notFound *errs.NotFoundError
	_, err = todos.Get(ctx, todo.ID)
	require.ErrorAs(t, err, &notFound)

	err = todos.Delete(ctx, todo.ID)
	require.ErrorAs(t, err, &notFound)
}
