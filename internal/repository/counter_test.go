package repository

import (
	"context"
	"testing"

	"github.com/avelline/tally/internal/errs"
	"github.com/avelline/tally/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounterRepositoryCreate(t *testing.T) {
	repo := NewCounterRepository(newTestDatabase(t))
	ctx := context.Background()

	counter, err := repo.Create(ctx, model.Counter{Name: "clicks", Value: 10})
	require.NoError(t, err)

	assert.NotZero(t, counter.ID)
	assert.Equal(t, "clicks", counter.Name)
	assert.Equal(t, int64(10), counter.Value)
}

func TestCounterRepositoryCreateDuplicate(t *testing.T) {
	repo := NewCounterRepository(newTestDatabase(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, model.Counter{Name: "clicks"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, model.Counter{Name: "clicks", Value: 99})
	require.Error(t, err)

	var alreadyExists *errs.AlreadyExistsError
	require.ErrorAs(t, err, &alreadyExists)
	assert.Equal(t, "Counter with name 'clicks' already exists", alreadyExists.Error())
	assert.Equal(t, "COUNTER_ALREADY_EXISTS", alreadyExists.Code())

	// The failed insert must not have touched the stored counter.
	stored, err := repo.FindByName(ctx, "clicks")
	require.NoError(t, err)
	assert.Equal(t, int64(0), stored.Value)
}

func TestCounterRepositoryFindByNameNotFound(t *testing.T) {
	repo := NewCounterRepository(newTestDatabase(t))

	_, err := repo.FindByName(context.Background(), "missing")

	var notFound *errs.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Counter with name 'missing' not found", notFound.Error())
	assert.Equal(t, "COUNTER_NOT_FOUND", notFound.Code())
}

func TestCounterRepositorySave(t *testing.T) {
	repo := NewCounterRepository(newTestDatabase(t))
	ctx := context.Background()

	counter, err := repo.Create(ctx, model.Counter{Name: "clicks", Value: 1})
	require.NoError(t, err)

	counter.Value = -5
	require.NoError(t, repo.Save(ctx, counter))

	stored, err := repo.FindByName(ctx, "clicks")
	require.NoError(t, err)
	assert.Equal(t, int64(-5), stored.Value)
}

func TestCounterRepositoryDelete(t *testing.T) {
	repo := NewCounterRepository(newTestDatabase(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, model.Counter{Name: "clicks"})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteByName(ctx, "clicks"))

	var notFound *errs.NotFoundError
	err = repo.DeleteByName(ctx, "clicks")
	require.ErrorAs(t, err, &notFound)
}
