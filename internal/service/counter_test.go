package service

import (
	"context"
	"testing"

	"github.com/avelline/tally/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounterServiceCreate(t *testing.T) {
	counters := newTestServices(t).Counters
	ctx := context.Background()

	counter, err := counters.Create(ctx, "clicks", 0)
	require.NoError(t, err)
	assert.Equal(t, "clicks", counter.Name)
	assert.Equal(t, int64(0), counter.Value)
}

func TestCounterServiceCreateDuplicate(t *testing.T) {
	counters := newTestServices(t).Counters
	ctx := context.Background()

	_, err := counters.Create(ctx, "clicks", 1)
	require.NoError(t, err)

	// A colliding name fails regardless of the initial value.
	for _, initial := range []int64{0, 1, -7, 1000} {
		_, err := counters.Create(ctx, "clicks", initial)
		var alreadyExists *errs.AlreadyExistsError
		require.ErrorAs(t, err, &alreadyExists)
	}
}

func TestCounterServiceIncrementDecrementRoundTrip(t *testing.T) {
	counters := newTestServices(t).Counters
	ctx := context.Background()

	_, err := counters.Create(ctx, "clicks", 3)
	require.NoError(t, err)

	for _, amount := range []int64{1, 5, 0, -2, 100} {
		before, err := counters.Get(ctx, "clicks")
		require.NoError(t, err)

		_, err = counters.Increment(ctx, "clicks", amount)
		require.NoError(t, err)

		after, err := counters.Decrement(ctx, "clicks", amount)
		require.NoError(t, err)
		assert.Equal(t, before.Value, after.Value)
	}
}

func TestCounterServiceDecrementHasNoFloor(t *testing.T) {
	counters := newTestServices(t).Counters
	ctx := context.Background()

	_, err := counters.Create(ctx, "clicks", 0)
	require.NoError(t, err)

	counter, err := counters.Decrement(ctx, "clicks", 10)
	require.NoError(t, err)
	assert.Equal(t, int64(-10), counter.Value)
}

func TestCounterServiceScenario(t *testing.T) {
	counters := newTestServices(t).Counters
	ctx := context.Background()

	counter, err := counters.Create(ctx, "c1", 10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), counter.Value)

	counter, err = counters.Increment(ctx, "c1", 5)
	require.NoError(t, err)
	assert.Equal(t, int64(15), counter.Value)

	counter, err = counters.Decrement(ctx, "c1", 3)
	require.NoError(t, err)
	assert.Equal(t, int64(12), counter.Value)

	counter, err = counters.Reset(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), counter.Value)

	counter, err = counters.Update(ctx, "c1", 99)
	require.NoError(t, err)
	assert.Equal(t, int64(99), counter.Value)

	require.NoError(t, counters.Delete(ctx, "c1"))

	var notFound *errs.NotFoundError
	_, err = counters.Get(ctx, "c1")
	require.ErrorAs(t, err, &notFound)
}

func TestCounterServiceMutationsOnMissingName(t *testing.T) {
	counters := newTestServices(t).Counters
	ctx := context.Background()

	var notFound *errs.NotFoundError

	_, err := counters.Increment(ctx, "ghost", 1)
	require.ErrorAs(t, err, &notFound)

	_, err = counters.Decrement(ctx, "ghost", 1)
	require.ErrorAs(t, err, &notFound)

	_, err = counters.Reset(ctx, "ghost")
	require.ErrorAs(t, err, &notFound)

	_, err = counters.Update(ctx, "ghost", 7)
	require.ErrorAs(t, err, &notFound)

	err = counters.Delete(ctx, "ghost")
	require.ErrorAs(t, err, &notFound)

	// None of the failed operations created anything.
	all, err := counters.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
