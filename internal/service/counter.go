package service

import (
	"context"

	"github.com/avelline/tally/internal/model"
	"github.com/avelline/tally/internal/repository"
	"github.com/avelline/tally/internal/server"
	"github.com/rs/zerolog"
)

// CounterService applies the counter business rules on top of the store.
type CounterService struct {
	logger *zerolog.Logger
	repo   *repository.CounterRepository
}

// NewCounterService constructs a CounterService.
func NewCounterService(s *server.Server, repos *repository.Repositories) *CounterService {
	return &CounterService{
		logger: s.Logger,
		repo:   repos.Counters,
	}
}

// List returns all counters.
func (s *CounterService) List(ctx context.Context) ([]model.Counter, error) {
	return s.repo.FindAll(ctx)
}

// Get returns the counter with the given name or a NotFoundError.
func (s *CounterService) Get(ctx context.Context, name string) (model.Counter, error) {
	return s.repo.FindByName(ctx, name)
}

// Create stores a new counter with the given initial value. A colliding
// name returns an AlreadyExistsError regardless of the initial value.
func (s *CounterService) Create(ctx context.Context, name string, initialValue int64) (model.Counter, error) {
	counter, err := s.repo.Create(ctx, model.Counter{
		Name:  name,
		Value: initialValue,
	})
	if err != nil {
		return model.Counter{}, err
	}

	s.logger.Debug().Str("name", name).Int64("value", counter.Value).Msg("created counter")
	return counter, nil
}

// Increment adds amount to the counter's value.
func (s *CounterService) Increment(ctx context.Context, name string, amount int64) (model.Counter, error) {
	return s.adjust(ctx, name, amount)
}

// Decrement subtracts amount from the counter's value. There is no floor;
// values may go negative.
func (s *CounterService) Decrement(ctx context.Context, name string, amount int64) (model.Counter, error) {
	return s.adjust(ctx, name, -amount)
}

func (s *CounterService) adjust(ctx context.Context, name string, delta int64) (model.Counter, error) {
	counter, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return model.Counter{}, err
	}

	counter.Value += delta
	if err := s.repo.Save(ctx, counter); err != nil {
		return model.Counter{}, err
	}
	return counter, nil
}

// Reset forces the counter's value back to 0.
func (s *CounterService) Reset(ctx context.Context, name string) (model.Counter, error) {
	return s.Update(ctx, name, 0)
}

// Update forces the counter's value to the given integer verbatim.
func (s *CounterService) Update(ctx context.Context, name string, value int64) (model.Counter, error) {
	counter, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return model.Counter{}, err
	}

	counter.Value = value
	if err := s.repo.Save(ctx, counter); err != nil {
		return model.Counter{}, err
	}
	return counter, nil
}

// Delete removes the counter with the given name or returns a
// NotFoundError.
func (s *CounterService) Delete(ctx context.Context, name string) error {
	if err := s.repo.DeleteByName(ctx, name); err != nil {
		return err
	}

	s.logger.Debug().Str("name", name).Msg("deleted counter")
	return nil
}
