package service

import (
	"github.com/avelline/tally/internal/repository"
	"github.com/avelline/tally/internal/server"
)

// Services is a container that groups all service instances.
type Services struct {
	Todos    *TodoService
	Counters *CounterService
}

// NewServices constructs the service container.
func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Todos:    NewTodoService(s, repos),
		Counters: NewCounterService(s, repos),
	}
}
