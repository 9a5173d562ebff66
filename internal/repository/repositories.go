package repository

import (
	"github.com/avelline/tally/internal/server"
)

// Repositories is a container for all repository instances, wired once at
// startup and handed to the service layer.
type Repositories struct {
	Todos    *TodoRepository
	Counters *CounterRepository
}

// NewRepositories constructs the repository container from the shared
// database handle on the application container.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Todos:    NewTodoRepository(s.DB),
		Counters: NewCounterRepository(s.DB),
	}
}
