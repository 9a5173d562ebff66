package handler

import (
	"github.com/avelline/tally/internal/server"
	"github.com/avelline/tally/internal/service"
)

// Handlers is a container that groups all HTTP handlers, keeping router
// setup to a single wired object.
type Handlers struct {
	Health   *HealthHandler
	Todos    *TodoHandler
	Counters *CounterHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(s),
		Todos:    NewTodoHandler(s, services),
		Counters: NewCounterHandler(s, services),
	}
}
