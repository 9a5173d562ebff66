// Package middleware wires the cross-cutting HTTP concerns: CORS,
// request correlation, request-scoped logging, panic recovery, and the
// global error handler that translates domain errors into API responses.
package middleware

import (
	"github.com/avelline/tally/internal/server"
)

// Middlewares is a lightweight container that groups all middleware
// components used by the HTTP server, so routing setup receives one
// wired object instead of many.
type Middlewares struct {
	// Global holds common middleware used across the whole API:
	// CORS, request logging, recovery, secure headers, and the global
	// error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer enriches each request with a request-scoped
	// logger (request_id, method, path, ip).
	ContextEnhancer *ContextEnhancer
}

// NewMiddlewares constructs all middleware components from the
// application container.
func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
	}
}
