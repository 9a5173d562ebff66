// Package errs defines the error types the API exposes to clients.
//
// It provides the HTTPError response shape written by the global error
// handler, plus the domain error kinds (NotFoundError, AlreadyExistsError)
// raised by the repository and service layers. Domain errors carry the
// entity and offending key so the boundary can produce a meaningful
// message and a stable machine-readable code.
package errs
