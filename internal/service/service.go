// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives
// validated data from the handlers, applies the business rules (partial
// update semantics, counter arithmetic, creation defaults), and calls
// repository methods to read and persist records. Domain errors from the
// repository pass through untouched; the boundary translates them once.
package service
