package errs

import (
	"fmt"
	"strings"
)

// NotFoundError reports that the requested key is absent from the store.
// It is raised by the repository layer and recovered exactly once, by the
// global error handler, which maps it to a 404 response.
type NotFoundError struct {
	// Entity is the record family, e.g. "Todo" or "Counter".
	Entity string

	// KeyName is the lookup attribute, e.g. "id" or "name".
	KeyName string

	// Key is the offending key value.
	Key any
}

// NewNotFound constructs a NotFoundError for the given entity and key.
func NewNotFound(entity, keyName string, key any) *NotFoundError {
	return &NotFoundError{Entity: entity, KeyName: keyName, Key: key}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with %s '%v' not found", e.Entity, e.KeyName, e.Key)
}

// Code returns the machine-readable code, e.g. "TODO_NOT_FOUND".
func (e *NotFoundError) Code() string {
	return entityCode(e.Entity) + "_NOT_FOUND"
}

// AlreadyExistsError reports a uniqueness violation on create. It is
// raised when the store rejects an insert that collides with an existing
// record and maps to a 400 response at the boundary.
type AlreadyExistsError struct {
	Entity  string
	KeyName string
	Key     any
}

// NewAlreadyExists constructs an AlreadyExistsError for the given entity
// and key.
func NewAlreadyExists(entity, keyName string, key any) *AlreadyExistsError {
	return &AlreadyExistsError{Entity: entity, KeyName: keyName, Key: key}
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s with %s '%v' already exists", e.Entity, e.KeyName, e.Key)
}

// Code returns the machine-readable code, e.g. "COUNTER_ALREADY_EXISTS".
func (e *AlreadyExistsError) Code() string {
	return entityCode(e.Entity) + "_ALREADY_EXISTS"
}

func entityCode(entity string) string {
	if entity == "" {
		entity = "record"
	}
	return strings.ToUpper(strings.ReplaceAll(entity, " ", "_"))
}
