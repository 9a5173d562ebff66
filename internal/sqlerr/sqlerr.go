// Package sqlerr classifies database driver errors.
//
// It parses cryptic error codes from the sqlite driver and converts them
// into application-level categories (unique violation, missing row, ...)
// so the repository layer and the global error funnel can act on them
// without importing driver internals.
package sqlerr

import (
	"database/sql"
	"errors"

	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Code is the application-level category of a database error.
type Code int

const (
	// Other is any error this package does not recognize.
	Other Code = iota

	// NoRows maps sql.ErrNoRows: the requested row is absent.
	NoRows

	// UniqueViolation covers UNIQUE and PRIMARY KEY constraint failures.
	UniqueViolation

	// NotNullViolation covers NOT NULL constraint failures.
	NotNullViolation

	// ForeignKeyViolation covers FOREIGN KEY constraint failures.
	ForeignKeyViolation

	// CheckViolation covers CHECK constraint failures.
	CheckViolation
)

// Classify maps a database error to its Code. It walks the error chain,
// so wrapped driver errors are recognized as well.
func Classify(err error) Code {
	if err == nil {
		return Other
	}
	if errors.Is(err, sql.ErrNoRows) {
		return NoRows
	}

	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return UniqueViolation
		case sqlite3.SQLITE_CONSTRAINT_NOTNULL:
			return NotNullViolation
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return ForeignKeyViolation
		case sqlite3.SQLITE_CONSTRAINT_CHECK:
			return CheckViolation
		}
	}
	return Other
}

// IsUniqueViolation reports whether err is a uniqueness constraint
// failure. The store enforces uniqueness, so the insert that trips this
// is the atomic check-then-insert.
func IsUniqueViolation(err error) bool {
	return Classify(err) == UniqueViolation
}

// IsNoRows reports whether err means the requested row is absent.
func IsNoRows(err error) bool {
	return Classify(err) == NoRows
}
