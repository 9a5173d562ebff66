// Package validation contains the logic for validating request data.
//
// It uses the validator library to enforce rules defined in struct tags
// (like required fields) and extracts validation failures into
// field-level errors the client can act on.
package validation
