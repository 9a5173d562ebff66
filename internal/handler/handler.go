// Package handler is the HTTP boundary. It parses and validates request
// payloads, calls the appropriate service, and shapes the response. It
// performs no business logic: domain errors returned by the services
// flow through untouched to the global error handler.
package handler
