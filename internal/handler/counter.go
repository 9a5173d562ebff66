package handler

import (
	"fmt"

	"github.com/avelline/tally/internal/model"
	"github.com/avelline/tally/internal/server"
	"github.com/avelline/tally/internal/service"
	"github.com/avelline/tally/internal/validation"
	"github.com/labstack/echo/v4"
)

// CounterHandler exposes the counter endpoints.
type CounterHandler struct {
	Handler
	counters *service.CounterService
}

// NewCounterHandler constructs a CounterHandler.
func NewCounterHandler(s *server.Server, services *service.Services) *CounterHandler {
	return &CounterHandler{
		Handler:  NewHandler(s),
		counters: services.Counters,
	}
}

// ListCountersRequest has no payload.
type ListCountersRequest struct{}

func (r *ListCountersRequest) Validate() error { return nil }

// GetCounterRequest identifies a counter by its path name.
type GetCounterRequest struct {
	Name string `param:"name" json:"-"`
}

func (r *GetCounterRequest) Validate() error { return validation.Struct(r) }

// CreateCounterRequest carries the new counter's name and optional
// initial value (defaults to 0 when omitted).
type CreateCounterRequest struct {
	Name         string `json:"name" validate:"required"`
	InitialValue *int64 `json:"initial_value"`
}

func (r *CreateCounterRequest) Validate() error { return validation.Struct(r) }

// AdjustCounterRequest carries the increment/decrement amount, which
// defaults to 1 when omitted.
type AdjustCounterRequest struct {
	Name   string `param:"name" json:"-"`
	Amount *int64 `json:"amount"`
}

func (r *AdjustCounterRequest) Validate() error { return validation.Struct(r) }

func (r *AdjustCounterRequest) amount() int64 {
	if r.Amount == nil {
		return 1
	}
	return *r.Amount
}

// ResetCounterRequest identifies the counter to reset to 0.
type ResetCounterRequest struct {
	Name string `param:"name" json:"-"`
}

func (r *ResetCounterRequest) Validate() error { return validation.Struct(r) }

// UpdateCounterRequest forces a counter to an arbitrary integer. Value is
// a required pointer so an explicit 0 is distinguishable from an omitted
// field.
type UpdateCounterRequest struct {
	Name  string `param:"name" json:"-"`
	Value *int64 `json:"value" validate:"required"`
}

func (r *UpdateCounterRequest) Validate() error { return validation.Struct(r) }

// DeleteCounterRequest identifies the counter to remove.
type DeleteCounterRequest struct {
	Name string `param:"name" json:"-"`
}

func (r *DeleteCounterRequest) Validate() error { return validation.Struct(r) }

// List returns all counters.
func (h *CounterHandler) List(c echo.Context, _ *ListCountersRequest) ([]model.Counter, error) {
	return h.counters.List(c.Request().Context())
}

// Get returns a single counter by name.
func (h *CounterHandler) Get(c echo.Context, req *GetCounterRequest) (model.Counter, error) {
	return h.counters.Get(c.Request().Context(), req.Name)
}

// Create stores a new counter.
func (h *CounterHandler) Create(c echo.Context, req *CreateCounterRequest) (model.Counter, error) {
	var initial int64
	if req.InitialValue != nil {
		initial = *req.InitialValue
	}
	return h.counters.Create(c.Request().Context(), req.Name, initial)
}

// Increment adds the given amount to a counter.
func (h *CounterHandler) Increment(c echo.Context, req *AdjustCounterRequest) (model.Counter, error) {
	return h.counters.Increment(c.Request().Context(), req.Name, req.amount())
}

// Decrement subtracts the given amount from a counter.
func (h *CounterHandler) Decrement(c echo.Context, req *AdjustCounterRequest) (model.Counter, error) {
	return h.counters.Decrement(c.Request().Context(), req.Name, req.amount())
}

// Reset forces a counter's value back to 0.
func (h *CounterHandler) Reset(c echo.Context, req *ResetCounterRequest) (model.Counter, error) {
	return h.counters.Reset(c.Request().Context(), req.Name)
}

// Update forces a counter's value to the given integer.
func (h *CounterHandler) Update(c echo.Context, req *UpdateCounterRequest) (model.Counter, error) {
	return h.counters.Update(c.Request().Context(), req.Name, *req.Value)
}

// Delete removes a counter and confirms with a message.
func (h *CounterHandler) Delete(c echo.Context, req *DeleteCounterRequest) (MessageResponse, error) {
	if err := h.counters.Delete(c.Request().Context(), req.Name); err != nil {
		return MessageResponse{}, err
	}
	return MessageResponse{
		Message: fmt.Sprintf("Counter with name '%s' deleted", req.Name),
	}, nil
}
