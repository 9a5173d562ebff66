package handler

import (
	"time"

	"github.com/avelline/tally/internal/middleware"
	"github.com/avelline/tally/internal/server"
	"github.com/avelline/tally/internal/validation"
	"github.com/labstack/echo/v4"
)

// Handler is the base handler type that holds shared application
// dependencies. Concrete handlers embed it to access config, logger,
// and the database handle via *server.Server.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// --- Generic typed handler plumbing -----------------------------------------

// ValidatablePtr constrains PReq to be *Req and Validatable, so Handle
// can allocate a fresh request value per request and still bind and
// validate it through the pointer.
type ValidatablePtr[Req any] interface {
	*Req
	validation.Validatable
}

// Handle wraps a typed endpoint function with binding, validation,
// structured phase logging, and JSON response writing. It returns an
// echo.HandlerFunc ready to register on a route:
//
//	g.POST("/todos", handler.Handle(h.Create, http.StatusOK))
//
// A new request value is allocated per request, so payload structs are
// never shared between concurrent requests.
func Handle[Req any, Res any, PReq ValidatablePtr[Req]](
	endpoint func(c echo.Context, req PReq) (Res, error),
	status int,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req Req
		return handleRequest(c, PReq(&req), func(c echo.Context, req PReq) (interface{}, error) {
			return endpoint(c, req)
		}, status)
	}
}

// handleRequest is the shared execution pipeline for all endpoints. It
// centralizes request binding + validation, structured logging with the
// request-scoped logger, and timing of the validation and handler
// phases.
func handleRequest[Req validation.Validatable](
	c echo.Context,
	req Req,
	endpoint func(c echo.Context, req Req) (interface{}, error),
	status int,
) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "handler").
		Str("route", c.Path()).
		Logger()

	validationStart := time.Now()
	if err := validation.BindAndValidate(c, req); err != nil {
		logger.Warn().
			Err(err).
			Dur("validation_duration", time.Since(validationStart)).
			Msg("request validation failed")
		return err
	}
	validationDuration := time.Since(validationStart)

	handlerStart := time.Now()
	result, err := endpoint(c, req)
	handlerDuration := time.Since(handlerStart)

	if err != nil {
		logger.Debug().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", time.Since(start)).
			Msg("handler execution failed")
		return err
	}

	logger.Debug().
		Dur("validation_duration", validationDuration).
		Dur("handler_duration", handlerDuration).
		Dur("total_duration", time.Since(start)).
		Msg("request completed")

	return c.JSON(status, result)
}
