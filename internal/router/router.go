// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups, mapping
// each path to its handler.
package router

import (
	"net/http"

	"github.com/avelline/tally/internal/handler"
	"github.com/avelline/tally/internal/middleware"
	"github.com/avelline/tally/internal/server"
	"github.com/labstack/echo/v4"
)

// New builds the Echo instance: global middleware, the error handler
// funnel, system routes, and the /api resource groups.
func New(s *server.Server, h *handler.Handlers, mw *middleware.Middlewares) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = mw.Global.GlobalErrorHandler

	e.Use(
		mw.Global.Recover(),
		mw.Global.Secure(),
		mw.Global.CORS(),
		middleware.RequestID(),
		mw.ContextEnhancer.EnhanceContext(),
		mw.Global.RequestLogger(),
	)

	registerSystemRoutes(e, h)

	api := e.Group("/api")
	registerTodoRoutes(api, h.Todos)
	registerCounterRoutes(api, h.Counters)

	return e
}

func registerTodoRoutes(g *echo.Group, h *handler.TodoHandler) {
	g.GET("/todos", handler.Handle(h.List, http.StatusOK))
	g.GET("/todos/:id", handler.Handle(h.Get, http.StatusOK))
	g.POST("/todos", handler.Handle(h.Create, http.StatusOK))
	g.PUT("/todos/:id", handler.Handle(h.Update, http.StatusOK))
	g.POST("/todos/:id/toggle", handler.Handle(h.Toggle, http.StatusOK))
	g.DELETE("/todos/:id", handler.Handle(h.Delete, http.StatusOK))
}

func registerCounterRoutes(g *echo.Group, h *handler.CounterHandler) {
	g.GET("/counters", handler.Handle(h.List, http.StatusOK))
	g.GET("/counters/:name", handler.Handle(h.Get, http.StatusOK))
	g.POST("/counters", handler.Handle(h.Create, http.StatusOK))
	g.POST("/counters/:name/increment", handler.Handle(h.Increment, http.StatusOK))
	g.POST("/counters/:name/decrement", handler.Handle(h.Decrement, http.StatusOK))
	g.POST("/counters/:name/reset", handler.Handle(h.Reset, http.StatusOK))
	g.PUT("/counters/:name", handler.Handle(h.Update, http.StatusOK))
	g.DELETE("/counters/:name", handler.Handle(h.Delete, http.StatusOK))
}
