package router

import (
	"github.com/avelline/tally/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not part of the
// business API: the root banner and the health endpoint used by uptime
// monitors.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/", h.Health.Root)
	r.GET("/status", h.Health.CheckHealth)
}
