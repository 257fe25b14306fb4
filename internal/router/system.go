package router

import (
	"github.com/deppfellow/generic-tools/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not part of the tools API:
// the status check, the docs UI and its static assets.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	// openapi.json and the docs page live in ./static.
	r.Static("/static", handler.StaticDir)

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
