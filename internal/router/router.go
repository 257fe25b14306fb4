// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"github.com/deppfellow/generic-tools/internal/handler"
	"github.com/deppfellow/generic-tools/internal/middleware"
	"github.com/deppfellow/generic-tools/internal/server"
	"github.com/labstack/echo/v4"
)

// APIPrefix is the mount point of every business route.
const APIPrefix = "/api/v1"

// NewRouter builds the echo instance with global middleware, system
// routes and the versioned API.
//
// Middleware order matters: the request id and tracing must exist before
// the context enhancer builds the request logger, and the logger must wrap
// Recover so panics are logged with the request fields.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.RateLimit.Limit(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.BodyLimit(),
	)

	registerSystemRoutes(router, h)

	v1 := router.Group(APIPrefix)
	registerLocationRoutes(v1, h)
	registerTranslationRoutes(v1, h)
	registerNotificationRoutes(v1, h)
	registerQRCodeRoutes(v1, h)
	registerConverterRoutes(v1, h)
	registerMediaRoutes(v1, h)

	return router
}
