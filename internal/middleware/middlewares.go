package middleware

import (
	"github.com/deppfellow/generic-tools/internal/server"
)

// Middlewares is a lightweight container that groups all middleware components
// used by the HTTP server.
//
// Components are built once with shared dependencies and reused during
// router setup.
type Middlewares struct {
	// Global holds common middleware used across the whole API:
	// CORS, body limit, request logging, recovery, secure headers, and the
	// global error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer enriches each request with a request-scoped logger.
	ContextEnhancer *ContextEnhancer

	// Tracing provides New Relic middleware and custom transaction attributes.
	Tracing *TracingMiddleware

	// RateLimit enforces the per-client request rate and records denials.
	RateLimit *RateLimitMiddleware
}

// NewMiddlewares constructs all middleware components using the application container.
//
// When New Relic is not configured the tracing middleware degrades into a
// no-op.
func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, s.LoggerService.GetApplication()),
		RateLimit:       NewRateLimitMiddleware(s),
	}
}
