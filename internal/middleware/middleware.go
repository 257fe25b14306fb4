// Package middleware holds the echo middleware applied to every route:
// request ids, tracing, the request-scoped logger, access logging,
// CORS, secure headers, body limits, rate limiting and panic recovery.
// It also provides the global error handler.
package middleware
