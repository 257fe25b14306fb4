// Package handler is the first layer. The first entry point
// for business logic after the router.
//
// It parses requests, handles input validation using the
// validation package, and calls the appropriate service layer.
// It acts as the interface between the HTTP request and the core
// business logic.
package handler

import (
	"time"

	"github.com/rs/zerolog"
)

// warnIfSlow logs a warning when d exceeds the configured slow request
// threshold. A zero threshold disables the warning.
func (h Handler) warnIfSlow(logger *zerolog.Logger, d time.Duration) {
	threshold := h.slowRequestThreshold()
	if threshold <= 0 || d <= threshold {
		return
	}

	logger.Warn().
		Dur("handler_duration", d).
		Dur("threshold", threshold).
		Msg("slow request")
}

func (h Handler) slowRequestThreshold() time.Duration {
	if h.server == nil || h.server.Config == nil || h.server.Config.Observability == nil {
		return 0
	}
	return h.server.Config.Observability.Logging.SlowRequestThreshold
}
