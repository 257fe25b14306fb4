package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/generic-tools/internal/middleware"
	"github.com/deppfellow/generic-tools/internal/server"
	"github.com/labstack/echo/v4"
)

// HealthHandler exposes an endpoint that uptime monitors and load
// balancers use to verify the service is alive.
//
// It does not call the external collaborators. The checks only report
// which integrations have credentials, so a missing key shows up here
// before the related endpoint starts answering 503.
type HealthHandler struct {
	Handler
}

// NewHealthHandler constructs a HealthHandler with access to shared app dependencies.
func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// integrationCheck is one entry of the checks map.
type integrationCheck struct {
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// CheckHealth returns the service status and integration checks.
//
// Response includes:
// - status, always "healthy" while the process serves
// - timestamp (UTC)
// - environment (from config)
// - checks map, one entry per integration
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := h.integrationChecks()

	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	unconfigured := 0
	for name, check := range checks {
		if check.Status != "configured" {
			unconfigured++
			logger.Debug().Str("integration", name).Msg("integration not configured")
		}
	}

	if unconfigured > 0 {
		if app := h.server.LoggerService.GetApplication(); app != nil {
			app.RecordCustomEvent("HealthCheckIntegrations", map[string]interface{}{
				"operation":    "health_check",
				"unconfigured": unconfigured,
			})
		}
	}

	logger.Info().
		Int("unconfigured", unconfigured).
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		logger.Error().Err(err).Msg("failed to write JSON response")
		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}

func (h *HealthHandler) integrationChecks() map[string]integrationCheck {
	integration := h.server.Config.Integration

	status := func(ok bool, detail string) integrationCheck {
		if ok {
			return integrationCheck{Status: "configured", Detail: detail}
		}
		return integrationCheck{Status: "not_configured", Detail: detail}
	}

	youTubeKey := integration.Media.YouTubeAPIKey != "" || integration.Google.APIKey != ""
	ffmpeg := "native audio container"
	if integration.Media.FFmpegPath != "" {
		ffmpeg = "mp3 transcoding"
	}

	return map[string]integrationCheck{
		"nominatim":        status(integration.Nominatim.BaseURL != "", ""),
		"ipify":            status(integration.Ipify.BaseURL != "", ""),
		"mymemory":         status(integration.MyMemory.BaseURL != "", ""),
		"google_translate": status(integration.Google.Configured(), ""),
		"email":            status(integration.Email.Configured(), integration.Email.Provider),
		"twilio":           status(integration.Twilio.Configured(), ""),
		"youtube_search":   status(youTubeKey, ""),
		"youtube_download": status(true, ffmpeg),
	}
}
