// Package config manages environment variables.
//
// It reads variables from the `.env` file and the process environment,
// loads them into structured Go types (struct) on top of built-in defaults,
// and validates that required values are present so they can be reused
// across the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults for optional config blocks (e.g. observability).
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists, it gets loaded into the
	// process env before any of the code below reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Env vars are read using the prefix TOOLS_.

	Keys are normalized: the prefix is removed, the rest is lowercased and
	every double underscore becomes the koanf "." delimiter, so single
	underscores survive inside key names:

	  TOOLS_SERVER__READ_TIMEOUT            -> server.read_timeout
	  TOOLS_INTEGRATION__TWILIO__FROM_NUMBER -> integration.twilio.from_number
*/

// EnvPrefix is the prefix every configuration variable carries.
const EnvPrefix = "TOOLS_"

// ServiceName is the name reported to logs and APM.
const ServiceName = "generic-tools"

// Config is the root configuration object for the application.
//
// Observability is a pointer because it is optional. If not provided,
// defaults are injected at load time.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	HTTPClient    HTTPClientConfig     `koanf:"http_client"`
	Integration   IntegrationConfig    `koanf:"integration" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are expressed in seconds.
type ServerConfig struct {
	Port               string          `koanf:"port" validate:"required"`
	ReadTimeout        int             `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int             `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int             `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string        `koanf:"cors_allowed_origins" validate:"required"`
	BodyLimit          string          `koanf:"body_limit" validate:"required"`
	RateLimit          RateLimitConfig `koanf:"rate_limit"`
}

// RateLimitConfig controls the per-IP in-memory limiter.
// A RequestsPerSecond of 0 disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64       `koanf:"requests_per_second" validate:"gte=0"`
	Burst             int           `koanf:"burst" validate:"gte=0"`
	ExpiresIn         time.Duration `koanf:"expires_in"`
}

// HTTPClientConfig configures the shared outbound client.
//
// Timeout 0 means the client relies on the request context and the
// transport's dial/TLS timeouts only.
type HTTPClientConfig struct {
	Timeout   time.Duration `koanf:"timeout" validate:"gte=0"`
	UserAgent string        `koanf:"user_agent" validate:"required"`
}

// LoadConfig loads configuration from defaults and environment variables,
// unmarshals it into Config, validates it and returns the resulting config.
//
// Behavior summary:
//   - Loads the defaults map
//   - Loads env vars with prefix TOOLS_ on top of it
//   - Unmarshals into Config
//   - Validates required config blocks/fields
//   - Sets default observability if missing and forces service name/env
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("could not load default config: %w", err)
	}

	err := k.Load(env.ProviderWithValue(EnvPrefix, ".", mapEnv), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}

// listKeys are split on commas when they arrive through the environment.
var listKeys = map[string]bool{
	"server.cors_allowed_origins": true,
}

// mapEnv turns TOOLS_A__B_C=v into ("a.b_c", v).
func mapEnv(key, value string) (string, interface{}) {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	key = strings.ReplaceAll(key, "__", ".")

	if listKeys[key] {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return key, out
	}

	return key, value
}

// defaults is the base layer every environment override lands on.
func defaults() map[string]interface{} {
	return map[string]interface{}{
		"primary.env": "development",

		"server.port":                 "8080",
		"server.read_timeout":         30,
		"server.write_timeout":        300,
		"server.idle_timeout":         60,
		"server.cors_allowed_origins": []string{"*"},
		"server.body_limit":           "20M",

		"server.rate_limit.requests_per_second": 0,
		"server.rate_limit.burst":               0,
		"server.rate_limit.expires_in":          "3m",

		"http_client.timeout":    "0s",
		"http_client.user_agent": ServiceName + "/1.0",

		"integration.nominatim.base_url": "https://nominatim.openstreetmap.org",
		"integration.ipify.base_url":     "https://api.ipify.org",
		"integration.mymemory.base_url":  "https://api.mymemory.translated.net",
		"integration.google.base_url":    "https://translation.googleapis.com",
		"integration.email.provider":     EmailProviderSMTP,
		"integration.email.smtp.port":    587,
		"integration.media.output_dir":   "media",

		"observability.logging.level":                  "info",
		"observability.logging.format":                 "json",
		"observability.logging.slow_request_threshold": "2s",

		"observability.new_relic.app_log_forwarding_enabled":  true,
		"observability.new_relic.distributed_tracing_enabled": true,
	}
}
