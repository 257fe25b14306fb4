package logger

import (
	"testing"

	"github.com/deppfellow/generic-tools/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerService_DisabledWithoutLicense(t *testing.T) {
	ls, err := NewLoggerService(config.DefaultObservabilityConfig())
	require.NoError(t, err)
	assert.Nil(t, ls.GetApplication())

	// Shutdown on a disabled service is a no-op.
	ls.Shutdown()
}

func TestGetApplication_NilReceiver(t *testing.T) {
	var ls *LoggerService
	assert.Nil(t, ls.GetApplication())
}

func TestNewLogger_Level(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Logging.Level = "warn"

	l := NewLogger(cfg)
	assert.Equal(t, zerolog.WarnLevel, l.GetLevel())
}

func TestWithTraceContext_NilTransaction(t *testing.T) {
	l := zerolog.Nop()
	assert.Equal(t, l, WithTraceContext(l, nil))
}
