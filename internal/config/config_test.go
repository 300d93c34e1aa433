package config

import (
	"testing"
	"time"

	"github.com/grachmannico95/ledger-engine/internal/codec"
	"github.com/grachmannico95/ledger-engine/internal/ledger"
	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"SERVER_PORT", "MAX_RETRIES", "RETRY_BASE_DELAY", "LEDGER_DECODE_POLICY",
		"LEDGER_ERROR_POLICY", "LEDGER_ROUND_PLACES", "METRICS_ENABLED", "METRICS_NAMESPACE",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Worker.MaxRetries)
	assert.Equal(t, 100*time.Millisecond, cfg.Worker.RetryBaseDelay)
	assert.Equal(t, codec.DecodeIgnore, cfg.Ledger.DecodePolicy)
	assert.Equal(t, ledger.PolicySkip, cfg.Ledger.ErrorPolicy)
	assert.Equal(t, int32(4), cfg.Ledger.RoundPlaces)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "ledger", cfg.Metrics.Namespace)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("MAX_RETRIES", "1")
	t.Setenv("RETRY_BASE_DELAY", "5ms")
	t.Setenv("LEDGER_DECODE_POLICY", "fail")
	t.Setenv("LEDGER_ERROR_POLICY", "strict")
	t.Setenv("LEDGER_ROUND_PLACES", "-1")
	t.Setenv("METRICS_ENABLED", "false")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 1, cfg.Worker.MaxRetries)
	assert.Equal(t, 5*time.Millisecond, cfg.Worker.RetryBaseDelay)
	assert.Equal(t, codec.DecodeFail, cfg.Ledger.DecodePolicy)
	assert.Equal(t, ledger.PolicyStrict, cfg.Ledger.ErrorPolicy)
	assert.Equal(t, int32(-1), cfg.Ledger.RoundPlaces)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("MAX_RETRIES", "many")
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")
	t.Setenv("LEDGER_DECODE_POLICY", "shrug")
	t.Setenv("LEDGER_ERROR_POLICY", "maybe")
	t.Setenv("METRICS_ENABLED", "perhaps")

	cfg := Load()

	assert.Equal(t, 5, cfg.Worker.MaxRetries)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, codec.DecodeIgnore, cfg.Ledger.DecodePolicy)
	assert.Equal(t, ledger.PolicySkip, cfg.Ledger.ErrorPolicy)
	assert.True(t, cfg.Metrics.Enabled)
}
