package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "", cfg.Provider)
	assert.Equal(t, 10*time.Second, cfg.GatewayTimeout)
	assert.Equal(t, "https://production.wompi.co/v1", cfg.WompiBaseURL)
	assert.Equal(t, int64(50000), cfg.SandboxAmountCents)
	assert.Equal(t, "COP", cfg.SandboxCurrency)
	assert.Equal(t, "payables", cfg.PayablesTable)
	assert.Equal(t, "enrollments", cfg.EnrollmentsTable)
	assert.Equal(t, 15*time.Second, cfg.PollInterval)
	assert.Equal(t, int32(25), cfg.PollBatchSize)
	assert.Equal(t, 3, cfg.PollMaxAttempts)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("PAYMENT_PROVIDER", "wompi")
	t.Setenv("GATEWAY_TIMEOUT", "5s")
	t.Setenv("WOMPI_BASE_URL", "https://sandbox.wompi.co/v1")
	t.Setenv("WOMPI_PRIVATE_KEY", "prv_test_key")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("POLL_INTERVAL", "1m")
	t.Setenv("POLL_BATCH_SIZE", "50")

	cfg := Load()

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "wompi", cfg.Provider)
	assert.Equal(t, 5*time.Second, cfg.GatewayTimeout)
	assert.Equal(t, "https://sandbox.wompi.co/v1", cfg.WompiBaseURL)
	assert.Equal(t, "prv_test_key", cfg.WompiPrivateKey)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, time.Minute, cfg.PollInterval)
	assert.Equal(t, int32(50), cfg.PollBatchSize)
}

func TestLoad_InvalidValuesFallBackToDefaults(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	t.Setenv("GATEWAY_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 10*time.Second, cfg.GatewayTimeout)
}
