package config

import (
	"os"
	"strconv"
	"time"
)

// Config is the process-wide configuration, loaded once at boot and immutable
// afterwards. Provider credentials are server-held and never reach any
// client-facing surface.

type Config struct {
	Port int

	// Provider selects the single active payment provider for this process:
	// "wompi", "mercadopago" or "sandbox".
	Provider       string
	GatewayTimeout time.Duration

	WompiBaseURL    string
	WompiPrivateKey string

	MercadoPagoAccessToken string

	SandboxAmountCents int64
	SandboxCurrency    string

	// RedisAddr empty disables the status cache.
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	PayablesTable    string
	EnrollmentsTable string

	PollInterval    time.Duration
	PollBatchSize   int32
	PollMaxAttempts int
}

// Load reads configuration from the environment. A .env file, when present,
// is loaded by the godotenv autoload import in main.
func Load() Config {
	return Config{
		Port: getenvInt("PORT", 8080),

		Provider:       getenvDefault("PAYMENT_PROVIDER", ""),
		GatewayTimeout: getenvDuration("GATEWAY_TIMEOUT", 10*time.Second),

		WompiBaseURL:    getenvDefault("WOMPI_BASE_URL", "https://production.wompi.co/v1"),
		WompiPrivateKey: os.Getenv("WOMPI_PRIVATE_KEY"),

		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),

		SandboxAmountCents: int64(getenvInt("SANDBOX_AMOUNT_CENTS", 50000)),
		SandboxCurrency:    getenvDefault("SANDBOX_CURRENCY", "COP"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getenvInt("REDIS_DB", 0),

		PayablesTable:    getenvDefault("PAYABLES_TABLE", "payables"),
		EnrollmentsTable: getenvDefault("ENROLLMENTS_TABLE", "enrollments"),

		PollInterval:    getenvDuration("POLL_INTERVAL", 15*time.Second),
		PollBatchSize:   int32(getenvInt("POLL_BATCH_SIZE", 25)),
		PollMaxAttempts: getenvInt("POLL_MAX_ATTEMPTS", 3),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
