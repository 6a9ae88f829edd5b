package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the process configuration, read from the environment (and .env,
// loaded by the entry points).
type Config struct {
	Port              string
	APIBaseURL        string
	PDFBaseURL        string
	HTTPClientTimeout time.Duration
	CommitTimeout     time.Duration
	DebounceDelay     time.Duration
	ShutdownTimeout   time.Duration
	LogLevel          string

	AWSRegion        string
	DynamoDBEndpoint string
	SyncJournalTable string
	PaymentsTable    string

	RabbitURI   string
	RabbitQueue string

	MercadoPagoAccessToken string
	PaymentGatewayMock     bool
	SandboxPayerEmail      string
}

func Load() *Config {
	return &Config{
		Port:              getenv("PORT", "8080"),
		APIBaseURL:        strings.TrimRight(getenv("ESTOQUEFACIL_API_URL", "https://os.estoquefacil.net/api"), "/"),
		PDFBaseURL:        strings.TrimRight(getenv("PDF_BASE_URL", "https://os.estoquefacil.net"), "/"),
		HTTPClientTimeout: parseDuration("HTTP_CLIENT_TIMEOUT", 10*time.Second),
		CommitTimeout:     parseDuration("COMMIT_TIMEOUT", 15*time.Second),
		DebounceDelay:     parseDuration("DEBOUNCE_DELAY", 300*time.Millisecond),
		ShutdownTimeout:   parseDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		LogLevel:          getenv("LOG_LEVEL", "info"),

		AWSRegion:        getenv("AWS_REGION", "us-east-1"),
		DynamoDBEndpoint: os.Getenv("DYNAMODB_ENDPOINT"),
		SyncJournalTable: os.Getenv("SYNC_JOURNAL_TABLE"),
		PaymentsTable:    os.Getenv("PAYMENTS_TABLE"),

		RabbitURI:   getenvAny("", "RABBITMQ_URL", "RABBIT_URI"),
		RabbitQueue: getenvAny("ordem_servico_events", "RABBITMQ_QUEUE", "RABBIT_QUEUE"),

		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		PaymentGatewayMock:     parseBool("PAYMENT_GATEWAY_MOCK") || parseBool("MERCADOPAGO_MOCK"),
		SandboxPayerEmail:      sandboxPayerEmail(),
	}
}

// JournalEnabled reports whether sync mutations are persisted.
func (c *Config) JournalEnabled() bool {
	return c.SyncJournalTable != ""
}

func (c *Config) PaymentsEnabled() bool {
	return c.PaymentsTable != ""
}

func (c *Config) BrokerEnabled() bool {
	return c.RabbitURI != ""
}

// sandboxPayerEmail mirrors Mercado Pago's test setup: an explicit test payer
// wins, otherwise TEST- tokens get the documented sandbox user.
func sandboxPayerEmail() string {
	if v := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")); v != "" {
		return v
	}
	if strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-") {
		return "test_user_br@testuser.com"
	}
	return ""
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvAny(def string, keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return def
}

func parseDuration(env string, def time.Duration) time.Duration {
	if v := os.Getenv(env); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}

func parseBool(env string) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(env)))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	return false
}
