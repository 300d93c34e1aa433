package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/grachmannico95/ledger-engine/internal/codec"
	"github.com/grachmannico95/ledger-engine/internal/ledger"
	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Worker   WorkerConfig
	Logging  LoggingConfig
	EventBus EventBusConfig
	Ledger   LedgerConfig
	Metrics  MetricsConfig
}

type ServerConfig struct {
	Port            string
	Host            string
	ShutdownTimeout time.Duration
	BodyLimit       string
}

type WorkerConfig struct {
	MaxRetries     int
	RetryBaseDelay time.Duration
}

type LoggingConfig struct {
	Level string
}

type EventBusConfig struct {
	ChannelBufferSize int
}

type LedgerConfig struct {
	DecodePolicy codec.DecodePolicy
	ErrorPolicy  ledger.ErrorPolicy
	RoundPlaces  int32
}

type MetricsConfig struct {
	Enabled   bool
	Namespace string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values")
	}

	return &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 30*time.Second),
			BodyLimit:       getEnv("MAX_UPLOAD_SIZE", "32M"),
		},
		Worker: WorkerConfig{
			MaxRetries:     getIntEnv("MAX_RETRIES", 5),
			RetryBaseDelay: getDurationEnv("RETRY_BASE_DELAY", 100*time.Millisecond),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		EventBus: EventBusConfig{
			ChannelBufferSize: getIntEnv("EVENT_CHANNEL_BUFFER_SIZE", 1000),
		},
		Ledger: LedgerConfig{
			DecodePolicy: getDecodePolicyEnv("LEDGER_DECODE_POLICY", codec.DecodeIgnore),
			ErrorPolicy:  getErrorPolicyEnv("LEDGER_ERROR_POLICY", ledger.PolicySkip),
			RoundPlaces:  int32(getIntEnv("LEDGER_ROUND_PLACES", int(ledger.DefaultRoundPlaces))),
		},
		Metrics: MetricsConfig{
			Enabled:   getBoolEnv("METRICS_ENABLED", true),
			Namespace: getEnv("METRICS_NAMESPACE", "ledger"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntEnv(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

func getBoolEnv(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Invalid value for %s: %s, using default: %t", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Invalid duration for %s: %s, using default: %s", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

func getDecodePolicyEnv(key string, defaultValue codec.DecodePolicy) codec.DecodePolicy {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := codec.ParseDecodePolicy(valueStr)
	if err != nil {
		log.Printf("Invalid decode policy for %s: %s, using default: %s", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

func getErrorPolicyEnv(key string, defaultValue ledger.ErrorPolicy) ledger.ErrorPolicy {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := ledger.ParseErrorPolicy(valueStr)
	if err != nil {
		log.Printf("Invalid error policy for %s: %s, using default: %s", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}
