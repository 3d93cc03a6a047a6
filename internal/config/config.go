package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the process reads from its environment.
type Config struct {
	Port        string
	Environment string
	LogLevel    slog.Level

	// Record store backend: "excel", "postgres" or "memory".
	StoreBackend string
	WorkbookPath string
	DatabaseURL  string

	RedisURL string

	// Audit broker: "channel" (in-process) or "kafka".
	AuditBroker  string
	KafkaBrokers []string
}

// LoadConfig reads configuration from the environment, loading a .env file
// first if one is present. Missing optional values fall back to defaults;
// missing required values are an error.
func LoadConfig() (*Config, error) {
	// .env is a convenience for local development only.
	_ = godotenv.Load()

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		Environment:  getEnv("ENVIRONMENT", "development"),
		LogLevel:     parseLogLevel(getEnv("LOG_LEVEL", "info")),
		StoreBackend: getEnv("STORE_BACKEND", "excel"),
		WorkbookPath: getEnv("WORKBOOK_PATH", "coven.xlsx"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		RedisURL:     os.Getenv("REDIS_URL"),
		AuditBroker:  getEnv("AUDIT_BROKER", "channel"),
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	switch cfg.StoreBackend {
	case "excel", "memory":
	case "postgres":
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required when STORE_BACKEND=postgres")
		}
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}

	if cfg.AuditBroker == "kafka" && len(cfg.KafkaBrokers) == 0 {
		return nil, fmt.Errorf("KAFKA_BROKERS is required when AUDIT_BROKER=kafka")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
