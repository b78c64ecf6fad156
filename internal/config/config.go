package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	LogLevel        string
	LogFormat       string
	VotesPerMinute  int
	VoteBurst       int
	EventBuffer     int
	WebhookURL      string
	WebhookAttempts int
}

func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:            getEnv("APP_PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "json"),
		VotesPerMinute:  getEnvInt("VOTE_RATE_PER_MINUTE", 120),
		VoteBurst:       getEnvInt("VOTE_RATE_BURST", 10),
		EventBuffer:     getEnvInt("EVENT_BUFFER", 100),
		WebhookURL:      getEnv("NOTIFY_WEBHOOK_URL", ""),
		WebhookAttempts: getEnvInt("NOTIFY_RETRY_ATTEMPTS", 3),
	}

	if cfg.EventBuffer < 1 {
		cfg.EventBuffer = 1
	}
	if cfg.VoteBurst < 1 {
		cfg.VoteBurst = 1
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid integer env value, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}
