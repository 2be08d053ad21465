package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the service configuration. The Redis URL, order webhook and
// SMTP settings are all optional: the service degrades to an in-memory
// session store and skips the corresponding side effect when they are unset.
type Config struct {
	Port            string
	Env             string
	BaseURL         string
	RedisURL        string
	OrderWebhookURL string
	SMTPHost        string
	SMTPPort        int
	SMTPUser        string
	SMTPPass        string
	EmailFrom       string
	SessionTTL      time.Duration
}

// Load reads configuration from a .env file (if present) and the environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return Config{
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("ENV", "development"),
		BaseURL:         getEnv("BASE_URL", "http://localhost:8080"),
		RedisURL:        os.Getenv("REDIS_URL"),
		OrderWebhookURL: os.Getenv("ORDER_WEBHOOK_URL"),
		SMTPHost:        os.Getenv("SMTP_HOST"),
		SMTPPort:        getEnvInt("SMTP_PORT", 587),
		SMTPUser:        os.Getenv("SMTP_USER"),
		SMTPPass:        os.Getenv("SMTP_PASS"),
		EmailFrom:       getEnv("EMAIL_FROM", "Audiophile <orders@audiophile.dev>"),
		SessionTTL:      time.Hour * 24 * 7, // carts and snapshots live for 7 days
	}
}

// EmailEnabled reports whether SMTP credentials are configured.
func (c Config) EmailEnabled() bool {
	return c.SMTPHost != "" && c.SMTPUser != "" && c.SMTPPass != ""
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}
