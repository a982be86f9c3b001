package config

import (
	"os"
	"strconv"
	"time"
)

// Config carries everything the application needs at startup. It is built
// once in main and threaded explicitly into app.New; nothing reads the
// environment after Load returns.
type Config struct {
	AppPort string
	BaseURL string // external base URL, used for the OAuth redirect

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string

	RedisAddr     string
	RedisPassword string

	DatabaseDSN string

	SessionTTL   time.Duration
	CookieSecure bool

	TemplatesDir string
}

func Load() Config {

	cfg := Config{

		AppPort: getenv("APP_PORT", "5000"),
		BaseURL: getenv("BASE_URL", "http://localhost:5000"),

		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),

		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		DatabaseDSN: os.Getenv("DATABASE_DSN"),

		SessionTTL:   getduration("SESSION_TTL", 24*time.Hour),
		CookieSecure: getbool("COOKIE_SECURE", true),

		TemplatesDir: getenv("TEMPLATES_DIR", "web/templates"),
	}

	if cfg.GoogleRedirectURL == "" {
		cfg.GoogleRedirectURL = cfg.BaseURL + "/auth/callback/google"
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getbool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getduration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
