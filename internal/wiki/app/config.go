package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/auswiki/auswiki/pkg/jwtx"
)

// Config is everything the application reads from the environment.
// AUWIKI_JWT_SECRET and AUWIKI_DATABASE_FILE are required; the rest have
// sensible defaults.
type Config struct {
	Port int

	JWTSecret []byte
	Issuer    string
	TokenTTL  time.Duration

	DatabaseFile string
	PepperFile   string

	AllowedOrigins []string

	LogLevel  string
	LogFormat string
	Env       string

	ShutdownGrace time.Duration
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (Config, error) {
	secret := os.Getenv("AUWIKI_JWT_SECRET")
	if secret == "" {
		return Config{}, fmt.Errorf("AUWIKI_JWT_SECRET is required")
	}

	dbFile := os.Getenv("AUWIKI_DATABASE_FILE")
	if dbFile == "" {
		return Config{}, fmt.Errorf("AUWIKI_DATABASE_FILE is required")
	}

	cfg := Config{
		Port:           getEnvInt("AUWIKI_PORT", 8080),
		JWTSecret:      []byte(secret),
		Issuer:         getEnvOrDefault("AUWIKI_ISSUER", "auwiki"),
		TokenTTL:       getEnvDuration("AUWIKI_TOKEN_TTL", jwtx.DefaultSessionTTL),
		DatabaseFile:   dbFile,
		PepperFile:     getEnvOrDefault("AUWIKI_PEPPER_FILE", "pepper.key"),
		AllowedOrigins: getEnvList("AUWIKI_ALLOWED_ORIGINS"),
		LogLevel:       getEnvOrDefault("AUWIKI_LOG_LEVEL", "info"),
		LogFormat:      getEnvOrDefault("AUWIKI_LOG_FORMAT", "json"),
		Env:            getEnvOrDefault("AUWIKI_ENV", "development"),
		ShutdownGrace:  getEnvDuration("AUWIKI_SHUTDOWN_GRACE", 10*time.Second),
	}

	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("AUWIKI_PORT out of range: %d", cfg.Port)
	}
	if cfg.TokenTTL <= 0 {
		return Config{}, fmt.Errorf("AUWIKI_TOKEN_TTL must be positive")
	}

	return cfg, nil
}

func getEnvOrDefault(key, def string) string {
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
		return def
	}
	return n
}

func getEnvDuration(key string, def time.Duration) time.Duration {
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

func getEnvList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
