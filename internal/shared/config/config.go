package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// CORS modes.
const (
	CORSAllowAll  = "allow-all"
	CORSAllowlist = "allowlist"
	CORSNone      = "none"
)

// Config holds application configuration.
type Config struct {
	Port            string `validate:"required,numeric"`
	Env             string `validate:"oneof=dev local staging production"`
	LogLevel        string
	CORSMode        string `validate:"oneof=allow-all allowlist none"`
	CORSAllowOrigin []string
	Database        DatabaseConfig
}

// DatabaseConfig holds the connection parameters for the employees database.
// Missing values are not rejected here; they surface as connection errors
// when a request actually needs the database.
type DatabaseConfig struct {
	URL            string
	Host           string
	Port           string
	Name           string
	User           string
	Password       string
	SSLMode        string
	ConnectTimeout time.Duration `validate:"gte=0"`
}

var validate = validator.New()

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	return Config{
		Port:            getEnv("PORT", "5000"),
		Env:             normalizeEnv(getEnv("ENV", "dev")),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		CORSMode:        normalizeCORSMode(getEnv("CORS_MODE", CORSAllowAll)),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "")),
		Database: DatabaseConfig{
			URL:            os.Getenv("DATABASE_URL"),
			Host:           os.Getenv("DB_HOST"),
			Port:           getEnv("DB_PORT", "5432"),
			Name:           os.Getenv("DB_NAME"),
			User:           os.Getenv("DB_USER"),
			Password:       os.Getenv("DB_PASSWORD"),
			SSLMode:        os.Getenv("DB_SSLMODE"),
			ConnectTimeout: readDuration("DB_CONNECT_TIMEOUT"),
		},
	}
}

// Validate checks the values that must be well-formed before the server starts.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.CORSMode == CORSAllowlist && len(c.CORSAllowOrigin) == 0 {
		return fmt.Errorf("invalid config: CORS_MODE=allowlist requires CORS_ALLOW_ORIGINS")
	}
	return nil
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func readDuration(key string) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return 0
	}
	val, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("config env %s invalid duration: %v", key, err)
		return 0
	}
	return val
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeCORSMode(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "none", "off", "disabled":
		return CORSNone
	case "allowlist":
		return CORSAllowlist
	case "allow-all", "all", "*":
		return CORSAllowAll
	default:
		return strings.ToLower(strings.TrimSpace(raw))
	}
}
