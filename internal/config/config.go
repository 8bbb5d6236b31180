package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Store drivers accepted by STORE_DRIVER
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds the process configuration read from the environment
type Config struct {
	StoreDriver        string
	SQLitePath         string
	JWTSecret          string
	JWTExpirationHours int64
	ServerPort         string
	AdminUsername      string
	AdminPassword      string
	PasswordScheme     string
	GeminiAPIKey       string
	GeminiModel        string
	LogLevel           string
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// LoadConfig reads configuration from environment variables. Callers load
// .env with godotenv first.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		StoreDriver:    strings.ToLower(getEnv("STORE_DRIVER", DriverSQLite)),
		SQLitePath:     getEnv("SQLITE_PATH", "./technomaster.db"),
		JWTSecret:      os.Getenv("JWT_SECRET_KEY"),
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		AdminUsername:  getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:  getEnv("ADMIN_PASSWORD", "admin123"),
		PasswordScheme: strings.ToLower(getEnv("PASSWORD_SCHEME", "plain")),
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		GeminiModel:    os.Getenv("GEMINI_MODEL"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY not set in environment")
	}

	cfg.JWTExpirationHours = 24
	if raw := os.Getenv("JWT_EXPIRATION_HOURS"); raw != "" {
		hours, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || hours <= 0 {
			return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS %q", raw)
		}
		cfg.JWTExpirationHours = hours
	}

	switch cfg.StoreDriver {
	case DriverMemory, DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q (want memory, sqlite or postgres)", cfg.StoreDriver)
	}

	return cfg, nil
}
