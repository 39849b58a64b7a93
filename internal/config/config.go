package config

import (
	"os"
	"strconv"
)

// Store drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Port        string
	Environment string
	CORSOrigins string
	TablePrefix string
	// Store configuration
	StoreDriver string // "postgres" or "sqlite"
	DatabaseURL string // pgx connection string (postgres driver)
	SQLitePath  string // file path or ":memory:" (sqlite driver)
	AutoMigrate bool   // create tables on startup
	// Auth is enabled only when a JWKS URL is configured
	AuthJWKSURL string
	// Logging
	LogDir      string // empty disables the log file
	LogMaxFiles int
	// Metrics
	MetricsEnabled bool
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		Port:           getEnv("PORT", "8080"),
		Environment:    env,
		CORSOrigins:    getEnv("CORS_ORIGINS", "http://localhost:4200"),
		TablePrefix:    getTablePrefix(env),
		StoreDriver:    getEnv("STORE_DRIVER", DriverPostgres),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		SQLitePath:     getEnv("SQLITE_PATH", "analysisdesk.db"),
		AutoMigrate:    getEnv("AUTO_MIGRATE", getDefaultAutoMigrate(env)) == "true",
		AuthJWKSURL:    getEnv("AUTH_JWKS_URL", ""),
		LogDir:         getEnv("LOG_DIR", ""),
		LogMaxFiles:    getEnvInt("LOG_MAX_FILES", 10),
		MetricsEnabled: getEnv("METRICS_ENABLED", "true") == "true",
	}
}

// AuthEnabled reports whether bearer-token verification is configured
func (c *Config) AuthEnabled() bool {
	return c.AuthJWKSURL != ""
}

// getDefaultAutoMigrate returns the default auto-migrate setting based on environment
func getDefaultAutoMigrate(env string) string {
	if env == "prod" {
		return "false"
	}
	return "true"
}

// getTablePrefix returns the table prefix based on environment
func getTablePrefix(env string) string {
	// Allow manual override via TABLE_PREFIX env var
	if prefix, ok := os.LookupEnv("TABLE_PREFIX"); ok {
		return prefix
	}

	switch env {
	case "prod":
		return ""
	case "test":
		return "test_"
	default:
		return "dev_"
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
