package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	LogLevel    string
	LogFile     string
	LogToStdout bool
	LogJSON     bool

	// In-memory exercise-catalog cache budget
	CatalogCacheMB int

	// Langfuse / OTLP trace export configuration
	LangfuseBaseURL   string
	LangfusePublicKey string
	LangfuseSecretKey string
	LangfuseEnv       string
}

func Load() *Config {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFile:     getEnv("LOG_FILE", ""),
		LogToStdout: getEnv("LOG_TO_STDOUT", "true") == "true",
		LogJSON:     getEnv("LOG_JSON", "false") == "true",

		CatalogCacheMB: getEnvInt("CATALOG_CACHE_MB", 16),

		LangfuseBaseURL:   getEnv("LANGFUSE_BASE_URL", ""),
		LangfusePublicKey: getEnv("LANGFUSE_PUBLIC_KEY", ""),
		LangfuseSecretKey: getEnv("LANGFUSE_SECRET_KEY", ""),
		LangfuseEnv:       getEnv("LANGFUSE_ENV", "development"),
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
