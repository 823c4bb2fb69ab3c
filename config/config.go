package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string
	DBPath      string
	LogLevel    string
	CORSOrigins string
	SeedOnStart bool
	RateLimit   int
}

var AppConfig *Config

// Load reads .env (if present) and the process environment into AppConfig.
func Load() *Config {
	_ = godotenv.Load()

	AppConfig = &Config{
		Port:        GetEnv("PORT", "3000"),
		Env:         GetEnv("ENV", "development"),
		DBPath:      GetEnv("DB_PATH", "./data/tierra-media.db"),
		LogLevel:    GetEnv("LOG_LEVEL", "info"),
		CORSOrigins: GetEnv("CORS_ORIGINS", "*"),
		SeedOnStart: GetBool("SEED_ON_START", true),
		RateLimit:   GetInt("RATE_LIMIT", 200),
	}

	return AppConfig
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetBool parses key with strconv.ParseBool, falling back on unset or
// unparsable values.
func GetBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

// GetInt parses key as a positive integer, falling back on unset or
// invalid values.
func GetInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}
