package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string
	DBPath      string
	LogLevel    string
	CORSOrigins string
}

var AppConfig *Config

// Load reads .env (if present) and the process environment into AppConfig.
// Every setting has a default, so Load never fails.
func Load() *Config {
	_ = godotenv.Load()

	AppConfig = &Config{
		Port:        GetEnv("PORT", "3000"),
		Env:         GetEnv("ENV", "development"),
		DBPath:      GetEnv("DB_PATH", "./data/mistakes.db"),
		LogLevel:    GetEnv("LOG_LEVEL", "info"),
		CORSOrigins: GetEnv("CORS_ORIGINS", "*"),
	}
	return AppConfig
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
