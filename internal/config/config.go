package config

import (
	"os"

	"med-notebook/internal/platform/logger"
)

type Config struct {
	HTTP   HTTPConfig
	DB     DBConfig
	Logger LoggerConfig
}

type HTTPConfig struct {
	Port string
}

type DBConfig struct {
	// DSN vacío => store in-memory (modo dev).
	DSN string
	// DocKey es la clave del documento único persistido.
	DocKey string
}

type LoggerConfig struct {
	Level  logger.Level
	Format logger.Format
	App    string
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func Load() Config {
	return Config{
		HTTP: HTTPConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		DB: DBConfig{
			DSN:    os.Getenv("DB_DSN"),
			DocKey: getEnvOrDefault("DOC_KEY", "medication-notebook"),
		},
		Logger: LoggerConfig{
			Level:  logger.ParseLevel(os.Getenv("LOG_LEVEL")),
			Format: logger.ParseFormat(os.Getenv("LOG_FORMAT")),
			App:    getEnvOrDefault("APP_NAME", "med-notebook"),
		},
	}
}
