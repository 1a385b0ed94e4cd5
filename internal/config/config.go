// Package config provides functionality for loading and accessing environment variables.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"linkboard/speeddial-import/internal/logging"

	"github.com/joho/godotenv"
)

// FindEnvFile returns the .env file to load: the current directory first,
// then its parent. It returns "" when neither exists.
func FindEnvFile() string {
	for _, candidate := range []string{".env", filepath.Join("..", ".env")} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// LoadEnv loads environment variables from a .env file if one exists.
// Variables already set in the process environment win.
func LoadEnv(log logging.Logger) {
	envFile := FindEnvFile()
	if envFile == "" {
		log.Debug("No .env file found, using environment variables")
		return
	}

	if err := godotenv.Load(envFile); err != nil {
		log.WithError(err).Warn("Error loading .env file")
		return
	}
	log.Debug("Loaded environment variables", logging.F(logging.FieldFile, envFile))
}

// GetEnv retrieves an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}

// NewLogger builds the application logger described by the configuration.
func NewLogger(config *Config) logging.Logger {
	return logging.NewLogrusAdapter(strings.ToLower(config.Log.Level), strings.ToLower(config.Log.Format))
}
