package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"linkboard/speeddial-import/cmd/inspect"
	"linkboard/speeddial-import/cmd/root"
	"linkboard/speeddial-import/cmd/speeddial"
	"linkboard/speeddial-import/cmd/validate"
	"linkboard/speeddial-import/internal/config"
	"linkboard/speeddial-import/internal/logging"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// Load .env before anything reads the environment.
	loadEnvSilently()

	// Set the global log level before any logger is created.
	configureLogLevelDirectly()

	root.Init()

	root.Cmd.AddCommand(speeddial.Cmd)
	root.Cmd.AddCommand(validate.Cmd)
	root.Cmd.AddCommand(inspect.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}

	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly applies LOG_LEVEL to the global logrus logger and
// to the command logger used until the configuration is loaded. The loaded
// configuration falls back to the same variable for log.level.
func configureLogLevelDirectly() logrus.Level {
	logLevelStr := config.GetEnv("LOG_LEVEL", "info")

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}

	logrus.SetLevel(logLevel)
	root.Log = logging.NewLogrusAdapter(logLevel.String(), "text")
	return logLevel
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
