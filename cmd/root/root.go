// Package root contains the root command for the application
package root

import (
	"fmt"

	"linkboard/speeddial-import/internal/config"
	"linkboard/speeddial-import/internal/container"
	"linkboard/speeddial-import/internal/logging"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
	Backup string
}

var (
	// Log is the shared logger instance for commands
	Log = logging.NewLogrusAdapter("info", "text")

	// AppConfig is the configuration loaded before any subcommand runs
	AppConfig *config.Config

	// AppContainer holds the dependencies built from AppConfig
	AppContainer *container.Container

	// ConfigFile is an explicit config file path; empty searches the default locations
	ConfigFile string

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "speeddial-import",
		Short: "Import a Speed Dial 2 export into the bookmarks file.",
		Long: `speeddial-import converts a Speed Dial 2 JSON export (groups and dials)
into the bookmarks file (categories and bookmarks), backing up the existing
bookmarks file before replacing it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to speeddial-import!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return Bootstrap(ConfigFile)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if AppContainer != nil {
				_ = AppContainer.Close()
			}
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Speed Dial export file (default from paths.source)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Bookmarks file to write (default from paths.target)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Backup, "backup", "b", "", "Backup file for the existing bookmarks (default derived from output)")
	Cmd.PersistentFlags().StringVar(&ConfigFile, "config", "", "Config file (default searches $HOME/.speeddial-import, .speeddial-import and .)")
}

// Bootstrap loads .env and configuration and builds the container.
func Bootstrap(configFile string) error {
	config.LoadEnv(Log)

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	Log = config.NewLogger(cfg)
	c, err := container.NewContainerWithLogger(cfg, Log)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	AppConfig = cfg
	AppContainer = c
	return nil
}

// GetContainer returns the application container, nil before Bootstrap.
func GetContainer() *container.Container {
	return AppContainer
}

// GetConfig returns the loaded configuration, nil before Bootstrap.
func GetConfig() *config.Config {
	return AppConfig
}

// GetLogger returns the shared command logger.
func GetLogger() logging.Logger {
	return Log
}
