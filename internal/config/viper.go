// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"linkboard/speeddial-import/internal/idgen"
	"linkboard/speeddial-import/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment variable override,
// e.g. SDI_PATHS_TARGET or SDI_BACKUP_ENABLED.
const EnvPrefix = "SDI"

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Paths struct {
		Source string `mapstructure:"source" yaml:"source"`
		Target string `mapstructure:"target" yaml:"target"`
		Backup string `mapstructure:"backup" yaml:"backup"`
	} `mapstructure:"paths" yaml:"paths"`

	Backup struct {
		// Enabled false drops the backup: an existing target is overwritten
		// and no copy of it is kept.
		Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	} `mapstructure:"backup" yaml:"backup"`

	IDs struct {
		Strategy     string `mapstructure:"strategy" yaml:"strategy"`
		KeepSourceID bool   `mapstructure:"keep_source_id" yaml:"keep_source_id"`
	} `mapstructure:"ids" yaml:"ids"`

	Report struct {
		SkippedFile string `mapstructure:"skipped_file" yaml:"skipped_file"`
		Delimiter   string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"report" yaml:"report"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	return LoadConfig("")
}

// LoadConfig loads configuration from defaults, then the config file, then
// SDI_* environment variables. An empty configFile searches the standard
// locations; a missing file there is not an error.
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.speeddial-import")
		v.AddConfigPath(".speeddial-import")
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// LOG_LEVEL is honoured as a fallback so the level main sets before
	// bootstrap carries over to the application logger.
	if err := v.BindEnv("log.level", EnvPrefix+"_LOG_LEVEL", "LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind log level: %w", err)
	}

	// 4. Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configFile != "" {
			return nil, fmt.Errorf("failed to read config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("paths.source", models.DefaultSourceFile)
	v.SetDefault("paths.target", models.DefaultTargetFile)
	v.SetDefault("paths.backup", models.DefaultBackupFile)

	v.SetDefault("backup.enabled", true)

	v.SetDefault("ids.strategy", idgen.StrategyUUID)
	v.SetDefault("ids.keep_source_id", false)

	v.SetDefault("report.skipped_file", "")
	v.SetDefault("report.delimiter", ",")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if strings.TrimSpace(config.Paths.Target) == "" {
		return fmt.Errorf("paths.target must not be empty")
	}

	if _, err := idgen.New(config.IDs.Strategy); err != nil {
		return err
	}

	if len([]rune(config.Report.Delimiter)) != 1 {
		return fmt.Errorf("report delimiter must be a single character, got: %q", config.Report.Delimiter)
	}

	return nil
}

// Dump renders the effective configuration as YAML.
func Dump(config *Config) ([]byte, error) {
	out, err := yaml.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return out, nil
}

// ReportDelimiter returns the configured CSV delimiter for skipped reports.
func (c *Config) ReportDelimiter() rune {
	r := []rune(c.Report.Delimiter)
	if len(r) == 0 {
		return ','
	}
	return r[0]
}
