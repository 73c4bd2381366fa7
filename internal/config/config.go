package config

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"github.com/canonpack/canonpack/internal/score"
)

// AppName is the application name used for config file naming.
const AppName = "canonpack"

// Config represents the top-level configuration structure.
type Config struct {
	Version       int       `mapstructure:"version" yaml:"version"`
	DefaultTarget string    `mapstructure:"default_target" yaml:"default_target"`
	Strict        bool      `mapstructure:"strict" yaml:"strict"`
	LogLevel      string    `mapstructure:"log_level" yaml:"log_level"`
	LogFormat     string    `mapstructure:"log_format" yaml:"log_format"`
	Penalties     Penalties `mapstructure:"penalties" yaml:"penalties"`
}

// Penalties contains overrides for the quality score deductions.
type Penalties struct {
	LossyWarning    int `mapstructure:"lossy_warning" yaml:"lossy_warning"`
	SubtypeMismatch int `mapstructure:"subtype_mismatch" yaml:"subtype_mismatch"`
	ValidationError int `mapstructure:"validation_error" yaml:"validation_error"`
}

// Score converts the configured penalty overrides into a score.Penalties.
func (p Penalties) Score() score.Penalties {
	return score.Penalties{
		LossyWarning:    p.LossyWarning,
		SubtypeMismatch: p.SubtypeMismatch,
		ValidationError: p.ValidationError,
	}
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	// Config file settings
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".") // Current directory
	viper.AddConfigPath(filepath.Join(xdg.ConfigHome, AppName))

	// Environment variable support
	viper.SetEnvPrefix("CANONPACK")
	viper.AutomaticEnv()

	// Defaults
	defaults := score.DefaultPenalties()
	viper.SetDefault("version", 1)
	viper.SetDefault("default_target", "claude")
	viper.SetDefault("strict", false)
	viper.SetDefault("log_level", "info")
	viper.SetDefault("log_format", "text")
	viper.SetDefault("penalties.lossy_warning", defaults.LossyWarning)
	viper.SetDefault("penalties.subtype_mismatch", defaults.SubtypeMismatch)
	viper.SetDefault("penalties.validation_error", defaults.ValidationError)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		// If config file not found...
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If user specified a path, this is an error
			if path != "" {
				return nil, fmt.Errorf("config file not found at %s: %w", path, err)
			}
			// Otherwise (implicit load), it's fine to use defaults
		} else {
			// Real read error (parsing, permissions, etc)
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
