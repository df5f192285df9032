// Package config handles configuration loading and validation.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/zorak1103/utf8shim/internal/console"
	apperrors "github.com/zorak1103/utf8shim/internal/errors"
	"github.com/zorak1103/utf8shim/internal/logging"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "UTF8SHIM"

// Common errors
var (
	Err = errors.New("config error")
)

// Config represents the application configuration
type Config struct {
	Console ConsoleConfig `mapstructure:"console"`
	Log     LogConfig     `mapstructure:"log"`

	// ConfigFilePath stores the path to the loaded config file (not marshaled from YAML)
	ConfigFilePath string `mapstructure:"-"`
}

// ConsoleConfig selects the console strategy.
type ConsoleConfig struct {
	Mode string `mapstructure:"mode"` // auto, utf8 or wide
}

// LogConfig contains settings for diagnostics written to the log stream.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load() // nolint:errcheck // .env file is optional

	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("utf8shim")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/utf8shim")
		v.AddConfigPath("/etc/utf8shim")
	}

	setDefaults(v)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			configFile := v.ConfigFileUsed()
			if configFile == "" {
				configFile = configPath
			}
			return nil, &apperrors.ConfigurationError{ConfigPath: configFile, Err: fmt.Errorf("%w: reading file: %w", Err, err)}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, &apperrors.ConfigurationError{ConfigPath: source(v.ConfigFileUsed()), Err: fmt.Errorf("%w: unmarshaling: %w", Err, err)}
	}

	// Store the config file path in the struct (DI approach, no global state)
	cfg.ConfigFilePath = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("console.mode", "auto")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", logging.FormatConsole)
}

func source(path string) string {
	if path == "" {
		return "(defaults/environment)"
	}
	return path
}

// Validate ensures every value is one the program understands.
func (c *Config) Validate() error {
	configSource := source(c.ConfigFilePath)

	if _, err := console.ParseMode(c.Console.Mode); err != nil {
		return &apperrors.ConfigurationError{ConfigPath: configSource, Key: "console.mode", Err: fmt.Errorf("%w: %w", Err, err)}
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return &apperrors.ConfigurationError{
			ConfigPath: configSource,
			Key:        "log.level",
			Err:        fmt.Errorf("%w: unknown level %q (want debug, info, warn or error)", Err, c.Log.Level),
		}
	}

	switch c.Log.Format {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		return &apperrors.ConfigurationError{
			ConfigPath: configSource,
			Key:        "log.format",
			Err:        fmt.Errorf("%w: unknown format %q (want %s or %s)", Err, c.Log.Format, logging.FormatConsole, logging.FormatJSON),
		}
	}

	return nil
}

// ConsoleMode returns the parsed console mode. Validate must have passed.
func (c *Config) ConsoleMode() console.Mode {
	m, _ := console.ParseMode(c.Console.Mode)
	return m
}
