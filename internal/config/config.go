// Package config provides configuration management for the trading journal.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	apperrors "github.com/mennaheldaly/Daytrader/internal/errors"
)

// Config holds all application configuration.
type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Logging LoggingConfig `mapstructure:"logging"`
	UI      UIConfig      `mapstructure:"ui"`
}

// StorageConfig holds persistence paths.
type StorageConfig struct {
	// DataDir is where the per-user JSON documents live.
	DataDir string `mapstructure:"data_dir"`
	// UsersDB is the sqlite file backing the credential store.
	UsersDB string `mapstructure:"users_db"`
	// Username namespaces the JSON documents in multi-user mode. Empty
	// selects the single-user layout.
	Username string `mapstructure:"username"`
}

// AuthConfig holds credential-store configuration.
type AuthConfig struct {
	// Hasher selects the password digest: "sha256" (legacy, default) or
	// "bcrypt".
	Hasher string `mapstructure:"hasher"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	Console bool   `mapstructure:"console"`
	File    bool   `mapstructure:"file"`
}

// UIConfig holds UI-related configuration.
type UIConfig struct {
	ColorEnabled bool   `mapstructure:"color_enabled"`
	DateFormat   string `mapstructure:"date_format"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/daytrader"
	}
	return filepath.Join(home, ".config", "daytrader")
}

// Load loads configuration from the specified directory. If configDir is
// empty, uses the default config directory. A missing config file is not an
// error: a template is written and defaults apply.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	cfg := &Config{}

	if err := loadConfigFile(configDir, "config", cfg); err != nil {
		return nil, fmt.Errorf("loading config.toml: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func loadConfigFile(configDir, name string, target *Config) error {
	v := viper.New()
	v.SetConfigName(name)
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	v.SetDefault("storage.data_dir", filepath.Join(configDir, "data"))
	v.SetDefault("storage.users_db", filepath.Join(configDir, "users.db"))
	v.SetDefault("storage.username", "")
	v.SetDefault("auth.hasher", "sha256")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.console", true)
	v.SetDefault("logging.file", true)
	v.SetDefault("ui.color_enabled", true)
	v.SetDefault("ui.date_format", "2006-01-02")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if werr := createTemplateConfig(configDir); werr != nil {
				return werr
			}
		} else {
			return err
		}
	}

	return v.Unmarshal(target)
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DAYTRADER_DATA_DIR"); v != "" {
		cfg.Storage.DataDir = v
	}
	if v := os.Getenv("DAYTRADER_USERS_DB"); v != "" {
		cfg.Storage.UsersDB = v
	}
	if v := os.Getenv("DAYTRADER_USER"); v != "" {
		cfg.Storage.Username = v
	}
	if v := os.Getenv("DAYTRADER_AUTH_HASHER"); v != "" {
		cfg.Auth.Hasher = v
	}
}

// Validate validates the configuration. Failures wrap ErrConfigInvalid.
func (c *Config) Validate() error {
	switch c.Auth.Hasher {
	case "", "sha256", "bcrypt":
	default:
		return fmt.Errorf("%w: auth hasher %q (must be 'sha256' or 'bcrypt')", apperrors.ErrConfigInvalid, c.Auth.Hasher)
	}

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q", apperrors.ErrConfigInvalid, c.Logging.Level)
	}

	if c.Storage.DataDir == "" {
		return fmt.Errorf("%w: storage.data_dir must not be empty", apperrors.ErrConfigInvalid)
	}
	if c.Storage.UsersDB == "" {
		return fmt.Errorf("%w: storage.users_db must not be empty", apperrors.ErrConfigInvalid)
	}

	return nil
}
