// Package config loads contactsbook settings from defaults, an optional YAML
// file, a .env file and CONTACTSBOOK_* environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultFileName is the contacts file created beside the executable.
const DefaultFileName = "contacts.json"

// Config holds all configuration for the application
type Config struct {
	Store   StoreConfig   `mapstructure:"store"`
	Journal JournalConfig `mapstructure:"journal"`
	Output  OutputConfig  `mapstructure:"output"`
	Logger  LoggerConfig  `mapstructure:"logger"`
}

// StoreConfig locates the contacts file
type StoreConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// JournalConfig locates the SQLite audit journal. An empty path disables it.
type JournalConfig struct {
	Path string `mapstructure:"path"`
}

// Enabled reports whether a journal path is configured.
func (c JournalConfig) Enabled() bool {
	return strings.TrimSpace(c.Path) != ""
}

// OutputConfig holds presentation settings
type OutputConfig struct {
	Format string `mapstructure:"format" validate:"oneof=text json yaml"`
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

// SlogLevel converts the configured level name.
func (c LoggerConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelWarn
	}
	return level
}

// LoadOptions selects the optional files read by Load.
type LoadOptions struct {
	// ConfigFile is a YAML file path. Empty means no config file.
	ConfigFile string

	// EnvFiles are .env files loaded before reading the environment.
	// Missing files are ignored.
	EnvFiles []string
}

// Load resolves configuration. Precedence, highest first: environment,
// config file, defaults.
func Load(opts LoadOptions) (*Config, error) {
	loadEnvFiles(opts.EnvFiles)

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)
	bindEnvVars(v)

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", opts.ConfigFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks field constraints.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// DefaultStorePath returns contacts.json in the executable's directory, or in
// the working directory when the executable cannot be located.
func DefaultStorePath() string {
	exe, err := os.Executable()
	if err != nil {
		return DefaultFileName
	}
	return filepath.Join(filepath.Dir(exe), DefaultFileName)
}

func loadEnvFiles(files []string) {
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		// godotenv never overrides variables already set in the process.
		if err := godotenv.Load(f); err != nil {
			slog.Warn("ignoring unreadable env file", "path", f, "error", err)
		}
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("store.path", DefaultStorePath())
	v.SetDefault("journal.path", "")
	v.SetDefault("output.format", "text")
	v.SetDefault("logger.level", "warn")
}

func bindEnvVars(v *viper.Viper) {
	_ = v.BindEnv("store.path", "CONTACTSBOOK_FILE")
	_ = v.BindEnv("journal.path", "CONTACTSBOOK_JOURNAL")
	_ = v.BindEnv("output.format", "CONTACTSBOOK_FORMAT")
	_ = v.BindEnv("logger.level", "CONTACTSBOOK_LOG_LEVEL")
}
