// Package config handles irpl configuration loading.
//
// Values come from defaults, then the YAML file, then IRPL_* environment
// variables, in that order.
package config

import (
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	ierrors "github.com/r3d91ll/irpl/pkg/errors"
)

// DefaultConfigFile is looked up in the working directory.
const DefaultConfigFile = "irpl.yaml"

// Color modes for display.color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the root configuration structure.
type Config struct {
	Session SessionConfig `yaml:"session"`
	Log     LogConfig     `yaml:"log"`
	Display DisplayConfig `yaml:"display"`
}

// SessionConfig holds settings for the top-level session.
type SessionConfig struct {
	// Prompt is the top-level session name, shown as "[Prompt]> ".
	Prompt       string `yaml:"prompt" env:"IRPL_PROMPT"`
	Hints        bool   `yaml:"hints" env:"IRPL_HINTS"`
	HistoryFile  string `yaml:"history_file" env:"IRPL_HISTORY_FILE"`
	HistoryLimit int    `yaml:"history_limit"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `yaml:"level" env:"IRPL_LOG_LEVEL"`
	// File receives JSON log lines. Empty disables file logging.
	File string `yaml:"file" env:"IRPL_LOG_FILE"`
}

// DisplayConfig holds output settings.
type DisplayConfig struct {
	Color string `yaml:"color" env:"IRPL_COLOR"`
}

// Default returns the default configuration.
func Default() *Config {
	historyFile := ""
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".irpl_history")
	}
	return &Config{
		Session: SessionConfig{
			Prompt:       "irpl ",
			Hints:        true,
			HistoryFile:  historyFile,
			HistoryLimit: 500,
		},
		Log: LogConfig{
			Level: "info",
		},
		Display: DisplayConfig{
			Color: ColorAuto,
		},
	}
}

// Load loads configuration from a file and applies environment overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ierrors.ConfigWrap(err, ierrors.ErrConfigReadFailed, "failed to read config").
			WithContext(ierrors.ContextPath, path)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, ierrors.ConfigWrap(err, ierrors.ErrConfigParseFailed, "failed to parse config").
			WithContext(ierrors.ContextPath, path)
	}
	return finish(cfg)
}

// LoadOrDefault loads config from path, or uses defaults if it does not exist.
// Environment overrides apply either way.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return finish(Default())
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return finish(Default())
	}
	return Load(path)
}

func finish(cfg *Config) (*Config, error) {
	if err := env.Parse(cfg); err != nil {
		return nil, ierrors.ConfigWrap(err, ierrors.ErrConfigEnvFailed, "failed to apply environment overrides")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the rest of the program cannot interpret.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return ierrors.Config(ierrors.ErrConfigInvalid, "unknown log level").
			WithContext("field", "log.level").
			WithContext("value", c.Log.Level).
			WithCause(err)
	}
	switch c.Display.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return ierrors.Config(ierrors.ErrConfigInvalid, "unknown color mode").
			WithContext("field", "display.color").
			WithContext("value", c.Display.Color).
			WithSuggestion("Use one of: auto, always, never")
	}
	if c.Session.HistoryLimit < 0 {
		return ierrors.Config(ierrors.ErrConfigInvalid, "history limit cannot be negative").
			WithContext("field", "session.history_limit")
	}
	return nil
}

// LogLevel returns the parsed log level. Call after Validate.
func (c *Config) LogLevel() zapcore.Level {
	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}

// ColorEnabled reports whether colored output may be used. The error
// formatter still suppresses color on non-terminals.
func (c *Config) ColorEnabled() bool {
	return c.Display.Color != ColorNever
}

// Save saves configuration to a file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return ierrors.ConfigWrap(err, ierrors.ErrConfigWriteFailed, "failed to create config directory").
			WithContext(ierrors.ContextPath, dir)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return ierrors.ConfigWrap(err, ierrors.ErrConfigWriteFailed, "failed to marshal config")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return ierrors.ConfigWrap(err, ierrors.ErrConfigWriteFailed, "failed to write config file").
			WithContext(ierrors.ContextPath, path)
	}
	return nil
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	if _, err := os.Stat(DefaultConfigFile); err == nil {
		return DefaultConfigFile
	}
	if _, err := os.Stat(filepath.Join("config", DefaultConfigFile)); err == nil {
		return filepath.Join("config", DefaultConfigFile)
	}
	return DefaultConfigFile
}

// InitConfig creates a default config file if it doesn't exist.
func InitConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	return Default().Save(path)
}
