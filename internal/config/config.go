// Package config resolves runtime configuration: defaults, an optional TOML
// file, an optional .env file and the process environment, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config is the resolved configuration.
type Config struct {
	DB       string `toml:"db" env:"YIJING_DB"`
	LogLevel string `toml:"log_level" env:"YIJING_LOG_LEVEL"`

	OpenAI OpenAIConfig `toml:"openai"`
	// ConsultDelay is how long template readings pause before answering.
	ConsultDelay time.Duration `toml:"consult_delay" env:"YIJING_CONSULT_DELAY"`
}

// OpenAIConfig configures the remote interpreter. It is used only when an
// API key is set.
type OpenAIConfig struct {
	APIKey  string `toml:"api_key" env:"OPENAI_API_KEY"`
	BaseURL string `toml:"base_url" env:"OPENAI_BASE_URL"`
	Model   string `toml:"model" env:"OPENAI_MODEL"`
}

// Enabled reports whether an API key is configured.
func (o OpenAIConfig) Enabled() bool { return o.APIKey != "" }

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		DB:           defaultDBPath(),
		LogLevel:     "warn",
		ConsultDelay: 0,
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "yijing.db"
	}
	return filepath.Join(home, ".yijing", "yijing.db")
}

// DefaultPath is the config file consulted when no path is given.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".yijing", "config.toml")
}

// Load resolves the configuration. A missing file at path is not an error;
// neither is a missing .env file at envFile.
func Load(path, envFile string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		if err := decodeFile(path, &cfg); err != nil {
			return nil, err
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config: load %s: %w", envFile, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("config: environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func decodeFile(path string, cfg *Config) error {
	meta, err := toml.DecodeFile(path, cfg)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("config: decode %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("config: unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate reports every problem with the configuration.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.DB) == "" {
		errs = append(errs, errors.New("db path is empty"))
	}
	if !logLevels[c.LogLevel] {
		errs = append(errs, fmt.Errorf("log_level must be debug, info, warn or error, got %q", c.LogLevel))
	}
	if c.ConsultDelay < 0 {
		errs = append(errs, fmt.Errorf("consult_delay must not be negative, got %s", c.ConsultDelay))
	}
	if c.OpenAI.Enabled() && c.OpenAI.Model == "" {
		errs = append(errs, errors.New("openai.model is required when an API key is set"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
