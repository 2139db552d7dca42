// Package config provides centralized configuration for the tutorial backend.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvConfigPath = "GITTUTOR_CONFIG"
	EnvAddr       = "GITTUTOR_ADDR"
	EnvLogLevel   = "GITTUTOR_LOG_LEVEL"
)

// DefaultPath is the config file used when GITTUTOR_CONFIG is unset.
const DefaultPath = "gittutor.yaml"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds application-wide configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Tutorial TutorialConfig `yaml:"tutorial"`
}

type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

// TutorialConfig seeds every new session.
type TutorialConfig struct {
	Author            string        `yaml:"author"`
	Email             string        `yaml:"email"`
	RepoPath          string        `yaml:"repo_path"`
	RemoteURL         string        `yaml:"remote_url"`
	NotificationDelay time.Duration `yaml:"notification_delay"`
	LessonDir         string        `yaml:"lesson_dir"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{Addr: ":8080"},
		Log:    LogConfig{Level: "info", Pretty: true},
		Tutorial: TutorialConfig{
			Author:            "Tutorial User",
			Email:             "tutorial@example.com",
			RepoPath:          "/tutorial",
			RemoteURL:         "https://github.com/tutorial/repo.git",
			NotificationDelay: 600 * time.Millisecond,
		},
	}
}

// Path returns the config file location, honoring GITTUTOR_CONFIG.
func Path() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return DefaultPath
}

// Load reads path over the defaults, applies environment overrides and
// validates the result. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config yaml: %w", err)
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvAddr); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("%w: server.addr is empty", ErrInvalidConfig)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}
	if c.Tutorial.NotificationDelay < 0 {
		return fmt.Errorf("%w: tutorial.notification_delay is negative", ErrInvalidConfig)
	}
	return nil
}
