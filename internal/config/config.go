package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAddr            = ":8080"
	DefaultRoot            = "."
	DefaultLogLevel        = "info"
	DefaultOutDir          = "dist"
	DefaultShutdownTimeout = 15 * time.Second
)

type Config struct {
	Addr            string        `yaml:"addr"`
	Root            string        `yaml:"root"` // directory holding web/templates and web/static
	LogLevel        string        `yaml:"log_level"`
	OutDir          string        `yaml:"out_dir"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

func Default() Config {
	return Config{
		Addr:            DefaultAddr,
		Root:            DefaultRoot,
		LogLevel:        DefaultLogLevel,
		OutDir:          DefaultOutDir,
		ShutdownTimeout: DefaultShutdownTimeout,
	}
}

// Load builds the configuration from defaults, the optional YAML file at path
// and finally environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.Addr = getEnvOrDefault("DASHBOARD_ADDR", cfg.Addr)
	cfg.Root = getEnvOrDefault("DASHBOARD_ROOT", cfg.Root)
	cfg.LogLevel = getEnvOrDefault("LOG_LEVEL", cfg.LogLevel)
	cfg.OutDir = getEnvOrDefault("DASHBOARD_OUT_DIR", cfg.OutDir)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("addr must not be empty")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive, got %s", c.ShutdownTimeout)
	}
	return nil
}

// Level returns the parsed log level. Call Validate first.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
