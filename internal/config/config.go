package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/aidfinder/internal/kv"
)

// Config captures AidFinder's runtime settings.
type Config struct {
	DataDir  string `toml:"data_dir" env:"AIDFINDER_DATA_DIR"`
	Storage  string `toml:"storage" env:"AIDFINDER_STORAGE"`
	LogFile  string `toml:"log_file" env:"AIDFINDER_LOG_FILE"`
	LogLevel string `toml:"log_level" env:"AIDFINDER_LOG_LEVEL"`
}

const (
	defaultConfigPath = "~/.config/aidfinder/config.toml"
	defaultDataDir    = "~/.local/share/aidfinder"
	defaultLogLevel   = "info"
	logFileName       = "aidfinder.log"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Load reads the config file (falling back to defaults when it is missing),
// applies AIDFINDER_* environment overrides and validates the result.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	var cfg Config

	file, err := os.Open(resolved)
	switch {
	case err == nil:
		defer file.Close()
		bytes, err := io.ReadAll(file)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := toml.Unmarshal(bytes, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("open config: %w", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	c.DataDir = strings.TrimSpace(c.DataDir)
	if c.DataDir == "" {
		c.DataDir = defaultDataDir
	}
	c.DataDir = mustExpand(c.DataDir)

	c.Storage = strings.ToLower(strings.TrimSpace(c.Storage))
	if c.Storage == "" {
		c.Storage = kv.BackendFile
	}

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}

	c.LogFile = strings.TrimSpace(c.LogFile)
	if c.LogFile == "" {
		c.LogFile = filepath.Join(c.DataDir, logFileName)
	} else {
		c.LogFile = mustExpand(c.LogFile)
	}
}

// Validate rejects unknown storage backends and log levels.
func (c Config) Validate() error {
	if backends := kv.Backends(); !slices.Contains(backends, c.Storage) {
		return fmt.Errorf("storage must be one of %s: %q", strings.Join(backends, ", "), c.Storage)
	}
	if !slices.Contains(logLevels, c.LogLevel) {
		return fmt.Errorf("log_level must be one of %s: %q", strings.Join(logLevels, ", "), c.LogLevel)
	}
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
