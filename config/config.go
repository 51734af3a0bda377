// SPDX-License-Identifier: MIT

// Package config loads the YAML runtime configuration of rlrun:
//
//	registry:
//	  mode: open        # open | closed
//	batch:
//	  workers: -1       # -1 = all CPUs, 1 = sequential, n > 1 capped at CPUs
//	  timeout: 30s      # per invocation, 0 = none
//	logging:
//	  level: info       # debug | info | warn | error
//	  development: false
//
// Environment variables GRADUAL_REGISTRY_MODE, GRADUAL_BATCH_WORKERS,
// GRADUAL_BATCH_TIMEOUT and GRADUAL_LOG_LEVEL override file values.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gradual/batch"
	"github.com/katalvlaran/gradual/lift"
)

// ErrInvalid matches every validation failure of a Config.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the root configuration.
type Config struct {
	Registry RegistryConfig `yaml:"registry"`
	Batch    BatchConfig    `yaml:"batch"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// RegistryConfig configures the operation registry.
type RegistryConfig struct {
	Mode string `yaml:"mode"` // open, closed
}

// BatchConfig configures the batch runner.
type BatchConfig struct {
	Workers int    `yaml:"workers"`
	Timeout string `yaml:"timeout"` // time.ParseDuration syntax; "" or "0" disables
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Registry: RegistryConfig{Mode: lift.DefaultMode.String()},
		Batch:    BatchConfig{Workers: batch.DefaultWorkers, Timeout: "0"},
		Logging:  LoggingConfig{Level: "info"},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
// Environment overrides are applied last; the result is validated.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes c to path as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("GRADUAL_REGISTRY_MODE"); v != "" {
		c.Registry.Mode = v
	}
	if v := os.Getenv("GRADUAL_BATCH_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: GRADUAL_BATCH_WORKERS=%q", ErrInvalid, v)
		}
		c.Batch.Workers = n
	}
	if v := os.Getenv("GRADUAL_BATCH_TIMEOUT"); v != "" {
		c.Batch.Timeout = v
	}
	if v := os.Getenv("GRADUAL_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}

	return nil
}

// Validate checks every field; errors match ErrInvalid.
func (c *Config) Validate() error {
	var errs []error
	if _, err := c.Mode(); err != nil {
		errs = append(errs, err)
	}
	if c.Batch.Workers == 0 || c.Batch.Workers < -1 {
		errs = append(errs, fmt.Errorf("batch.workers: %w", batch.ErrInvalidWorkers))
	}
	if _, err := c.Timeout(); err != nil {
		errs = append(errs, err)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("logging.level: %w", err))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}

	return nil
}

// Mode parses registry.mode.
func (c *Config) Mode() (lift.Mode, error) {
	m, err := lift.ParseMode(c.Registry.Mode)
	if err != nil {
		return 0, fmt.Errorf("registry.mode: %w", err)
	}

	return m, nil
}

// Timeout parses batch.timeout; an empty value means no timeout.
func (c *Config) Timeout() (time.Duration, error) {
	if c.Batch.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Batch.Timeout)
	if err != nil {
		return 0, fmt.Errorf("batch.timeout: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("batch.timeout: negative duration %s", d)
	}

	return d, nil
}

// Logger builds a zap logger from the logging section. Logs go to stderr
// so that program output on stdout stays clean.
func (c *Config) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("logging.level: %w", err)
	}

	zc := zap.NewProductionConfig()
	if c.Logging.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	return zc.Build()
}
