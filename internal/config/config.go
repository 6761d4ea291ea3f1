// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"asset-cost/internal/errors"
	"asset-cost/internal/logging"
)

// Environment variables that override file configuration
const (
	EnvAddr             = "ASSET_COST_ADDR"
	EnvLogLevel         = "ASSET_COST_LOG_LEVEL"
	EnvLogFormat        = "ASSET_COST_LOG_FORMAT"
	EnvBatchConcurrency = "ASSET_COST_BATCH_CONCURRENCY"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Server contains HTTP server configuration
	Server ServerConfig `json:"server"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`

	// RateCards maps an asset name to an HCL rate card override file
	RateCards map[string]string `json:"rate_cards,omitempty"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr"`

	// ReadTimeout bounds reading a request, including the body
	ReadTimeout Duration `json:"read_timeout"`

	// WriteTimeout bounds writing a response
	WriteTimeout Duration `json:"write_timeout"`

	// IdleTimeout bounds keep-alive connections
	IdleTimeout Duration `json:"idle_timeout"`

	// ShutdownTimeout bounds graceful shutdown
	ShutdownTimeout Duration `json:"shutdown_timeout"`

	// BatchConcurrency caps parallel calculations in a batch request
	BatchConcurrency int `json:"batch_concurrency"`

	// MaxBatchSize caps the number of requests in a batch
	MaxBatchSize int `json:"max_batch_size"`
}

// Duration is a time.Duration that reads and writes as "15s" in JSON.
type Duration struct {
	time.Duration
}

// MarshalJSON implements json.Marshaler
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler
func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Server: ServerConfig{
			Addr:             ":8080",
			ReadTimeout:      Duration{15 * time.Second},
			WriteTimeout:     Duration{15 * time.Second},
			IdleTimeout:      Duration{60 * time.Second},
			ShutdownTimeout:  Duration{10 * time.Second},
			BatchConcurrency: 8,
			MaxBatchSize:     100,
		},
		Logging:   logging.DefaultConfig(),
		RateCards: map[string]string{},
	}
}

// Load loads configuration from a file. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Config("failed to read config file", err)
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, errors.Config("failed to decode config file "+path, err)
	}

	// Rate card paths are relative to the config file
	base := filepath.Dir(path)
	for asset, p := range config.RateCards {
		if p != "" && !filepath.IsAbs(p) {
			config.RateCards[asset] = filepath.Join(base, p)
		}
	}

	return config, config.Validate()
}

// LoadDotEnv loads variables from a .env file into the process environment.
// Variables already set are not overwritten. A missing file is not an error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errors.Config("failed to load "+path, err)
	}
	return nil
}

// ApplyEnv overlays environment overrides onto c
func (c *Config) ApplyEnv() error {
	if v, ok := os.LookupEnv(EnvAddr); ok && v != "" {
		c.Server.Addr = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := os.LookupEnv(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}
	if v, ok := os.LookupEnv(EnvBatchConcurrency); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Config(EnvBatchConcurrency+" must be an integer", err)
		}
		c.Server.BatchConcurrency = n
	}
	return c.Validate()
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.Config("server.addr is required", nil)
	}
	if c.Server.BatchConcurrency < 1 {
		return errors.Config("server.batch_concurrency must be at least 1", nil)
	}
	if c.Server.MaxBatchSize < 1 {
		return errors.Config("server.max_batch_size must be at least 1", nil)
	}
	return nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
