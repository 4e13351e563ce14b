// Package config loads docserver configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vitalvas/docmount/docs"
)

// EnvPrefix is the prefix of environment variables overriding flags.
const EnvPrefix = "DOCMOUNT"

const (
	DefaultAddress         = ":8080"
	DefaultShutdownTimeout = 15 * time.Second
)

// ErrPathRequired is returned when no configuration path is given.
var ErrPathRequired = errors.New("config: path is required")

// Config is the docserver configuration file.
//
//	server:
//	  address: ":8080"
//	docs:
//	  title: Items API
//	  ui: scalar
//	  scalar:
//	    theme: purple
type Config struct {
	Server ServerConfig `yaml:"server,omitempty"`
	Docs   docs.Options `yaml:"docs"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Address         string        `yaml:"address,omitempty"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout,omitempty"`
}

// GetAddress returns the listen address, using DefaultAddress if not set.
func (s ServerConfig) GetAddress() string {
	if s.Address == "" {
		return DefaultAddress
	}
	return s.Address
}

// GetShutdownTimeout returns the graceful shutdown timeout.
func (s ServerConfig) GetShutdownTimeout() time.Duration {
	if s.ShutdownTimeout <= 0 {
		return DefaultShutdownTimeout
	}
	return s.ShutdownTimeout
}

// Option configures the loader.
type Option func(*loaderConfig) error

type loaderConfig struct {
	path   string
	strict bool
}

// WithConfigPath loads configuration from a YAML file.
func WithConfigPath(path string) Option {
	return func(cfg *loaderConfig) error {
		if path == "" {
			return ErrPathRequired
		}

		realPath, err := filepath.EvalSymlinks(path)
		if err != nil {
			return fmt.Errorf("failed to evaluate symlinks: %w", err)
		}

		cfg.path = realPath
		return nil
	}
}

// WithStrict rejects unknown keys.
func WithStrict() Option {
	return func(cfg *loaderConfig) error {
		cfg.strict = true
		return nil
	}
}

// LoadConfig reads, parses and validates a configuration file. Invalid docs
// options are reported as *docs.ConfigurationError.
func LoadConfig(opts ...Option) (*Config, error) {
	loaderCfg := &loaderConfig{}
	for _, opt := range opts {
		if err := opt(loaderCfg); err != nil {
			return nil, err
		}
	}

	if loaderCfg.path == "" {
		return nil, ErrPathRequired
	}

	f, err := os.Open(loaderCfg.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(loaderCfg.strict)

	var config Config
	if err := dec.Decode(&config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}

	if err := config.Docs.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}
