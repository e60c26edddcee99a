// Package config loads the cubesolve YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"svw.info/cube/internal/domain"
	"svw.info/cube/internal/sampler"
)

// Config holds the runtime configuration.
type Config struct {
	ListenAddr string           `yaml:"listen_addr"`
	LogLevel   string           `yaml:"log_level"` // debug, info, warn, error
	Sampler    sampler.Geometry `yaml:"sampler"`
	Engine     EngineConfig     `yaml:"engine"`
	Storage    StorageConfig    `yaml:"storage"`
}

// EngineConfig describes how to launch the solving engine.
type EngineConfig struct {
	Command string            `yaml:"command"`
	Args    []string          `yaml:"args,omitempty"`
	Env     map[string]string `yaml:"env,omitempty"`
	Timeout string            `yaml:"timeout"`
}

// StorageConfig selects where solve attempts are recorded.
type StorageConfig struct {
	Driver string `yaml:"driver"` // sqlite, fs, none
	Path   string `yaml:"path"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		ListenAddr: ":8080",
		LogLevel:   "info",
		Sampler:    sampler.DefaultGeometry,
		Engine: EngineConfig{
			Command: "kociemba",
			Timeout: "10s",
		},
		Storage: StorageConfig{
			Driver: "sqlite",
			Path:   filepath.Join("data", "attempts.db"),
		},
	}
}

// Load reads path over the defaults, applies environment overrides and
// validates. An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, domain.WrapCubeError(domain.ErrConfigInvalid, "parse config YAML", err)
			}
		}
	}
	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("CUBE_LISTEN_ADDR"); v != "" {
		c.ListenAddr = v
	}
	if v := os.Getenv("CUBE_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("CUBE_ENGINE_COMMAND"); v != "" {
		c.Engine.Command = v
	}
	if v := os.Getenv("CUBE_STORAGE_DRIVER"); v != "" {
		c.Storage.Driver = v
	}
	if v := os.Getenv("CUBE_STORAGE_PATH"); v != "" {
		c.Storage.Path = v
	}
}

// EngineTimeout parses Engine.Timeout; an empty value means no timeout.
func (c *Config) EngineTimeout() time.Duration {
	if c.Engine.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.Engine.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var problems []string

	if c.ListenAddr == "" {
		problems = append(problems, "listen_addr is required")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("log_level %q is not one of debug|info|warn|error", c.LogLevel))
	}
	if err := c.Sampler.Validate(); err != nil {
		problems = append(problems, "sampler: "+err.Error())
	}
	if c.Engine.Command == "" {
		problems = append(problems, "engine.command is required")
	}
	if c.Engine.Timeout != "" {
		if d, err := time.ParseDuration(c.Engine.Timeout); err != nil || d < 0 {
			problems = append(problems, fmt.Sprintf("engine.timeout %q is not a valid duration", c.Engine.Timeout))
		}
	}
	switch c.Storage.Driver {
	case "sqlite", "fs":
		if c.Storage.Path == "" {
			problems = append(problems, "storage.path is required for driver "+c.Storage.Driver)
		}
	case "none":
	default:
		problems = append(problems, fmt.Sprintf("storage.driver %q is not one of sqlite|fs|none", c.Storage.Driver))
	}

	if len(problems) > 0 {
		return domain.WrapCubeError(domain.ErrConfigInvalid, strings.Join(problems, "; "), nil)
	}
	return nil
}
