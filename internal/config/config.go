// Package config loads ladderscope settings from a YAML file and the
// environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ladderscope/core/internal/ladder"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up by Load.
const FileName = "ladderscope.yaml"

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Log      LogConfig      `yaml:"log"`
}

type ServerConfig struct {
	// Addr is the listen address of the API server.
	Addr          string `yaml:"addr"`
	// AllowedOrigin is sent as Access-Control-Allow-Origin.
	AllowedOrigin string `yaml:"allowed_origin"`
	// MaxBodyBytes limits the size of uploaded element tables.
	MaxBodyBytes  int64  `yaml:"max_body_bytes"`
}

type AnalysisConfig struct {
	// PortScope is "rung" or "body".
	PortScope string `yaml:"port_scope"`
	// MaxChains caps chain enumeration per rung (0 = no cap).
	MaxChains int    `yaml:"max_chains"`
}

type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level  string `yaml:"level"`
	// Format is "json" or "text".
	Format string `yaml:"format"`
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:          ":8080",
			AllowedOrigin: "*",
			MaxBodyBytes:  32 << 20,
		},
		Analysis: AnalysisConfig{
			PortScope: string(ladder.ScopeRung),
			MaxChains: ladder.DefaultMaxChains,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads path, or ./ladderscope.yaml when path is empty, then applies
// environment overrides. A missing default file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		cwd, _ := os.Getwd()
		path = filepath.Join(cwd, FileName)
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	case explicit || !os.IsNotExist(err):
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Server.Addr = getEnv("LADDERSCOPE_ADDR", c.Server.Addr)
	c.Server.AllowedOrigin = getEnv("CORS_ALLOWED_ORIGIN", c.Server.AllowedOrigin)
	c.Analysis.PortScope = getEnv("LADDERSCOPE_PORT_SCOPE", c.Analysis.PortScope)
	c.Log.Level = getEnv("LADDERSCOPE_LOG_LEVEL", c.Log.Level)

	if v := os.Getenv("LADDERSCOPE_MAX_CHAINS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Analysis.MaxChains = n
		}
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// Validate checks enumerated settings and fills zero values with defaults.
func (c *Config) Validate() error {
	if _, err := ladder.ParsePortScope(c.Analysis.PortScope); err != nil {
		return fmt.Errorf("analysis.port_scope: %w", err)
	}
	if c.Analysis.MaxChains < 0 {
		c.Analysis.MaxChains = 0
	}

	if _, err := c.SlogLevel(); err != nil {
		return err
	}

	switch c.Log.Format {
	case "":
		c.Log.Format = "json"
	case "json", "text":
	default:
		return fmt.Errorf("log.format: unknown format %q", c.Log.Format)
	}

	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.MaxBodyBytes <= 0 {
		c.Server.MaxBodyBytes = 32 << 20
	}
	return nil
}

// Options converts the analysis section into engine options.
func (c *Config) Options() ladder.Options {
	opts := ladder.DefaultOptions()
	if scope, err := ladder.ParsePortScope(c.Analysis.PortScope); err == nil {
		opts.PortScope = scope
	}
	opts.MaxChains = c.Analysis.MaxChains
	return opts
}

func (c *Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("log.level: unknown level %q", c.Log.Level)
	}
}

// NewLogger builds the process logger described by the log section.
func (c *Config) NewLogger() *slog.Logger {
	level, _ := c.SlogLevel()
	opts := &slog.HandlerOptions{Level: level}
	if c.Log.Format == "text" {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
