// Package config provides configuration for the checklist authority and
// client tooling. Defaults are merged with an optional project yaml file and
// environment overrides so main and the CLI commands stay lean.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ProjectConfigFile is the name of the project-level config file, looked up
// in the project root.
const ProjectConfigFile = "a11ycheck.yaml"

// Storage strategies. Exactly one applies per deployment.
const (
	StrategyPooled    = "pooled"
	StrategyColocated = "colocated"
)

// Config is the complete tool configuration.
type Config struct {
	Server  Server  `yaml:"server"`
	Storage Storage `yaml:"storage"`
	Client  Client  `yaml:"client"`
	// WCAGVersion is the guideline-set version used for new records.
	WCAGVersion string `yaml:"wcagVersion"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"logLevel"`
}

// Server captures the HTTP exposure configuration.
type Server struct {
	Addr string `yaml:"addr"`
}

// Storage selects the record location strategy.
type Storage struct {
	// Strategy is pooled or colocated.
	Strategy string `yaml:"strategy"`
	// PoolDir is the record directory for pooled storage, relative to the
	// project root. Ignored for colocated storage.
	PoolDir string `yaml:"poolDir"`
	// IgnorePatterns are extra doublestar globs excluded from record
	// discovery, on top of the built-in skip list.
	IgnorePatterns []string `yaml:"ignorePatterns"`
}

// Client configures the remote-access facade.
type Client struct {
	// BaseURL is the checklist authority, e.g. http://localhost:3001.
	BaseURL string `yaml:"baseUrl"`
	// AssetBaseURL is where statically published records are served from
	// when the authority is unreachable. Empty means same host as BaseURL.
	AssetBaseURL string `yaml:"assetBaseUrl"`
	// Timeout bounds every network call; the facade fails fast and falls
	// back rather than hang its caller.
	Timeout time.Duration `yaml:"timeout"`
}

// Default returns the configuration used when nothing is specified.
func Default() *Config {
	return &Config{
		Server: Server{
			Addr: ":3001",
		},
		Storage: Storage{
			Strategy: StrategyColocated,
			PoolDir:  "a11y-checklists",
		},
		Client: Client{
			BaseURL: "http://localhost:3001",
			Timeout: 2 * time.Second,
		},
		WCAGVersion: "2.2",
		LogLevel:    "info",
	}
}

// Load builds the effective configuration for a project root: defaults,
// then the project yaml file when present, then environment overrides.
func Load(root string) (*Config, error) {
	cfg := Default()

	path := filepath.Join(root, ProjectConfigFile)
	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		// No project file; defaults apply.
	default:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv layers environment overrides on top of file values.
func (c *Config) applyEnv() {
	if v := os.Getenv("A11YCHECK_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("A11YCHECK_STRATEGY"); v != "" {
		c.Storage.Strategy = v
	}
	if v := os.Getenv("A11YCHECK_POOL_DIR"); v != "" {
		c.Storage.PoolDir = v
	}
	if v := os.Getenv("A11YCHECK_BASE_URL"); v != "" {
		c.Client.BaseURL = v
	}
	if v := os.Getenv("A11YCHECK_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	switch c.Storage.Strategy {
	case StrategyPooled, StrategyColocated:
	default:
		return fmt.Errorf("storage.strategy must be %q or %q, got %q",
			StrategyPooled, StrategyColocated, c.Storage.Strategy)
	}
	if c.Storage.Strategy == StrategyPooled && c.Storage.PoolDir == "" {
		return errors.New("storage.poolDir is required for pooled storage")
	}
	if c.Server.Addr == "" {
		return errors.New("server.addr is required")
	}
	if c.Client.Timeout <= 0 {
		return errors.New("client.timeout must be positive")
	}
	return nil
}
