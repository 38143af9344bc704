package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultCatalogURL is where catalog releases are published.
const DefaultCatalogURL = "https://github.com/winterarc/catalog"

type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Log      LogConfig      `yaml:"log"`
}

type DatabaseConfig struct {
	// Path of the SQLite file. Empty means the store's default location.
	Path string `yaml:"path"`
}

type CatalogConfig struct {
	// Path of the user catalog. When the file exists it replaces the
	// catalog compiled into the binary.
	Path string `yaml:"path"`
	// ReleaseURL is the release repository that catalog pull downloads from.
	ReleaseURL string `yaml:"release_url"`
}

type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Path:       filepath.Join(configHome(), "winterarc", "catalog.yaml"),
			ReleaseURL: DefaultCatalogURL,
		},
		Log: LogConfig{
			File:  filepath.Join(stateHome(), "winterarc", "winterarc.log"),
			Level: "info",
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/winterarc/config.yaml, falling back
// to ~/.config.
func DefaultPath() string {
	return filepath.Join(configHome(), "winterarc", "config.yaml")
}

// Load reads config from a YAML file on top of the defaults, then applies
// environment variable overrides. A missing file is not an error.
// Env vars use the prefix WINTERARC_:
//
//	WINTERARC_DB_PATH, WINTERARC_CATALOG_PATH, WINTERARC_CATALOG_URL,
//	WINTERARC_LOG_FILE, WINTERARC_LOG_LEVEL
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("WINTERARC_DB_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("WINTERARC_CATALOG_PATH"); v != "" {
		cfg.Catalog.Path = v
	}
	if v := os.Getenv("WINTERARC_CATALOG_URL"); v != "" {
		cfg.Catalog.ReleaseURL = v
	}
	if v := os.Getenv("WINTERARC_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("WINTERARC_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

func (c *Config) validate() error {
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Catalog.ReleaseURL != "" {
		u, err := url.Parse(c.Catalog.ReleaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("catalog.release_url must be an http(s) URL, got %q", c.Catalog.ReleaseURL)
		}
	}
	return nil
}

// SlogLevel returns the configured log level.
func (c *Config) SlogLevel() slog.Level {
	lvl, _ := parseLevel(c.Log.Level)
	return lvl
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("log.level must be one of debug, info, warn, error, got %q", s)
	}
}

func configHome() string {
	if d := os.Getenv("XDG_CONFIG_HOME"); d != "" {
		return d
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config")
	}
	return "."
}

func stateHome() string {
	if d := os.Getenv("XDG_STATE_HOME"); d != "" {
		return d
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "state")
	}
	return "."
}
