// Package config loads service configuration from an optional YAML file
// merged with environment variables; env values take precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Port        int    `koanf:"port"`
	Env         string `koanf:"env"`
	DatabaseURL string `koanf:"database_url"`

	// Directory behavior
	PageSize          int  `koanf:"page_size"`
	RecentOnly        bool `koanf:"recent_only"`
	SessionTTLMinutes int  `koanf:"session_ttl_minutes"`
}

var (
	ErrMissingDatabaseURL = errors.New("DATABASE_URL is required")
	ErrInvalidPort        = errors.New("PORT must be a valid integer")
)

const (
	DefaultPort              = 8080
	DefaultEnv               = "development"
	DefaultPageSize          = 30
	DefaultSessionTTLMinutes = 30
)

// Load reads the optional YAML file at path (skipped when empty), applies
// environment overrides and defaults, then validates.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	cfg := &Config{
		Port:              k.Int("port"),
		Env:               k.String("env"),
		DatabaseURL:       k.String("database_url"),
		PageSize:          k.Int("page_size"),
		RecentOnly:        k.Bool("recent_only"),
		SessionTTLMinutes: k.Int("session_ttl_minutes"),
	}

	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, ErrInvalidPort
		}
		cfg.Port = p
	}
	if v := os.Getenv("ENV"); v != "" {
		cfg.Env = v
	}
	if v := os.Getenv("POSTGRES_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PageSize = n
		}
	}
	if v := os.Getenv("RECENT_ONLY"); v != "" {
		cfg.RecentOnly = v == "true" || v == "1"
	}
	if v := os.Getenv("SESSION_TTL_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SessionTTLMinutes = n
		}
	}

	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	if cfg.Env == "" {
		cfg.Env = DefaultEnv
	}
	if cfg.PageSize == 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.SessionTTLMinutes == 0 {
		cfg.SessionTTLMinutes = DefaultSessionTTLMinutes
	}

	if cfg.DatabaseURL == "" {
		return nil, ErrMissingDatabaseURL
	}

	return cfg, nil
}
