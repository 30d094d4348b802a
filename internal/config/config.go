// Package config provides generator configuration management with support for
// TOML files, environment variable overrides, and configuration overlays.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/ExAtom/futar-backend/pkg/logging"
	"github.com/ExAtom/futar-backend/pkg/openapi"
	"github.com/ExAtom/futar-backend/pkg/postman"
)

const (
	// BaseConfigFile is the primary configuration file name.
	BaseConfigFile = "config.toml"

	// OverlayConfigPattern is the file name pattern for environment-specific overlays.
	OverlayConfigPattern = "config.%s.toml"

	// EnvServiceEnv specifies the environment name for configuration overlays.
	EnvServiceEnv = "SERVICE_ENV"
)

var collectionEnv = &postman.ConfigEnv{
	Name:        "COLLECTION_NAME",
	Protocol:    "COLLECTION_PROTOCOL",
	Host:        "COLLECTION_HOST",
	Port:        "COLLECTION_PORT",
	RedactField: "COLLECTION_REDACT_FIELD",
}

var openAPIEnv = &openapi.ConfigEnv{
	Title:       "OPENAPI_TITLE",
	Description: "OPENAPI_DESCRIPTION",
	Version:     "OPENAPI_VERSION",
}

var loggingEnv = &logging.ConfigEnv{
	Level:  "LOG_LEVEL",
	Format: "LOG_FORMAT",
	Output: "LOG_OUTPUT",
}

// Config represents the root generator configuration.
type Config struct {
	Collection postman.Config `toml:"collection"`
	OpenAPI    openapi.Config `toml:"openapi"`
	Logging    logging.Config `toml:"logging"`
	Output     OutputConfig   `toml:"output"`
}

// Load reads the base configuration file at path and applies any
// environment-specific overlay found next to it. A missing base file
// yields an empty configuration that Finalize fills with defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = BaseConfigFile
	}

	cfg, err := load(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = &Config{}
	} else if err != nil {
		return nil, err
	}

	if overlay := overlayPath(path); overlay != "" {
		o, err := load(overlay)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", overlay, err)
		}
		cfg.Merge(o)
	}
	return cfg, nil
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *Config) Finalize() error {
	if err := c.Collection.Finalize(collectionEnv); err != nil {
		return fmt.Errorf("collection: %w", err)
	}
	if err := c.OpenAPI.Finalize(openAPIEnv); err != nil {
		return fmt.Errorf("openapi: %w", err)
	}
	if err := c.Logging.Finalize(loggingEnv); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if err := c.Output.Finalize(); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	return nil
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *Config) Merge(overlay *Config) {
	c.Collection.Merge(&overlay.Collection)
	c.OpenAPI.Merge(&overlay.OpenAPI)
	c.Logging.Merge(&overlay.Logging)
	c.Output.Merge(&overlay.Output)
}

// Env returns the active overlay environment name.
func Env() string {
	return os.Getenv(EnvServiceEnv)
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath(base string) string {
	env := Env()
	if env == "" {
		return ""
	}

	name := fmt.Sprintf(OverlayConfigPattern, strings.ToLower(env))
	p := filepath.Join(filepath.Dir(base), name)
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return ""
}
