package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// EnvOutputDir overrides the artifact output directory.
	EnvOutputDir = "OUTPUT_DIR"
)

// OutputConfig controls where generated artifacts are written.
type OutputConfig struct {
	// Dir is the root directory for generated files.
	// Default: "postman"
	Dir        string `toml:"dir"`
	Collection string `toml:"collection"`
	OpenAPI    string `toml:"openapi"`
}

// Finalize applies defaults, loads environment overrides, and validates the output configuration.
func (c *OutputConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *OutputConfig) Merge(overlay *OutputConfig) {
	if overlay.Dir != "" {
		c.Dir = overlay.Dir
	}
	if overlay.Collection != "" {
		c.Collection = overlay.Collection
	}
	if overlay.OpenAPI != "" {
		c.OpenAPI = overlay.OpenAPI
	}
}

func (c *OutputConfig) loadDefaults() {
	if c.Dir == "" {
		c.Dir = "postman"
	}
	if c.Collection == "" {
		c.Collection = "futar.postman_collection.json"
	}
	if c.OpenAPI == "" {
		c.OpenAPI = "openapi.json"
	}
}

func (c *OutputConfig) loadEnv() {
	if v := os.Getenv(EnvOutputDir); v != "" {
		c.Dir = v
	}
}

func (c *OutputConfig) validate() error {
	for _, name := range []string{c.Collection, c.OpenAPI} {
		if filepath.IsAbs(name) || filepath.Base(name) != name {
			return fmt.Errorf("invalid file name %q: must be relative to dir", name)
		}
	}
	return nil
}
