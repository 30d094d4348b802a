package postman

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config controls collection metadata and the origin requests point at.
type Config struct {
	Name        string `toml:"name" validate:"required"`
	Protocol    string `toml:"protocol" validate:"oneof=http https"`
	Host        string `toml:"host" validate:"required,hostname_rfc1123|ip"`
	Port        string `toml:"port" validate:"required,numeric"`
	RedactField string `toml:"redact_field" validate:"required"`
	StampID     bool   `toml:"stamp_id"`
}

// ConfigEnv maps environment variable names for collection configuration.
type ConfigEnv struct {
	Name        string
	Protocol    string
	Host        string
	Port        string
	RedactField string
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *Config) Finalize(env *ConfigEnv) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge applies non-zero values from the overlay configuration.
func (c *Config) Merge(overlay *Config) {
	if overlay.Name != "" {
		c.Name = overlay.Name
	}
	if overlay.Protocol != "" {
		c.Protocol = overlay.Protocol
	}
	if overlay.Host != "" {
		c.Host = overlay.Host
	}
	if overlay.Port != "" {
		c.Port = overlay.Port
	}
	if overlay.RedactField != "" {
		c.RedactField = overlay.RedactField
	}
	if overlay.StampID {
		c.StampID = true
	}
}

// Origin returns the scheme, host and port every request URL starts with.
func (c *Config) Origin() string {
	return c.Protocol + "://" + c.Host + ":" + c.Port
}

func (c *Config) loadDefaults() {
	if c.Name == "" {
		c.Name = "Futár"
	}
	if c.Protocol == "" {
		c.Protocol = "http"
	}
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == "" {
		c.Port = "5000"
	}
	if c.RedactField == "" {
		c.RedactField = "_id"
	}
}

func (c *Config) loadEnv(env *ConfigEnv) {
	if env.Name != "" {
		if v := os.Getenv(env.Name); v != "" {
			c.Name = v
		}
	}
	if env.Protocol != "" {
		if v := os.Getenv(env.Protocol); v != "" {
			c.Protocol = v
		}
	}
	if env.Host != "" {
		if v := os.Getenv(env.Host); v != "" {
			c.Host = v
		}
	}
	if env.Port != "" {
		if v := os.Getenv(env.Port); v != "" {
			c.Port = v
		}
	}
	if env.RedactField != "" {
		if v := os.Getenv(env.RedactField); v != "" {
			c.RedactField = v
		}
	}
}

func (c *Config) validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid collection config: %w", err)
	}
	return nil
}
