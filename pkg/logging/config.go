package logging

import (
	"fmt"
	"io"
	"os"
)

// ConfigEnv maps environment variable names for logging configuration.
type ConfigEnv struct {
	Level  string
	Format string
	Output string
}

// Config selects the severity threshold, record format and destination
// of the generator's logs.
type Config struct {
	Level  Level  `toml:"level"`
	Format Format `toml:"format"`
	Output Output `toml:"output"`
}

// Output names the stream log records are written to.
type Output string

// Log outputs. Stderr is the default so artifacts written to stdout stay
// free of log records.
const (
	OutputStderr  Output = "stderr"
	OutputStdout  Output = "stdout"
	OutputDiscard Output = "discard"
)

// Validate checks if the output is a known destination.
func (o Output) Validate() error {
	switch o {
	case OutputStderr, OutputStdout, OutputDiscard:
		return nil
	default:
		return fmt.Errorf("invalid log output %q: want stderr, stdout or discard", string(o))
	}
}

// Writer returns the stream for o. Unknown outputs fall back to stderr.
func (o Output) Writer() io.Writer {
	switch o {
	case OutputStdout:
		return os.Stdout
	case OutputDiscard:
		return io.Discard
	default:
		return os.Stderr
	}
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
	if overlay.Level != "" {
		c.Level = overlay.Level
	}
	if overlay.Format != "" {
		c.Format = overlay.Format
	}
	if overlay.Output != "" {
		c.Output = overlay.Output
	}
}

func (c *Config) loadDefaults() {
	if c.Level == "" {
		c.Level = LevelInfo
	}
	if c.Format == "" {
		c.Format = FormatText
	}
	if c.Output == "" {
		c.Output = OutputStderr
	}
}

func (c *Config) loadEnv(env *ConfigEnv) {
	if env.Level != "" {
		if v := os.Getenv(env.Level); v != "" {
			c.Level = Level(v)
		}
	}
	if env.Format != "" {
		if v := os.Getenv(env.Format); v != "" {
			c.Format = Format(v)
		}
	}
	if env.Output != "" {
		if v := os.Getenv(env.Output); v != "" {
			c.Output = Output(v)
		}
	}
}

func (c *Config) validate() error {
	if err := c.Level.Validate(); err != nil {
		return err
	}
	if err := c.Format.Validate(); err != nil {
		return err
	}
	return c.Output.Validate()
}
