// Package logging builds the slog loggers the generator systems share.
package logging

import (
	"fmt"
	"io"
	"log/slog"
)

// New creates a logger from cfg. Records go to w when it is non-nil and to
// the configured Output otherwise.
func New(cfg *Config, w io.Writer) *slog.Logger {
	if w == nil {
		if cfg.Output == OutputDiscard {
			return Discard()
		}
		w = cfg.Output.Writer()
	}

	opts := &slog.HandlerOptions{Level: cfg.Level.ToSlogLevel()}

	if cfg.Format == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// Level is a severity threshold.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

var slogLevels = map[Level]slog.Level{
	LevelDebug: slog.LevelDebug,
	LevelInfo:  slog.LevelInfo,
	LevelWarn:  slog.LevelWarn,
	LevelError: slog.LevelError,
}

// Validate checks if the level is known.
func (l Level) Validate() error {
	if _, ok := slogLevels[l]; !ok {
		return fmt.Errorf("invalid log level %q: want debug, info, warn or error", string(l))
	}
	return nil
}

// ToSlogLevel converts l to its slog equivalent. Unknown levels map to info.
func (l Level) ToSlogLevel() slog.Level {
	if lvl, ok := slogLevels[l]; ok {
		return lvl
	}
	return slog.LevelInfo
}

// Format is the record encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Validate checks if the format is known.
func (f Format) Validate() error {
	switch f {
	case FormatText, FormatJSON:
		return nil
	default:
		return fmt.Errorf("invalid log format %q: want text or json", string(f))
	}
}
