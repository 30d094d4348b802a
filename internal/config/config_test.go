package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ExAtom/futar-backend/internal/config"
	"github.com/ExAtom/futar-backend/pkg/logging"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	require.NoError(t, cfg.Finalize())

	assert.Equal(t, "Futár", cfg.Collection.Name)
	assert.Equal(t, "5000", cfg.Collection.Port)
	assert.Equal(t, "_id", cfg.Collection.RedactField)
	assert.Equal(t, logging.LevelInfo, cfg.Logging.Level)
	assert.Equal(t, logging.OutputStderr, cfg.Logging.Output)
	assert.Equal(t, "postman", cfg.Output.Dir)
	assert.Equal(t, "futar.postman_collection.json", cfg.Output.Collection)
}

func TestLoad_BaseFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", `
[collection]
name = "Futár staging"
port = "8080"
stamp_id = true

[logging]
level = "debug"
format = "json"

[output]
dir = "build"
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Finalize())

	assert.Equal(t, "Futár staging", cfg.Collection.Name)
	assert.Equal(t, "8080", cfg.Collection.Port)
	assert.True(t, cfg.Collection.StampID)
	assert.Equal(t, "localhost", cfg.Collection.Host)
	assert.Equal(t, logging.FormatJSON, cfg.Logging.Format)
	assert.Equal(t, "build", cfg.Output.Dir)
}

func TestLoad_Overlay(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", `
[collection]
port = "5000"
`)
	writeFile(t, dir, "config.ci.toml", `
[collection]
port = "6000"
`)
	t.Setenv(config.EnvServiceEnv, "ci")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "6000", cfg.Collection.Port)
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.toml", "[collection\nname=")

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestFinalize_EnvOverrides(t *testing.T) {
	t.Setenv("COLLECTION_HOST", "127.0.0.1")
	t.Setenv("OUTPUT_DIR", "dist")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_OUTPUT", "stdout")

	cfg := &config.Config{}
	require.NoError(t, cfg.Finalize())

	assert.Equal(t, "127.0.0.1", cfg.Collection.Host)
	assert.Equal(t, "dist", cfg.Output.Dir)
	assert.Equal(t, logging.LevelWarn, cfg.Logging.Level)
	assert.Equal(t, logging.OutputStdout, cfg.Logging.Output)
}

func TestFinalize_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		want string
	}{
		{
			name: "collection port",
			cfg:  config.Config{},
			want: "collection",
		},
		{
			name: "output file outside dir",
			cfg:  config.Config{},
			want: "output",
		},
	}
	tests[0].cfg.Collection.Port = "abc"
	tests[1].cfg.Output.Collection = "../escape.json"

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			err := cfg.Finalize()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
