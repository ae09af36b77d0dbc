package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleConfig struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

type validatedConfig struct {
	Name string `json:"name"`
}

var errNameRequired = errors.New("name is required")

func (c *validatedConfig) Validate() error {
	if c.Name == "" {
		return errNameRequired
	}

	return nil
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestFileLoader(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `{"name":"papyrusd","level":3}`)

	var cfg sampleConfig

	require.NoError(t, LoadAndValidate(context.Background(), path, &cfg))
	assert.Equal(t, "papyrusd", cfg.Name)
	assert.Equal(t, 3, cfg.Level)
}

func TestFileLoaderMissingFile(t *testing.T) {
	t.Parallel()

	var cfg sampleConfig

	err := LoadAndValidate(context.Background(), "/nonexistent/config.json", &cfg)
	require.Error(t, err)
}

func TestFileLoaderMalformedJSON(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `{"name":`)

	var cfg sampleConfig

	require.Error(t, LoadAndValidate(context.Background(), path, &cfg))
}

func TestValidateHookRuns(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `{}`)

	var cfg validatedConfig

	err := LoadAndValidate(context.Background(), path, &cfg)
	require.ErrorIs(t, err, errNameRequired)
}
