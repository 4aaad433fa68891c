package config_test

import (
	"assistant/internal/config"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, "address_book.msgpack", cfg.Storage.Path)
	require.Equal(t, 7, cfg.Birthdays.Days)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
environment: production
logLevel: info
storage:
  path: /tmp/contacts.msgpack
birthdays:
  days: 14
`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "/tmp/contacts.msgpack", cfg.Storage.Path)
	require.Equal(t, 14, cfg.Birthdays.Days)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("STORAGE_PATH", "from-env.msgpack")
	t.Setenv("BIRTHDAYS_DAYS", "3")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	require.Equal(t, "from-env.msgpack", cfg.Storage.Path)
	require.Equal(t, 3, cfg.Birthdays.Days)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("birthdays: [not, a, map"), 0o600))

	_, err := config.Load(path)
	require.Error(t, err)
}
