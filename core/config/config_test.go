package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "rolls", cfg.Storage.Bucket)
	assert.False(t, cfg.Storage.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 1, cfg.Audit.RangeStart)
	assert.Equal(t, 140, cfg.Audit.RangeEnd)
	assert.Equal(t, 100000, cfg.Audit.MaxRange)
	assert.Equal(t, "___", cfg.Audit.Template)
	assert.Equal(t, ".pdf", cfg.Audit.Extension)
	assert.True(t, cfg.Audit.CheckDuplicates)
	assert.Equal(t, 30, cfg.Remote.TimeoutSeconds)
	assert.Equal(t, "settings.json", cfg.Settings.Path)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("AUDIT_RANGE_END", "250")
	t.Setenv("AUDIT_SIZE_CEILING_MB", "1.5")
	t.Setenv("AUDIT_CHECK_DUPLICATES", "false")
	t.Setenv("STORAGE_ENABLED", "true")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Server.Port)
	assert.Equal(t, 250, cfg.Audit.RangeEnd)
	assert.Equal(t, 1.5, cfg.Audit.SizeCeilingMB)
	assert.False(t, cfg.Audit.CheckDuplicates)
	assert.True(t, cfg.Storage.Enabled)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("AUDIT_TEMPLATE=018842___\nSERVER_API_KEY=secret\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("AUDIT_TEMPLATE")
		os.Unsetenv("SERVER_API_KEY")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "018842___", cfg.Audit.Template)
	assert.Equal(t, "secret", cfg.Auth().ApiKey)
}
