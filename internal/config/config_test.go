package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Mode)
	assert.Equal(t, "internhub", cfg.Database.DBName)
	assert.Equal(t, "1h", cfg.JWT.AccessTokenExpiration)
	assert.Equal(t, GrowthModeLength, cfg.Detector.GrowthMode)
	assert.True(t, cfg.Reminder.Enabled)
	assert.Equal(t, 3, cfg.Reminder.DaysAhead)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	path := writeConfigFile(t, `
server:
  port: "9090"
detector:
  growth_mode: "set"
reminder:
  enabled: false
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, GrowthModeSet, cfg.Detector.GrowthMode)
	assert.False(t, cfg.Reminder.Enabled)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("DETECTOR_GROWTH_MODE", "set")

	path := writeConfigFile(t, `
server:
  port: "9090"
detector:
  growth_mode: "length"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, GrowthModeSet, cfg.Detector.GrowthMode)
}

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT secret")
}

func TestLoadConfigRejectsUnknownGrowthMode(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DETECTOR_GROWTH_MODE", "fuzzy")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "growth mode")
}

func TestLoadConfigRejectsBadReminderTime(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("REMINDER_RUN_AT", "25:99")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run_at")
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	cfg.Database.Password = "pw"

	got := cfg.GetPostgresConnectionString()
	assert.Equal(t, "postgres://postgres:pw@localhost:5432/internhub?sslmode=disable", got)
}
