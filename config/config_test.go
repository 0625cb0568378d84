package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inTempDir runs Load from an empty directory so no config.yaml is picked up.
func inTempDir(t *testing.T) string {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	inTempDir(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Environment.Name)
	assert.Equal(t, 8080, cfg.HTTPServer.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTPServer.ShutdownTimeout)
	assert.Equal(t, "data/tasks.db", cfg.Database.Path)
	assert.Equal(t, 5*time.Second, cfg.Database.BusyTimeout)
	assert.Equal(t, 120, cfg.RateLimit.PerMin)
	assert.Equal(t, "Asia/Ho_Chi_Minh", cfg.Timezone)
	assert.Equal(t, "primary", cfg.GoogleCalendar.CalendarID)
	assert.Equal(t, "", cfg.Auth.InternalKey)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := inTempDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(`
http_server:
  port: 9090
database:
  path: /tmp/x.db
auth:
  internal_key: ${TEST_GATEWAY_KEY}
timezone: UTC
`), 0o644))
	t.Setenv("TEST_GATEWAY_KEY", "s3cret")
	t.Setenv("RATE_LIMIT_PER_MIN", "5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTPServer.Port)
	assert.Equal(t, "/tmp/x.db", cfg.Database.Path)
	assert.Equal(t, "s3cret", cfg.Auth.InternalKey)
	assert.Equal(t, 5, cfg.RateLimit.PerMin)
	assert.Equal(t, "UTC", cfg.Timezone)
}

func TestLoadRejectsBadTimezone(t *testing.T) {
	inTempDir(t)
	t.Setenv("TIMEZONE", "Mars/Olympus")

	_, err := Load()
	assert.Error(t, err)
}
