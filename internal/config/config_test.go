package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)
	t.Setenv("JWT_SECRET_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "data/model/model.gob", cfg.Model.Path)
	assert.Equal(t, "./creditpath.db", cfg.Database.Path)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 30, cfg.RateLimit.AuthPerMinute)
	assert.Equal(t, 10, cfg.Batch.MaxUploadMB)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Empty(t, cfg.Log.File)
}

func TestLoadFromYAML(t *testing.T) {
	dir := chdirTemp(t)

	yaml := `
server:
  port: 9090
model:
  path: /srv/models/model.gob
auth:
  token_ttl: 30m
log:
  level: debug
  format: console
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "/srv/models/model.gob", cfg.Model.Path)
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	// Defaults still apply for unset values
	assert.Equal(t, "./creditpath.db", cfg.Database.Path)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server:\n  port: 9090\n"), 0644))
	t.Setenv("CREDITPATH_SERVER_PORT", "7070")
	t.Setenv("CREDITPATH_DATABASE_PATH", "/tmp/other.db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "/tmp/other.db", cfg.Database.Path)
}

func TestLoadLegacyJWTSecret(t *testing.T) {
	chdirTemp(t)
	t.Setenv("CREDITPATH_AUTH_JWT_SECRET", "")
	t.Setenv("JWT_SECRET_KEY", "legacy-secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "legacy-secret", cfg.Auth.JWTSecret)
}

func TestLoadDotEnv(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CREDITPATH_MODEL_PATH=from-dotenv.gob\n"), 0644))
	t.Setenv("CREDITPATH_MODEL_PATH", "")
	require.NoError(t, os.Unsetenv("CREDITPATH_MODEL_PATH"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv.gob", cfg.Model.Path)
}

func TestInitLogger(t *testing.T) {
	t.Cleanup(func() { zap.ReplaceGlobals(zap.NewNop()) })

	require.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
	assert.True(t, zap.L().Core().Enabled(zap.DebugLevel))

	require.NoError(t, InitLogger(LogConfig{Level: "warn", Format: "json"}))
	assert.False(t, zap.L().Core().Enabled(zap.InfoLevel))

	assert.Error(t, InitLogger(LogConfig{Level: "loud"}))
}

func TestInitLoggerWritesFile(t *testing.T) {
	t.Cleanup(func() { zap.ReplaceGlobals(zap.NewNop()) })
	path := filepath.Join(t.TempDir(), "app.log")

	require.NoError(t, InitLogger(LogConfig{Level: "info", Format: "json", File: path}))
	zap.L().Info("hello file")
	_ = zap.L().Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello file")
}
