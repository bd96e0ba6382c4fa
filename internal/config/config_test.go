package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr)
	assert.Equal(t, "data/volunteers.db", cfg.Database.Path)
	assert.Empty(t, cfg.Auth.SessionSecret)
	assert.Equal(t, 1440, cfg.Auth.TokenTTLMinutes)
	assert.False(t, cfg.Auth.SecureCookies)
	assert.True(t, cfg.Seed.Reset)
	assert.Equal(t, "admin@example.com", cfg.Seed.AdminEmail)
	assert.Equal(t, "admin123", cfg.Seed.AdminPassword)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("VOLUNTEER_SERVER_ADDR", "127.0.0.1:9000")
	t.Setenv("VOLUNTEER_DATABASE_PATH", "/tmp/v.db")
	t.Setenv("VOLUNTEER_AUTH_SESSIONSECRET", "s3cret")
	t.Setenv("VOLUNTEER_AUTH_TOKENTTLMINUTES", "30")
	t.Setenv("VOLUNTEER_AUTH_SECURECOOKIES", "true")
	t.Setenv("VOLUNTEER_SEED_RESET", "false")
	t.Setenv("VOLUNTEER_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, "/tmp/v.db", cfg.Database.Path)
	assert.Equal(t, "s3cret", cfg.Auth.SessionSecret)
	assert.Equal(t, 30, cfg.Auth.TokenTTLMinutes)
	assert.True(t, cfg.Auth.SecureCookies)
	assert.False(t, cfg.Seed.Reset)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadRejectsNonPositiveTTL(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("VOLUNTEER_AUTH_TOKENTTLMINUTES", "0")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "# comment\n\nVOLUNTEER_TEST_A=plain\nVOLUNTEER_TEST_B = \"quoted\"\nVOLUNTEER_TEST_C=from-file\nnot a pair\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("VOLUNTEER_TEST_C", "from-env")
	for _, key := range []string{"VOLUNTEER_TEST_A", "VOLUNTEER_TEST_B"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	loadDotEnv(path)

	assert.Equal(t, "plain", os.Getenv("VOLUNTEER_TEST_A"))
	assert.Equal(t, "quoted", os.Getenv("VOLUNTEER_TEST_B"))
	assert.Equal(t, "from-env", os.Getenv("VOLUNTEER_TEST_C"), "existing env wins")
}

func TestLoadDotEnvFeedsConfig(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("VOLUNTEER_SEED_ADMINEMAIL=boss@example.com\n"), 0o600))
	t.Setenv("VOLUNTEER_SEED_ADMINEMAIL", "")
	require.NoError(t, os.Unsetenv("VOLUNTEER_SEED_ADMINEMAIL"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "boss@example.com", cfg.Seed.AdminEmail)
}
