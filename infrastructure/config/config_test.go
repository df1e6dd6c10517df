package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "ourmemories", cfg.MongoDatabase)
	assert.Equal(t, "memories", cfg.MongoCollection)
	assert.Equal(t, "13", cfg.LoginDay)
	assert.Equal(t, "07", cfg.LoginMonth)
	assert.True(t, cfg.EnableCORS)
	// Development gets a fallback secret so the server can boot locally.
	assert.NotEmpty(t, cfg.SessionSecret)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("SERVER_ADDRESS", ":9999")
	t.Setenv("LOGIN_DAY", "5")
	t.Setenv("LOGIN_MONTH", "1")
	t.Setenv("ENABLE_CORS", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.ServerAddress)
	assert.Equal(t, "5", cfg.LoginDay)
	assert.Equal(t, "1", cfg.LoginMonth)
	assert.False(t, cfg.EnableCORS)
}

func TestLoadConfig_FileUnderEnv(t *testing.T) {
	clearConfigEnv(t)

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(
		"server_address: \":7070\"\nlogin_day: \"25\"\nmongo_database: filedb\n",
	), 0o644))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("LOGIN_DAY", "26") // env wins over file

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.ServerAddress)
	assert.Equal(t, "filedb", cfg.MongoDatabase)
	assert.Equal(t, "26", cfg.LoginDay)
}

func TestLoadConfig_ProductionRequiresSecret(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("ENVIRONMENT", "production")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_SECRET")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "nope.yml"))

	_, err := LoadConfig()
	assert.Error(t, err)
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SERVER_ADDRESS", "ENVIRONMENT", "MONGODB_URI", "MONGODB_DATABASE",
		"MONGODB_COLLECTION", "LOGIN_DAY", "LOGIN_MONTH", "SESSION_SECRET",
		"LOG_LEVEL", "ENABLE_CORS", "CONFIG_FILE",
	} {
		t.Setenv(key, "")
	}
}
