package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFile_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("APP_PORT: \"8080\"\nSTORE_DRIVER: redis\nGEMINI_MODEL: gemini-2.0-flash\n"), 0o600))

	t.Setenv("STORE_DRIVER", "memory")

	LoadConfigFile(path)

	assert.Equal(t, "8080", GetConfig("APP_PORT"))
	assert.Equal(t, "memory", GetConfig("STORE_DRIVER"))
	assert.Equal(t, "gemini-2.0-flash", GetConfig("GEMINI_MODEL"))
	assert.Equal(t, "", GetConfig("UNKNOWN_KEY"))
}

func TestConfigAccessors(t *testing.T) {
	LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))

	SetConfig("RATE_LIMIT_MAX", "25")
	SetConfig("ASSISTANT_TIMEOUT", "5s")

	assert.Equal(t, 25, GetConfigInt("RATE_LIMIT_MAX", 10))
	assert.Equal(t, 5*time.Second, GetConfigDuration("ASSISTANT_TIMEOUT", 30*time.Second))
	assert.Equal(t, "fallback", GetConfigOrDefault("REDIS_NAMESPACE", "fallback"))

	SetConfig("ASSISTANT_TIMEOUT", "soon")
	assert.Equal(t, 30*time.Second, GetConfigDuration("ASSISTANT_TIMEOUT", 30*time.Second))
}
