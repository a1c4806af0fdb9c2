package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "purl-component.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{"MS_PORT", "LOG_LEVEL", "PURLCOMP_SERVER", "PURLCOMP_BODY_LIMIT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)

	path := writeConfig(t, `
port: "8080"
log_level: debug
body_limit: 4096
read_timeout: 30s
server_url: http://purl.example.com
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	want := Config{
		Port:        "8080",
		LogLevel:    "debug",
		BodyLimit:   4096,
		ReadTimeout: 30 * time.Second,
		ServerURL:   "http://purl.example.com",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearEnv(t)

	path := writeConfig(t, "port: \"8080\"\nlog_level: debug\n")
	t.Setenv("MS_PORT", "9090")
	t.Setenv("PURLCOMP_SERVER", "http://localhost:9090")
	t.Setenv("PURLCOMP_BODY_LIMIT", "2048")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "http://localhost:9090", cfg.ServerURL)
	assert.Equal(t, 2048, cfg.BodyLimit)
}

func TestLoadBlankServerURL(t *testing.T) {
	clearEnv(t)

	path := writeConfig(t, "server_url: http://purl.example.com\n")
	t.Setenv("PURLCOMP_SERVER", "  \t")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.ServerURL)
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")

	_, err = Load(writeConfig(t, "port: [not, a, string\n"))
	assert.ErrorContains(t, err, "is not valid YAML")

	_, err = Load(writeConfig(t, "unknown_key: 1\n"))
	assert.ErrorContains(t, err, "is not valid YAML")

	_, err = Load(writeConfig(t, "body_limit: 0\n"))
	assert.ErrorContains(t, err, "body_limit must be positive")

	t.Setenv("PURLCOMP_BODY_LIMIT", "lots")
	_, err = Load("")
	assert.ErrorContains(t, err, "PURLCOMP_BODY_LIMIT must be an integer")
}
