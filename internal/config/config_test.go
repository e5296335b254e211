package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, name := range []string{"INPUT_FORMAT", "OUTPUT_FORMAT", "SHELL", "LOG_LEVEL", "LOG_FILE"} {
		key := Prefix + "_" + name
		if old, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, old) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Empty(t, cfg.InputFormat)
	assert.Equal(t, []string{DefaultOutputFormat}, cfg.OutputFormat)
	assert.Equal(t, DefaultShell, cfg.Shell)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, "", cfg.LogFile)
}

func TestLoad_Environment(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("RANGEVIEW_INPUT_FORMAT", "comma,space")
	t.Setenv("RANGEVIEW_OUTPUT_FORMAT", "json")
	t.Setenv("RANGEVIEW_SHELL", "powershell")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, []string{"comma", "space"}, cfg.InputFormat)
	assert.Equal(t, []string{"json"}, cfg.OutputFormat)
	assert.Equal(t, "powershell", cfg.Shell)
}

func TestLoad_DotEnvDoesNotOverride(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("RANGEVIEW_SHELL", "cmd")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("RANGEVIEW_SHELL=sh\nRANGEVIEW_LOG_LEVEL=debug\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "cmd", cfg.Shell)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")))
	assert.NoError(t, LoadDotEnv(""))
}

func TestLoad_IgnoresUnprefixedNames(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("SHELL", "/bin/bash")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultShell, cfg.Shell)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
}
